package panel

import (
	"strings"

	"dairy_admin/internal/entity"
)

// ExportCSV renders the collection as text/csv: header row first, one
// record per line, values comma-joined. Values are written raw, so a
// comma or newline inside a free-text field shifts the columns of that
// row; the format matches what the panels have always produced.
func ExportCSV(schema entity.Schema, recs []entity.Record) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(schema.CSVHeader, ","))
	b.WriteString("\n")
	for _, rec := range recs {
		row := make([]string, len(schema.CSVHeader))
		for i, col := range schema.CSVHeader {
			row[i] = rec.String(col)
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}
	return []byte(b.String())
}
