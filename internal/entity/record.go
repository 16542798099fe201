package entity

import (
	"strconv"
	"time"
)

// Record is one row of a panel's collection. Field values are kept in a
// map so a single store/controller implementation can serve every entity
// type; the schema describes which keys are valid.
type Record struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Fields    map[string]any `json:"fields"`
}

// Clone returns a copy whose field map can be mutated without touching
// the original. Slice values (image lists) are copied one level deep.
func (r Record) Clone() Record {
	out := Record{ID: r.ID, CreatedAt: r.CreatedAt, Fields: make(map[string]any, len(r.Fields))}
	for k, v := range r.Fields {
		if s, ok := v.([]string); ok {
			cp := make([]string, len(s))
			copy(cp, s)
			out.Fields[k] = cp
			continue
		}
		out.Fields[k] = v
	}
	return out
}

// String returns the named field rendered as text, or "" when absent.
func (r Record) String(name string) string {
	switch v := r.Fields[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return ""
	}
}

// Number returns the named field as a float64, tolerating the int and
// string encodings that show up after JSON round-trips.
func (r Record) Number(name string) float64 {
	switch v := r.Fields[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

// Int returns the named field truncated to an int.
func (r Record) Int(name string) int {
	return int(r.Number(name))
}

// Strings returns the named field as a string slice (image lists).
func (r Record) Strings(name string) []string {
	switch v := r.Fields[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
