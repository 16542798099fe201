package panel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dairy_admin/internal/entity"
	"dairy_admin/internal/store"
)

func TestExportCSV_HeaderAndRows(t *testing.T) {
	st := store.NewMemoryStore()
	c := NewController(entity.Products, st, FixedGate(true))
	st.Insert(map[string]any{
		"name": "Fresh Milk", "category": "milk", "price": 60.0, "stock": 50.0,
		"unit": "liter", "description": "Pure cow milk", "status": "available",
	})
	st.Insert(map[string]any{
		"name": "Pure Ghee", "category": "ghee", "price": 800.0, "stock": 20.0,
		"unit": "kg", "description": "", "status": "available",
	})

	filename, data := c.ExportCSV()
	assert.Equal(t, "products_data.csv", filename)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,category,price,stock,unit,description,status", lines[0])
	assert.Equal(t, "Fresh Milk,milk,60,50,liter,Pure cow milk,available", lines[1])
	assert.Equal(t, "Pure Ghee,ghee,800,20,kg,,available", lines[2])
}

func TestExportCSV_ValuesAreNotEscaped(t *testing.T) {
	st := store.NewMemoryStore()
	c := NewController(entity.Products, st, FixedGate(true))
	st.Insert(map[string]any{
		"name": "Fresh Milk", "category": "milk", "price": 60.0, "stock": 50.0,
		"unit": "liter", "description": "creamy, fresh", "status": "available",
	})

	_, data := c.ExportCSV()
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	// the embedded comma is written raw, shifting that row's columns
	assert.Equal(t, "Fresh Milk,milk,60,50,liter,creamy, fresh,available", lines[1])
}
