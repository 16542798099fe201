package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dairy_admin/internal/entity"
	"dairy_admin/internal/panel"
	"dairy_admin/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	ctrl := panel.NewController(entity.Orders, st, panel.ContextGate)
	h := NewPanelHandler(map[string]*panel.Controller{entity.Orders.Name: ctrl}, 10)

	r := gin.New()
	r.GET("/api/panels/:entity", h.List)
	r.GET("/api/panels/:entity/export", h.Export)
	r.POST("/api/panels/:entity", h.Create)
	r.PUT("/api/panels/:entity/:id", h.Update)
	r.DELETE("/api/panels/:entity/:id", h.Delete)
	return r, st
}

func orderBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"values": map[string]string{
			"customer": "John Doe",
			"mobile":   "9876543210",
			"product":  "Fresh Milk",
			"quantity": "2",
			"amount":   "120",
			"status":   "pending",
			"address":  "123 Main St",
			"date":     "2024-01-15",
		},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCreate_WithoutConfirmHeaderIsRejected(t *testing.T) {
	r, st := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/panels/orders", orderBody(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, st.Len(), "store must stay untouched without confirmation")
}

func TestCreate_WithConfirmHeaderSucceeds(t *testing.T) {
	r, st := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/panels/orders", orderBody(t))
	req.Header.Set("X-Confirm", "yes")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, st.Len())

	var rec entity.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.NotEmpty(t, rec.ID)
}

func TestCreate_ValidationErrorReportsField(t *testing.T) {
	r, st := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{
		"values": map[string]string{"customer": "John Doe", "mobile": "9", "product": "Milk", "quantity": "0", "amount": "10"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/panels/orders", bytes.NewBuffer(body))
	req.Header.Set("X-Confirm", "yes")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "quantity", resp["field"])
	assert.Equal(t, 0, st.Len())
}

func TestDelete_ConfirmFlow(t *testing.T) {
	r, st := newTestRouter(t)
	rec := st.Insert(map[string]any{"customer": "John Doe"})

	// declined: no header
	req := httptest.NewRequest(http.MethodDelete, "/api/panels/orders/"+rec.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, st.Len())

	// confirmed
	req = httptest.NewRequest(http.MethodDelete, "/api/panels/orders/"+rec.ID, nil)
	req.Header.Set("X-Confirm", "yes")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, st.Len())
}

func TestList_PaginatesAndClamps(t *testing.T) {
	r, st := newTestRouter(t)
	for i := 0; i < 25; i++ {
		st.Insert(map[string]any{"customer": "c"})
	}

	req := httptest.NewRequest(http.MethodGet, "/api/panels/orders?page=3&pageSize=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var page panel.Page
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Records, 5)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.TotalCount)
}

func TestList_UnknownPanel(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/panels/widgets", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExport_ServesCSVAttachment(t *testing.T) {
	r, st := newTestRouter(t)
	st.Insert(map[string]any{"customer": "John Doe", "mobile": "9876543210", "product": "Fresh Milk",
		"quantity": 2.0, "amount": 120.0, "status": "pending", "deliveryBoy": "", "address": "123 Main St", "date": "2024-01-15"})

	req := httptest.NewRequest(http.MethodGet, "/api/panels/orders/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orders_data.csv")
	assert.Contains(t, w.Body.String(), "customer,mobile,product")
	assert.Contains(t, w.Body.String(), "John Doe,9876543210,Fresh Milk")
}
