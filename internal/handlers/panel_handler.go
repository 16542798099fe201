package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dairy_admin/internal/panel"
)

// confirmHeader carries the overlay dialog's answer back from the
// client. Mutations without a positive answer resolve the gate to false.
const confirmHeader = "X-Confirm"

// PanelHandler exposes every panel controller over one generic set of
// routes keyed by entity name.
type PanelHandler struct {
	panels          map[string]*panel.Controller
	defaultPageSize int
}

func NewPanelHandler(panels map[string]*panel.Controller, defaultPageSize int) *PanelHandler {
	return &PanelHandler{panels: panels, defaultPageSize: defaultPageSize}
}

func (h *PanelHandler) controller(c *gin.Context) (*panel.Controller, bool) {
	ctrl, ok := h.panels[c.Param("entity")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown panel"})
		return nil, false
	}
	return ctrl, true
}

// confirmed lifts the dialog answer from the header onto the request
// context so the controller's gate sees it.
func confirmed(c *gin.Context) *gin.Context {
	answer := c.GetHeader(confirmHeader) == "yes"
	c.Request = c.Request.WithContext(panel.WithConfirmation(c.Request.Context(), answer))
	return c
}

func (h *PanelHandler) List(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(h.defaultPageSize)))
	if pageSize < 1 {
		pageSize = h.defaultPageSize
	}
	c.JSON(http.StatusOK, ctrl.ListPage(page, pageSize))
}

func (h *PanelHandler) Export(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	filename, data := ctrl.ExportCSV()
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", data)
}

// NewForm returns the blank form (create) or the populated form (edit)
// the overlay renders.
func (h *PanelHandler) NewForm(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	if id := c.Query("id"); id != "" {
		form, err := ctrl.BeginEdit(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusOK, form)
		return
	}
	c.JSON(http.StatusOK, ctrl.BeginCreate())
}

type submitRequest struct {
	Values map[string]string `json:"values"`
	Images []string          `json:"images"`
}

func (h *PanelHandler) Create(c *gin.Context) {
	h.submit(c, "")
}

func (h *PanelHandler) Update(c *gin.Context) {
	h.submit(c, c.Param("id"))
}

func (h *PanelHandler) submit(c *gin.Context, id string) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	form := &panel.Form{Values: req.Values, Images: req.Images}
	if id != "" {
		existing, err := ctrl.BeginEdit(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		// start from the stored form so immutable fields survive, then
		// lay the submitted values on top
		for k, v := range req.Values {
			existing.Values[k] = v
		}
		existing.Images = req.Images
		form = existing
	}

	rec, err := ctrl.Submit(confirmed(c).Request.Context(), form)
	if err != nil {
		h.writeError(c, err)
		return
	}
	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	c.JSON(status, rec)
}

func (h *PanelHandler) Delete(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}
	if err := ctrl.RequestDelete(confirmed(c).Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *PanelHandler) writeError(c *gin.Context, err error) {
	var verr *panel.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, panel.ErrCancelled):
		// the client never sent (or sent a negative) confirmation
		c.JSON(http.StatusConflict, gin.H{"error": "Confirmation required", "confirm": confirmHeader})
	case errors.Is(err, panel.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, panel.ErrReadOnly):
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Panel does not allow this operation"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}
