package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dairy_admin/internal/activity"
	"dairy_admin/internal/gateway"
	"dairy_admin/internal/stats"
)

// DashboardHandler serves the aggregate counters, the recent-activity
// feed and cross-entity search.
type DashboardHandler struct {
	stats    *stats.Service
	activity *activity.Log
	remote   *gateway.Client
}

func NewDashboardHandler(statsService *stats.Service, activityLog *activity.Log, remote *gateway.Client) *DashboardHandler {
	return &DashboardHandler{
		stats:    statsService,
		activity: activityLog,
		remote:   remote,
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.stats.Refresh(c.Request.Context()))
}

// RecentActivities prefers the remote feed and silently falls back to
// the local log.
func (h *DashboardHandler) RecentActivities(c *gin.Context) {
	if h.remote != nil {
		if activities, err := h.remote.RecentActivities(c.Request.Context()); err == nil {
			c.JSON(http.StatusOK, activities)
			return
		}
	}
	c.JSON(http.StatusOK, h.activity.Recent(5))
}

func (h *DashboardHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, []any{})
		return
	}
	if h.remote != nil {
		if results, err := h.remote.Search(c.Request.Context(), query); err == nil {
			c.JSON(http.StatusOK, results)
			return
		}
	}
	c.JSON(http.StatusOK, []any{})
}
