package api

import (
	"net/http"
	"time"

	"fitsync/fitness-tracker/internal/service"
	"fitsync/fitness-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// StatsHandler holds the stats service and the store (for settings).
type StatsHandler struct {
	statsService service.StatsService
	store        *store.Store
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService, st *store.Store) *StatsHandler {
	return &StatsHandler{statsService: statsService, store: st}
}

// Dashboard returns the viewer's full derived view: summary aggregates,
// the 7-day activity chart, exercise frequency and achievements.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	dashboard, err := h.statsService.Dashboard(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// Nutrition returns nutrition totals for ?from=...&to=... (RFC 3339 dates,
// both optional; defaults to the trailing week).
func (h *StatsHandler) Nutrition(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}

	var from, to time.Time
	if v := c.Query("from"); v != "" {
		if from, err = time.Parse("2006-01-02", v); err != nil {
			abortWithError(c, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse("2006-01-02", v); err != nil {
			abortWithError(c, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return
		}
	}

	totals, err := h.statsService.Nutrition(c.Request.Context(), viewer, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
