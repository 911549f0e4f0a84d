package api

import (
	"net/http"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// SettingsHandler reads and writes per-user preferences.
type SettingsHandler struct {
	store *store.Store
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

// GetSettings returns the viewer's settings, defaults if never saved.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	c.JSON(http.StatusOK, h.store.SettingsFor(viewer.ID))
}

// PutSettings replaces the viewer's settings.
func (h *SettingsHandler) PutSettings(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	var req domain.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = viewer.ID
	saved, err := h.store.SaveSettings(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
