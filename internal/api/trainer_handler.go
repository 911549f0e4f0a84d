package api

import (
	"net/http"

	"fitsync/fitness-tracker/internal/service"
	"fitsync/fitness-tracker/internal/validation"

	"github.com/gin-gonic/gin"
)

// TrainerHandler holds the trainer service dependency.
type TrainerHandler struct {
	trainerService service.TrainerService
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// CreateClient registers a new client account linked to the calling
// trainer. Trainer-only route.
func (h *TrainerHandler) CreateClient(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}

	var req validation.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	client, err := h.trainerService.CreateClient(c.Request.Context(), viewer.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// ListClients returns the trainer's roster.
func (h *TrainerHandler) ListClients(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}

	clients, err := h.trainerService.ManagedClients(c.Request.Context(), viewer.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}
