package api

import (
	"net/http"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// TrackerHandler bundles the per-user log surfaces: meals, progress
// entries and messages. They share the same thin bind-call-respond shape.
type TrackerHandler struct {
	nutritionService service.NutritionService
	progressService  service.ProgressService
	messageService   service.MessageService
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(
	nutritionService service.NutritionService,
	progressService service.ProgressService,
	messageService service.MessageService,
) *TrackerHandler {
	return &TrackerHandler{
		nutritionService: nutritionService,
		progressService:  progressService,
		messageService:   messageService,
	}
}

// --- Meals ---

func (h *TrackerHandler) CreateMeal(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	var req domain.Meal
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	meal, err := h.nutritionService.Create(c.Request.Context(), viewer, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *TrackerHandler) ListMeals(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	meals, err := h.nutritionService.List(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *TrackerHandler) UpdateMeal(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	var patch domain.MealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	meal, err := h.nutritionService.Update(c.Request.Context(), viewer, c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *TrackerHandler) DeleteMeal(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	if err := h.nutritionService.Delete(c.Request.Context(), viewer, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Progress ---

func (h *TrackerHandler) CreateProgress(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	var req domain.ProgressEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	entry, err := h.progressService.Create(c.Request.Context(), viewer, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *TrackerHandler) ListProgress(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	entries, err := h.progressService.List(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *TrackerHandler) UpdateProgress(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	var patch domain.ProgressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	entry, err := h.progressService.Update(c.Request.Context(), viewer, c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *TrackerHandler) DeleteProgress(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	if err := h.progressService.Delete(c.Request.Context(), viewer, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Messages ---

type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

func (h *TrackerHandler) SendMessage(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "receiverId and content are required")
		return
	}
	msg, err := h.messageService.Send(c.Request.Context(), viewer, req.ReceiverID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *TrackerHandler) ListMessages(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	// ?with=<userID> narrows to a single conversation.
	var msgs []domain.Message
	if other := c.Query("with"); other != "" {
		msgs, err = h.messageService.Conversation(c.Request.Context(), viewer, other)
	} else {
		msgs, err = h.messageService.List(c.Request.Context(), viewer)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *TrackerHandler) MarkMessageRead(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	msg, err := h.messageService.MarkRead(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *TrackerHandler) DeleteMessage(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}
	if err := h.messageService.Delete(c.Request.Context(), viewer, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
