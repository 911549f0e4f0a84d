package api

import (
	"net/http"

	"fitsync/fitness-tracker/internal/domain"
	"fitsync/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// CreateWorkout creates a workout for the viewer (clients) or for one of
// the viewer's clients (trainers, via clientId in the body). Field bounds
// and the at-least-one-exercise rule come back as validation errors.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}

	var req domain.Workout
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	workout, err := h.workoutService.Create(c.Request.Context(), viewer, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// ListWorkouts returns the viewer's workouts under the role-appropriate
// ownership rule.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}

	workouts, err := h.workoutService.List(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// UpdateWorkout applies a partial patch; omitted fields are retained.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}

	var patch domain.WorkoutPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	workout, err := h.workoutService.Update(c.Request.Context(), viewer, c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CompleteWorkout marks the workout done. Completion is one-way.
func (h *WorkoutHandler) CompleteWorkout(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}

	workout, err := h.workoutService.Complete(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout removes the workout.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	viewer, err := viewerFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve current user")
		return
	}

	if err := h.workoutService.Delete(c.Request.Context(), viewer, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
