package api

import (
	"errors"
	"net/http"

	"fitsync/fitness-tracker/internal/service"
	"fitsync/fitness-tracker/internal/store"
	"fitsync/fitness-tracker/internal/validation"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy to HTTP statuses.
// Validation failures carry their field-level details verbatim.
func respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": verrs,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotAuthenticated):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAccountDeactivated),
		errors.Is(err, service.ErrAccessDenied),
		errors.Is(err, service.ErrNotATrainer),
		errors.Is(err, service.ErrClientNotOwned):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, service.ErrTrainerNotFound),
		errors.Is(err, service.ErrRecipientNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
