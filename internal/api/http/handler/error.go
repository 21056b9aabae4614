package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell-server/internal/apierrors"
	"github.com/inkwell-app/inkwell-server/internal/logger"
	"github.com/inkwell-app/inkwell-server/internal/model"
)

// handleError maps domain errors to HTTP responses. Unexpected errors
// become a generic 500, with the underlying message exposed only in
// development mode.
func handleError(c *gin.Context, log *logger.Logger, devMode bool, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		respondError(c, apiErr.HTTPCode, apiErr.Message)
		return
	}

	switch {
	case errors.Is(err, model.ErrInvalidID):
		respondError(c, http.StatusBadRequest, "Invalid blog ID format")
	case errors.Is(err, model.ErrNotFound):
		respondError(c, http.StatusNotFound, "Blog not found")
	default:
		log.Error("handler: unexpected error", "error", err)
		message := "Server Error"
		if devMode {
			message = "Server Error: " + err.Error()
		}
		respondError(c, http.StatusInternalServerError, message)
	}
}
