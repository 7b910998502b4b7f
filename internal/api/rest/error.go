package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/cardfolio/cardfolio-api/internal/api/shared/errors"
	"github.com/cardfolio/cardfolio-api/internal/logger"
)

// errorResponse represents a standardized error response envelope
type errorResponse struct {
	Error apierrors.APIError `json:"error"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, apiErr *apierrors.APIError) {
	c.JSON(statusCode, errorResponse{Error: *apiErr})
}

// respondValidationError sends a 400 Bad Request with a validation error
func respondValidationError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewValidationError(err.Error())
	}
	respondWithError(c, http.StatusBadRequest, apiErr)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondAPIError maps an executor error to its HTTP status. Server-side
// failures are logged in full and echoed back only as their generic category;
// storage detail never reaches the client.
func respondAPIError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusInternalServerError, apierrors.NewInternalError("Internal error"))
		return
	}

	switch apiErr.Code {
	case apierrors.ErrCodeValidationFailed, apierrors.ErrCodeBadRequest:
		respondWithError(c, http.StatusBadRequest, apiErr)
	case apierrors.ErrCodeNotFound:
		respondWithError(c, http.StatusNotFound, apiErr)
	case apierrors.ErrCodeConflict:
		respondWithError(c, http.StatusConflict, apiErr)
	case apierrors.ErrCodeServiceError:
		// Upstream lookup failure; the details carry the upstream status
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusBadGateway, apiErr)
	default:
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusInternalServerError, apierrors.NewInternalError("Internal error"))
	}
}
