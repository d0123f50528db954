package api

import (
	"log/slog"
	"net/http"

	"venue-pricing/internal/handler/httperr"
	"venue-pricing/internal/handler/middleware"
	"venue-pricing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps a usecase error onto its HTTP status.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errs.Is(err, errs.ErrPackageNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
	case errs.Is(err, errs.ErrInvalidQuoteRequest):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid quote request", err.Error())
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid schedule", err.Error())
	default:
		slog.Error("request failed",
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 8),
			"path", c.Request.URL.Path,
			"request_id", middleware.GetRequestID(c))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
