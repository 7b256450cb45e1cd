package api

import (
	"errors"
	"log/slog"
	"net/http"

	"staybook/internal/domain/calendar"
	"staybook/internal/domain/coupon"
	"staybook/internal/handler/httperr"
	"staybook/internal/infra"
	"staybook/internal/infra/ical"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type fieldDetail struct {
	Field string `json:"field"`
}

type codeDetail struct {
	Code string `json:"code"`
}

var errInvalidRequest = errs.New("invalid request format")

// abortBindError turns a gin binding failure into a 400 naming the first
// offending field.
func abortBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		field := ve[0].Field()
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid value for "+field, fieldDetail{Field: field})
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidRequest), "Invalid request format", nil)
}

// abortWithUsecaseError maps usecase and domain errors onto the HTTP taxonomy.
func abortWithUsecaseError(c *gin.Context, err error) {
	if ve, ok := errs.AsValidation(err); ok {
		httperr.AbortWithError(c, http.StatusBadRequest, err, ve.Reason(), fieldDetail{Field: ve.Field})
		return
	}
	if ce, ok := coupon.AsError(err); ok {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, ce.Error(), codeDetail{Code: string(ce.Reason)})
		return
	}
	if se, ok := ical.AsSyncError(err); ok {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Calendar sync failed", codeDetail{Code: string(se.Reason)})
		return
	}

	switch {
	case errs.Is(err, commands.ErrPropertyNotFound), errs.Is(err, queries.ErrPropertyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", codeDetail{Code: "PROPERTY_NOT_FOUND"})
	case errs.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, commands.ErrBlockedIntervalNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Blocked dates not found", nil)
	case errs.Is(err, calendar.ErrDatesUnavailable), infra.IsKind(err, infra.KindConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Dates unavailable", codeDetail{Code: "DATES_UNAVAILABLE"})
	case errs.Is(err, calendar.ErrNotManuallyRemovable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Only manually blocked dates can be removed", nil)
	case errs.Is(err, commands.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request is currently being processed", nil)
	case errs.Is(err, commands.ErrIdempotencyKeyReused):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Idempotency key was already used for a different request", nil)
	case errs.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errs.Is(err, commands.ErrUserInactive), errs.Is(err, queries.ErrUserInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
	case errs.Is(err, queries.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	default:
		slog.Error("unhandled request error", "path", c.Request.URL.Path, "error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
