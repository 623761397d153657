package handlers

import (
	"errors"
	"net/http"

	"motomind/internal/domain/apperrors"
	"motomind/pkg"
	"motomind/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

func mapError(err error) *pkg.AppError {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).WithDetail(ve.Field, ve.Message)
	case errors.Is(err, apperrors.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrAuth):
		return pkg.NewDomainError("UNAUTHORIZED", "Authentication required", err, http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrNotFound):
		return pkg.NewDomainError("RECORD_NOT_FOUND", "Record not found", err, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrNotDeliverable):
		appErr := pkg.NewDomainError("NOT_DELIVERABLE", notDeliverableMessage(err), err, http.StatusConflict)
		if reason, ok := apperrors.DeliveryReason(err); ok {
			appErr = appErr.WithDetail("reason", string(reason))
		}
		return appErr
	case errors.Is(err, apperrors.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", "Operation not allowed in the current state", err, http.StatusConflict)
	case errors.Is(err, apperrors.ErrNetwork):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "Messaging provider unavailable, try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func notDeliverableMessage(err error) string {
	reason, _ := apperrors.DeliveryReason(err)
	switch reason {
	case apperrors.ReasonNotFinalized:
		return "Finalize the record before sending the bill"
	case apperrors.ReasonChannelUnavailable:
		return "Messaging channel is not connected"
	case apperrors.ReasonProviderNotReady:
		return "Messaging provider is not ready, reconnect and try again"
	}
	return "Bill cannot be delivered right now"
}

func writeError(c *gin.Context, component string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log := logger.WithComponent(component)
		log.Error().Err(err).Str("route", c.FullPath()).Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
