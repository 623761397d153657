// Package apperrors defines the failure taxonomy shared by the server use
// cases and the dashboard client. Callers match with errors.Is.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrAuth means the token is missing or expired; the caller must re-authenticate.
	ErrAuth = errors.New("authentication required")
	// ErrValidation means malformed input; recoverable by fixing the input.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidState means the operation is not allowed in the record's or session's current state.
	ErrInvalidState = errors.New("invalid state")
	// ErrNotDeliverable means a bill cannot be sent right now; see NotDeliverableError for the reason.
	ErrNotDeliverable = errors.New("bill not deliverable")
	// ErrNetwork is a transient transport failure. It is surfaced, never retried automatically.
	ErrNetwork = errors.New("network error")
	// ErrNotFound means the record does not exist for this workshop.
	ErrNotFound = errors.New("not found")
)

// DeliveryBlockReason tells the user why a bill could not be delivered.
type DeliveryBlockReason string

const (
	ReasonNotFinalized       DeliveryBlockReason = "not_finalized"
	ReasonChannelUnavailable DeliveryBlockReason = "channel_unavailable"
	ReasonProviderNotReady   DeliveryBlockReason = "provider_not_ready"
)

// NotDeliverableError matches ErrNotDeliverable.
type NotDeliverableError struct {
	Reason DeliveryBlockReason
	Detail string
}

func (e *NotDeliverableError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", ErrNotDeliverable, e.Reason, e.Detail)
	}
	return fmt.Sprintf("%s: %s", ErrNotDeliverable, e.Reason)
}

func (e *NotDeliverableError) Is(target error) bool {
	return target == ErrNotDeliverable
}

func NotDeliverable(reason DeliveryBlockReason, detail string) error {
	return &NotDeliverableError{Reason: reason, Detail: detail}
}

// DeliveryReason extracts the block reason from err, if any.
func DeliveryReason(err error) (DeliveryBlockReason, bool) {
	var nd *NotDeliverableError
	if errors.As(err, &nd) {
		return nd.Reason, true
	}
	return "", false
}

// ValidationError matches ErrValidation and names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Retryable reports whether the user may simply try again later.
func Retryable(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrNotDeliverable)
}
