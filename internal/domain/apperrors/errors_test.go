package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotDeliverableError(t *testing.T) {
	err := fmt.Errorf("deliver rec-1: %w", NotDeliverable(ReasonChannelUnavailable, ""))
	if !errors.Is(err, ErrNotDeliverable) {
		t.Fatalf("expected ErrNotDeliverable match")
	}
	if errors.Is(err, ErrInvalidState) {
		t.Fatalf("must not match ErrInvalidState")
	}
	reason, ok := DeliveryReason(err)
	if !ok || reason != ReasonChannelUnavailable {
		t.Fatalf("unexpected reason %q ok=%v", reason, ok)
	}
	if _, ok := DeliveryReason(ErrNetwork); ok {
		t.Fatalf("plain errors carry no delivery reason")
	}
	if got := NotDeliverable(ReasonProviderNotReady, "bot blocked").Error(); got != "bill not deliverable: provider_not_ready: bot blocked" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestValidationError(t *testing.T) {
	err := Invalid("phone", "is required")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation match")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "phone" {
		t.Fatalf("expected field phone, got %+v", ve)
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(ErrNetwork) || !Retryable(NotDeliverable(ReasonNotFinalized, "")) {
		t.Fatalf("network and not-deliverable failures are retryable")
	}
	if Retryable(ErrInvalidState) || Retryable(ErrAuth) {
		t.Fatalf("invalid state and auth failures are not retryable")
	}
}
