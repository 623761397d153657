package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	simple := NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	if simple.Error() != "RECORD_NOT_FOUND: Record not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}

	detailed := simple.WithDetail("reason", "not_finalized")
	if simple.Details != nil {
		t.Fatalf("WithDetail must not mutate the receiver")
	}
	body := detailed.ToHTTPError()
	if body.Code != "RECORD_NOT_FOUND" || body.Details["reason"] != "not_finalized" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
