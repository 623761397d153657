package interfaces

import (
	"context"
	"errors"

	"motomind/internal/domain/entities"
)

// ErrProviderNotReady means the provider refused a send because the paired
// device is unavailable.
var ErrProviderNotReady = errors.New("messaging provider not ready")

// BillMessage is a rendered bill addressed to a workshop's customer.
type BillMessage struct {
	WorkshopID string
	RecordID   string
	Phone      string
	Text       string
}

// StatusHandler receives provider-driven session changes.
type StatusHandler func(ctx context.Context, s entities.ConnectionSession) error

// IMessagingProvider abstracts the external messaging integration.
//
// StartPairing and CancelPairing are fire-and-forget: the resulting state
// arrives later through the handler registered with OnStatus. Handlers are
// invoked from the provider's own goroutines, never from inside StartPairing
// or CancelPairing.
type IMessagingProvider interface {
	StartPairing(ctx context.Context, workshopID string) error
	CancelPairing(ctx context.Context, workshopID string) error
	SendBill(ctx context.Context, msg BillMessage) error
	OnStatus(h StatusHandler)
}
