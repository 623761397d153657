package interfaces

import (
	"context"

	"motomind/internal/domain/entities"
)

// IStatusNotifier fans out connection-session snapshots per workshop.
type IStatusNotifier interface {
	Publish(ctx context.Context, s entities.ConnectionSession) error
	Subscribe(ctx context.Context, workshopID string) (ISubscription, error)
}

// ISubscription is a live stream of snapshots. Close is idempotent and
// closes the channel returned by C.
type ISubscription interface {
	C() <-chan entities.ConnectionSession
	Close() error
}
