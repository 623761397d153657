package interfaces

import (
	"context"

	"motomind/internal/domain/entities"
)

// IConnectionSessionRepository stores one ConnectionSession per workshop.
// Get returns a disconnected session when nothing was saved yet.
type IConnectionSessionRepository interface {
	Get(ctx context.Context, workshopID string) (entities.ConnectionSession, error)
	Save(ctx context.Context, s entities.ConnectionSession) error
}
