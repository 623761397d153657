package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"motomind/internal/domain/entities"
	"motomind/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// SessionRepository stores one JSON document per workshop, without expiry.
type SessionRepository struct {
	client *redis.Client
}

var _ interfaces.IConnectionSessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func (r *SessionRepository) Get(ctx context.Context, workshopID string) (entities.ConnectionSession, error) {
	raw, err := r.client.Get(ctx, sessionKey(workshopID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.DisconnectedSession(workshopID), nil
	}
	if err != nil {
		return entities.ConnectionSession{}, fmt.Errorf("failed to read session: %w", err)
	}

	var s entities.ConnectionSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return entities.ConnectionSession{}, fmt.Errorf("failed to decode session: %w", err)
	}
	s.WorkshopID = workshopID
	return s.Normalize(), nil
}

func (r *SessionRepository) Save(ctx context.Context, s entities.ConnectionSession) error {
	raw, err := json.Marshal(s.Normalize())
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.WorkshopID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}
