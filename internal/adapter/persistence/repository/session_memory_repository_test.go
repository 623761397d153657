package repository

import (
	"context"
	"testing"

	"motomind/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestSessionMemoryRepository(t *testing.T) {
	repo := NewSessionMemoryRepository()
	ctx := context.Background()

	s, err := repo.Get(ctx, "ws-1")
	require.NoError(t, err)
	require.Equal(t, entities.ConnectionDisconnected, s.State)
	require.Equal(t, "ws-1", s.WorkshopID)

	require.NoError(t, repo.Save(ctx, entities.ConnectionSession{WorkshopID: "ws-1", State: entities.ConnectionConnected, PairingCode: "stale"}))
	s, err = repo.Get(ctx, "ws-1")
	require.NoError(t, err)
	require.Equal(t, entities.ConnectionConnected, s.State)
	require.Empty(t, s.PairingCode)
}
