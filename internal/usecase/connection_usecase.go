package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"motomind/internal/domain/apperrors"
	"motomind/internal/domain/entities"
	"motomind/internal/infrastructure/metrics"
	"motomind/internal/usecase/interfaces"
	"motomind/pkg/logger"
)

// IConnectionUseCase drives the messaging-channel pairing handshake.
//
// Local state only moves when the provider reports back, except for
// CancelPairing which clears the pairing code immediately. After a cancel,
// pairing events for that workshop are ignored until the next RequestConnect.
type IConnectionUseCase interface {
	Status(ctx context.Context, workshopID string) (entities.ConnectionSession, error)
	RequestConnect(ctx context.Context, workshopID string) (entities.ConnectionSession, error)
	CancelPairing(ctx context.Context, workshopID string) (entities.ConnectionSession, error)
	ApplyProviderEvent(ctx context.Context, s entities.ConnectionSession) error
	Observe(ctx context.Context, workshopID string) (entities.ConnectionSession, interfaces.ISubscription, error)
}

type ConnectionUseCase struct {
	mu        sync.Mutex
	cancelled map[string]struct{}
	sessions  interfaces.IConnectionSessionRepository
	notifier  interfaces.IStatusNotifier
	provider  interfaces.IMessagingProvider
}

var _ IConnectionUseCase = (*ConnectionUseCase)(nil)

// NewConnectionUseCase registers itself as the provider's status handler.
func NewConnectionUseCase(sessions interfaces.IConnectionSessionRepository, notifier interfaces.IStatusNotifier, provider interfaces.IMessagingProvider) *ConnectionUseCase {
	u := &ConnectionUseCase{
		cancelled: make(map[string]struct{}),
		sessions:  sessions,
		notifier:  notifier,
		provider:  provider,
	}
	provider.OnStatus(u.ApplyProviderEvent)
	return u
}

func (u *ConnectionUseCase) Status(ctx context.Context, workshopID string) (entities.ConnectionSession, error) {
	workshopID = strings.TrimSpace(workshopID)
	if workshopID == "" {
		return entities.ConnectionSession{}, ErrMissingWorkshopID
	}
	s, err := u.sessions.Get(ctx, workshopID)
	if err != nil {
		return entities.ConnectionSession{}, err
	}
	return s.Normalize(), nil
}

func (u *ConnectionUseCase) RequestConnect(ctx context.Context, workshopID string) (entities.ConnectionSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.Status(ctx, workshopID)
	if err != nil {
		return entities.ConnectionSession{}, err
	}
	if s.State != entities.ConnectionDisconnected {
		return s, fmt.Errorf("connect from %s: %w", s.State, apperrors.ErrInvalidState)
	}
	delete(u.cancelled, s.WorkshopID)
	log := logger.WithComponent("connection.usecase")
	if err := u.provider.StartPairing(ctx, s.WorkshopID); err != nil {
		log.Error().Err(err).Str("workshop_id", s.WorkshopID).Msg("start pairing failed")
		return s, fmt.Errorf("%w: start pairing: %v", apperrors.ErrNetwork, err)
	}
	log.Info().Str("workshop_id", s.WorkshopID).Msg("pairing requested")
	return s, nil
}

func (u *ConnectionUseCase) CancelPairing(ctx context.Context, workshopID string) (entities.ConnectionSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.Status(ctx, workshopID)
	if err != nil {
		return entities.ConnectionSession{}, err
	}
	if s.State == entities.ConnectionConnected {
		return s, fmt.Errorf("cancel pairing while connected: %w", apperrors.ErrInvalidState)
	}

	// A request may still be in flight while the local state is disconnected.
	u.cancelled[s.WorkshopID] = struct{}{}
	if err := u.provider.CancelPairing(ctx, s.WorkshopID); err != nil {
		log := logger.WithComponent("connection.usecase")
		log.Warn().Err(err).Str("workshop_id", s.WorkshopID).Msg("provider cancel failed")
	}
	if s.State == entities.ConnectionDisconnected {
		return s, nil
	}
	next := entities.DisconnectedSession(s.WorkshopID)
	if err := u.store(ctx, next); err != nil {
		return s, err
	}
	return next.Normalize(), nil
}

// ApplyProviderEvent persists and publishes a provider-reported state.
// A pairing event that arrives after CancelPairing is discarded.
func (u *ConnectionUseCase) ApplyProviderEvent(ctx context.Context, s entities.ConnectionSession) error {
	s.WorkshopID = strings.TrimSpace(s.WorkshopID)
	if s.WorkshopID == "" {
		return ErrMissingWorkshopID
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.cancelled[s.WorkshopID]; ok {
		if s.State == entities.ConnectionPairing {
			log := logger.WithComponent("connection.usecase")
			log.Info().Str("workshop_id", s.WorkshopID).Msg("ignoring pairing event after cancel")
			return nil
		}
		delete(u.cancelled, s.WorkshopID)
	}
	return u.store(ctx, s)
}

func (u *ConnectionUseCase) store(ctx context.Context, s entities.ConnectionSession) error {
	s = s.Normalize()
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		return err
	}
	metrics.IncTransition(string(s.State))
	log := logger.WithComponent("connection.usecase")
	log.Info().Str("workshop_id", s.WorkshopID).Str("state", string(s.State)).Msg("connection state changed")
	if err := u.notifier.Publish(ctx, s); err != nil {
		log.Warn().Err(err).Str("workshop_id", s.WorkshopID).Msg("publish failed")
	}
	return nil
}

// Observe subscribes before reading the snapshot so no change between the
// two is lost. The caller must Close the subscription.
func (u *ConnectionUseCase) Observe(ctx context.Context, workshopID string) (entities.ConnectionSession, interfaces.ISubscription, error) {
	workshopID = strings.TrimSpace(workshopID)
	if workshopID == "" {
		return entities.ConnectionSession{}, nil, ErrMissingWorkshopID
	}
	sub, err := u.notifier.Subscribe(ctx, workshopID)
	if err != nil {
		return entities.ConnectionSession{}, nil, err
	}
	s, err := u.Status(ctx, workshopID)
	if err != nil {
		_ = sub.Close()
		return entities.ConnectionSession{}, nil, err
	}
	return s, sub, nil
}
