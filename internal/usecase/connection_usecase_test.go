package usecase

import (
	"context"
	"errors"
	"testing"

	"motomind/internal/domain/apperrors"
	"motomind/internal/domain/entities"
	"motomind/internal/usecase/interfaces"
	mock_interfaces "motomind/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type connectionDeps struct {
	sessions *mock_interfaces.MockIConnectionSessionRepository
	notifier *mock_interfaces.MockIStatusNotifier
	provider *mock_interfaces.MockIMessagingProvider
	handler  interfaces.StatusHandler
}

func newConnectionUseCase(ctrl *gomock.Controller) (*ConnectionUseCase, *connectionDeps) {
	d := &connectionDeps{
		sessions: mock_interfaces.NewMockIConnectionSessionRepository(ctrl),
		notifier: mock_interfaces.NewMockIStatusNotifier(ctrl),
		provider: mock_interfaces.NewMockIMessagingProvider(ctrl),
	}
	d.provider.EXPECT().OnStatus(gomock.Any()).Do(func(h interfaces.StatusHandler) { d.handler = h })
	return NewConnectionUseCase(d.sessions, d.notifier, d.provider), d
}

func session(state entities.ConnectionState, code string) entities.ConnectionSession {
	return entities.ConnectionSession{WorkshopID: "ws-1", State: state, PairingCode: code}
}

func TestConnectionUseCase_RequestConnect(t *testing.T) {
	t.Run("from disconnected asks provider without changing state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newConnectionUseCase(ctrl)

		d.sessions.EXPECT().Get(gomock.Any(), "ws-1").Return(entities.DisconnectedSession("ws-1"), nil)
		d.provider.EXPECT().StartPairing(gomock.Any(), "ws-1").Return(nil)

		s, err := uc.RequestConnect(context.Background(), "ws-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.State != entities.ConnectionDisconnected {
			t.Fatalf("local state must not change, got %s", s.State)
		}
	})

	for _, state := range []entities.ConnectionState{entities.ConnectionPairing, entities.ConnectionConnected} {
		t.Run("rejected from "+string(state), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, d := newConnectionUseCase(ctrl)
			d.sessions.EXPECT().Get(gomock.Any(), "ws-1").Return(session(state, "code"), nil)

			_, err := uc.RequestConnect(context.Background(), "ws-1")
			if !errors.Is(err, apperrors.ErrInvalidState) {
				t.Fatalf("expected ErrInvalidState, got %v", err)
			}
		})
	}

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newConnectionUseCase(ctrl)
		d.sessions.EXPECT().Get(gomock.Any(), "ws-1").Return(entities.DisconnectedSession("ws-1"), nil)
		d.provider.EXPECT().StartPairing(gomock.Any(), "ws-1").Return(errors.New("unreachable"))

		_, err := uc.RequestConnect(context.Background(), "ws-1")
		if !errors.Is(err, apperrors.ErrNetwork) {
			t.Fatalf("expected ErrNetwork, got %v", err)
		}
	})

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newConnectionUseCase(ctrl)
		_, err := uc.RequestConnect(context.Background(), "")
		if !errors.Is(err, apperrors.ErrAuth) {
			t.Fatalf("expected ErrAuth, got %v", err)
		}
	})
}

func TestConnectionUseCase_CancelPairing(t *testing.T) {
	t.Run("pairing clears code and stores disconnected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newConnectionUseCase(ctrl)

		d.sessions.EXPECT().Get(gomock.Any(), "ws-1").Return(session(entities.ConnectionPairing, "https://t.me/bot?start=abc"), nil)
		d.provider.EXPECT().CancelPairing(gomock.Any(), "ws-1").Return(nil)
		d.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.ConnectionSession) error {
				if s.State != entities.ConnectionDisconnected || s.PairingCode != "" {
					t.Fatalf("unexpected saved session: %+v", s)
				}
				return nil
			},
		)
		d.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		s, err := uc.CancelPairing(context.Background(), "ws-1")
		if err != nil || s.State != entities.ConnectionDisconnected || s.PairingCode != "" {
			t.Fatalf("unexpected result %+v err=%v", s, err)
		}
	})

	t.Run("provider cancel failure still clears locally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newConnectionUseCase(ctrl)

		d.sessions.EXPECT().Get(gomock.Any(), "ws-1").Return(session(entities.ConnectionPairing, "abc"), nil)
		d.provider.EXPECT().CancelPairing(gomock.Any(), "ws-1").Return(errors.New("gone"))
		d.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		d.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.CancelPairing(context.Background(), "ws-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("idempotent when disconnected but still tells the provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newConnectionUseCase(ctrl)
		d.sessions.EXPECT().Get(gomock.Any(), "ws-1").Return(entities.DisconnectedSession("ws-1"), nil)
		d.provider.EXPECT().CancelPairing(gomock.Any(), "ws-1").Return(nil)

		s, err := uc.CancelPairing(context.Background(), "ws-1")
		if err != nil || s.State != entities.ConnectionDisconnected {
			t.Fatalf("unexpected result %+v err=%v", s, err)
		}
	})

	t.Run("late pairing event after cancel is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newConnectionUseCase(ctrl)

		gomock.InOrder(
			d.sessions.EXPECT().Get(gomock.Any(), "ws-1").Return(entities.DisconnectedSession("ws-1"), nil),
			d.provider.EXPECT().StartPairing(gomock.Any(), "ws-1").Return(nil),
			d.sessions.EXPECT().Get(gomock.Any(), "ws-1").Return(entities.DisconnectedSession("ws-1"), nil),
			d.provider.EXPECT().CancelPairing(gomock.Any(), "ws-1").Return(nil),
		)

		if _, err := uc.RequestConnect(context.Background(), "ws-1"); err != nil {
			t.Fatalf("connect: %v", err)
		}
		if _, err := uc.CancelPairing(context.Background(), "ws-1"); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		// No Save or Publish is expected for the stale code.
		if err := d.handler(context.Background(), session(entities.ConnectionPairing, "stale")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("new request accepts pairing events again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newConnectionUseCase(ctrl)

		d.sessions.EXPECT().Get(gomock.Any(), "ws-1").Return(entities.DisconnectedSession("ws-1"), nil).Times(2)
		d.provider.EXPECT().CancelPairing(gomock.Any(), "ws-1").Return(nil)
		d.provider.EXPECT().StartPairing(gomock.Any(), "ws-1").Return(nil)
		d.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		d.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.ConnectionSession) error {
				if s.State != entities.ConnectionPairing || s.PairingCode != "fresh" {
					t.Fatalf("unexpected published session: %+v", s)
				}
				return nil
			},
		)

		if _, err := uc.CancelPairing(context.Background(), "ws-1"); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if _, err := uc.RequestConnect(context.Background(), "ws-1"); err != nil {
			t.Fatalf("connect: %v", err)
		}
		if err := d.handler(context.Background(), session(entities.ConnectionPairing, "fresh")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejected while connected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newConnectionUseCase(ctrl)
		d.sessions.EXPECT().Get(gomock.Any(), "ws-1").Return(session(entities.ConnectionConnected, ""), nil)

		_, err := uc.CancelPairing(context.Background(), "ws-1")
		if !errors.Is(err, apperrors.ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestConnectionUseCase_ProviderEvents(t *testing.T) {
	t.Run("registered handler persists and publishes normalized session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		_, d := newConnectionUseCase(ctrl)
		if d.handler == nil {
			t.Fatalf("expected handler registration")
		}

		want := entities.ConnectionSession{WorkshopID: "ws-1", State: entities.ConnectionConnected}
		d.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.ConnectionSession) error {
				if s.State != want.State || s.PairingCode != "" || s.UpdatedAt.IsZero() {
					t.Fatalf("unexpected saved session: %+v", s)
				}
				return nil
			},
		)
		d.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.ConnectionSession) error {
				if s.WorkshopID != "ws-1" || s.State != entities.ConnectionConnected {
					t.Fatalf("unexpected published session: %+v", s)
				}
				return nil
			},
		)

		if err := d.handler(context.Background(), entities.ConnectionSession{WorkshopID: "ws-1", State: entities.ConnectionConnected, PairingCode: "stale"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("save failure is returned and nothing is published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newConnectionUseCase(ctrl)
		d.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if err := uc.ApplyProviderEvent(context.Background(), session(entities.ConnectionPairing, "abc")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing workshop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newConnectionUseCase(ctrl)
		if err := uc.ApplyProviderEvent(context.Background(), entities.ConnectionSession{State: entities.ConnectionConnected}); !errors.Is(err, apperrors.ErrAuth) {
			t.Fatalf("expected ErrAuth, got %v", err)
		}
	})
}

func TestConnectionUseCase_Observe(t *testing.T) {
	t.Run("subscribes then snapshots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newConnectionUseCase(ctrl)
		sub := mock_interfaces.NewMockISubscription(ctrl)

		gomock.InOrder(
			d.notifier.EXPECT().Subscribe(gomock.Any(), "ws-1").Return(sub, nil),
			d.sessions.EXPECT().Get(gomock.Any(), "ws-1").Return(session(entities.ConnectionPairing, "abc"), nil),
		)

		s, got, err := uc.Observe(context.Background(), "ws-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != sub || s.PairingCode != "abc" {
			t.Fatalf("unexpected snapshot %+v", s)
		}
	})

	t.Run("closes subscription when snapshot fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newConnectionUseCase(ctrl)
		sub := mock_interfaces.NewMockISubscription(ctrl)

		d.notifier.EXPECT().Subscribe(gomock.Any(), "ws-1").Return(sub, nil)
		d.sessions.EXPECT().Get(gomock.Any(), "ws-1").Return(entities.ConnectionSession{}, errors.New("db"))
		sub.EXPECT().Close().Return(nil)

		if _, _, err := uc.Observe(context.Background(), "ws-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
