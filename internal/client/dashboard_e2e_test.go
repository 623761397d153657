package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	request "motomind/internal/adapter/http/dto/request"
	"motomind/internal/adapter/http/middleware"
	"motomind/internal/adapter/http/routes"
	"motomind/internal/adapter/persistence/repository"
	"motomind/internal/domain/apperrors"
	"motomind/internal/domain/catalog"
	"motomind/internal/infrastructure/messaging"
	"motomind/internal/infrastructure/notifier"
	"motomind/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	url      string
	token    string
	provider *messaging.MockProvider
	notifier *notifier.MemoryNotifier
}

func startAPI(t *testing.T) testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	repo, err := repository.NewRecordSQLiteRepository(ctx, filepath.Join(t.TempDir(), "motomind.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	sessions := repository.NewSessionMemoryRepository()
	provider := messaging.NewMockProvider(200 * time.Millisecond)
	t.Cleanup(provider.Close)

	notify := notifier.NewMemoryNotifier()
	auth := middleware.NewJWTManager("e2e-secret", 0)
	router := routes.NewRouter(routes.Dependencies{
		Records:    usecase.NewRecordUseCase(repo, sessions, provider, nil, catalog.Default(), 10),
		Connection: usecase.NewConnectionUseCase(sessions, notify, provider),
		Catalog:    catalog.Default(),
		Auth:       auth,
		Heartbeat:  50 * time.Millisecond,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	token, err := auth.Generate("ws-e2e")
	require.NoError(t, err)
	return testAPI{url: srv.URL, token: token, provider: provider, notifier: notify}
}

func charge(v float64) *float64 { return &v }

func TestDashboard_EndToEnd(t *testing.T) {
	api := startAPI(t)
	ctx := context.Background()

	ids := NewStaticIdentityProvider(NewStaticIdentity("ws-e2e", api.token))
	store := NewHTTPRecordStore(api.url)
	d := NewDashboard(store, NewHTTPStatusStream(api.url), ids, alwaysConfirm, 10)

	var (
		mu         sync.Mutex
		sawPrompt  bool
		promptSeen = make(chan struct{})
	)
	d.OnChange(func(v View) {
		mu.Lock()
		defer mu.Unlock()
		if v.Channel.ShowPairingPrompt() && !sawPrompt {
			sawPrompt = true
			close(promptSeen)
		}
	})
	d.Start()
	t.Cleanup(d.Close)

	id, err := d.Create(ctx, RecordFields{
		CustomerName: "Ali Raza",
		Phone:        "+92 300 1234567",
		BikeModel:    "CD70",
		Odometer:     12500,
		Parts:        []request.SelectionRequest{{ItemID: 5, Quantity: 1, Charge: charge(385)}},
		Services:     []request.SelectionRequest{{ItemID: 3, Quantity: 1, Charge: charge(500)}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	v := d.View()
	require.Len(t, v.Records, 1)
	rec := v.Records[0]
	require.Equal(t, int64(385), rec.PartsTotal)
	require.Equal(t, int64(500), rec.LaborTotal)
	require.Equal(t, int64(885), rec.TotalAmount)
	require.False(t, rec.Finalized)
	require.False(t, v.HasNextPage)

	_, err = d.Deliver(ctx, id)
	reason, _ := apperrors.DeliveryReason(err)
	require.Equal(t, apperrors.ReasonNotFinalized, reason)

	require.NoError(t, d.Finalize(ctx, id))
	require.True(t, d.View().Records[0].Finalized)
	require.Equal(t, int64(885), d.View().Records[0].TotalAmount)

	// The server refuses edits even when the client's view is bypassed.
	err = store.Update(ctx, ids.CurrentIdentity(), id, RecordFields{CustomerName: "Changed", Phone: "+92 300 1234567", BikeModel: "CD70"})
	require.ErrorIs(t, err, apperrors.ErrInvalidState)

	_, err = d.Deliver(ctx, id)
	reason, _ = apperrors.DeliveryReason(err)
	require.Equal(t, apperrors.ReasonChannelUnavailable, reason)

	require.Eventually(t, func() bool { return api.notifier.Subscribers("ws-e2e") == 1 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, d.Connect(ctx))
	select {
	case <-promptSeen:
	case <-time.After(3 * time.Second):
		t.Fatalf("pairing prompt never shown")
	}
	require.Eventually(t, func() bool {
		ch := d.View().Channel
		return ch.CanDeliver() && !ch.ShowPairingPrompt()
	}, 3*time.Second, 10*time.Millisecond)

	res, err := d.Deliver(ctx, id)
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Len(t, api.provider.Sent(), 1)
	require.Equal(t, id, api.provider.Sent()[0].RecordID)

	require.NoError(t, ids.SignOut(ctx))
	require.Empty(t, d.View().Records)
}
