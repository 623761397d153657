package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"motomind/internal/domain/apperrors"
	"motomind/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func sseServer(t *testing.T, events []string, hold bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":"UNAUTHORIZED","message":"Authentication required"}`))
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		flusher := w.(http.Flusher)
		for _, e := range events {
			_, _ = fmt.Fprint(w, e)
			flusher.Flush()
		}
		if hold {
			<-r.Context().Done()
		}
	}))
}

func next(t *testing.T, sub StatusSubscription) Snapshot {
	t.Helper()
	select {
	case s, ok := <-sub.C():
		require.True(t, ok, "stream closed early: %v", sub.Err())
		return s
	case <-time.After(2 * time.Second):
		t.Fatalf("no snapshot received")
		return Snapshot{}
	}
}

func TestHTTPStatusStream_Snapshots(t *testing.T) {
	srv := sseServer(t, []string{
		"event:status\ndata:{\"state\":\"disconnected\"}\n\n",
		": keep-alive\n\n",
		"event:status\ndata:{\"state\":\"pairing\",\"pairing_code\":\"QR-1\"}\n\n",
		"event:other\ndata:{\"state\":\"connected\"}\n\n",
		"event:status\ndata:{\"state\":\"connected\",\"pairing_code\":\"stale\"}\n\n",
	}, true)
	defer srv.Close()

	stream := NewHTTPStatusStream(srv.URL)
	sub, err := stream.Subscribe(context.Background(), NewStaticIdentity("ws-1", "tok"))
	require.NoError(t, err)

	got := []Snapshot{next(t, sub), next(t, sub), next(t, sub)}
	require.Equal(t, entities.ConnectionDisconnected, got[0].State)
	require.Equal(t, Snapshot{State: entities.ConnectionPairing, PairingCode: "QR-1"}, got[1])
	require.Equal(t, Snapshot{State: entities.ConnectionConnected}, got[2], "code must be dropped outside pairing")

	sub.Close()
	sub.Close()
	_, ok := <-sub.C()
	require.False(t, ok)
	require.NoError(t, sub.Err())
}

func TestHTTPStatusStream_EndOfStreamIsNetworkError(t *testing.T) {
	srv := sseServer(t, []string{"event:status\ndata:{\"state\":\"connected\"}\n\n"}, false)
	defer srv.Close()

	sub, err := NewHTTPStatusStream(srv.URL).Subscribe(context.Background(), NewStaticIdentity("ws-1", "tok"))
	require.NoError(t, err)
	defer sub.Close()

	require.Equal(t, entities.ConnectionConnected, next(t, sub).State)
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-sub.C():
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 5*time.Millisecond)
	require.ErrorIs(t, sub.Err(), apperrors.ErrNetwork)
}

func TestHTTPStatusStream_Unauthorized(t *testing.T) {
	srv := sseServer(t, nil, false)
	defer srv.Close()

	_, err := NewHTTPStatusStream(srv.URL).Subscribe(context.Background(), NewStaticIdentity("ws-1", "wrong"))
	require.ErrorIs(t, err, apperrors.ErrAuth)
}
