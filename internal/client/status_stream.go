package client

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	response "motomind/internal/adapter/http/dto/response"
	"motomind/internal/domain/apperrors"
	"motomind/internal/domain/entities"
	"motomind/pkg/logger"
)

const (
	streamComponent = "client.status"
	statusEventName = "status"
	streamBuffer    = 16
)

// Snapshot is one pushed channel state.
type Snapshot struct {
	State       entities.ConnectionState
	PairingCode string
}

func snapshotFrom(r response.ConnectionResponse) Snapshot {
	s := entities.ConnectionSession{State: entities.ConnectionState(r.State), PairingCode: r.PairingCode}.Normalize()
	return Snapshot{State: s.State, PairingCode: s.PairingCode}
}

// StatusSubscription delivers snapshots until Close or a stream failure.
// C is closed afterwards and Err reports why, nil after Close.
type StatusSubscription interface {
	C() <-chan Snapshot
	Err() error
	Close()
}

// StatusStream is the connection-status notifier: a push subscription keyed
// by identity plus fire-and-forget pairing commands.
type StatusStream interface {
	Subscribe(ctx context.Context, id Identity) (StatusSubscription, error)
	Connect(ctx context.Context, id Identity) error
	CancelPairing(ctx context.Context, id Identity) error
}

// HTTPStatusStream reads /v1/connection/events as Server-Sent Events.
type HTTPStatusStream struct {
	BaseURL string
	// HTTP must not carry a client timeout, streams are long-lived.
	HTTP     *http.Client
	Commands *http.Client
}

var _ StatusStream = (*HTTPStatusStream)(nil)

func NewHTTPStatusStream(baseURL string) *HTTPStatusStream {
	return &HTTPStatusStream{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		HTTP:     &http.Client{},
		Commands: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

func (s *HTTPStatusStream) Connect(ctx context.Context, id Identity) error {
	return doJSON(ctx, s.Commands, s.BaseURL, id, http.MethodPost, "/v1/connection/connect", nil, nil, nil)
}

func (s *HTTPStatusStream) CancelPairing(ctx context.Context, id Identity) error {
	return doJSON(ctx, s.Commands, s.BaseURL, id, http.MethodPost, "/v1/connection/cancel", nil, nil, nil)
}

// Subscribe opens the stream. The first snapshot is the current state.
func (s *HTTPStatusStream) Subscribe(ctx context.Context, id Identity) (StatusSubscription, error) {
	tok, err := bearer(ctx, id)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(s.BaseURL + "/v1/connection/events")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	streamCtx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, u.String(), nil)
	if err != nil {
		cancel()
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Accept", "text/event-stream")

	// ctx bounds the handshake only.
	stop := context.AfterFunc(ctx, cancel)
	resp, err := s.HTTP.Do(req)
	stop()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: open status stream: %v", apperrors.ErrNetwork, err)
	}
	if resp.StatusCode != http.StatusOK {
		defer cancel()
		defer resp.Body.Close()
		var envelope json.RawMessage
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return nil, statusError(resp.StatusCode, envelope)
	}

	sub := &sseSubscription{
		ch:     make(chan Snapshot, streamBuffer),
		done:   make(chan struct{}),
		cancel: cancel,
		body:   resp.Body,
	}
	go sub.read(streamCtx, id.ID())
	return sub, nil
}

type sseSubscription struct {
	ch     chan Snapshot
	done   chan struct{}
	cancel context.CancelFunc
	body   io.ReadCloser

	mu     sync.Mutex
	err    error
	once   sync.Once
	closed bool
}

func (s *sseSubscription) C() <-chan Snapshot { return s.ch }

func (s *sseSubscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *sseSubscription) Close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		s.cancel()
		_ = s.body.Close()
		<-s.done
	})
}

func (s *sseSubscription) read(ctx context.Context, workshopID string) {
	defer close(s.done)
	defer close(s.ch)

	log := logger.WithComponent(streamComponent).With().Str("workshop_id", workshopID).Logger()

	var (
		event string
		data  strings.Builder
	)
	sc := bufio.NewScanner(s.body)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == "":
			if (event == "" || event == statusEventName) && data.Len() > 0 {
				var r response.ConnectionResponse
				if err := json.Unmarshal([]byte(data.String()), &r); err != nil {
					log.Warn().Err(err).Msg("skipping malformed status event")
				} else {
					s.deliver(ctx, snapshotFrom(r))
				}
			}
			event = ""
			data.Reset()
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	err := sc.Err()
	if err == nil {
		err = errors.New("stream ended")
	}
	s.err = fmt.Errorf("%w: status stream: %v", apperrors.ErrNetwork, err)
	log.Warn().Err(s.err).Msg("status stream lost")
}

// deliver drops the oldest buffered snapshot when the reader falls behind.
func (s *sseSubscription) deliver(ctx context.Context, snap Snapshot) {
	for {
		select {
		case s.ch <- snap:
			return
		case <-ctx.Done():
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}
