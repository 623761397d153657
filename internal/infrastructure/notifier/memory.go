// Package notifier fans connection-status snapshots out to in-process
// subscribers.
package notifier

import (
	"context"
	"sync"

	"motomind/internal/domain/entities"
	"motomind/internal/infrastructure/metrics"
	"motomind/internal/usecase/interfaces"
	"motomind/pkg/logger"
)

const subscriberBuffer = 16

// MemoryNotifier is a single-process IStatusNotifier. Publishing never
// blocks. When a subscriber's buffer is full its oldest snapshot is evicted,
// so the most recent state is always delivered.
type MemoryNotifier struct {
	mu   sync.RWMutex
	subs map[string][]chan entities.ConnectionSession
}

var _ interfaces.IStatusNotifier = (*MemoryNotifier)(nil)

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{subs: make(map[string][]chan entities.ConnectionSession)}
}

// Publish serializes publishers on the write lock.
func (n *MemoryNotifier) Publish(_ context.Context, s entities.ConnectionSession) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs[s.WorkshopID] {
		if evicted := Offer(ch, s); evicted > 0 {
			log := logger.WithComponent("notifier.memory")
			log.Warn().Str("workshop_id", s.WorkshopID).Int("evicted", evicted).Msg("subscriber buffer full, oldest snapshot dropped")
		}
	}
	return nil
}

// Offer sends v on ch without blocking. While ch is full the oldest value
// is discarded. It returns how many values were discarded. The caller must
// be the only sender on ch.
func Offer[T any](ch chan T, v T) (evicted int) {
	for {
		select {
		case ch <- v:
			return evicted
		default:
		}
		select {
		case <-ch:
			evicted++
			metrics.StatusDropsTotal.Inc()
		default:
		}
	}
}

func (n *MemoryNotifier) Subscribe(_ context.Context, workshopID string) (interfaces.ISubscription, error) {
	ch := make(chan entities.ConnectionSession, subscriberBuffer)

	n.mu.Lock()
	n.subs[workshopID] = append(n.subs[workshopID], ch)
	n.mu.Unlock()
	metrics.StatusSubscribers.Inc()

	return &memSub{n: n, workshopID: workshopID, ch: ch}, nil
}

// Subscribers reports the number of open subscriptions for a workshop.
func (n *MemoryNotifier) Subscribers(workshopID string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs[workshopID])
}

type memSub struct {
	n          *MemoryNotifier
	workshopID string
	ch         chan entities.ConnectionSession
	once       sync.Once
}

func (s *memSub) C() <-chan entities.ConnectionSession {
	return s.ch
}

func (s *memSub) Close() error {
	s.once.Do(func() {
		s.n.mu.Lock()
		defer s.n.mu.Unlock()

		lst := s.n.subs[s.workshopID]
		out := lst[:0]
		for _, ch := range lst {
			if ch != s.ch {
				out = append(out, ch)
			}
		}
		if len(out) == 0 {
			delete(s.n.subs, s.workshopID)
		} else {
			s.n.subs[s.workshopID] = out
		}
		close(s.ch)
		metrics.StatusSubscribers.Dec()
	})
	return nil
}
