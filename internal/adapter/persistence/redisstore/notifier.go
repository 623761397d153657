package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"motomind/internal/domain/entities"
	"motomind/internal/infrastructure/metrics"
	"motomind/internal/infrastructure/notifier"
	"motomind/internal/usecase/interfaces"
	"motomind/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const subscriberBuffer = 16

// Notifier publishes snapshots on a per-workshop channel. Every API
// instance subscribed to that workshop receives them. A slow subscriber
// loses its oldest buffered snapshots, never the latest one.
type Notifier struct {
	client *redis.Client
}

var _ interfaces.IStatusNotifier = (*Notifier)(nil)

func NewNotifier(client *redis.Client) *Notifier {
	return &Notifier{client: client}
}

func (n *Notifier) Publish(ctx context.Context, s entities.ConnectionSession) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := n.client.Publish(ctx, statusChannel(s.WorkshopID), raw).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}
	return nil
}

// Subscribe returns once Redis has confirmed the subscription, so a
// snapshot published afterwards is never missed.
func (n *Notifier) Subscribe(ctx context.Context, workshopID string) (interfaces.ISubscription, error) {
	ps := n.client.Subscribe(ctx, statusChannel(workshopID))
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	sub := &redisSub{
		ps:   ps,
		out:  make(chan entities.ConnectionSession, subscriberBuffer),
		done: make(chan struct{}),
	}
	metrics.StatusSubscribers.Inc()
	go sub.pump(workshopID)
	return sub, nil
}

type redisSub struct {
	ps   *redis.PubSub
	out  chan entities.ConnectionSession
	done chan struct{}
	once sync.Once
}

func (s *redisSub) pump(workshopID string) {
	defer close(s.done)
	defer close(s.out)

	log := logger.WithComponent("notifier.redis")
	for msg := range s.ps.Channel() {
		var snap entities.ConnectionSession
		if err := json.Unmarshal([]byte(msg.Payload), &snap); err != nil {
			log.Warn().Err(err).Str("workshop_id", workshopID).Msg("discarding malformed snapshot")
			continue
		}
		if evicted := notifier.Offer(s.out, snap); evicted > 0 {
			log.Warn().Str("workshop_id", workshopID).Int("evicted", evicted).Msg("subscriber buffer full, oldest snapshot dropped")
		}
	}
}

func (s *redisSub) C() <-chan entities.ConnectionSession {
	return s.out
}

func (s *redisSub) Close() error {
	var err error
	s.once.Do(func() {
		err = s.ps.Close()
		<-s.done
		metrics.StatusSubscribers.Dec()
	})
	return err
}
