package notifier

import (
	"context"
	"fmt"
	"testing"
	"time"

	"motomind/internal/domain/entities"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMemoryNotifier_PublishReachesWorkshopOnly(t *testing.T) {
	n := NewMemoryNotifier()
	ctx := context.Background()

	a, err := n.Subscribe(ctx, "ws-1")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer a.Close()
	b, _ := n.Subscribe(ctx, "ws-2")
	defer b.Close()

	if err := n.Publish(ctx, entities.ConnectionSession{WorkshopID: "ws-1", State: entities.ConnectionPairing, PairingCode: "abc"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case s := <-a.C():
		if s.State != entities.ConnectionPairing || s.PairingCode != "abc" {
			t.Fatalf("unexpected snapshot %+v", s)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for snapshot")
	}
	select {
	case s := <-b.C():
		t.Fatalf("other workshop must not receive %+v", s)
	default:
	}
}

func TestMemoryNotifier_CloseIsIdempotentAndClosesChannel(t *testing.T) {
	n := NewMemoryNotifier()
	sub, _ := n.Subscribe(context.Background(), "ws-1")
	if n.Subscribers("ws-1") != 1 {
		t.Fatalf("expected one subscriber")
	}

	_ = sub.Close()
	_ = sub.Close()

	if _, ok := <-sub.C(); ok {
		t.Fatalf("channel must be closed")
	}
	if n.Subscribers("ws-1") != 0 {
		t.Fatalf("subscriber must be removed")
	}
	if err := n.Publish(context.Background(), entities.ConnectionSession{WorkshopID: "ws-1"}); err != nil {
		t.Fatalf("publish after close: %v", err)
	}
}

func TestMemoryNotifier_SlowSubscriberDoesNotBlock(t *testing.T) {
	n := NewMemoryNotifier()
	sub, _ := n.Subscribe(context.Background(), "ws-1")
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer*2; i++ {
			_ = n.Publish(context.Background(), entities.ConnectionSession{WorkshopID: "ws-1", State: entities.ConnectionConnected})
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked on a slow subscriber")
	}
	if got := len(sub.C()); got != subscriberBuffer {
		t.Fatalf("expected full buffer of %d, got %d", subscriberBuffer, got)
	}
}

func TestMemoryNotifier_FullBufferKeepsLatestState(t *testing.T) {
	n := NewMemoryNotifier()
	ctx := context.Background()
	sub, _ := n.Subscribe(ctx, "ws-1")
	defer sub.Close()

	const pairing = subscriberBuffer + 4
	for i := 0; i < pairing; i++ {
		_ = n.Publish(ctx, entities.ConnectionSession{WorkshopID: "ws-1", State: entities.ConnectionPairing, PairingCode: fmt.Sprintf("code-%d", i)})
	}
	_ = n.Publish(ctx, entities.ConnectionSession{WorkshopID: "ws-1", State: entities.ConnectionConnected})

	if got := len(sub.C()); got != subscriberBuffer {
		t.Fatalf("expected full buffer of %d, got %d", subscriberBuffer, got)
	}
	var got []entities.ConnectionSession
	for len(sub.C()) > 0 {
		got = append(got, <-sub.C())
	}
	if first := got[0].PairingCode; first != fmt.Sprintf("code-%d", pairing+1-subscriberBuffer) {
		t.Fatalf("expected oldest snapshots to be evicted, first kept is %q", first)
	}
	if last := got[len(got)-1]; last.State != entities.ConnectionConnected {
		t.Fatalf("latest state must be delivered, got %+v", last)
	}
}

func TestOffer(t *testing.T) {
	ch := make(chan int, 2)
	if evicted := Offer(ch, 1); evicted != 0 {
		t.Fatalf("expected no eviction, got %d", evicted)
	}
	Offer(ch, 2)
	if evicted := Offer(ch, 3); evicted != 1 {
		t.Fatalf("expected one eviction, got %d", evicted)
	}
	if a, b := <-ch, <-ch; a != 2 || b != 3 {
		t.Fatalf("expected [2 3], got [%d %d]", a, b)
	}
}
