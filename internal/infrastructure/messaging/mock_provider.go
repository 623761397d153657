package messaging

import (
	"context"
	"sync"
	"time"

	"motomind/internal/domain/entities"
	"motomind/internal/usecase/interfaces"
	"motomind/pkg/logger"
)

// MockProvider simulates a device scanning the pairing code: it reports
// pairing at once and connected after Delay. Sent bills are kept in memory.
type MockProvider struct {
	statusHub

	delay time.Duration

	mu        sync.Mutex
	pending   map[string]chan struct{}
	connected map[string]bool
	sent      []interfaces.BillMessage
	wg        sync.WaitGroup
}

var _ interfaces.IMessagingProvider = (*MockProvider)(nil)

func NewMockProvider(delay time.Duration) *MockProvider {
	return &MockProvider{
		statusHub: statusHub{log: "messaging.mock"},
		delay:     delay,
		pending:   make(map[string]chan struct{}),
		connected: make(map[string]bool),
	}
}

func (p *MockProvider) StartPairing(_ context.Context, workshopID string) error {
	p.mu.Lock()
	if stop, ok := p.pending[workshopID]; ok {
		close(stop)
	}
	stop := make(chan struct{})
	p.pending[workshopID] = stop
	p.mu.Unlock()

	code := "MOCK-" + newPairingCode()
	log := logger.WithComponent("messaging.mock")
	log.Info().Str("workshop_id", workshopID).Str("code", code).Msg("pairing started")

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.emit(entities.ConnectionSession{WorkshopID: workshopID, State: entities.ConnectionPairing, PairingCode: code})

		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-stop:
			return
		case <-timer.C:
		}

		p.mu.Lock()
		if p.pending[workshopID] != stop {
			p.mu.Unlock()
			return
		}
		delete(p.pending, workshopID)
		p.connected[workshopID] = true
		p.mu.Unlock()

		p.emit(entities.ConnectionSession{WorkshopID: workshopID, State: entities.ConnectionConnected})
	}()
	return nil
}

func (p *MockProvider) CancelPairing(_ context.Context, workshopID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if stop, ok := p.pending[workshopID]; ok {
		close(stop)
		delete(p.pending, workshopID)
	}
	return nil
}

func (p *MockProvider) SendBill(_ context.Context, msg interfaces.BillMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.connected[msg.WorkshopID] {
		return interfaces.ErrProviderNotReady
	}
	p.sent = append(p.sent, msg)
	log := logger.WithComponent("messaging.mock")
	log.Info().
		Str("workshop_id", msg.WorkshopID).
		Str("record_id", msg.RecordID).
		Str("phone", msg.Phone).
		Msg("bill sent")
	return nil
}

// Sent returns a copy of every bill accepted so far.
func (p *MockProvider) Sent() []interfaces.BillMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]interfaces.BillMessage(nil), p.sent...)
}

// Close aborts pending pairings and waits for their goroutines.
func (p *MockProvider) Close() {
	p.mu.Lock()
	for id, stop := range p.pending {
		close(stop)
		delete(p.pending, id)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
