// Package messaging holds the IMessagingProvider implementations: a local
// mock that pairs itself after a delay and a Telegram bot.
package messaging

import (
	"context"
	"strings"
	"sync"
	"time"

	"motomind/internal/domain/entities"
	"motomind/internal/usecase/interfaces"
	"motomind/pkg/logger"

	"github.com/google/uuid"
)

const handlerTimeout = 5 * time.Second

// statusHub stores the registered handlers and dispatches to them.
type statusHub struct {
	mu       sync.RWMutex
	handlers []interfaces.StatusHandler
	log      string
}

func (h *statusHub) OnStatus(fn interfaces.StatusHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers = append(h.handlers, fn)
}

// emit must be called from a provider goroutine.
func (h *statusHub) emit(s entities.ConnectionSession) {
	h.mu.RLock()
	handlers := append([]interfaces.StatusHandler(nil), h.handlers...)
	h.mu.RUnlock()

	s.UpdatedAt = time.Now().UTC()
	for _, fn := range handlers {
		ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		if err := fn(ctx, s); err != nil {
			log := logger.WithComponent(h.log)
			log.Error().Err(err).
				Str("workshop_id", s.WorkshopID).
				Str("state", string(s.State)).
				Msg("status handler failed")
		}
		cancel()
	}
}

func newPairingCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
