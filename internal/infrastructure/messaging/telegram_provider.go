package messaging

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"motomind/internal/domain/entities"
	"motomind/internal/usecase/interfaces"
	"motomind/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// botAPI is the subset of *tgbotapi.BotAPI the provider uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// TelegramProvider pairs a workshop with a Telegram chat. The pairing code
// is a deep link; opening it sends "/start <code>" to the bot, which binds
// the chat to the workshop. Bills are posted to that chat.
type TelegramProvider struct {
	statusHub

	bot     botAPI
	botName string
	limiter *rate.Limiter

	mu      sync.Mutex
	pending map[string]string // code -> workshop
	codes   map[string]string // workshop -> code
	chats   map[string]int64  // workshop -> chat
	wg      sync.WaitGroup
}

var _ interfaces.IMessagingProvider = (*TelegramProvider)(nil)

// NewTelegramBot authenticates the token against the Bot API.
func NewTelegramBot(token string) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth failed: %w", err)
	}
	log := logger.WithComponent("messaging.telegram")
	log.Info().Str("bot", bot.Self.UserName).Msg("authorized")
	return bot, nil
}

// NewTelegramProvider limits outgoing bills to perSecond messages, with a
// burst of one.
func NewTelegramProvider(bot botAPI, botName string, perSecond float64) *TelegramProvider {
	return &TelegramProvider{
		statusHub: statusHub{log: "messaging.telegram"},
		bot:       bot,
		botName:   strings.TrimPrefix(botName, "@"),
		limiter:   rate.NewLimiter(rate.Limit(perSecond), 1),
		pending:   make(map[string]string),
		codes:     make(map[string]string),
		chats:     make(map[string]int64),
	}
}

func (p *TelegramProvider) deepLink(code string) string {
	if p.botName == "" {
		return "/start " + code
	}
	return fmt.Sprintf("https://t.me/%s?start=%s", p.botName, code)
}

func (p *TelegramProvider) StartPairing(_ context.Context, workshopID string) error {
	code := newPairingCode()

	p.mu.Lock()
	if old, ok := p.codes[workshopID]; ok {
		delete(p.pending, old)
	}
	p.pending[code] = workshopID
	p.codes[workshopID] = code
	p.mu.Unlock()

	link := p.deepLink(code)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.emit(entities.ConnectionSession{WorkshopID: workshopID, State: entities.ConnectionPairing, PairingCode: link})
	}()
	return nil
}

func (p *TelegramProvider) CancelPairing(_ context.Context, workshopID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if code, ok := p.codes[workshopID]; ok {
		delete(p.pending, code)
		delete(p.codes, workshopID)
	}
	return nil
}

func (p *TelegramProvider) SendBill(ctx context.Context, msg interfaces.BillMessage) error {
	p.mu.Lock()
	chatID, ok := p.chats[msg.WorkshopID]
	p.mu.Unlock()
	if !ok {
		return interfaces.ErrProviderNotReady
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := p.bot.Send(tgbotapi.NewMessage(chatID, msg.Text)); err != nil {
		var apiErr *tgbotapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusForbidden {
			p.forget(msg.WorkshopID, chatID)
			return fmt.Errorf("%w: %s", interfaces.ErrProviderNotReady, apiErr.Message)
		}
		return fmt.Errorf("telegram send: %w", err)
	}
	log := logger.WithComponent("messaging.telegram")
	log.Info().
		Str("workshop_id", msg.WorkshopID).
		Str("record_id", msg.RecordID).
		Msg("bill sent")
	return nil
}

// forget unbinds a chat that blocked the bot and reports the workshop as
// disconnected.
func (p *TelegramProvider) forget(workshopID string, chatID int64) {
	p.mu.Lock()
	if p.chats[workshopID] != chatID {
		p.mu.Unlock()
		return
	}
	delete(p.chats, workshopID)
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.emit(entities.DisconnectedSession(workshopID))
	}()
}

// Run consumes bot updates until ctx is done.
func (p *TelegramProvider) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := p.bot.GetUpdatesChan(u)
	defer p.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			p.bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			p.handleUpdate(update)
		}
	}
}

func (p *TelegramProvider) handleUpdate(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return
	}
	chatID := msg.Chat.ID
	log := logger.WithComponent("messaging.telegram")

	switch msg.Command() {
	case "start":
		code := strings.ToUpper(strings.TrimSpace(msg.CommandArguments()))
		p.mu.Lock()
		workshopID, ok := p.pending[code]
		if ok {
			delete(p.pending, code)
			delete(p.codes, workshopID)
			p.chats[workshopID] = chatID
		}
		p.mu.Unlock()

		if !ok {
			p.reply(chatID, "This pairing code is not valid. Request a new one from the dashboard.")
			return
		}
		log.Info().Str("workshop_id", workshopID).Int64("chat_id", chatID).Msg("chat paired")
		p.reply(chatID, "Connected. Service bills will be delivered to this chat.")
		p.emit(entities.ConnectionSession{WorkshopID: workshopID, State: entities.ConnectionConnected})

	case "stop":
		var unbound []string
		p.mu.Lock()
		for ws, id := range p.chats {
			if id == chatID {
				delete(p.chats, ws)
				unbound = append(unbound, ws)
			}
		}
		p.mu.Unlock()

		for _, ws := range unbound {
			log.Info().Str("workshop_id", ws).Int64("chat_id", chatID).Msg("chat unpaired")
			p.emit(entities.DisconnectedSession(ws))
		}
		p.reply(chatID, "Disconnected.")
	}
}

func (p *TelegramProvider) reply(chatID int64, text string) {
	if _, err := p.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log := logger.WithComponent("messaging.telegram")
		log.Warn().Err(err).Int64("chat_id", chatID).Msg("reply failed")
	}
}
