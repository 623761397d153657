package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appconfig "motomind/internal/config"
	"motomind/internal/usecase/interfaces"
	"motomind/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const mockCheckoutURL = "https://mock.mercadopago.local/checkout/"

// preferenceCreator is the part of preference.Client the gateway calls.
type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPagoGateway creates a checkout preference per bill and returns
// its init point as the payment link.
type MercadoPagoGateway struct {
	client     preferenceCreator
	currencyID string
	mockMode   bool
}

var _ interfaces.IPaymentLinkGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig) (*MercadoPagoGateway, error) {
	log := logger.WithComponent("payments.gateway")
	if cfg.Mock {
		log.Info().Msg("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, currencyID: cfg.CurrencyID}, nil
	}

	if cfg.MercadoPagoAccessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Error().Err(err).Msg("failed creating sdk config")
		return nil, err
	}
	log.Info().Str("currency", cfg.CurrencyID).Msg("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(sdkCfg), currencyID: cfg.CurrencyID}, nil
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, req interfaces.PaymentLinkRequest) (string, error) {
	log := logger.WithComponent("payments.gateway").With().Str("record_id", req.RecordID).Int64("amount", req.Amount).Logger()

	if req.Amount <= 0 {
		return "", fmt.Errorf("payment link for %s: amount must be positive", req.RecordID)
	}
	if g != nil && g.mockMode {
		url := mockCheckoutURL + strings.TrimSpace(req.RecordID)
		log.Debug().Str("url", url).Msg("mock payment link created")
		return url, nil
	}
	if g == nil || g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.client.Create(ctx, preference.Request{
		ExternalReference: req.RecordID,
		Items: []preference.ItemRequest{{
			ID:         req.RecordID,
			Title:      req.Description,
			Quantity:   1,
			// Amount is in whole currency units, the unit Mercado Pago prices in.
			UnitPrice:  float64(req.Amount),
			CurrencyID: g.currencyID,
		}},
	})
	if err != nil {
		log.Error().Err(err).Msg("sdk create preference failed")
		return "", err
	}
	if resp == nil || resp.InitPoint == "" {
		return "", fmt.Errorf("payment link for %s: empty init point", req.RecordID)
	}
	log.Info().Str("preference_id", resp.ID).Msg("payment link created")
	return resp.InitPoint, nil
}
