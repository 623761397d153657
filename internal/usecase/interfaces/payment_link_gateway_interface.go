package interfaces

import "context"

// PaymentLinkRequest describes the amount a customer owes for a record.
type PaymentLinkRequest struct {
	RecordID    string
	Description string
	Amount      int64 // whole currency units
}

// IPaymentLinkGateway abstracts checkout-link providers (e.g. Mercado Pago).
type IPaymentLinkGateway interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (url string, err error)
}
