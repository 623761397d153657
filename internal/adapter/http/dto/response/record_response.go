package response

import (
	"time"

	"motomind/internal/domain/entities"
	"motomind/internal/usecase"
)

const dateLayout = "2006-01-02"

type LineItemResponse struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Charge   int64  `json:"charge"`
	Amount   int64  `json:"amount"`
}

type RecordResponse struct {
	ID              string             `json:"id"`
	CustomerName    string             `json:"customer_name"`
	Phone           string             `json:"phone"`
	BikeModel       string             `json:"bike_model"`
	Odometer        int64              `json:"odometer"`
	ServiceDate     string             `json:"service_date"`
	NextServiceDate string             `json:"next_service_date"`
	Parts           []LineItemResponse `json:"parts"`
	Services        []LineItemResponse `json:"services"`
	PartsTotal      int64              `json:"parts_total"`
	LaborTotal      int64              `json:"labor_total"`
	TotalAmount     int64              `json:"total_amount"`
	Finalized       bool               `json:"finalized"`
	FinalizedAt     *time.Time         `json:"finalized_at,omitempty"`
	LastDeliveredAt *time.Time         `json:"last_delivered_at,omitempty"`
	DeliveryCount   int                `json:"delivery_count"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// RecordPageResponse carries the exact has_next_page flag.
type RecordPageResponse struct {
	Records     []RecordResponse `json:"records"`
	Page        int              `json:"page"`
	PageSize    int              `json:"page_size"`
	HasNextPage *bool            `json:"has_next_page,omitempty"`
}

// DeliverResponse mirrors the send endpoint contract: success, or a
// human-readable error and a machine-readable reason.
type DeliverResponse struct {
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	Reason      string `json:"reason,omitempty"`
	PaymentLink string `json:"payment_link,omitempty"`
}

func FromRecord(r entities.ServiceRecord) RecordResponse {
	return RecordResponse{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		Phone:           r.Phone,
		BikeModel:       string(r.BikeModel),
		Odometer:        r.Odometer,
		ServiceDate:     r.ServiceDate.Format(dateLayout),
		NextServiceDate: r.NextServiceDate.Format(dateLayout),
		Parts:           fromLines(r.Parts),
		Services:        fromLines(r.Services),
		PartsTotal:      r.PartsTotal,
		LaborTotal:      r.LaborTotal,
		TotalAmount:     r.TotalAmount,
		Finalized:       r.Finalized,
		FinalizedAt:     r.FinalizedAt,
		LastDeliveredAt: r.LastDeliveredAt,
		DeliveryCount:   r.DeliveryCount,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func fromLines(lines []entities.LineItemSelection) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineItemResponse{ItemID: l.ItemID, Name: l.Name, Quantity: l.Quantity, Charge: l.Charge, Amount: l.Amount()})
	}
	return out
}

func FromRecordPage(p usecase.RecordPage) RecordPageResponse {
	records := make([]RecordResponse, 0, len(p.Records))
	for _, r := range p.Records {
		records = append(records, FromRecord(r))
	}
	hasNext := p.HasNextPage
	return RecordPageResponse{Records: records, Page: p.Page, PageSize: p.PageSize, HasNextPage: &hasNext}
}
