package entities

import (
	"time"

	"motomind/internal/domain/apperrors"
)

// NextServiceInterval is added to the service date when no next service date is given.
const NextServiceInterval = 30 * 24 * time.Hour

// ServiceRecord is a single workshop job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (workshop_id-service_date-index): workshop_id + service_date
//
// Lifecycle: a record is created as a draft and becomes immutable once
// finalized. Only delivery metadata (LastDeliveredAt, DeliveryCount) may
// change afterwards.
type ServiceRecord struct {
	ID         string `json:"id"`
	WorkshopID string `json:"workshop_id"`

	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	BikeModel    BikeModel `json:"bike_model"`
	Odometer     int64     `json:"odometer"`

	ServiceDate     time.Time `json:"service_date"`
	NextServiceDate time.Time `json:"next_service_date"`

	Parts    []LineItemSelection `json:"parts"`
	Services []LineItemSelection `json:"services"`

	PartsTotal  int64 `json:"parts_total"`
	LaborTotal  int64 `json:"labor_total"`
	TotalAmount int64 `json:"total_amount"`

	Finalized   bool       `json:"finalized"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	LastDeliveredAt *time.Time `json:"last_delivered_at,omitempty"`
	DeliveryCount   int        `json:"delivery_count"`
}

// Selections returns a copy of the record's billable lines.
func (r ServiceRecord) Selections() Selections {
	return Selections{Parts: r.Parts, Services: r.Services}.Clone()
}

// EnsureDraft fails with ErrInvalidState once the record is finalized.
func (r ServiceRecord) EnsureDraft() error {
	if r.Finalized {
		return apperrors.ErrInvalidState
	}
	return nil
}

// CheckDeliverable returns a NotDeliverableError naming why the bill can't be
// sent, or nil when the record is finalized and the channel is connected.
func (r ServiceRecord) CheckDeliverable(channel ConnectionState) error {
	if !r.Finalized {
		return apperrors.NotDeliverable(apperrors.ReasonNotFinalized, "")
	}
	if channel != ConnectionConnected {
		return apperrors.NotDeliverable(apperrors.ReasonChannelUnavailable, string(channel))
	}
	return nil
}

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultNextServiceDate is serviceDate plus NextServiceInterval.
func DefaultNextServiceDate(serviceDate time.Time) time.Time {
	return DateOnly(serviceDate).Add(NextServiceInterval)
}

// RecordFilter narrows a listing. Dates are inclusive and compared by day.
type RecordFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// Matches reports whether serviceDate falls in the filter's range.
func (f RecordFilter) Matches(serviceDate time.Time) bool {
	d := DateOnly(serviceDate)
	if f.StartDate != nil && d.Before(DateOnly(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && d.After(DateOnly(*f.EndDate)) {
		return false
	}
	return true
}
