package request

import (
	"strings"
	"time"

	"motomind/internal/domain/apperrors"
	"motomind/internal/domain/billing"
	"motomind/internal/usecase"
)

// DateLayout is the wire format of service dates.
const DateLayout = "2006-01-02"

// SelectionRequest picks a catalog item. Charge is per unit; when omitted
// the catalog's suggested price applies.
type SelectionRequest struct {
	ItemID   int      `json:"item_id" binding:"required"`
	Quantity int      `json:"quantity"`
	Charge   *float64 `json:"charge"`
}

// RecordRequest is the body of create and update calls. service_date is
// ignored on update.
type RecordRequest struct {
	CustomerName    string             `json:"customer_name"`
	Phone           string             `json:"phone"`
	BikeModel       string             `json:"bike_model"`
	Odometer        int64              `json:"odometer"`
	ServiceDate     string             `json:"service_date"`
	NextServiceDate string             `json:"next_service_date"`
	Parts           []SelectionRequest `json:"parts"`
	Services        []SelectionRequest `json:"services"`
}

func (r RecordRequest) ToInput() (usecase.RecordInput, error) {
	in := usecase.RecordInput{
		CustomerName: strings.TrimSpace(r.CustomerName),
		Phone:        strings.TrimSpace(r.Phone),
		BikeModel:    strings.TrimSpace(r.BikeModel),
		Odometer:     r.Odometer,
	}

	var err error
	if in.ServiceDate, err = ParseDate("service_date", r.ServiceDate); err != nil {
		return usecase.RecordInput{}, err
	}
	if in.NextServiceDate, err = ParseDate("next_service_date", r.NextServiceDate); err != nil {
		return usecase.RecordInput{}, err
	}
	if in.Parts, err = toSelections("parts", r.Parts); err != nil {
		return usecase.RecordInput{}, err
	}
	if in.Services, err = toSelections("services", r.Services); err != nil {
		return usecase.RecordInput{}, err
	}
	return in, nil
}

func toSelections(field string, items []SelectionRequest) ([]usecase.SelectionInput, error) {
	out := make([]usecase.SelectionInput, 0, len(items))
	for _, it := range items {
		sel := usecase.SelectionInput{ItemID: it.ItemID, Quantity: it.Quantity}
		if it.Charge != nil {
			v, err := billing.WholeUnits(*it.Charge)
			if err != nil {
				return nil, apperrors.Invalid(field, err.Error())
			}
			sel.Charge = &v
		}
		out = append(out, sel)
	}
	return out, nil
}

// ParseDate returns nil for an empty value.
func ParseDate(field, v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return nil, apperrors.Invalid(field, "must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}
