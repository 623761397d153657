// Package billing derives record totals from selected line items.
//
// Every amount is an int64 count of whole currency units, the smallest unit
// a workshop bills in. For PKR that is the rupee, so 385 means Rs. 385.
package billing

import (
	"errors"
	"fmt"
	"math"

	"motomind/internal/domain/apperrors"
	"motomind/internal/domain/entities"
)

const (
	// MaxQuantity bounds a single line's quantity.
	MaxQuantity = 10_000
	// MaxCharge bounds a single unit charge, in whole currency units.
	MaxCharge int64 = 1_000_000_000_000
)

var ErrInvalidAmount = errors.New("amount must be a non-negative finite number")

type Totals struct {
	PartsTotal  int64 `json:"parts_total"`
	LaborTotal  int64 `json:"labor_total"`
	TotalAmount int64 `json:"total_amount"`
}

// ComputeTotals sums quantity*charge per section. It has no side effects.
// A negative input or a sum that does not fit in int64 is a validation
// error on "total".
func ComputeTotals(sel entities.Selections) (Totals, error) {
	parts, err := sum(sel.Parts)
	if err != nil {
		return Totals{}, err
	}
	labor, err := sum(sel.Services)
	if err != nil {
		return Totals{}, err
	}
	total, ok := add(parts, labor)
	if !ok {
		return Totals{}, overflow()
	}
	return Totals{PartsTotal: parts, LaborTotal: labor, TotalAmount: total}, nil
}

func sum(lines []entities.LineItemSelection) (int64, error) {
	var total int64
	for _, l := range lines {
		if l.Quantity < 0 || l.Charge < 0 {
			return 0, apperrors.Invalid("total", fmt.Sprintf("item %d has a negative quantity or charge", l.ItemID))
		}
		amount, ok := mul(int64(l.Quantity), l.Charge)
		if !ok {
			return 0, overflow()
		}
		if total, ok = add(total, amount); !ok {
			return 0, overflow()
		}
	}
	return total, nil
}

// mul and add expect non-negative operands.
func mul(a, b int64) (int64, bool) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, false
	}
	return a * b, true
}

func add(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

func overflow() error {
	return apperrors.Invalid("total", "amount is too large")
}

// Apply recomputes the record's totals from its own selections. The record
// is left untouched on error.
func Apply(rec *entities.ServiceRecord) error {
	t, err := ComputeTotals(rec.Selections())
	if err != nil {
		return err
	}
	rec.PartsTotal = t.PartsTotal
	rec.LaborTotal = t.LaborTotal
	rec.TotalAmount = t.TotalAmount
	return nil
}

// WholeUnits converts a user-entered amount to whole currency units,
// rounding half away from zero. Values above MaxCharge are rejected.
func WholeUnits(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidAmount
	}
	r := math.Round(v)
	if r > float64(MaxCharge) {
		return 0, fmt.Errorf("%w: at most %d", ErrInvalidAmount, MaxCharge)
	}
	return int64(r), nil
}
