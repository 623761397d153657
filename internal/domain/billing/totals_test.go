package billing

import (
	"math"
	"testing"

	"motomind/internal/domain/apperrors"
	"motomind/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func line(id, qty int, charge int64) entities.LineItemSelection {
	return entities.LineItemSelection{ItemID: id, Quantity: qty, Charge: charge}
}

func mustTotals(t *testing.T, sel entities.Selections) Totals {
	t.Helper()
	got, err := ComputeTotals(sel)
	require.NoError(t, err)
	return got
}

func TestComputeTotals_SparkPlugAndOilChange(t *testing.T) {
	got := mustTotals(t, entities.Selections{
		Parts:    []entities.LineItemSelection{line(5, 1, 385)},
		Services: []entities.LineItemSelection{line(3, 1, 500)},
	})
	require.Equal(t, Totals{PartsTotal: 385, LaborTotal: 500, TotalAmount: 885}, got)
}

func TestComputeTotals_QuantityAndZeroCharge(t *testing.T) {
	got := mustTotals(t, entities.Selections{
		Parts:    []entities.LineItemSelection{line(1, 2, 1500), line(11, 3, 160)},
		Services: []entities.LineItemSelection{line(4, 1, 0)},
	})
	require.Equal(t, Totals{PartsTotal: 3480, LaborTotal: 0, TotalAmount: 3480}, got)
	require.Equal(t, Totals{}, mustTotals(t, entities.Selections{}))
}

func TestComputeTotals_AdditiveAndMonotonic(t *testing.T) {
	pool := []entities.LineItemSelection{line(1, 1, 1500), line(2, 2, 905), line(3, 1, 0), line(4, 5, 1270)}

	var sel entities.Selections
	prev := mustTotals(t, sel).TotalAmount
	for i, l := range pool {
		if i%2 == 0 {
			sel.Parts = append(sel.Parts, l)
		} else {
			sel.Services = append(sel.Services, l)
		}
		cur := mustTotals(t, sel)
		require.GreaterOrEqual(t, cur.TotalAmount, prev, "adding a line must not decrease the total")
		require.Equal(t, prev+l.Amount(), cur.TotalAmount)
		require.Equal(t, cur.PartsTotal+cur.LaborTotal, cur.TotalAmount)
		prev = cur.TotalAmount
	}

	for len(sel.Parts) > 0 {
		sel.Parts = sel.Parts[:len(sel.Parts)-1]
		cur := mustTotals(t, sel).TotalAmount
		require.LessOrEqual(t, cur, prev, "removing a line must not increase the total")
		prev = cur
	}
}

func TestComputeTotals_OutOfRange(t *testing.T) {
	cases := map[string]entities.Selections{
		"line product overflows": {Parts: []entities.LineItemSelection{line(5, 2, 5_000_000_000_000_000_000)}},
		"section sum overflows": {Parts: []entities.LineItemSelection{
			line(1, 1, math.MaxInt64), line(2, 1, 1),
		}},
		"parts plus labor overflows": {
			Parts:    []entities.LineItemSelection{line(1, 1, math.MaxInt64/2+1)},
			Services: []entities.LineItemSelection{line(2, 1, math.MaxInt64/2+1)},
		},
		"negative charge":   {Parts: []entities.LineItemSelection{line(1, 1, -1)}},
		"negative quantity": {Services: []entities.LineItemSelection{line(1, -1, 10)}},
	}
	for name, sel := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ComputeTotals(sel)
			require.ErrorIs(t, err, apperrors.ErrValidation)
			require.Equal(t, Totals{}, got)
		})
	}

	t.Run("largest bounded line fits", func(t *testing.T) {
		got := mustTotals(t, entities.Selections{
			Parts:    []entities.LineItemSelection{line(1, MaxQuantity, MaxCharge)},
			Services: []entities.LineItemSelection{line(2, MaxQuantity, MaxCharge)},
		})
		require.Equal(t, 2*int64(MaxQuantity)*MaxCharge, got.TotalAmount)
	})
}

func TestApply(t *testing.T) {
	rec := entities.ServiceRecord{
		Parts:       []entities.LineItemSelection{line(5, 1, 385)},
		TotalAmount: 99999,
	}
	require.NoError(t, Apply(&rec))
	require.EqualValues(t, 385, rec.PartsTotal)
	require.EqualValues(t, 0, rec.LaborTotal)
	require.EqualValues(t, 385, rec.TotalAmount)

	t.Run("overflow leaves totals untouched", func(t *testing.T) {
		rec.Services = []entities.LineItemSelection{line(3, 2, math.MaxInt64)}
		require.ErrorIs(t, Apply(&rec), apperrors.ErrValidation)
		require.EqualValues(t, 385, rec.TotalAmount)
	})
}

func TestWholeUnits(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{in: 385, want: 385},
		{in: 384.5, want: 385},
		{in: 384.49, want: 384},
		{in: 0, want: 0},
		{in: float64(MaxCharge), want: MaxCharge},
	}
	for _, tc := range cases {
		got, err := WholeUnits(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1), 5e18, 1e300} {
		_, err := WholeUnits(bad)
		require.ErrorIs(t, err, ErrInvalidAmount, "input %v", bad)
	}
}
