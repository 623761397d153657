package catalog

import (
	"errors"
	"strings"
	"testing"

	"motomind/internal/domain/apperrors"
	"motomind/internal/domain/billing"
	"motomind/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.Len(t, c.ListParts(), 15)
	require.Len(t, c.ListServices(), 11)

	spark, err := c.Lookup(entities.ItemKindPart, 5)
	require.NoError(t, err)
	require.Equal(t, "SPARK PLUG(C7HSA)", spark.Name)
	require.EqualValues(t, 385, spark.Suggested)

	oil, err := c.Lookup(entities.ItemKindService, 3)
	require.NoError(t, err)
	require.Equal(t, "Oil Change", oil.Name)
}

func TestListReturnsCopies(t *testing.T) {
	c := Default()
	parts := c.ListParts()
	parts[0].Suggested = 1
	require.EqualValues(t, 1500, c.ListParts()[0].Suggested)
}

func TestDuplicateNamesStayDistinctByID(t *testing.T) {
	c := Default()
	a, err := c.Lookup(entities.ItemKindPart, 12)
	require.NoError(t, err)
	b, err := c.Lookup(entities.ItemKindPart, 13)
	require.NoError(t, err)
	require.Equal(t, a.Name, b.Name)
	require.NotEqual(t, a.Suggested, b.Suggested)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{name: "duplicate id", doc: "parts:\n  - {id: 1, name: A, suggested: 1}\n  - {id: 1, name: B, suggested: 2}\n"},
		{name: "empty name", doc: "services:\n  - {id: 1, name: ' ', suggested: 0}\n"},
		{name: "negative price", doc: "parts:\n  - {id: 1, name: A, suggested: -5}\n"},
		{name: "unknown field", doc: "parts:\n  - {id: 1, name: A, price: 5}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			require.Error(t, err)
		})
	}
}

func TestSelect(t *testing.T) {
	c := Default()

	t.Run("defaults to suggested price and quantity 1", func(t *testing.T) {
		sel, err := c.Select(entities.ItemKindPart, 5, 0, nil)
		require.NoError(t, err)
		require.Equal(t, entities.LineItemSelection{ItemID: 5, Name: "SPARK PLUG(C7HSA)", Quantity: 1, Charge: 385}, sel)
	})

	t.Run("override charge including zero", func(t *testing.T) {
		zero := int64(0)
		sel, err := c.Select(entities.ItemKindService, 11, 2, &zero)
		require.NoError(t, err)
		require.EqualValues(t, 0, sel.Charge)
		require.Equal(t, 2, sel.Quantity)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		neg := int64(-1)
		_, err := c.Select(entities.ItemKindPart, 5, 1, &neg)
		require.True(t, errors.Is(err, apperrors.ErrValidation))

		_, err = c.Select(entities.ItemKindPart, 5, -2, nil)
		require.True(t, errors.Is(err, apperrors.ErrValidation))

		_, err = c.Select(entities.ItemKindPart, 99, 1, nil)
		require.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("rejects quantity and charge above the bounds", func(t *testing.T) {
		huge := int64(5_000_000_000_000_000_000)
		_, err := c.Select(entities.ItemKindPart, 5, 2, &huge)
		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, "parts", ve.Field)

		_, err = c.Select(entities.ItemKindService, 3, billing.MaxQuantity+1, nil)
		require.True(t, errors.Is(err, apperrors.ErrValidation))

		top := billing.MaxCharge
		sel, err := c.Select(entities.ItemKindPart, 5, billing.MaxQuantity, &top)
		require.NoError(t, err)
		require.Equal(t, billing.MaxQuantity, sel.Quantity)
	})
}
