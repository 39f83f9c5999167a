package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-storefront/internal/model"
)

func mugLine(quantity int) model.LineItem {
	return model.LineItem{
		VariantID:      "variant-mug-s",
		ProductHandle:  "stoneware-mug",
		Title:          "Stoneware Mug",
		VariantTitle:   "Small",
		Options:        []model.SelectedOption{{Name: "Size", Value: "Small"}},
		UnitPriceCents: 2400,
		Currency:       "EUR",
		Quantity:       quantity,
	}
}

func TestStore_AddItem(t *testing.T) {
	t.Run("inserts a new line with a generated id", func(t *testing.T) {
		s := New()

		require.NoError(t, s.AddItem(mugLine(2)))

		items := s.Items()
		require.Len(t, items, 1)
		assert.NotEmpty(t, items[0].ID)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("merges duplicate variant", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddItem(mugLine(1)))

		// Same variant id, even with a diverging snapshot: the quantities
		// merge and the first add's snapshot wins.
		again := mugLine(3)
		again.Title = "Renamed Mug"
		require.NoError(t, s.AddItem(again))

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 4, items[0].Quantity)
		assert.Equal(t, "Stoneware Mug", items[0].Title)
	})

	t.Run("different variants stay separate lines", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddItem(mugLine(1)))

		other := mugLine(1)
		other.VariantID = "variant-mug-l"
		other.VariantTitle = "Large"
		require.NoError(t, s.AddItem(other))

		assert.Len(t, s.Items(), 2)
	})

	t.Run("rejects non-positive quantity and missing variant id", func(t *testing.T) {
		s := New()

		bad := mugLine(0)
		assert.ErrorIs(t, s.AddItem(bad), model.ErrInvalidQuantity)

		bad = mugLine(1)
		bad.VariantID = ""
		assert.ErrorIs(t, s.AddItem(bad), model.ErrInvalidLineItem)

		assert.Empty(t, s.Items())
	})
}

func TestStore_RemoveItem(t *testing.T) {
	t.Run("removes the matching line", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddItem(mugLine(1)))

		require.NoError(t, s.RemoveItem("variant-mug-s"))

		assert.Empty(t, s.Items())
	})

	t.Run("unknown variant errors", func(t *testing.T) {
		s := New()

		assert.ErrorIs(t, s.RemoveItem("variant-unknown"), model.ErrLineNotFound)
	})
}

func TestStore_SetQuantity(t *testing.T) {
	t.Run("replaces the quantity", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddItem(mugLine(1)))

		require.NoError(t, s.SetQuantity("variant-mug-s", 5))

		assert.Equal(t, 5, s.Items()[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddItem(mugLine(2)))

		require.NoError(t, s.SetQuantity("variant-mug-s", 0))

		assert.Empty(t, s.Items())
	})

	t.Run("negative is rejected", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddItem(mugLine(2)))

		assert.ErrorIs(t, s.SetQuantity("variant-mug-s", -1), model.ErrInvalidQuantity)
		assert.Equal(t, 2, s.Items()[0].Quantity)
	})
}

func TestStore_Items(t *testing.T) {
	t.Run("snapshot shares no option storage with the store", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddItem(mugLine(1)))

		items := s.Items()
		items[0].Options[0].Value = "mutated"

		assert.Equal(t, "Small", s.Items()[0].Options[0].Value)
	})
}

func TestStore_Totals(t *testing.T) {
	s := New()
	require.NoError(t, s.AddItem(mugLine(2)))

	bowl := mugLine(1)
	bowl.VariantID = "variant-bowl"
	bowl.UnitPriceCents = 3550
	require.NoError(t, s.AddItem(bowl))

	assert.Equal(t, 3, s.Count())

	subtotal, currency := s.SubtotalCents()
	assert.Equal(t, int64(2*2400+3550), subtotal)
	assert.Equal(t, "EUR", currency)
}
