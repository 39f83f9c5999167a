package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atelier-storefront/internal/model"
	"atelier-storefront/pkg/apierror"
)

type mockCheckoutAPI struct {
	mock.Mock
}

func (m *mockCheckoutAPI) CheckoutCreate(ctx context.Context, lines []model.CheckoutLine) (string, error) {
	args := m.Called(ctx, lines)
	return args.String(0), args.Error(1)
}

func TestStore_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("maps lines to variant-quantity pairs and clears on success", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddItem(mugLine(2)))
		bowl := mugLine(1)
		bowl.VariantID = "variant-bowl"
		require.NoError(t, s.AddItem(bowl))

		api := new(mockCheckoutAPI)
		expected := []model.CheckoutLine{
			{VariantID: "variant-mug-s", Quantity: 2},
			{VariantID: "variant-bowl", Quantity: 1},
		}
		api.On("CheckoutCreate", mock.Anything, expected).
			Return("https://checkout.example.com/c/123?channel=storefront", nil)

		url, err := s.Checkout(ctx, api)

		require.NoError(t, err)
		assert.Contains(t, url, "channel=storefront")
		assert.Empty(t, s.Items())
		api.AssertExpectations(t)
	})

	t.Run("empty cart never reaches the backend", func(t *testing.T) {
		s := New()
		api := new(mockCheckoutAPI)

		_, err := s.Checkout(ctx, api)

		assert.ErrorIs(t, err, model.ErrCartEmpty)
		api.AssertNotCalled(t, "CheckoutCreate", mock.Anything, mock.Anything)
	})

	t.Run("backend failure keeps the cart intact", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddItem(mugLine(2)))

		api := new(mockCheckoutAPI)
		api.On("CheckoutCreate", mock.Anything, mock.Anything).
			Return("", apierror.New(apierror.CodeNetwork, "backend unreachable"))

		_, err := s.Checkout(ctx, api)

		require.Error(t, err)
		assert.Len(t, s.Items(), 1)
	})
}
