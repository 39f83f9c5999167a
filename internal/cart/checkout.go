package cart

import (
	"context"

	"atelier-storefront/internal/model"
)

// CheckoutAPI is the slice of the storefront backend the handoff needs.
type CheckoutAPI interface {
	CheckoutCreate(ctx context.Context, lines []model.CheckoutLine) (string, error)
}

// Checkout maps the accumulated lines to {variantID, quantity} pairs and hands
// them to the backend. On success the local cart is cleared and the returned
// redirect URL takes the user out of the application; on failure the cart
// stays intact for another attempt.
func (s *Store) Checkout(ctx context.Context, api CheckoutAPI) (string, error) {
	items := s.Items()
	if len(items) == 0 {
		return "", model.ErrCartEmpty
	}

	lines := make([]model.CheckoutLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, model.CheckoutLine{VariantID: item.VariantID, Quantity: item.Quantity})
	}

	url, err := api.CheckoutCreate(ctx, lines)
	if err != nil {
		return "", err
	}

	s.Clear()
	return url, nil
}
