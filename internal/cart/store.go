// Package cart accumulates line items ahead of the checkout handoff. State is
// in-memory only; the cart does not survive the external redirect and was
// never persisted.
package cart

import (
	"sync"

	"github.com/google/uuid"

	"atelier-storefront/internal/model"
)

type Store struct {
	mu    sync.Mutex
	lines []model.LineItem
}

func New() *Store {
	return &Store{}
}

// AddItem inserts a new line or, when the variant is already in the cart,
// increments the existing line's quantity. The de-duplication key is the
// variant id alone; the first add's snapshot (title, options, price) wins.
func (s *Store) AddItem(item model.LineItem) error {
	if item.VariantID == "" {
		return model.ErrInvalidLineItem
	}
	if item.Quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].VariantID == item.VariantID {
			s.lines[i].Quantity += item.Quantity
			return nil
		}
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.lines = append(s.lines, item)
	return nil
}

// RemoveItem deletes the line for the given variant.
func (s *Store) RemoveItem(variantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].VariantID == variantID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return nil
		}
	}

	return model.ErrLineNotFound
}

// SetQuantity replaces a line's quantity. Zero removes the line; negative
// values are rejected.
func (s *Store) SetQuantity(variantID string, quantity int) error {
	if quantity < 0 {
		return model.ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.RemoveItem(variantID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].VariantID == variantID {
			s.lines[i].Quantity = quantity
			return nil
		}
	}

	return model.ErrLineNotFound
}

// Items returns a snapshot copy in insertion order. The options slices are
// copied too; callers never share backing storage with the store.
func (s *Store) Items() []model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.LineItem, len(s.lines))
	for i, line := range s.lines {
		if len(line.Options) > 0 {
			line.Options = append([]model.SelectedOption(nil), line.Options...)
		}
		out[i] = line
	}
	return out
}

// Count returns the total quantity across all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// SubtotalCents sums the unit-price snapshots. The currency is taken from the
// first line; the backend prices a shop in a single currency.
func (s *Store) SubtotalCents() (int64, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	currency := ""
	for _, line := range s.lines {
		total += line.UnitPriceCents * int64(line.Quantity)
		if currency == "" {
			currency = line.Currency
		}
	}
	return total, currency
}

// Clear drops every line.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}
