package model

// SelectedOption is one chosen product option (e.g. Size=M, Color=Clay).
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Variant is a specific purchasable configuration of a product.
type Variant struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	PriceCents int64            `json:"price_cents"`
	Currency   string           `json:"currency"`
	Available  bool             `json:"available"`
	Options    []SelectedOption `json:"options,omitempty"`
}

type Product struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
}

// CheckoutLine is the shape handed to the backend's checkout-create operation.
type CheckoutLine struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}
