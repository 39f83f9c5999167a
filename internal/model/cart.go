package model

// LineItem is one cart entry. VariantID is the de-duplication key: adding the
// same variant again increments Quantity on the existing line. Title, options
// and unit price are snapshots captured at add time.
type LineItem struct {
	ID             string           `json:"id"`
	VariantID      string           `json:"variant_id"`
	ProductHandle  string           `json:"product_handle"`
	Title          string           `json:"title"`
	VariantTitle   string           `json:"variant_title,omitempty"`
	Options        []SelectedOption `json:"options,omitempty"`
	UnitPriceCents int64            `json:"unit_price_cents"`
	Currency       string           `json:"currency"`
	Quantity       int              `json:"quantity"`
}
