package commerce

import (
	"context"
	"net/url"

	"atelier-storefront/internal/model"
	"atelier-storefront/pkg/apierror"
)

// Products lists the first n products of the catalog.
func (c *Client) Products(ctx context.Context, n int) ([]model.Product, error) {
	var data struct {
		Products struct {
			Edges []struct {
				Node wireProduct `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}

	if err := c.do(ctx, queryProducts, map[string]any{"first": n}, &data); err != nil {
		return nil, err
	}

	out := make([]model.Product, 0, len(data.Products.Edges))
	for _, edge := range data.Products.Edges {
		p, err := edge.Node.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}

	return out, nil
}

// ProductByHandle looks up a single product. Returns model.ErrProductNotFound
// when the handle does not resolve.
func (c *Client) ProductByHandle(ctx context.Context, handle string) (*model.Product, error) {
	var data struct {
		ProductByHandle *wireProduct `json:"productByHandle"`
	}

	if err := c.do(ctx, queryProductByHandle, map[string]any{"handle": handle}, &data); err != nil {
		return nil, err
	}

	if data.ProductByHandle == nil {
		return nil, model.ErrProductNotFound
	}

	return data.ProductByHandle.toModel()
}

// CheckoutCreate hands the accumulated lines to the backend and returns the
// web checkout URL with the fixed sales-channel parameter appended. Everything
// past the returned URL is an external browser navigation the client does not
// track.
func (c *Client) CheckoutCreate(ctx context.Context, lines []model.CheckoutLine) (string, error) {
	items := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		items = append(items, map[string]any{
			"variantId": line.VariantID,
			"quantity":  line.Quantity,
		})
	}

	var data struct {
		CheckoutCreate struct {
			Checkout *struct {
				WebURL string `json:"webUrl"`
			} `json:"checkout"`
			CheckoutUserErrors []userError `json:"checkoutUserErrors"`
		} `json:"checkoutCreate"`
	}

	input := map[string]any{"input": map[string]any{"lineItems": items}}
	if err := c.do(ctx, mutationCheckoutCreate, input, &data); err != nil {
		return "", err
	}

	if err := firstUserError(data.CheckoutCreate.CheckoutUserErrors); err != nil {
		return "", err
	}

	if data.CheckoutCreate.Checkout == nil || data.CheckoutCreate.Checkout.WebURL == "" {
		return "", apierror.New(apierror.CodeNetwork, "backend returned no checkout URL")
	}

	return withChannel(data.CheckoutCreate.Checkout.WebURL)
}

func withChannel(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", apierror.New(apierror.CodeNetwork, "backend returned an invalid checkout URL")
	}

	q := u.Query()
	q.Set("channel", checkoutChannel)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
