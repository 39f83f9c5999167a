package command

import (
	"context"
	"fmt"

	"atelier-storefront/internal/model"
)

func formatCents(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, currency)
}

func runProducts(ctx context.Context, deps *Deps, args []string) error {
	products, err := deps.Commerce.Products(ctx, deps.Config.CatalogPageSize)
	if err != nil {
		return surface(deps, err)
	}

	if len(products) == 0 {
		fmt.Fprintln(deps.Out, "the catalog is empty")
		return nil
	}

	for _, p := range products {
		price := ""
		if len(p.Variants) > 0 {
			v := p.Variants[0]
			price = "  from " + formatCents(v.PriceCents, v.Currency)
		}
		fmt.Fprintf(deps.Out, "%-32s %s%s\n", p.Handle, p.Title, price)
	}

	return nil
}

func runProduct(ctx context.Context, deps *Deps, args []string) error {
	if len(args) != 1 {
		return usageError(deps, "product <handle>")
	}

	product, err := deps.Commerce.ProductByHandle(ctx, args[0])
	if err != nil {
		return surface(deps, err)
	}

	fmt.Fprintln(deps.Out, product.Title)
	if product.Description != "" {
		fmt.Fprintln(deps.Out, product.Description)
	}
	fmt.Fprintln(deps.Out)

	for _, v := range product.Variants {
		availability := "in stock"
		if !v.Available {
			availability = "sold out"
		}
		fmt.Fprintf(deps.Out, "  %-24s %-12s %s  (%s)\n",
			v.Title, formatCents(v.PriceCents, v.Currency), availability, v.ID)
		for _, opt := range v.Options {
			fmt.Fprintf(deps.Out, "    %s: %s\n", opt.Name, opt.Value)
		}
	}

	return nil
}

// findVariant resolves a variant id to its product so the cart line can carry
// the add-time snapshot.
func findVariant(product *model.Product, variantID string) *model.Variant {
	for i := range product.Variants {
		if product.Variants[i].ID == variantID {
			return &product.Variants[i]
		}
	}
	return nil
}
