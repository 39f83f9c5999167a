package command

import (
	"context"
	"fmt"
	"strconv"

	"atelier-storefront/internal/model"
	"atelier-storefront/internal/notify"
)

func runCart(ctx context.Context, deps *Deps, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return runCartList(ctx, deps)
	case "add":
		return runCartAdd(ctx, deps, args[1:])
	case "remove":
		return runCartRemove(ctx, deps, args[1:])
	case "set-qty":
		return runCartSetQuantity(ctx, deps, args[1:])
	default:
		return usageError(deps, "cart <list|add|remove|set-qty> ...")
	}
}

func runCartList(ctx context.Context, deps *Deps) error {
	items := deps.Cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(deps.Out, "your cart is empty")
		return nil
	}

	for _, item := range items {
		title := item.Title
		if item.VariantTitle != "" {
			title += " / " + item.VariantTitle
		}
		fmt.Fprintf(deps.Out, "%dx %-40s %-12s %s\n",
			item.Quantity, title,
			formatCents(item.UnitPriceCents*int64(item.Quantity), item.Currency),
			item.VariantID)
	}

	subtotal, currency := deps.Cart.SubtotalCents()
	fmt.Fprintf(deps.Out, "subtotal: %s\n", formatCents(subtotal, currency))
	return nil
}

func runCartAdd(ctx context.Context, deps *Deps, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return usageError(deps, "cart add <handle> <variant-id> [quantity]")
	}

	quantity := 1
	if len(args) == 3 {
		parsed, err := strconv.Atoi(args[2])
		if err != nil || parsed <= 0 {
			return surface(deps, model.ErrInvalidQuantity)
		}
		quantity = parsed
	}

	product, err := deps.Commerce.ProductByHandle(ctx, args[0])
	if err != nil {
		return surface(deps, err)
	}

	variant := findVariant(product, args[1])
	if variant == nil {
		return surface(deps, model.ErrProductNotFound)
	}

	item := model.LineItem{
		VariantID:      variant.ID,
		ProductHandle:  product.Handle,
		Title:          product.Title,
		VariantTitle:   variant.Title,
		Options:        variant.Options,
		UnitPriceCents: variant.PriceCents,
		Currency:       variant.Currency,
		Quantity:       quantity,
	}
	if err := deps.Cart.AddItem(item); err != nil {
		return surface(deps, err)
	}

	notify.Success(deps.Notices, fmt.Sprintf("added %s to the cart", product.Title))
	return nil
}

func runCartRemove(ctx context.Context, deps *Deps, args []string) error {
	if len(args) != 1 {
		return usageError(deps, "cart remove <variant-id>")
	}

	if err := deps.Cart.RemoveItem(args[0]); err != nil {
		return surface(deps, err)
	}

	notify.Success(deps.Notices, "removed from the cart")
	return nil
}

func runCartSetQuantity(ctx context.Context, deps *Deps, args []string) error {
	if len(args) != 2 {
		return usageError(deps, "cart set-qty <variant-id> <quantity>")
	}

	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return surface(deps, model.ErrInvalidQuantity)
	}

	if err := deps.Cart.SetQuantity(args[0], quantity); err != nil {
		return surface(deps, err)
	}

	return runCartList(ctx, deps)
}

func runCheckout(ctx context.Context, deps *Deps, args []string) error {
	url, err := deps.Cart.Checkout(ctx, deps.Commerce)
	if err != nil {
		return surface(deps, err)
	}

	// Past this point the purchase lives in the browser; the client does not
	// track the outcome.
	fmt.Fprintln(deps.Out, "complete your purchase here:")
	fmt.Fprintln(deps.Out, url)
	return nil
}
