package model

import "errors"

var (
	// Session related errors
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSuperseded       = errors.New("response superseded by a newer action")

	// Cart related errors
	ErrCartEmpty       = errors.New("cart is empty")
	ErrLineNotFound    = errors.New("line item not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidLineItem = errors.New("line item is missing a variant id")

	// Catalog/content related errors
	ErrProductNotFound = errors.New("product not found")
	ErrArticleNotFound = errors.New("article not found")
)
