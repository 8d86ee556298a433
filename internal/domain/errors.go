package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated indicates no user identity could be resolved for
	// an operation that requires one.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrProductNotFound indicates the referenced product does not exist in
	// the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrItemNotFound indicates the referenced line item is not in the
	// user's cart.
	ErrItemNotFound = errors.New("cart item not found")

	// ErrStorageUnavailable indicates the cart store failed at the
	// infrastructure level. Operations do not recover from it.
	ErrStorageUnavailable = errors.New("cart storage unavailable")
)
