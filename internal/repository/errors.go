package repository

import "errors"

// ErrNotFound is returned by single-entity lookups with no matching row.
// List operations never return it; an empty list is a valid result.
var ErrNotFound = errors.New("record not found")

// Per-entity fetch failures. The underlying store error is logged at
// the repository boundary and never surfaced to callers.
var (
	ErrInvoiceFetch  = errors.New("failed to fetch invoices")
	ErrCustomerFetch = errors.New("failed to fetch customers")
	ErrRevenueFetch  = errors.New("failed to fetch revenue")
	ErrUserFetch     = errors.New("failed to fetch user")
	ErrCardFetch     = errors.New("failed to fetch card data")
)
