// Package repository contains data access abstractions for the store system.
// Implementations live in subpackages (see gormrepo).
package repository

import (
	"context"
)

// DefaultLimit is the page size used when the caller does not ask for one.
const DefaultLimit = 100

// Page holds skip/limit pagination parameters.
type Page struct {
	Skip  int
	Limit int
}

// DefaultPage returns the first page with the default size.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}

// Repository is the set of operations every entity supports.
// T is the stored record, C the create payload and U the update payload.
type Repository[T any, C any, U any] interface {
	// Create builds a record from in, inserts it and returns it with its assigned ID.
	Create(ctx context.Context, in C) (*T, error)

	// Get returns the record with the given ID, or nil and no error when there is none.
	Get(ctx context.Context, id int64) (*T, error)

	// GetMulti returns records ordered by ID, skipping page.Skip and returning at most page.Limit.
	GetMulti(ctx context.Context, page Page) ([]T, error)

	// Update persists existing with the fields present in in overwritten and
	// returns the new state. existing is left as it was, also on failure.
	Update(ctx context.Context, existing *T, in U) (*T, error)

	// Delete removes the record with the given ID and returns it.
	// It returns nil and no error when there is nothing to delete.
	Delete(ctx context.Context, id int64) (*T, error)
}
