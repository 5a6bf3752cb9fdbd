// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"github.com/google/uuid"
)

// Product is a product row as persisted in the store.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Image       string
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll returns all available products, order unspecified.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create adds a new product and returns it with the store-assigned ID.
	Create(ctx context.Context, name, description string, price float64, image string) (*Product, error)

	// Update replaces all fields of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id uuid.UUID, name, description string, price float64, image string) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
