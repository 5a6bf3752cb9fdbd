// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"

	"github.com/ecomshop/catalog/internal/product"
	"github.com/ecomshop/catalog/internal/store"
	"github.com/google/uuid"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)

	// FindAll returns all available products, order unspecified.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]product.Product, error)

	// Create validates the input and adds a new product.
	// Returns *product.ValidationError when one or more field rules are violated;
	// nothing is persisted in that case.
	Create(ctx context.Context, in product.Input) (*product.Product, error)

	// Update validates the input and replaces the whole record, with the same
	// rules as Create. Returns ErrProductNotFound if no product exists with
	// the given ID.
	Update(ctx context.Context, id uuid.UUID, in product.Input) (*product.Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{repository: repo}
}

// FindByID retrieves a product by its ID.
func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	p, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	return toDomain(p), nil
}

// FindAll retrieves all products.
func (s *Service) FindAll(ctx context.Context) ([]product.Product, error) {
	rows, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	products := make([]product.Product, len(rows))
	for i := range rows {
		products[i] = *toDomain(&rows[i])
	}
	return products, nil
}

// Create validates and persists a new product. Validation happens before any
// persistence attempt, so an invalid input never reaches the store.
func (s *Service) Create(ctx context.Context, in product.Input) (*product.Product, error) {
	if err := product.Validate(in); err != nil {
		return nil, err
	}
	p, err := s.repository.Create(ctx, in.Name, in.Description, *in.Price, in.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toDomain(p), nil
}

// Update validates and replaces an existing product in full.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in product.Input) (*product.Product, error) {
	if err := product.Validate(in); err != nil {
		return nil, err
	}
	p, err := s.repository.Update(ctx, id, in.Name, in.Description, *in.Price, in.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}
	return toDomain(p), nil
}

// DeleteByID deletes a product by its ID.
func (s *Service) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.repository.DeleteByID(ctx, id)
}

// toDomain converts a store row to the domain representation.
func toDomain(p *store.Product) *product.Product {
	return &product.Product{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
	}
}
