package store

import (
	"context"
	"errors"
	"fmt"

	perrors "github.com/ecomshop/catalog/internal/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

const productColumns = "id, name, description, price, image"

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var prod Product
	err := p.db.QueryRow(ctx, query, id).Scan(&prod.ID, &prod.Name, &prod.Description, &prod.Price, &prod.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &prod, nil
}

// FindAll retrieves all products. It returns a slice which may be empty if no
// products exist.
func (p *PgStore) FindAll(ctx context.Context) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var prod Product
		if err := rows.Scan(&prod.ID, &prod.Name, &prod.Description, &prod.Price, &prod.Image); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, prod)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

// Create adds a new product to the system. The ID is assigned by the store.
func (p *PgStore) Create(ctx context.Context, name, description string, price float64, image string) (*Product, error) {
	query := `INSERT INTO products (name, description, price, image)
	          VALUES ($1, $2, $3, $4)
	          RETURNING ` + productColumns

	var prod Product
	err := p.db.QueryRow(ctx, query, name, description, price, image).
		Scan(&prod.ID, &prod.Name, &prod.Description, &prod.Price, &prod.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &prod, nil
}

// Update replaces all fields of an existing product.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) Update(ctx context.Context, id uuid.UUID, name, description string, price float64, image string) (*Product, error) {
	query := `UPDATE products
	          SET name = $2, description = $3, price = $4, image = $5
	          WHERE id = $1
	          RETURNING ` + productColumns

	var prod Product
	err := p.db.QueryRow(ctx, query, id, name, description, price, image).
		Scan(&prod.ID, &prod.Name, &prod.Description, &prod.Price, &prod.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &prod, nil
}

// DeleteByID removes a product by its unique identifier.
// Returns ErrProductNotFound if nothing was removed.
func (p *PgStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}
