package store

import (
	"context"
	"sync"

	perrors "github.com/ecomshop/catalog/internal/errors"
	"github.com/google/uuid"
)

// memStore implements ProductStore using an in-memory map. Used by tests and
// by the CLI test doubles; the PostgreSQL store is the production path.
type memStore struct {
	mu       sync.RWMutex
	products map[uuid.UUID]Product
}

// NewMemStore creates a new in-memory ProductStore.
func NewMemStore() ProductStore {
	return &memStore{products: make(map[uuid.UUID]Product)}
}

func (s *memStore) FindByID(_ context.Context, id uuid.UUID) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

func (s *memStore) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	return list, nil
}

func (s *memStore) Create(_ context.Context, name, description string, price float64, image string) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		Image:       image,
	}
	s.products[p.ID] = p
	return &p, nil
}

func (s *memStore) Update(_ context.Context, id uuid.UUID, name, description string, price float64, image string) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return nil, perrors.ErrProductNotFound
	}
	p := Product{ID: id, Name: name, Description: description, Price: price, Image: image}
	s.products[id] = p
	return &p, nil
}

func (s *memStore) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return perrors.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}
