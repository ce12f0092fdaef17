package repository

import (
	"context"
	"fmt"
	"sync"

	"labs/internal/model"

	"github.com/rs/zerolog"
)

// memoryProductRepository implements the ProductRepository interface over an owned slice.
type memoryProductRepository struct {
	mu       sync.RWMutex
	products []model.Product
	logger   zerolog.Logger
}

// NewProductRepository creates a new in-memory product repository holding a copy of seed.
func NewProductRepository(seed []model.Product, logger zerolog.Logger) (ProductRepository, error) {
	seen := make(map[int]struct{}, len(seed))
	for _, p := range seed {
		if p.ID < 1 {
			return nil, fmt.Errorf("invalid product ID %d: must be positive", p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product ID %d", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	products := make([]model.Product, len(seed))
	copy(products, seed)

	return &memoryProductRepository{
		products: products,
		logger:   logger.With().Str("repository", "product").Logger(),
	}, nil
}

// List retrieves every product in insertion order.
func (r *memoryProductRepository) List(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, len(r.products))
	copy(products, r.products)

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *memoryProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		r.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, nil
	}

	p := r.products[i]
	return &p, nil
}

// Create appends a new product with ID = max(existing) + 1.
func (r *memoryProductRepository) Create(ctx context.Context, nombre string, precio float64) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := model.Product{
		ID:     r.nextID(),
		Nombre: nombre,
		Precio: precio,
	}
	r.products = append(r.products, p)

	r.logger.Debug().Int("product_id", p.ID).Int("count", len(r.products)).Msg("product created")

	return &p, nil
}

// Update overwrites the supplied fields of an existing product.
func (r *memoryProductRepository) Update(ctx context.Context, id int, input model.ProductInput) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, nil
	}

	if input.Nombre != nil && *input.Nombre != "" {
		r.products[i].Nombre = *input.Nombre
	}
	if input.Precio != nil {
		r.products[i].Precio = *input.Precio
	}

	p := r.products[i]
	return &p, nil
}

// Delete removes a product and returns it.
func (r *memoryProductRepository) Delete(ctx context.Context, id int) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, nil
	}

	p := r.products[i]
	r.products = append(r.products[:i], r.products[i+1:]...)

	r.logger.Debug().Int("product_id", id).Int("count", len(r.products)).Msg("product deleted")

	return &p, nil
}

// indexOf returns the slice position of id, or -1. Callers hold the lock.
func (r *memoryProductRepository) indexOf(id int) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID scans for the current maximum ID. Callers hold the write lock.
func (r *memoryProductRepository) nextID() int {
	maxID := 0
	for _, p := range r.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}
