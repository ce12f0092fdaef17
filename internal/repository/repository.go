package repository

import (
	"context"

	"labs/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves every product in insertion order.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	// Returns nil without error when the product does not exist.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Create appends a new product, assigning the next ID (current maximum + 1).
	Create(ctx context.Context, nombre string, precio float64) (*model.Product, error)

	// Update overwrites the supplied fields of an existing product.
	// Returns nil without error when the product does not exist.
	Update(ctx context.Context, id int, input model.ProductInput) (*model.Product, error)

	// Delete removes a product and returns it.
	// Returns nil without error when the product does not exist.
	Delete(ctx context.Context, id int) (*model.Product, error)
}
