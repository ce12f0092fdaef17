package service

import (
	"context"

	"labs/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves every product in the catalogue.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Create adds a product. Both nombre and precio must be supplied.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Update overwrites the supplied fields of an existing product.
	Update(ctx context.Context, id int, input model.ProductInput) (*model.Product, error)

	// Delete removes a product and returns it.
	Delete(ctx context.Context, id int) (*model.Product, error)
}
