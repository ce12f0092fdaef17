// Package catalog provides the initial product list for the in-memory store.
package catalog

import (
	"context"

	"labs/internal/model"
)

// Loader defines the interface for loading catalogue seed files.
type Loader interface {
	// Load reads a seed file and returns the products it lists.
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// DefaultSeed returns the products the catalogue starts with when no seed file is configured.
func DefaultSeed() []model.Product {
	return []model.Product{
		{ID: 1, Nombre: "Laptop", Precio: 1200},
		{ID: 2, Nombre: "Mouse", Precio: 25},
		{ID: 3, Nombre: "Teclado", Precio: 45},
	}
}
