package service

import (
	"context"
	"fmt"

	"labs/internal/model"
	"labs/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves every product in the catalogue.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	s.logger.Debug().Int("count", len(products)).Msg("listed products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create adds a product. Both nombre and precio must be supplied.
func (s *productService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	if input.Nombre == nil || *input.Nombre == "" || input.Precio == nil {
		s.logger.Warn().
			Bool("has_nombre", input.Nombre != nil && *input.Nombre != "").
			Bool("has_precio", input.Precio != nil).
			Msg("product creation missing required fields")
		return nil, model.ErrMissingFields
	}

	product, err := s.productRepo.Create(ctx, *input.Nombre, *input.Precio)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int("product_id", product.ID).
		Str("nombre", product.Nombre).
		Msg("product created")

	return product, nil
}

// Update overwrites the supplied fields of an existing product.
func (s *productService) Update(ctx context.Context, id int, input model.ProductInput) (*model.Product, error) {
	product, err := s.productRepo.Update(ctx, id, input)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product and returns it.
func (s *productService) Delete(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int("product_id", id).Msg("product deleted")

	return product, nil
}
