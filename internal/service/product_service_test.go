package service

import (
	"context"
	"errors"
	"testing"

	"labs/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, nombre string, precio float64) (*model.Product, error) {
	args := m.Called(ctx, nombre, precio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id int, input model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestProductService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProducts := []model.Product{
		{ID: 1, Nombre: "Laptop", Precio: 1200},
		{ID: 2, Nombre: "Mouse", Precio: 25},
	}

	tests := []struct {
		name        string
		mockReturn  []model.Product
		mockError   error
		expected    []model.Product
		expectError bool
	}{
		{
			name:       "Success",
			mockReturn: testProducts,
			expected:   testProducts,
		},
		{
			name:       "Nil from repository becomes empty list",
			mockReturn: nil,
			expected:   []model.Product{},
		},
		{
			name:        "Repository error",
			mockError:   errors.New("store error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			mockRepo.On("List", ctx).Return(tt.mockReturn, tt.mockError)

			products, err := service.List(ctx)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, products)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, products)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProduct := &model.Product{ID: 1, Nombre: "Laptop", Precio: 1200}

	tests := []struct {
		name        string
		productID   int
		mockReturn  *model.Product
		mockError   error
		expectedErr error
		expectError bool
	}{
		{
			name:       "Success",
			productID:  1,
			mockReturn: testProduct,
		},
		{
			name:        "Product not found",
			productID:   99,
			expectError: true,
			expectedErr: model.ErrProductNotFound,
		},
		{
			name:        "Repository error",
			productID:   1,
			mockError:   errors.New("store error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			mockRepo.On("GetByID", ctx, tt.productID).Return(tt.mockReturn, tt.mockError)

			product, err := service.GetByID(ctx, tt.productID)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, product)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, product)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	created := &model.Product{ID: 4, Nombre: "Monitor", Precio: 299}

	tests := []struct {
		name        string
		input       model.ProductInput
		expectRepo  bool
		mockError   error
		expectedErr error
		expectError bool
	}{
		{
			name:       "Success",
			input:      model.ProductInput{Nombre: strPtr("Monitor"), Precio: floatPtr(299)},
			expectRepo: true,
		},
		{
			name:       "Zero price is present",
			input:      model.ProductInput{Nombre: strPtr("Monitor"), Precio: floatPtr(0)},
			expectRepo: true,
		},
		{
			name:        "Missing nombre",
			input:       model.ProductInput{Precio: floatPtr(299)},
			expectError: true,
			expectedErr: model.ErrMissingFields,
		},
		{
			name:        "Empty nombre",
			input:       model.ProductInput{Nombre: strPtr(""), Precio: floatPtr(299)},
			expectError: true,
			expectedErr: model.ErrMissingFields,
		},
		{
			name:        "Missing precio",
			input:       model.ProductInput{Nombre: strPtr("Monitor")},
			expectError: true,
			expectedErr: model.ErrMissingFields,
		},
		{
			name:        "Missing both",
			input:       model.ProductInput{},
			expectError: true,
			expectedErr: model.ErrMissingFields,
		},
		{
			name:        "Repository error",
			input:       model.ProductInput{Nombre: strPtr("Monitor"), Precio: floatPtr(299)},
			expectRepo:  true,
			mockError:   errors.New("store error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			if tt.expectRepo {
				var ret interface{}
				if tt.mockError == nil {
					ret = created
				}
				mockRepo.On("Create", ctx, *tt.input.Nombre, *tt.input.Precio).Return(ret, tt.mockError)
			}

			product, err := service.Create(ctx, tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, product)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, created, product)
			}

			mockRepo.AssertExpectations(t)
			if !tt.expectRepo {
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestProductService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	input := model.ProductInput{Precio: floatPtr(30)}
	updated := &model.Product{ID: 2, Nombre: "Mouse", Precio: 30}

	tests := []struct {
		name        string
		mockReturn  *model.Product
		mockError   error
		expectedErr error
		expectError bool
	}{
		{
			name:       "Success",
			mockReturn: updated,
		},
		{
			name:        "Product not found",
			expectError: true,
			expectedErr: model.ErrProductNotFound,
		},
		{
			name:        "Repository error",
			mockError:   errors.New("store error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			mockRepo.On("Update", ctx, 2, input).Return(tt.mockReturn, tt.mockError)

			product, err := service.Update(ctx, 2, input)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, product)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, updated, product)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	deleted := &model.Product{ID: 3, Nombre: "Teclado", Precio: 45}

	tests := []struct {
		name        string
		mockReturn  *model.Product
		mockError   error
		expectedErr error
		expectError bool
	}{
		{
			name:       "Success",
			mockReturn: deleted,
		},
		{
			name:        "Product not found",
			expectError: true,
			expectedErr: model.ErrProductNotFound,
		},
		{
			name:        "Repository error",
			mockError:   errors.New("store error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			mockRepo.On("Delete", ctx, 3).Return(tt.mockReturn, tt.mockError)

			product, err := service.Delete(ctx, 3)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, product)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, deleted, product)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
