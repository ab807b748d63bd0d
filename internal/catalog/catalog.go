package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/kanwar911/BTP-case-craft/internal/domain"
	"github.com/kanwar911/BTP-case-craft/internal/repository"
	"github.com/kanwar911/BTP-case-craft/pkg/errors"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Service exposes product lookup over the product repository.
type Service struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewService creates a catalog service.
func NewService(products repository.ProductRepository, logger *zap.Logger) *Service {
	return &Service{products: products, logger: logger}
}

// List returns products, optionally filtered by category, with skip/limit
// pagination.
func (s *Service) List(ctx context.Context, category string, skip, limit int) ([]*domain.Product, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.products.List(ctx, category, skip, limit)
}

// GetByID resolves one product.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, &errors.ErrValidation{Message: "product ID required"}
	}
	return s.products.GetByID(ctx, id)
}

// Create adds a product to the catalog (admin only at the API layer).
func (s *Service) Create(ctx context.Context, product *domain.Product) error {
	if product.Name == "" {
		return &errors.ErrValidation{Message: "product name required", Fields: map[string]string{"name": "required"}}
	}
	if product.Price < 0 {
		return &errors.ErrValidation{Message: "product price must not be negative", Fields: map[string]string{"price": "min 0"}}
	}
	return s.products.Create(ctx, product)
}

// Update modifies an existing product.
func (s *Service) Update(ctx context.Context, product *domain.Product) error {
	if product.Price < 0 {
		return &errors.ErrValidation{Message: "product price must not be negative", Fields: map[string]string{"price": "min 0"}}
	}
	return s.products.Update(ctx, product)
}

// Delete removes a product from the catalog.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}
