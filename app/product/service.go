package product

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"modman/internal/core"
)

// Service is the business-logic layer for products.
type Service struct {
	store *Store
	log   *zap.Logger
}

func NewService(store *Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log.Named("product")}
}

// List returns products with offset/limit pagination.
func (s *Service) List(ctx context.Context, offset, limit int) ([]Product, error) {
	return s.store.List(ctx, offset, limit)
}

// Get returns one product by id.
func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	m, err := s.store.Get(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		s.log.Warn("product not found", zap.String("id", id))
		return m, NotFoundError{ID: id}
	}
	return m, err
}

// Create stores a new product.
func (s *Service) Create(ctx context.Context, in ProductCreate) (Product, error) {
	m, err := s.store.Create(ctx, in)
	if err != nil {
		return m, err
	}
	s.log.Info("product created", zap.String("id", m.ID))
	return m, nil
}

// Update applies a partial update to an existing product.
func (s *Service) Update(ctx context.Context, id string, in ProductUpdate) (Product, error) {
	m, err := s.store.Update(ctx, id, in)
	if errors.Is(err, core.ErrNotFound) {
		return m, NotFoundError{ID: id}
	}
	if err == nil {
		s.log.Info("product updated", zap.String("id", id))
	}
	return m, err
}

// Delete removes a product by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return NotFoundError{ID: id}
	}
	if err == nil {
		s.log.Info("product deleted", zap.String("id", id))
	}
	return err
}
