package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/store"
	"github.com/sumansi/storefront/pkg/idx"
)

var ErrProductExists = errors.New("product_exists")

type ProductService struct {
	Store store.Store
}

// CreateProduct validates and inserts a catalog entry. A client-supplied id
// is honoured (the admin panel pre-assigns them); otherwise one is minted.
func (s *ProductService) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Image == "" {
		return domain.Product{}, ErrMissingFields
	}
	if p.ID == "" {
		p.ID = idx.New().String()
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.Store.Products().CreateProduct(ctx, p); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Product{}, ErrProductExists
		}
		return domain.Product{}, err
	}
	return p, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	p, err := s.Store.Products().GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, err
	}
	return p, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.Store.Products().ListProducts(ctx)
}

// UpdateProduct replaces a product's mutable fields.
func (s *ProductService) UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.ID == "" || p.Name == "" {
		return domain.Product{}, ErrMissingFields
	}

	if err := s.Store.Products().UpdateProduct(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, err
	}
	return s.Store.Products().GetProductByID(ctx, p.ID)
}

// DeleteProduct removes the product; cart items and wishlist entries that
// reference it go with it.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.Store.Products().DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
