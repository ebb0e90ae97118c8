package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// ProductService coordinates catalog operations backed by the product repository.
type ProductService interface {
	Create(ctx context.Context, name, description string, price decimal.Decimal, stock int) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, limit, offset int) ([]domain.Product, int, error)
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) Create(ctx context.Context, name, description string, price decimal.Decimal, stock int) (*domain.Product, error) {
	if name == "" {
		return nil, errors.New("product name is required")
	}
	if price.Sign() <= 0 {
		return nil, errors.New("product price must be positive")
	}
	if stock < 0 {
		return nil, errors.New("product stock must not be negative")
	}

	product := &domain.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}
	if _, err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *productService) List(ctx context.Context, limit, offset int) ([]domain.Product, int, error) {
	products, err := s.products.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.products.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return products, count, nil
}
