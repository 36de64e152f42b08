package service

import (
	"context"
	"errors"

	"github.com/products-catalog/backend/internal/entity"
	"github.com/products-catalog/backend/internal/repository"
)

// ProductService handles business logic for products. It holds no
// state beyond its repositories.
type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	stocks     repository.StockRepository
}

// NewProductService creates a new product service
func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository, stocks repository.StockRepository) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		stocks:     stocks,
	}
}

// FindAll returns the detail of every product. The whole call fails at
// the first product whose category or stock cannot be resolved; no
// partial results.
func (s *ProductService) FindAll(ctx context.Context) ([]*entity.ProductDetail, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*entity.ProductDetail, 0, len(products))
	for _, product := range products {
		detail, err := s.resolveDetail(ctx, product)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	return details, nil
}

// FindByID returns the detail of a single product
func (s *ProductService) FindByID(ctx context.Context, id int64) (*entity.ProductDetail, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ProductNotFoundError{ID: id}
		}
		return nil, err
	}

	return s.resolveDetail(ctx, product)
}

// resolveDetail joins a product with its category and stock
func (s *ProductService) resolveDetail(ctx context.Context, product *entity.Product) (*entity.ProductDetail, error) {
	category, err := s.categories.FindByID(ctx, product.CategoryID())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &CategoryNotFoundError{ID: product.CategoryID()}
		}
		return nil, err
	}

	stock, err := s.stocks.FindByProductID(ctx, product.ID())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &StockNotFoundError{ProductID: product.ID()}
		}
		return nil, err
	}

	return &entity.ProductDetail{Product: product, Category: category, Stock: stock}, nil
}

// Create validates the category reference, persists a new product and
// its initial stock record, and returns the assembled detail. The
// category is checked before anything is written.
func (s *ProductService) Create(ctx context.Context, name string, price float64, description string, pictures []string, categoryID, stockQuantity int64) (*entity.ProductDetail, error) {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &CategoryNotFoundError{ID: categoryID}
		}
		return nil, err
	}

	product, err := entity.NewProduct(name, price, description, pictures, categoryID)
	if err != nil {
		return nil, err
	}

	product, err = s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	stock, err := entity.NewStock(product.ID(), stockQuantity)
	if err != nil {
		return nil, err
	}

	stock, err = s.stocks.Create(ctx, stock)
	if err != nil {
		return nil, err
	}

	return &entity.ProductDetail{Product: product, Category: category, Stock: stock}, nil
}

// Delete removes a product by id.
// The product's stock record is left in place; it becomes unreachable
// through the API but is not reconciled.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	_, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ProductNotFoundError{ID: id}
		}
		return err
	}

	return s.products.Delete(ctx, id)
}
