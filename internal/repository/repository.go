package repository

import (
	"context"
	"errors"

	"github.com/products-catalog/backend/internal/entity"
)

// ErrNotFound is returned by every repository when the requested
// record does not exist
var ErrNotFound = errors.New("record not found")

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
}

// ProductRepository defines the interface for product data access.
// Create assigns the persisted id on the returned product.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}

// StockRepository defines the interface for stock data access.
// UpdateQuantityByProductID is a blind overwrite keyed by the stock's
// embedded product id.
type StockRepository interface {
	FindAll(ctx context.Context) ([]*entity.Stock, error)
	FindByProductID(ctx context.Context, productID int64) (*entity.Stock, error)
	Create(ctx context.Context, stock *entity.Stock) (*entity.Stock, error)
	UpdateQuantityByProductID(ctx context.Context, stock *entity.Stock) (*entity.Stock, error)
}
