package service

import (
	"context"
	"errors"

	"github.com/products-catalog/backend/internal/entity"
	"github.com/products-catalog/backend/internal/repository"
)

// StockService handles the stock reservation and quantity-adjustment
// workflow
type StockService struct {
	stocks     repository.StockRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewStockService creates a new stock service
func NewStockService(stocks repository.StockRepository, products repository.ProductRepository, categories repository.CategoryRepository) *StockService {
	return &StockService{
		stocks:     stocks,
		products:   products,
		categories: categories,
	}
}

// UpdateQuantityByProductID overwrites a product's stock quantity with
// the given absolute value. This is not a delta: calling it twice with
// the same quantity persists the same quantity both times.
func (s *StockService) UpdateQuantityByProductID(ctx context.Context, productID, quantity int64) (*entity.Stock, error) {
	_, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ProductNotFoundError{ID: productID}
		}
		return nil, err
	}

	// NewStock enforces quantity >= 0 before anything is written
	stock, err := entity.NewStock(productID, quantity)
	if err != nil {
		return nil, err
	}

	return s.stocks.UpdateQuantityByProductID(ctx, stock)
}

// reservationLine holds one validated line of a reservation: the
// stock to persist and the detail to return
type reservationLine struct {
	updated *entity.Stock
	detail  *entity.ProductDetail
}

// Reserve decrements stock for each requested line. All lines are
// validated in input order before any is persisted; the first invalid
// line fails the whole call. Persistence is a second loop with no
// rollback: if it fails partway, earlier lines stay written.
//
// The returned details carry the requested quantity in the stock
// field, not the remaining quantity: the caller learns what was
// reserved.
func (s *StockService) Reserve(ctx context.Context, lines []entity.ProductWithQuantity) ([]*entity.ProductDetail, error) {
	validated := make([]reservationLine, 0, len(lines))

	for _, line := range lines {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &ProductNotFoundError{ID: line.ProductID}
			}
			return nil, err
		}

		current, err := s.stocks.FindByProductID(ctx, product.ID())
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &StockNotFoundError{ProductID: product.ID()}
			}
			return nil, err
		}

		requested, err := entity.NewStock(line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}

		remaining := current.Quantity() - requested.Quantity()
		if remaining < 0 {
			if current.Quantity() == 0 {
				return nil, &ProductOutOfStockError{ProductID: product.ID()}
			}
			return nil, &InsufficientStockError{ProductID: product.ID(), Available: current.Quantity()}
		}

		updated, err := entity.NewStock(line.ProductID, remaining)
		if err != nil {
			return nil, err
		}

		// The category only decorates the returned detail; a missing
		// category is tolerated here, unlike FindAll/FindByID.
		category, err := s.categories.FindByID(ctx, product.CategoryID())
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}

		validated = append(validated, reservationLine{
			updated: updated,
			detail: &entity.ProductDetail{
				Product:  product,
				Category: category,
				Stock:    requested,
			},
		})
	}

	details := make([]*entity.ProductDetail, 0, len(validated))
	for _, line := range validated {
		if _, err := s.stocks.UpdateQuantityByProductID(ctx, line.updated); err != nil {
			return nil, err
		}
		details = append(details, line.detail)
	}

	return details, nil
}
