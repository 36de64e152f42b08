// Package memory provides in-memory repository implementations used
// by the tests and as the store when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/products-catalog/backend/internal/entity"
	"github.com/products-catalog/backend/internal/repository"
)

// CategoryStore implements repository.CategoryRepository with a fixed
// in-memory category catalog
type CategoryStore struct {
	mu         sync.RWMutex
	categories map[int64]*entity.Category
}

// NewCategoryStore creates a category store seeded with the four
// recognized categories
func NewCategoryStore() *CategoryStore {
	now := time.Now()
	categories := make(map[int64]*entity.Category)

	for i, catType := range []entity.CategoryType{
		entity.CategoryMeal,
		entity.CategoryDrink,
		entity.CategorySide,
		entity.CategoryDessert,
	} {
		id := int64(i + 1)
		c, _ := entity.LoadCategory(id, now, now, string(catType))
		categories[id] = c
	}

	return &CategoryStore{categories: categories}
}

// FindAll returns all categories ordered by id
func (s *CategoryStore) FindAll(ctx context.Context) ([]*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]*entity.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID() < categories[j].ID() })

	return categories, nil
}

// FindByID returns a category by id
func (s *CategoryStore) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.categories[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

// ProductStore implements repository.ProductRepository with in-memory
// storage
type ProductStore struct {
	mu       sync.RWMutex
	products map[int64]*entity.Product
	nextID   int64
}

// NewProductStore creates an empty in-memory product store
func NewProductStore() *ProductStore {
	return &ProductStore{
		products: make(map[int64]*entity.Product),
		nextID:   1,
	}
}

// FindAll returns all products ordered by id
func (s *ProductStore) FindAll(ctx context.Context) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID() < products[j].ID() })

	return products, nil
}

// FindByID returns a product by id
func (s *ProductStore) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.products[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

// Create stores a product and assigns the next id
func (s *ProductStore) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.SetID(s.nextID)
	s.nextID++
	s.products[product.ID()] = product

	return product, nil
}

// Delete removes a product by id
func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return repository.ErrNotFound
	}
	delete(s.products, id)

	return nil
}

// StockStore implements repository.StockRepository with in-memory
// storage, keyed by product id (one stock record per product)
type StockStore struct {
	mu     sync.RWMutex
	stocks map[int64]*entity.Stock
	nextID int64
}

// NewStockStore creates an empty in-memory stock store
func NewStockStore() *StockStore {
	return &StockStore{
		stocks: make(map[int64]*entity.Stock),
		nextID: 1,
	}
}

// FindAll returns all stock records ordered by product id
func (s *StockStore) FindAll(ctx context.Context) ([]*entity.Stock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stocks := make([]*entity.Stock, 0, len(s.stocks))
	for _, st := range s.stocks {
		stocks = append(stocks, st)
	}
	sort.Slice(stocks, func(i, j int) bool { return stocks[i].ProductID() < stocks[j].ProductID() })

	return stocks, nil
}

// FindByProductID returns the stock record for a product
func (s *StockStore) FindByProductID(ctx context.Context, productID int64) (*entity.Stock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, exists := s.stocks[productID]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return st, nil
}

// Create stores a stock record and assigns the next id
func (s *StockStore) Create(ctx context.Context, stock *entity.Stock) (*entity.Stock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stock.SetID(s.nextID)
	s.nextID++
	s.stocks[stock.ProductID()] = stock

	return stock, nil
}

// UpdateQuantityByProductID overwrites the quantity of the stock
// record for the given stock's product id
func (s *StockStore) UpdateQuantityByProductID(ctx context.Context, stock *entity.Stock) (*entity.Stock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.stocks[stock.ProductID()]
	if !exists {
		return nil, repository.ErrNotFound
	}

	if err := current.SetQuantity(stock.Quantity()); err != nil {
		return nil, err
	}

	return current, nil
}
