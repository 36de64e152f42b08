package gormdb

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"gorm.io/gorm"

	"github.com/products-catalog/backend/internal/entity"
	"github.com/products-catalog/backend/internal/repository"
)

const (
	// Sized for the expected catalog; at 1% false positives a miss
	// costs one extra query.
	productFilterCapacity      = 100_000
	productFilterFalsePositive = 0.01
)

// CategoryStore implements repository.CategoryRepository over GORM
type CategoryStore struct {
	db *gorm.DB
}

// NewCategoryStore creates a GORM-backed category store
func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// FindAll returns all categories ordered by id
func (s *CategoryStore) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var rows []categoryRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		c, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}

// FindByID returns a category by id
func (s *CategoryStore) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var row categoryRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return row.toEntity()
}

// ProductStore implements repository.ProductRepository over GORM.
// A bloom filter over product ids lets definite misses skip the
// database entirely. The filter is populated from this process's
// reads of the table plus its own creates, so it assumes no other
// writer inserts products into the same database. Deleted ids stay
// in the filter and just cost one extra query.
type ProductStore struct {
	db     *gorm.DB
	mu     sync.Mutex
	filter *bloom.BloomFilter
}

// NewProductStore creates a GORM-backed product store with the id
// filter warmed from the existing rows
func NewProductStore(db *gorm.DB) (*ProductStore, error) {
	var ids []int64
	if err := db.Model(&productRow{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	s := &ProductStore{
		db:     db,
		filter: bloom.NewWithEstimates(productFilterCapacity, productFilterFalsePositive),
	}
	for _, id := range ids {
		s.rememberID(id)
	}

	return s, nil
}

func (s *ProductStore) rememberID(id int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))

	s.mu.Lock()
	s.filter.Add(buf[:])
	s.mu.Unlock()
}

func (s *ProductStore) mightExist(id int64) bool {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.Test(buf[:])
}

// FindAll returns all products ordered by id
func (s *ProductStore) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var rows []productRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// FindByID returns a product by id
func (s *ProductStore) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	if !s.mightExist(id) {
		return nil, repository.ErrNotFound
	}

	var row productRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return row.toEntity()
}

// Create persists a product and assigns its id
func (s *ProductStore) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	row := productRow{
		CreatedAt:   product.CreatedAt(),
		UpdatedAt:   product.UpdatedAt(),
		Name:        product.Name(),
		Price:       product.Price(),
		Description: product.Description(),
		Pictures:    pictureList(product.Pictures()),
		CategoryID:  product.CategoryID(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}

	s.rememberID(row.ID)
	product.SetID(row.ID)

	return product, nil
}

// Delete removes a product by id. The id remains in the bloom filter;
// later lookups fall through to the database and report not found.
func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&productRow{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// StockStore implements repository.StockRepository over GORM
type StockStore struct {
	db *gorm.DB
}

// NewStockStore creates a GORM-backed stock store
func NewStockStore(db *gorm.DB) *StockStore {
	return &StockStore{db: db}
}

// FindAll returns all stock records ordered by product id
func (s *StockStore) FindAll(ctx context.Context) ([]*entity.Stock, error) {
	var rows []stockRow
	if err := s.db.WithContext(ctx).Order("product_id").Find(&rows).Error; err != nil {
		return nil, err
	}

	stocks := make([]*entity.Stock, 0, len(rows))
	for _, row := range rows {
		st, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, st)
	}

	return stocks, nil
}

// FindByProductID returns the stock record for a product
func (s *StockStore) FindByProductID(ctx context.Context, productID int64) (*entity.Stock, error) {
	var row stockRow
	err := s.db.WithContext(ctx).Where("product_id = ?", productID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return row.toEntity()
}

// Create persists a stock record and assigns its id
func (s *StockStore) Create(ctx context.Context, stock *entity.Stock) (*entity.Stock, error) {
	row := stockRow{
		CreatedAt: stock.CreatedAt(),
		UpdatedAt: stock.UpdatedAt(),
		ProductID: stock.ProductID(),
		Quantity:  stock.Quantity(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}

	stock.SetID(row.ID)

	return stock, nil
}

// UpdateQuantityByProductID overwrites the persisted quantity for the
// stock's product id and returns the updated record
func (s *StockStore) UpdateQuantityByProductID(ctx context.Context, stock *entity.Stock) (*entity.Stock, error) {
	res := s.db.WithContext(ctx).
		Model(&stockRow{}).
		Where("product_id = ?", stock.ProductID()).
		Updates(map[string]interface{}{
			"quantity":   stock.Quantity(),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return s.FindByProductID(ctx, stock.ProductID())
}
