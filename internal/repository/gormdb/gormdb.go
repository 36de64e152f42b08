// Package gormdb provides GORM-backed repository implementations.
// Postgres is the production driver; the tests run against SQLite.
package gormdb

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/products-catalog/backend/internal/entity"
)

// categoryRow is the persisted shape of a category
type categoryRow struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Type      string `gorm:"size:10"`
}

func (categoryRow) TableName() string { return "categories" }

// pictureList stores the ordered picture URLs as a JSON column
type pictureList []string

func (p pictureList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *pictureList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	}
	return errors.New("unsupported pictures column type")
}

// productRow is the persisted shape of a product
type productRow struct {
	ID          int64 `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"size:50"`
	Price       float64
	Description string      `gorm:"size:50"`
	Pictures    pictureList `gorm:"type:text"`
	CategoryID  int64       `gorm:"index"`
}

func (productRow) TableName() string { return "products" }

// stockRow is the persisted shape of a stock record
type stockRow struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ProductID int64 `gorm:"uniqueIndex"`
	Quantity  int64
}

func (stockRow) TableName() string { return "stocks" }

// Open connects to Postgres with the given DSN
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

// Migrate creates the schema and seeds the four category rows when
// the table is empty. The category catalog is fixed; there is no
// category-create endpoint.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&categoryRow{}, &productRow{}, &stockRow{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	var count int64
	if err := db.Model(&categoryRow{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	rows := []categoryRow{
		{ID: 1, CreatedAt: now, UpdatedAt: now, Type: string(entity.CategoryMeal)},
		{ID: 2, CreatedAt: now, UpdatedAt: now, Type: string(entity.CategoryDrink)},
		{ID: 3, CreatedAt: now, UpdatedAt: now, Type: string(entity.CategorySide)},
		{ID: 4, CreatedAt: now, UpdatedAt: now, Type: string(entity.CategoryDessert)},
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	return nil
}

// Row to entity conversions. Load* rejects rows that violate entity
// invariants, so corrupted data surfaces as an error instead of a
// silently invalid entity.

func (r categoryRow) toEntity() (*entity.Category, error) {
	return entity.LoadCategory(r.ID, r.CreatedAt, r.UpdatedAt, r.Type)
}

func (r productRow) toEntity() (*entity.Product, error) {
	return entity.LoadProduct(r.ID, r.CreatedAt, r.UpdatedAt, r.Name, r.Price, r.Description, r.Pictures, r.CategoryID)
}

func (r stockRow) toEntity() (*entity.Stock, error) {
	return entity.LoadStock(r.ID, r.CreatedAt, r.UpdatedAt, r.ProductID, r.Quantity)
}
