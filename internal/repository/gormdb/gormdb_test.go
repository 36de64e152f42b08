package gormdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/products-catalog/backend/internal/entity"
	"github.com/products-catalog/backend/internal/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}

func TestMigrateSeedsCategories(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store := NewCategoryStore(db)

	categories, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Equal(t, entity.CategoryMeal, categories[0].Type())
	assert.Equal(t, entity.CategoryDrink, categories[1].Type())
	assert.Equal(t, entity.CategorySide, categories[2].Type())
	assert.Equal(t, entity.CategoryDessert, categories[3].Type())

	// Migrating again must not duplicate the seed rows
	require.NoError(t, Migrate(db))
	categories, err = store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	_, err = store.FindByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store, err := NewProductStore(db)
	require.NoError(t, err)

	product, err := entity.NewProduct("Cheeseburger", 12.50, "Classic", []string{"front.jpg", "side.jpg"}, 1)
	require.NoError(t, err)

	created, err := store.Create(ctx, product)
	require.NoError(t, err)
	assert.NotZero(t, created.ID())

	found, err := store.FindByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Cheeseburger", found.Name())
	assert.Equal(t, 12.50, found.Price())
	assert.Equal(t, []string{"front.jpg", "side.jpg"}, found.Pictures())
	assert.Equal(t, int64(1), found.CategoryID())

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestProductStoreBloomFilter(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	// Insert a row before the store exists so the filter warm-up has
	// something to load
	seeded, err := entity.NewProduct("Preexisting", 5, "d", nil, 1)
	require.NoError(t, err)

	warmup, err := NewProductStore(db)
	require.NoError(t, err)
	seeded, err = warmup.Create(ctx, seeded)
	require.NoError(t, err)

	store, err := NewProductStore(db)
	require.NoError(t, err)

	// Warmed id resolves
	found, err := store.FindByID(ctx, seeded.ID())
	require.NoError(t, err)
	assert.Equal(t, "Preexisting", found.Name())

	// An id the filter has never seen reports not found without
	// touching the table
	_, err = store.FindByID(ctx, 123456)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductStoreDelete(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store, err := NewProductStore(db)
	require.NoError(t, err)

	product, err := entity.NewProduct("Cheeseburger", 12.50, "d", nil, 1)
	require.NoError(t, err)
	created, err := store.Create(ctx, product)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID()))

	// The id stays in the bloom filter; the lookup falls through to
	// the table and reports not found
	_, err = store.FindByID(ctx, created.ID())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, created.ID()), repository.ErrNotFound)
}

func TestStockStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	store := NewStockStore(db)

	stock, err := entity.NewStock(7, 10)
	require.NoError(t, err)
	created, err := store.Create(ctx, stock)
	require.NoError(t, err)
	assert.NotZero(t, created.ID())

	found, err := store.FindByProductID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(10), found.Quantity())

	overwrite, err := entity.NewStock(7, 8)
	require.NoError(t, err)
	updated, err := store.UpdateQuantityByProductID(ctx, overwrite)
	require.NoError(t, err)
	assert.Equal(t, int64(8), updated.Quantity())

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	missing, err := entity.NewStock(99, 1)
	require.NoError(t, err)
	_, err = store.UpdateQuantityByProductID(ctx, missing)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = store.FindByProductID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
