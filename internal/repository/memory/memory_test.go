package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/products-catalog/backend/internal/entity"
	"github.com/products-catalog/backend/internal/repository"
)

func TestCategoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewCategoryStore()

	categories, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Equal(t, entity.CategoryMeal, categories[0].Type())
	assert.Equal(t, entity.CategoryDessert, categories[3].Type())

	c, err := store.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryDrink, c.Type())

	_, err = store.FindByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductStore(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore()

	p1, err := entity.NewProduct("Cheeseburger", 9.90, "d", nil, 1)
	require.NoError(t, err)
	p2, err := entity.NewProduct("Lemonade", 4.50, "d", nil, 2)
	require.NoError(t, err)

	created1, err := store.Create(ctx, p1)
	require.NoError(t, err)
	created2, err := store.Create(ctx, p2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created1.ID())
	assert.Equal(t, int64(2), created2.ID())

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Cheeseburger", all[0].Name())

	found, err := store.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Lemonade", found.Name())

	require.NoError(t, store.Delete(ctx, 1))
	_, err = store.FindByID(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, 1), repository.ErrNotFound)
}

func TestStockStore(t *testing.T) {
	ctx := context.Background()
	store := NewStockStore()

	st, err := entity.NewStock(7, 10)
	require.NoError(t, err)
	created, err := store.Create(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID())

	found, err := store.FindByProductID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(10), found.Quantity())

	overwrite, err := entity.NewStock(7, 4)
	require.NoError(t, err)
	updated, err := store.UpdateQuantityByProductID(ctx, overwrite)
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated.Quantity())

	found, err = store.FindByProductID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), found.Quantity())

	missing, err := entity.NewStock(99, 1)
	require.NoError(t, err)
	_, err = store.UpdateQuantityByProductID(ctx, missing)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = store.FindByProductID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
