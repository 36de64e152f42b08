package service

import (
	"context"

	"github.com/products-catalog/backend/internal/entity"
	"github.com/products-catalog/backend/internal/repository"
)

// CategoryService handles business logic for categories
type CategoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{
		categories: categories,
	}
}

// FindAll returns all categories unmodified; repository failures
// propagate untranslated
func (s *CategoryService) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return s.categories.FindAll(ctx)
}
