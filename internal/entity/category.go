package entity

import "time"

// CategoryType enumerates the recognized product categories
type CategoryType string

const (
	CategoryMeal    CategoryType = "MEAL"
	CategoryDrink   CategoryType = "DRINK"
	CategorySide    CategoryType = "SIDE"
	CategoryDessert CategoryType = "DESSERT"
)

// Category is a validated product category.
// Fields are only reachable through the mutators so invalid
// values are rejected at the point of mutation.
type Category struct {
	id        int64
	createdAt time.Time
	updatedAt time.Time
	catType   CategoryType
}

// LoadCategory builds a category from persisted fields, running the
// same validation as the mutators
func LoadCategory(id int64, createdAt, updatedAt time.Time, rawType string) (*Category, error) {
	c := &Category{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}

	if err := c.SetType(rawType); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Category) ID() int64 {
	return c.id
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Category) Type() CategoryType {
	return c.catType
}

// SetType maps a raw string to a category type.
// Anything outside the four recognized values, including the
// empty string, fails with InvalidCategoryError.
func (c *Category) SetType(raw string) error {
	switch CategoryType(raw) {
	case CategoryMeal, CategoryDrink, CategorySide, CategoryDessert:
		c.catType = CategoryType(raw)
		return nil
	}

	return &InvalidCategoryError{Message: "Type must be MEAL, DRINK, SIDE or DESSERT"}
}
