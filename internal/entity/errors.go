package entity

// InvalidCategoryError indicates a category field failed validation
type InvalidCategoryError struct {
	Message string
}

func (e *InvalidCategoryError) Error() string {
	return e.Message
}

// InvalidProductError indicates a product field failed validation
type InvalidProductError struct {
	Message string
}

func (e *InvalidProductError) Error() string {
	return e.Message
}

// InvalidStockError indicates a stock field failed validation
type InvalidStockError struct {
	Message string
}

func (e *InvalidStockError) Error() string {
	return e.Message
}
