package service

import "fmt"

// The domain error taxonomy raised by the use-cases. Each kind is a
// distinct type so callers can map it to a transport status without
// parsing messages.

// CategoryNotFoundError indicates a referenced category does not exist
type CategoryNotFoundError struct {
	ID int64
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("Category not found: %d", e.ID)
}

// ProductNotFoundError indicates a referenced product does not exist
type ProductNotFoundError struct {
	ID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product not found: %d", e.ID)
}

// StockNotFoundError indicates a product has no stock record
type StockNotFoundError struct {
	ProductID int64
}

func (e *StockNotFoundError) Error() string {
	return fmt.Sprintf("Stock not found: %d", e.ProductID)
}

// InsufficientStockError indicates the requested quantity exceeds the
// available quantity, and some stock remains. Exhausted stock is the
// separate ProductOutOfStockError.
type InsufficientStockError struct {
	ProductID int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for product %d. Only %d are available", e.ProductID, e.Available)
}

// ProductOutOfStockError indicates the available quantity is exactly
// zero
type ProductOutOfStockError struct {
	ProductID int64
}

func (e *ProductOutOfStockError) Error() string {
	return fmt.Sprintf("Product %d is out of stock", e.ProductID)
}
