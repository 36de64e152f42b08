package entity

import "time"

// Stock tracks the available quantity of a single product.
// One stock record exists per product.
type Stock struct {
	id        int64
	createdAt time.Time
	updatedAt time.Time
	productID int64
	quantity  int64
}

// NewStock builds a not-yet-persisted stock record (id 0, timestamps
// now). Quantity is validated the same way as SetQuantity.
func NewStock(productID, quantity int64) (*Stock, error) {
	now := time.Now()
	return LoadStock(0, now, now, productID, quantity)
}

// LoadStock builds a stock record from persisted fields
func LoadStock(id int64, createdAt, updatedAt time.Time, productID, quantity int64) (*Stock, error) {
	s := &Stock{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
		productID: productID,
	}

	if err := s.SetQuantity(quantity); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Stock) ID() int64 {
	return s.id
}

func (s *Stock) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Stock) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Stock) ProductID() int64 {
	return s.productID
}

func (s *Stock) Quantity() int64 {
	return s.quantity
}

// SetID is called by persistence adapters once a row id is assigned
func (s *Stock) SetID(id int64) {
	s.id = id
}

// SetQuantity rejects negative quantities, never clamping
func (s *Stock) SetQuantity(quantity int64) error {
	if quantity < 0 {
		return &InvalidStockError{Message: "Quantity value must be higher than -1"}
	}
	s.quantity = quantity
	return nil
}
