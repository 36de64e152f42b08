package entity

import "time"

const maxProductTextLength = 50

// Product is a validated catalog product. CategoryID is a plain
// reference, not an embedded category.
type Product struct {
	id          int64
	createdAt   time.Time
	updatedAt   time.Time
	name        string
	price       float64
	description string
	pictures    []string
	categoryID  int64
}

// NewProduct builds a not-yet-persisted product (id 0, timestamps now).
// Persistence assigns the real id.
func NewProduct(name string, price float64, description string, pictures []string, categoryID int64) (*Product, error) {
	now := time.Now()
	return LoadProduct(0, now, now, name, price, description, pictures, categoryID)
}

// LoadProduct builds a product from persisted fields, running the same
// validation as the mutators
func LoadProduct(id int64, createdAt, updatedAt time.Time, name string, price float64, description string, pictures []string, categoryID int64) (*Product, error) {
	p := &Product{
		id:         id,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		categoryID: categoryID,
	}

	if err := p.SetName(name); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetDescription(description); err != nil {
		return nil, err
	}
	p.SetPictures(pictures)

	return p, nil
}

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() float64 {
	return p.price
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Pictures() []string {
	return p.pictures
}

func (p *Product) CategoryID() int64 {
	return p.categoryID
}

// SetID is called by persistence adapters once a row id is assigned
func (p *Product) SetID(id int64) {
	p.id = id
}

func (p *Product) SetName(name string) error {
	if len(name) > maxProductTextLength {
		return &InvalidProductError{Message: "Name size must be lesser than 50"}
	}
	p.name = name
	return nil
}

func (p *Product) SetPrice(price float64) error {
	if price <= 0 {
		return &InvalidProductError{Message: "Price must be greater than 0"}
	}
	p.price = price
	return nil
}

func (p *Product) SetDescription(description string) error {
	if len(description) > maxProductTextLength {
		return &InvalidProductError{Message: "Description size must be lesser than 50"}
	}
	p.description = description
	return nil
}

func (p *Product) SetPictures(pictures []string) {
	p.pictures = pictures
}

func (p *Product) SetCategoryID(categoryID int64) {
	p.categoryID = categoryID
}
