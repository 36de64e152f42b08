package entity

// ProductDetail joins a product with its category and stock for
// presentation. It is assembled per query, never persisted.
// Category may be nil when the caller tolerates an unresolved
// category (stock reservation does).
type ProductDetail struct {
	Product  *Product
	Category *Category
	Stock    *Stock
}

// ProductWithQuantity is a single reservation request line
type ProductWithQuantity struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}
