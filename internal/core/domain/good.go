package domain

// Good is a catalog item as served by the goods service.
type Good struct {
	ID          int64   `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CreatedAt   int64   `json:"created_at"`
}

// InStock reports whether the good can be added to a cart.
func (g Good) InStock() bool {
	return g.Stock > 0
}
