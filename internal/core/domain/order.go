package domain

// OrderLine is a single position in an order request. Price carries the
// cart's add-time snapshot; the order service is the final authority on
// price validation.
type OrderLine struct {
	GoodID   int64   `json:"good_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is the order service's confirmed view of a placed order.
type Order struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Items     []OrderLine `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	Address   string      `json:"address"`
	CreatedAt int64       `json:"created_at"`
}
