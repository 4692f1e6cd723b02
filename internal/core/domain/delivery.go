package domain

// DeliveryStatus represents the lifecycle state of a delivery.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

// Valid reports whether s is one of the known delivery statuses.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryPending, DeliveryInTransit, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

// Next returns the single status an operator may advance a delivery to from
// s. The second return is false when no transition is available: delivered
// and cancelled are terminal, and so is any unrecognized value. Cancellation
// is owned by the delivery service and is never offered here.
func (s DeliveryStatus) Next() (DeliveryStatus, bool) {
	switch s {
	case DeliveryPending:
		return DeliveryInTransit, true
	case DeliveryInTransit:
		return DeliveryDelivered, true
	default:
		return "", false
	}
}

// Terminal reports whether no operator transition can ever apply to s.
func (s DeliveryStatus) Terminal() bool {
	_, ok := s.Next()
	return !ok
}

// Delivery is a read copy of the delivery service's record. Status is only
// ever replaced by a confirmed remote response, never updated optimistically.
type Delivery struct {
	ID        int64          `json:"id"`
	OrderID   int64          `json:"order_id"`
	Address   string         `json:"address"`
	Status    DeliveryStatus `json:"status"`
	CreatedAt int64          `json:"created_at"`
	UpdatedAt int64          `json:"updated_at"`
}
