package ports

import (
	"context"

	"github.com/che1nov/tea-shop/internal/core/domain"
)

// CheckoutService converts the current cart into a placed order.
type CheckoutService interface {
	Checkout(ctx context.Context, address string) (*domain.Order, error)
}

// DeliveryService exposes the operator-facing delivery workflow.
type DeliveryService interface {
	List(ctx context.Context, filter DeliveryFilter) ([]domain.Delivery, int64, error)
	// Advance requests the single allowed transition from the delivery's
	// confirmed status and returns the updated remote record.
	Advance(ctx context.Context, id int64, current domain.DeliveryStatus) (*domain.Delivery, error)
}
