package ports

import (
	"context"

	"github.com/che1nov/tea-shop/internal/core/domain"
)

// CreateOrderInput carries everything sent to the order service. The
// idempotency key makes a client-side retry of the same confirmation safe.
type CreateOrderInput struct {
	Items          []domain.OrderLine
	Address        string
	IdempotencyKey string
}

// DeliveryFilter narrows ListDeliveries. An empty Status means no filter.
type DeliveryFilter struct {
	Status domain.DeliveryStatus
	Limit  int
	Offset int
}

// CreateGoodInput carries a new catalog item to the goods service.
type CreateGoodInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

// UpdateGoodInput is a partial catalog update; nil fields are left as-is
// by the goods service.
type UpdateGoodInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

// ShopClient is the contract this layer requires from the tea-shop API.
// Every method returns *domain.RemoteError on transport or upstream
// failure; no method partially applies.
type ShopClient interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	ListGoods(ctx context.Context, limit, offset int) ([]domain.Good, int64, error)
	GetGood(ctx context.Context, id int64) (*domain.Good, error)
	CreateGood(ctx context.Context, input CreateGoodInput) (*domain.Good, error)
	UpdateGood(ctx context.Context, id int64, input UpdateGoodInput) (*domain.Good, error)
	DeleteGood(ctx context.Context, id int64) error

	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)

	ListDeliveries(ctx context.Context, filter DeliveryFilter) ([]domain.Delivery, int64, error)
	UpdateDeliveryStatus(ctx context.Context, id int64, status domain.DeliveryStatus) (*domain.Delivery, error)
}
