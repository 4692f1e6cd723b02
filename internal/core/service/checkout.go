package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/ports"
)

// CheckoutService turns the current cart into an order request against the
// order service. The cart is cleared only after the remote call succeeds;
// any failure leaves it untouched so the shopper can retry without
// re-adding items.
type CheckoutService struct {
	cart    *domain.Cart
	session *SessionStore
	client  ports.ShopClient
	log     zerolog.Logger

	mu  sync.Mutex
	key string // idempotency key, held until a checkout succeeds
}

func NewCheckoutService(cart *domain.Cart, session *SessionStore, client ports.ShopClient, log zerolog.Logger) *CheckoutService {
	return &CheckoutService{cart: cart, session: session, client: client, log: log}
}

// Checkout places an order for every cart line at its add-time snapshot
// price; the order service is the final authority on price validation.
// A retry after a failed attempt replays the same idempotency key, so the
// order service can collapse duplicates; the key rotates once an order is
// confirmed.
func (s *CheckoutService) Checkout(ctx context.Context, address string) (*domain.Order, error) {
	if !s.session.IsAuthenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	if strings.TrimSpace(address) == "" {
		return nil, domain.ErrInvalidAddress
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderLine{
			GoodID:   line.GoodID,
			Quantity: line.Quantity,
			Price:    line.UnitPrice,
		})
	}

	order, err := s.client.CreateOrder(ctx, ports.CreateOrderInput{
		Items:          items,
		Address:        address,
		IdempotencyKey: s.idempotencyKey(),
	})
	if err != nil {
		s.log.Error().Err(err).Int("lines", len(items)).Msg("checkout failed, cart preserved")
		return nil, err
	}

	s.cart.Clear()
	s.rotateKey()

	s.log.Info().
		Int64("order_id", order.ID).
		Float64("total", order.Total).
		Int("lines", len(items)).
		Msg("order placed")

	return order, nil
}

func (s *CheckoutService) idempotencyKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.key == "" {
		s.key = uuid.NewString()
	}
	return s.key
}

func (s *CheckoutService) rotateKey() {
	s.mu.Lock()
	s.key = ""
	s.mu.Unlock()
}
