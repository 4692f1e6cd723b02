package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/ports"
)

// DeliveryService drives the operator workflow over delivery records. It
// never mutates a status locally: a transition is requested upstream and
// the caller only ever sees the confirmed remote record.
type DeliveryService struct {
	client ports.ShopClient
	log    zerolog.Logger
}

func NewDeliveryService(client ports.ShopClient, log zerolog.Logger) *DeliveryService {
	return &DeliveryService{client: client, log: log}
}

// List returns a page of delivery records, optionally filtered by status.
func (s *DeliveryService) List(ctx context.Context, filter ports.DeliveryFilter) ([]domain.Delivery, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("list deliveries: unknown status %q", filter.Status)
	}
	return s.client.ListDeliveries(ctx, filter)
}

// Advance requests the single transition allowed from the delivery's
// confirmed status. Terminal or unrecognized statuses have no next state
// and are refused before any remote call is made.
func (s *DeliveryService) Advance(ctx context.Context, id int64, current domain.DeliveryStatus) (*domain.Delivery, error) {
	next, ok := current.Next()
	if !ok {
		return nil, fmt.Errorf("advance delivery %d from %q: %w", id, current, domain.ErrNoTransition)
	}

	updated, err := s.client.UpdateDeliveryStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("delivery_id", id).
		Str("from", string(current)).
		Str("to", string(updated.Status)).
		Msg("delivery advanced")

	return updated, nil
}
