package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/ports"
)

func TestDeliveryService_Advance_RequestsNextStatus(t *testing.T) {
	var requested domain.DeliveryStatus
	client := &stubShopClient{
		updateDeliveryFn: func(_ context.Context, id int64, status domain.DeliveryStatus) (*domain.Delivery, error) {
			requested = status
			return &domain.Delivery{ID: id, OrderID: 9, Status: status}, nil
		},
	}
	svc := NewDeliveryService(client, zerolog.Nop())

	updated, err := svc.Advance(context.Background(), 5, domain.DeliveryPending)
	if err != nil {
		t.Fatalf("advance returned error: %v", err)
	}
	if requested != domain.DeliveryInTransit {
		t.Fatalf("expected requested status in_transit, got %q", requested)
	}
	if updated.Status != domain.DeliveryInTransit {
		t.Fatalf("expected confirmed status in_transit, got %q", updated.Status)
	}

	if _, err := svc.Advance(context.Background(), 5, domain.DeliveryInTransit); err != nil {
		t.Fatalf("advance from in_transit: %v", err)
	}
	if requested != domain.DeliveryDelivered {
		t.Fatalf("expected requested status delivered, got %q", requested)
	}
}

func TestDeliveryService_Advance_TerminalRefusedLocally(t *testing.T) {
	client := &stubShopClient{}
	svc := NewDeliveryService(client, zerolog.Nop())

	for _, s := range []domain.DeliveryStatus{domain.DeliveryDelivered, domain.DeliveryCancelled, "bogus"} {
		if _, err := svc.Advance(context.Background(), 1, s); !errors.Is(err, domain.ErrNoTransition) {
			t.Fatalf("%q: expected ErrNoTransition, got %v", s, err)
		}
	}
	if client.updateDeliveryCalls != 0 {
		t.Fatalf("remote called for a terminal status")
	}
}

func TestDeliveryService_Advance_RemoteFailureSurfaced(t *testing.T) {
	client := &stubShopClient{
		updateDeliveryFn: func(context.Context, int64, domain.DeliveryStatus) (*domain.Delivery, error) {
			return nil, &domain.RemoteError{Op: "update delivery status", StatusCode: 502, Message: "bad gateway"}
		},
	}
	svc := NewDeliveryService(client, zerolog.Nop())

	_, err := svc.Advance(context.Background(), 5, domain.DeliveryPending)
	var re *domain.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
}

func TestDeliveryService_List_UnknownStatusRejected(t *testing.T) {
	svc := NewDeliveryService(&stubShopClient{}, zerolog.Nop())

	if _, _, err := svc.List(context.Background(), ports.DeliveryFilter{Status: "refunded"}); err == nil {
		t.Fatalf("expected error for unknown status filter")
	}
}

func TestDeliveryService_List_PassesFilter(t *testing.T) {
	var got ports.DeliveryFilter
	client := &stubShopClient{
		listDeliveriesFn: func(_ context.Context, filter ports.DeliveryFilter) ([]domain.Delivery, int64, error) {
			got = filter
			return []domain.Delivery{{ID: 1, Status: domain.DeliveryPending}}, 1, nil
		},
	}
	svc := NewDeliveryService(client, zerolog.Nop())

	items, total, err := svc.List(context.Background(), ports.DeliveryFilter{Status: domain.DeliveryPending, Limit: 100})
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("unexpected result: %d items, total %d", len(items), total)
	}
	if got.Status != domain.DeliveryPending || got.Limit != 100 {
		t.Fatalf("filter not forwarded: %+v", got)
	}
}
