package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/che1nov/tea-shop/internal/core/domain"
)

type stubCheckout struct {
	order *domain.Order
	err   error

	gotAddress string
	calls      int
}

func (s *stubCheckout) Checkout(_ context.Context, address string) (*domain.Order, error) {
	s.calls++
	s.gotAddress = address
	return s.order, s.err
}

func TestCheckoutHandler_Success(t *testing.T) {
	checkout := &stubCheckout{order: &domain.Order{ID: 7, Total: 420, Status: "created"}}
	h := NewCheckoutHandler(checkout)

	c, rec := newCartContext(http.MethodPost, "/checkout", `{"address":"12 Oolong Lane"}`)
	if err := h.Checkout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if checkout.gotAddress != "12 Oolong Lane" {
		t.Fatalf("address not forwarded, got %q", checkout.gotAddress)
	}

	var order domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if order.ID != 7 || order.Total != 420 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestCheckoutHandler_ServiceErrorPropagates(t *testing.T) {
	checkout := &stubCheckout{err: domain.ErrEmptyCart}
	h := NewCheckoutHandler(checkout)

	c, _ := newCartContext(http.MethodPost, "/checkout", `{"address":"12 Oolong Lane"}`)
	if err := h.Checkout(c); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutResult(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{domain.ErrInvalidAddress, "rejected"},
		{domain.ErrEmptyCart, "rejected"},
		{domain.ErrNotAuthenticated, "rejected"},
		{&domain.RemoteError{Op: "create order", StatusCode: 500}, "remote_error"},
		{errors.New("boom"), "remote_error"},
	}
	for _, tc := range cases {
		if got := checkoutResult(tc.err); got != tc.want {
			t.Errorf("checkoutResult(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
