package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/che1nov/tea-shop/internal/api/metrics"
	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/ports"
)

type CheckoutHandler struct {
	checkout ports.CheckoutService
}

func NewCheckoutHandler(checkout ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type checkoutRequest struct {
	Address string `json:"address" validate:"required"`
}

// Checkout places an order from the current cart. On success the cart is
// empty and the confirmed order is returned; on failure the cart is
// untouched and the attempt can simply be repeated.
//
// @Summary      Place an order from the cart
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      checkoutRequest  true  "Delivery address"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /checkout [post]
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.checkout.Checkout(c.Request().Context(), req.Address)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues(checkoutResult(err)).Inc()
		return err
	}

	metrics.CheckoutsTotal.WithLabelValues("success").Inc()
	metrics.OrderValue.Observe(order.Total)

	return c.JSON(http.StatusCreated, order)
}

func checkoutResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrNotAuthenticated):
		return "rejected"
	default:
		return "remote_error"
	}
}
