package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/che1nov/tea-shop/internal/core/ports"
)

// OrderHandler proxies order reads for the post-checkout detail view.
type OrderHandler struct {
	client ports.ShopClient
}

func NewOrderHandler(client ports.ShopClient) *OrderHandler {
	return &OrderHandler{client: client}
}

// Get returns a single order.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id  path      int  true  "Order id"
// @Success      200 {object}  domain.Order
// @Failure      404 {object}  map[string]string
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	order, err := h.client.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
