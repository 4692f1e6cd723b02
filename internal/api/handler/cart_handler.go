package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/che1nov/tea-shop/internal/api/metrics"
	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/ports"
)

// CartHandler exposes the cart aggregate to the UI. Goods are fetched from
// the catalog at add time so the line snapshots the current name and price;
// the aggregate itself never performs I/O.
type CartHandler struct {
	cart   *domain.Cart
	client ports.ShopClient
}

func NewCartHandler(cart *domain.Cart, client ports.ShopClient) *CartHandler {
	return &CartHandler{cart: cart, client: client}
}

type addItemRequest struct {
	GoodID   int64 `json:"good_id" validate:"required,gte=1"`
	Quantity int   `json:"quantity" validate:"gte=0"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items     []domain.CartLine `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}

// Get returns the cart lines with freshly derived totals.
//
// @Summary      Current cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.view())
}

// AddItem merges a catalog good into the cart. Out-of-stock goods are
// refused before the aggregate is touched; quantity defaults to 1.
//
// @Summary      Add an item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addItemRequest  true  "Good and quantity"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	good, err := h.client.GetGood(c.Request().Context(), req.GoodID)
	if err != nil {
		return err
	}
	if !good.InStock() {
		return domain.ErrOutOfStock
	}

	h.cart.AddItem(*good, req.Quantity)
	metrics.CartOperationsTotal.WithLabelValues("add").Inc()

	return c.JSON(http.StatusOK, h.view())
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
//
// @Summary      Update a cart line's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Good id"
// @Param        body  body      updateQuantityRequest  true  "New quantity"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  map[string]string
// @Router       /cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	h.cart.UpdateQuantity(id, req.Quantity)
	metrics.CartOperationsTotal.WithLabelValues("update").Inc()

	return c.JSON(http.StatusOK, h.view())
}

// Remove deletes a cart line; removing an absent line is not an error.
//
// @Summary      Remove a cart line
// @Tags         cart
// @Produce      json
// @Param        id  path      int  true  "Good id"
// @Success      200 {object}  cartResponse
// @Router       /cart/items/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	h.cart.RemoveItem(id)
	metrics.CartOperationsTotal.WithLabelValues("remove").Inc()

	return c.JSON(http.StatusOK, h.view())
}

// Clear empties the cart.
//
// @Summary      Clear the cart
// @Tags         cart
// @Success      204
// @Router       /cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	h.cart.Clear()
	metrics.CartOperationsTotal.WithLabelValues("clear").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) view() cartResponse {
	lines := h.cart.Lines()
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartResponse{
		Items:     lines,
		Total:     h.cart.Total(),
		ItemCount: h.cart.ItemCount(),
	}
}

// pathID parses the numeric :id path parameter shared by several routes.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
