package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// GoodsHandler proxies read-only catalog queries.
type GoodsHandler struct {
	client ports.ShopClient
}

func NewGoodsHandler(client ports.ShopClient) *GoodsHandler {
	return &GoodsHandler{client: client}
}

type listGoodsResponse struct {
	Goods []domain.Good `json:"goods"`
	Total int64         `json:"total"`
}

// List returns a catalog page.
//
// @Summary      List goods
// @Tags         goods
// @Produce      json
// @Param        limit   query     int  false  "Page size (max 100)"
// @Param        offset  query     int  false  "Page offset"
// @Success      200     {object}  listGoodsResponse
// @Router       /goods [get]
func (h *GoodsHandler) List(c echo.Context) error {
	limit, offset := pageParams(c)

	goods, total, err := h.client.ListGoods(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}
	if goods == nil {
		goods = []domain.Good{}
	}
	return c.JSON(http.StatusOK, listGoodsResponse{Goods: goods, Total: total})
}

// Get returns a single good.
//
// @Summary      Get a good
// @Tags         goods
// @Produce      json
// @Param        id  path      int  true  "Good id"
// @Success      200 {object}  domain.Good
// @Failure      404 {object}  map[string]string
// @Router       /goods/{id} [get]
func (h *GoodsHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	good, err := h.client.GetGood(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, good)
}

type createGoodRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

type updateGoodRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
}

// Create adds a catalog item.
//
// @Summary      Create a good
// @Tags         goods
// @Accept       json
// @Produce      json
// @Param        body  body      createGoodRequest  true  "New good"
// @Success      201   {object}  domain.Good
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /admin/goods [post]
func (h *GoodsHandler) Create(c echo.Context) error {
	var req createGoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	good, err := h.client.CreateGood(c.Request().Context(), ports.CreateGoodInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, good)
}

// Update applies a partial edit to a catalog item; absent fields are left
// unchanged by the goods service.
//
// @Summary      Update a good
// @Tags         goods
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Good id"
// @Param        body  body      updateGoodRequest  true  "Fields to change"
// @Success      200   {object}  domain.Good
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/goods/{id} [put]
func (h *GoodsHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateGoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	good, err := h.client.UpdateGood(c.Request().Context(), id, ports.UpdateGoodInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, good)
}

// Delete removes a catalog item.
//
// @Summary      Delete a good
// @Tags         goods
// @Param        id  path  int  true  "Good id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/goods/{id} [delete]
func (h *GoodsHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.client.DeleteGood(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pageParams parses limit/offset query parameters with defaults and a cap.
func pageParams(c echo.Context) (limit, offset int) {
	limit = defaultPageLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
