package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/che1nov/tea-shop/internal/api/metrics"
	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/ports"
)

// DeliveryHandler exposes the operator workflow over delivery records.
type DeliveryHandler struct {
	deliveries ports.DeliveryService
}

func NewDeliveryHandler(deliveries ports.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries}
}

type listDeliveriesResponse struct {
	Deliveries []domain.Delivery `json:"deliveries"`
	Total      int64             `json:"total"`
}

type advanceDeliveryRequest struct {
	// Status is the delivery's currently displayed (confirmed) status;
	// the server computes the single allowed next status from it.
	Status domain.DeliveryStatus `json:"status" validate:"required,oneof=pending in_transit delivered cancelled"`
}

// List returns a page of deliveries, optionally filtered by status.
//
// @Summary      List deliveries
// @Tags         deliveries
// @Produce      json
// @Param        status  query     string  false  "Status filter"  Enums(pending, in_transit, delivered, cancelled)
// @Param        limit   query     int     false  "Page size (max 100)"
// @Param        offset  query     int     false  "Page offset"
// @Success      200     {object}  listDeliveriesResponse
// @Failure      403     {object}  map[string]string
// @Router       /admin/deliveries [get]
func (h *DeliveryHandler) List(c echo.Context) error {
	limit, offset := pageParams(c)
	status := domain.DeliveryStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status filter")
	}

	deliveries, total, err := h.deliveries.List(c.Request().Context(), ports.DeliveryFilter{
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}
	if deliveries == nil {
		deliveries = []domain.Delivery{}
	}
	return c.JSON(http.StatusOK, listDeliveriesResponse{Deliveries: deliveries, Total: total})
}

// Advance requests the single allowed transition for a delivery and
// returns the confirmed record. Terminal statuses are refused with 422
// before any upstream call.
//
// @Summary      Advance a delivery to its next status
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Delivery id"
// @Param        body  body      advanceDeliveryRequest  true  "Current confirmed status"
// @Success      200   {object}  domain.Delivery
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /admin/deliveries/{id}/advance [post]
func (h *DeliveryHandler) Advance(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req advanceDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.deliveries.Advance(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}

	metrics.DeliveryTransitionsTotal.WithLabelValues(string(req.Status), string(updated.Status)).Inc()

	return c.JSON(http.StatusOK, updated)
}
