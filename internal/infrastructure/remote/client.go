// Package remote implements the HTTP client for the tea-shop API
// (api-gateway fronting the goods, orders, users, and delivery services).
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/che1nov/tea-shop/internal/api/metrics"
	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// TokenFunc supplies the current bearer token; empty means unauthenticated.
type TokenFunc func() string

// Client implements ports.ShopClient over the tea-shop REST API.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenFunc
	log     zerolog.Logger
}

var _ ports.ShopClient = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration, token TokenFunc, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log,
	}
}

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (c *Client) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	body := map[string]string{"email": email, "name": name, "password": password}
	var user domain.User
	if err := c.do(ctx, "register", http.MethodPost, "/auth/register", nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		var re *domain.RemoteError
		if errors.As(err, &re) && re.StatusCode == http.StatusUnauthorized {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	return resp.Token, &resp.User, nil
}

type listGoodsResponse struct {
	Goods []domain.Good `json:"goods"`
	Total int64         `json:"total"`
}

func (c *Client) ListGoods(ctx context.Context, limit, offset int) ([]domain.Good, int64, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var resp listGoodsResponse
	if err := c.do(ctx, "list_goods", http.MethodGet, "/goods?"+q.Encode(), nil, nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Goods, resp.Total, nil
}

func (c *Client) GetGood(ctx context.Context, id int64) (*domain.Good, error) {
	var good domain.Good
	err := c.do(ctx, "get_good", http.MethodGet, fmt.Sprintf("/goods/%d", id), nil, nil, &good)
	if err != nil {
		var re *domain.RemoteError
		if errors.As(err, &re) && re.StatusCode == http.StatusNotFound {
			return nil, domain.ErrGoodNotFound
		}
		return nil, err
	}
	return &good, nil
}

type createGoodRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

func (c *Client) CreateGood(ctx context.Context, input ports.CreateGoodInput) (*domain.Good, error) {
	body := createGoodRequest{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
	}
	var good domain.Good
	if err := c.do(ctx, "create_good", http.MethodPost, "/admin/goods", nil, body, &good); err != nil {
		return nil, err
	}
	return &good, nil
}

// updateGoodRequest omits unset fields so the goods service applies a
// partial update.
type updateGoodRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

func (c *Client) UpdateGood(ctx context.Context, id int64, input ports.UpdateGoodInput) (*domain.Good, error) {
	body := updateGoodRequest{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
	}
	var good domain.Good
	err := c.do(ctx, "update_good", http.MethodPut, fmt.Sprintf("/admin/goods/%d", id), nil, body, &good)
	if err != nil {
		var re *domain.RemoteError
		if errors.As(err, &re) && re.StatusCode == http.StatusNotFound {
			return nil, domain.ErrGoodNotFound
		}
		return nil, err
	}
	return &good, nil
}

func (c *Client) DeleteGood(ctx context.Context, id int64) error {
	err := c.do(ctx, "delete_good", http.MethodDelete, fmt.Sprintf("/admin/goods/%d", id), nil, nil, nil)
	if err != nil {
		var re *domain.RemoteError
		if errors.As(err, &re) && re.StatusCode == http.StatusNotFound {
			return domain.ErrGoodNotFound
		}
		return err
	}
	return nil
}

type createOrderRequest struct {
	Items   []domain.OrderLine `json:"items"`
	Address string             `json:"address"`
}

func (c *Client) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	headers := http.Header{}
	if input.IdempotencyKey != "" {
		headers.Set("Idempotency-Key", input.IdempotencyKey)
	}

	var order domain.Order
	body := createOrderRequest{Items: input.Items, Address: input.Address}
	if err := c.do(ctx, "create_order", http.MethodPost, "/orders", headers, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, "get_order", http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

type listDeliveriesResponse struct {
	Deliveries []domain.Delivery `json:"deliveries"`
	Total      int64             `json:"total"`
}

func (c *Client) ListDeliveries(ctx context.Context, filter ports.DeliveryFilter) ([]domain.Delivery, int64, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(filter.Limit))
	q.Set("offset", strconv.Itoa(filter.Offset))
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}

	var resp listDeliveriesResponse
	if err := c.do(ctx, "list_deliveries", http.MethodGet, "/admin/deliveries?"+q.Encode(), nil, nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Deliveries, resp.Total, nil
}

type updateDeliveryStatusRequest struct {
	Status domain.DeliveryStatus `json:"status"`
}

func (c *Client) UpdateDeliveryStatus(ctx context.Context, id int64, status domain.DeliveryStatus) (*domain.Delivery, error) {
	var delivery domain.Delivery
	path := fmt.Sprintf("/admin/deliveries/%d/status", id)
	if err := c.do(ctx, "update_delivery_status", http.MethodPut, path, nil, updateDeliveryStatusRequest{Status: status}, &delivery); err != nil {
		return nil, err
	}
	return &delivery, nil
}

// Ping probes the upstream gateway for the readiness endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "health", http.MethodGet, "/health", nil, nil, nil)
}

// errorEnvelope is the upstream error body: {"error": "..."}.
type errorEnvelope struct {
	Error string `json:"error"`
}

// do performs one request against the upstream API, attaching the bearer
// token when present, and decodes a 2xx JSON body into out. Failures are
// reported as *domain.RemoteError; the request is never retried here.
func (c *Client) do(ctx context.Context, op, method, path string, headers http.Header, body, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, headers, body, out)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.UpstreamRequestDuration.WithLabelValues(op, outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("upstream request failed")
		return err
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, headers http.Header, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &domain.RemoteError{Op: op, Message: "encode request", Err: err}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.RemoteError{Op: op, Message: "build request", Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.RemoteError{Op: op, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := http.StatusText(resp.StatusCode)
		var envelope errorEnvelope
		if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&envelope); decodeErr == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return &domain.RemoteError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.RemoteError{Op: op, Message: "decode response", Err: err}
	}
	return nil
}
