package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/ports"
)

func TestGoodsHandler_Create(t *testing.T) {
	var got ports.CreateGoodInput
	client := &stubClient{
		createGoodFn: func(_ context.Context, input ports.CreateGoodInput) (*domain.Good, error) {
			got = input
			return &domain.Good{ID: 11, Name: input.Name, Price: input.Price, Stock: input.Stock}, nil
		},
	}
	h := NewGoodsHandler(client)

	c, rec := newCartContext(http.MethodPost, "/admin/goods",
		`{"name":"Gyokuro","description":"shade grown","price":900,"stock":12}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Name != "Gyokuro" || got.Description != "shade grown" || got.Price != 900 || got.Stock != 12 {
		t.Fatalf("input not forwarded: %+v", got)
	}

	var good domain.Good
	if err := json.Unmarshal(rec.Body.Bytes(), &good); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if good.ID != 11 {
		t.Fatalf("expected created good id 11, got %d", good.ID)
	}
}

func TestGoodsHandler_Create_MissingNameRejected(t *testing.T) {
	called := false
	client := &stubClient{
		createGoodFn: func(context.Context, ports.CreateGoodInput) (*domain.Good, error) {
			called = true
			return nil, nil
		},
	}
	h := NewGoodsHandler(client)

	c, _ := newCartContext(http.MethodPost, "/admin/goods", `{"price":100,"stock":1}`)
	err := h.Create(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if called {
		t.Fatalf("remote called despite invalid payload")
	}
}

func TestGoodsHandler_Update_ForwardsOnlySetFields(t *testing.T) {
	var got ports.UpdateGoodInput
	client := &stubClient{
		updateGoodFn: func(_ context.Context, id int64, input ports.UpdateGoodInput) (*domain.Good, error) {
			if id != 4 {
				t.Fatalf("expected id 4, got %d", id)
			}
			got = input
			return &domain.Good{ID: id, Name: "Sencha", Price: *input.Price}, nil
		},
	}
	h := NewGoodsHandler(client)

	c, rec := newCartContext(http.MethodPut, "/admin/goods/4", `{"price":150}`)
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Price == nil || *got.Price != 150 {
		t.Fatalf("price not forwarded: %+v", got)
	}
	if got.Name != nil || got.Description != nil || got.Stock != nil {
		t.Fatalf("unset fields must stay nil: %+v", got)
	}
}

func TestGoodsHandler_Update_UnknownGood(t *testing.T) {
	client := &stubClient{
		updateGoodFn: func(context.Context, int64, ports.UpdateGoodInput) (*domain.Good, error) {
			return nil, domain.ErrGoodNotFound
		},
	}
	h := NewGoodsHandler(client)

	c, _ := newCartContext(http.MethodPut, "/admin/goods/99", `{"stock":3}`)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Update(c); !errors.Is(err, domain.ErrGoodNotFound) {
		t.Fatalf("expected ErrGoodNotFound, got %v", err)
	}
}

func TestGoodsHandler_Delete(t *testing.T) {
	var deleted int64
	client := &stubClient{
		deleteGoodFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	h := NewGoodsHandler(client)

	c, rec := newCartContext(http.MethodDelete, "/admin/goods/6", "")
	c.SetParamNames("id")
	c.SetParamValues("6")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != 6 {
		t.Fatalf("expected delete of good 6, got %d", deleted)
	}
}
