package domain

import "testing"

func testGood(id int64, name string, price float64) Good {
	return Good{ID: id, Name: name, Price: price, Stock: 10}
}

func TestCart_AddItem_MergesSameGood(t *testing.T) {
	cart := NewCart()
	tea := testGood(1, "Sencha", 100)

	cart.AddItem(tea, 2)
	cart.AddItem(tea, 3)

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", lines[0].Quantity)
	}
	if got := cart.Total(); got != 500 {
		t.Fatalf("expected total 500, got %v", got)
	}
}

func TestCart_AddItem_SnapshotsPriceAtAddTime(t *testing.T) {
	cart := NewCart()
	tea := testGood(1, "Sencha", 100)
	cart.AddItem(tea, 1)

	// Catalog price changes must not move the line: the cart is a quote
	// taken at add time, not a live view of the catalog.
	tea.Price = 250
	cart.AddItem(tea, 1)

	lines := cart.Lines()
	if lines[0].UnitPrice != 100 {
		t.Fatalf("expected snapshot price 100, got %v", lines[0].UnitPrice)
	}
	if got := cart.Total(); got != 200 {
		t.Fatalf("expected total 200, got %v", got)
	}
}

func TestCart_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testGood(3, "Oolong", 300), 1)
	cart.AddItem(testGood(1, "Sencha", 100), 1)
	cart.AddItem(testGood(2, "Pu-erh", 200), 1)

	lines := cart.Lines()
	want := []int64{3, 1, 2}
	for i, id := range want {
		if lines[i].GoodID != id {
			t.Fatalf("position %d: expected good %d, got %d", i, id, lines[i].GoodID)
		}
	}
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testGood(1, "Sencha", 100), 2)

	cart.UpdateQuantity(1, 7)
	if lines := cart.Lines(); lines[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", lines[0].Quantity)
	}

	// Unknown ids are ignored.
	cart.UpdateQuantity(99, 3)
	if got := cart.ItemCount(); got != 7 {
		t.Fatalf("expected item count 7, got %d", got)
	}
}

func TestCart_UpdateQuantity_NonPositiveRemoves(t *testing.T) {
	for _, qty := range []int{0, -5} {
		cart := NewCart()
		cart.AddItem(testGood(1, "Sencha", 100), 2)

		cart.UpdateQuantity(1, qty)
		if !cart.IsEmpty() {
			t.Fatalf("quantity %d: expected line removed", qty)
		}
	}
}

func TestCart_RemoveItem_AbsentIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testGood(1, "Sencha", 100), 2)

	cart.RemoveItem(42)

	if len(cart.Lines()) != 1 {
		t.Fatalf("cart changed by removing absent id")
	}
	if got := cart.Total(); got != 200 {
		t.Fatalf("expected total 200, got %v", got)
	}
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testGood(1, "Sencha", 100), 2)
	cart.AddItem(testGood(2, "Pu-erh", 200), 1)

	cart.Clear()

	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart")
	}
	if got := cart.Total(); got != 0 {
		t.Fatalf("expected total 0, got %v", got)
	}
	if got := cart.ItemCount(); got != 0 {
		t.Fatalf("expected item count 0, got %d", got)
	}
}

func TestCart_DerivedValuesRecomputed(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testGood(1, "Sencha", 100), 2)
	cart.AddItem(testGood(2, "Pu-erh", 250), 1)

	if got := cart.Total(); got != 450 {
		t.Fatalf("expected total 450, got %v", got)
	}
	if got := cart.ItemCount(); got != 3 {
		t.Fatalf("expected item count 3, got %d", got)
	}

	cart.UpdateQuantity(2, 4)
	if got := cart.Total(); got != 1200 {
		t.Fatalf("expected total 1200 after update, got %v", got)
	}
	if got := cart.ItemCount(); got != 6 {
		t.Fatalf("expected item count 6 after update, got %d", got)
	}
}
