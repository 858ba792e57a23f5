package cart

import (
	"encoding/json"
	"testing"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
)

func item(id uint, price float64) Item {
	return Item{ProductID: id, Name: "item", Price: entity.Money(price)}
}

func TestAddItemMergesSameProduct(t *testing.T) {
	c := New()
	c.AddItem(item(5, 100))
	c.AddItem(item(5, 100))

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("got %d lines, want 1", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", items[0].Quantity)
	}
	if got := c.Total().Float(); got != 200 {
		t.Errorf("total = %v, want 200", got)
	}
}

func TestAddItemAccumulatesPerCall(t *testing.T) {
	c := New()
	for i := 0; i < 7; i++ {
		c.AddItem(item(1, 50))
	}
	items := c.Items()
	if len(items) != 1 || items[0].Quantity != 7 {
		t.Fatalf("got %d lines qty %d, want 1 line qty 7", len(items), items[0].Quantity)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := New()
	c.AddItem(item(3, 10))
	c.AddItem(item(1, 20))
	c.AddItem(item(2, 30))
	c.AddItem(item(1, 20)) // merge must not reorder

	var got []uint
	for _, it := range c.Items() {
		got = append(got, it.ProductID)
	}
	want := []uint{3, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDecrementFloorsAtOne(t *testing.T) {
	c := New()
	c.AddItem(item(1, 100))

	c.DecrementQuantity(1)
	if items := c.Items(); items[0].Quantity != 1 {
		t.Errorf("quantity = %d, want 1 (decrement at 1 is a no-op)", items[0].Quantity)
	}

	c.IncrementQuantity(1)
	c.DecrementQuantity(1)
	if items := c.Items(); items[0].Quantity != 1 {
		t.Errorf("quantity = %d, want 1", items[0].Quantity)
	}
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	c := New()
	c.AddItem(item(1, 100))

	c.IncrementQuantity(99)
	c.DecrementQuantity(99)
	c.RemoveItem(99)

	items := c.Items()
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("cart disturbed by unknown ids: %+v", items)
	}
}

func TestRemoveDeletesLine(t *testing.T) {
	c := New()
	c.AddItem(item(1, 100))
	c.AddItem(item(2, 200))
	c.RemoveItem(1)

	items := c.Items()
	if len(items) != 1 || items[0].ProductID != 2 {
		t.Fatalf("got %+v, want only product 2", items)
	}
}

func TestTotalScenario(t *testing.T) {
	// [{id:1, price:500, qty:2}, {id:2, price:300, qty:1}] -> 1300
	c := New()
	c.AddItem(item(1, 500))
	c.IncrementQuantity(1)
	c.AddItem(item(2, 300))

	if got := c.Total().Float(); got != 1300 {
		t.Errorf("total = %v, want 1300", got)
	}
	if got := c.DeliveryFee().Float(); got != 0 {
		t.Errorf("delivery fee = %v, want 0", got)
	}
}

func TestEmptyCartTotalIsZero(t *testing.T) {
	c := New()
	if got := c.Total().Float(); got != 0 {
		t.Errorf("total = %v, want 0", got)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(item(1, 500))
	c.AddItem(item(2, 300))
	c.Clear()

	if len(c.Items()) != 0 {
		t.Errorf("items = %v, want empty", c.Items())
	}
	if got := c.Total().Float(); got != 0 {
		t.Errorf("total after clear = %v, want 0", got)
	}
}

func TestStringPriceCoercion(t *testing.T) {
	// prices arriving as decimal strings from the legacy API still total
	var it Item
	if err := json.Unmarshal([]byte(`{"id":1,"name":"Pilau","price":"450.00"}`), &it); err != nil {
		t.Fatal(err)
	}
	c := New()
	c.AddItem(it)
	if got := c.Total().Float(); got != 450 {
		t.Errorf("total = %v, want 450", got)
	}
}

func TestDeliveryFeeSumsShippingPerLine(t *testing.T) {
	c := New()
	a := item(1, 100)
	a.ShippingFee = 50
	b := item(2, 100)
	// b has no shipping fee: counts as 0
	c.AddItem(a)
	c.AddItem(b)
	c.IncrementQuantity(1) // fee is per line, not per unit

	if got := c.DeliveryFee().Float(); got != 50 {
		t.Errorf("delivery fee = %v, want 50", got)
	}
}

func TestStoreIsolatesUsers(t *testing.T) {
	s := NewStore()
	s.With(1, func(c *Cart) { c.AddItem(item(1, 100)) })
	s.With(2, func(c *Cart) { c.AddItem(item(2, 200)) })

	if got := s.Items(1); len(got) != 1 || got[0].ProductID != 1 {
		t.Fatalf("user 1 cart = %+v", got)
	}
	if got := s.Items(2); len(got) != 1 || got[0].ProductID != 2 {
		t.Fatalf("user 2 cart = %+v", got)
	}

	s.Drop(1)
	if got := s.Items(1); len(got) != 0 {
		t.Fatalf("dropped cart should be empty, got %+v", got)
	}
}

func TestStoreItemsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.With(1, func(c *Cart) { c.AddItem(item(1, 100)) })

	got := s.Items(1)
	got[0].Quantity = 99

	if fresh := s.Items(1); fresh[0].Quantity != 1 {
		t.Errorf("mutating the returned slice leaked into the store: qty %d", fresh[0].Quantity)
	}
}
