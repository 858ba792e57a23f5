package cart

import (
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
)

// RestaurantInfo is the snapshot of the owning restaurant a cart line
// carries. Checkout reads payment identifiers from the first line's
// snapshot.
type RestaurantInfo struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	WhatsappNumber    string `json:"whatsapp_number"`
	TillNumber        string `json:"till_number"`
	PaybillNumber     string `json:"paybill_number"`
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
}

// Item is one cart line. Identity is the product id: adding the same
// product again merges into the existing line.
type Item struct {
	ProductID   uint           `json:"id"`
	Name        string         `json:"name"`
	Price       entity.Money   `json:"price"`
	Image       string         `json:"image"`
	Quantity    int            `json:"quantity"`
	ShippingFee entity.Money   `json:"shipping_fee"`
	Restaurant  RestaurantInfo `json:"restaurant_data"`
}

// Cart holds lines in insertion order. All operations are total: unknown
// product ids are no-ops, nothing errors. Cart state is session-scoped and
// never persisted.
type Cart struct {
	items []Item
}

func New() *Cart { return &Cart{} }

func (c *Cart) find(productID uint) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem merges into an existing line (quantity+1) or appends a new line
// with quantity 1, keeping insertion order.
func (c *Cart) AddItem(it Item) {
	if i := c.find(it.ProductID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	it.Quantity = 1
	c.items = append(c.items, it)
}

// RemoveItem deletes the line entirely. Absent ids are a no-op.
func (c *Cart) RemoveItem(productID uint) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

func (c *Cart) IncrementQuantity(productID uint) {
	if i := c.find(productID); i >= 0 {
		c.items[i].Quantity++
	}
}

// DecrementQuantity floors at 1; a quantity-1 line is left unchanged.
// Removal only ever happens through RemoveItem.
func (c *Cart) DecrementQuantity(productID uint) {
	if i := c.find(productID); i >= 0 && c.items[i].Quantity > 1 {
		c.items[i].Quantity--
	}
}

func (c *Cart) Clear() { c.items = nil }

func (c *Cart) Len() int { return len(c.items) }

// Items returns a copy so callers cannot mutate lines behind the cart's
// back.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Total is Σ price×quantity. Pure, recomputed on every call.
func (c *Cart) Total() entity.Money {
	var total float64
	for i := range c.items {
		total += c.items[i].Price.Float() * float64(c.items[i].Quantity)
	}
	return entity.Money(total)
}

// DeliveryFee is Σ shipping_fee over the lines; missing fees count as 0.
// Fees are per line, not multiplied by quantity.
func (c *Cart) DeliveryFee() entity.Money {
	var fee float64
	for i := range c.items {
		fee += c.items[i].ShippingFee.Float()
	}
	return entity.Money(fee)
}
