// Package checkout turns a cart into the WhatsApp order message the
// customer sends to the restaurant, and the wa.me link that opens it.
package checkout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/cart"
)

var (
	ErrEmptyCart = errors.New("checkout: cart is empty")
	ErrNoContact = errors.New("checkout: restaurant contact number not found")
)

// DefaultLocation is used when the customer gave no delivery address.
const DefaultLocation = "Nairobi (Please ask for exact pin)"

// Order is the composed checkout summary. The restaurant is taken from the
// first cart line: carts are assumed single-restaurant, and mixed carts use
// the first line's restaurant for payment details and contact.
type Order struct {
	Items       []cart.Item
	Subtotal    entity.Money
	DeliveryFee entity.Money
	Total       entity.Money
	Restaurant  cart.RestaurantInfo
	Location    string
}

// Build derives the order summary from the cart. It fails fast when the
// cart is empty or the restaurant has no usable contact number, so no
// broken link is ever constructed downstream.
func Build(c *cart.Cart, location string) (*Order, error) {
	items := c.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	rest := items[0].Restaurant
	if NormalizePhone(rest.WhatsappNumber) == "" {
		return nil, ErrNoContact
	}
	if strings.TrimSpace(location) == "" {
		location = DefaultLocation
	}
	sub := c.Total()
	fee := c.DeliveryFee()
	return &Order{
		Items:       items,
		Subtotal:    sub,
		DeliveryFee: fee,
		Total:       entity.Money(sub.Float() + fee.Float()),
		Restaurant:  rest,
		Location:    location,
	}, nil
}

// PaymentLine picks the payment instruction by priority: till number, then
// paybill, then the raw WhatsApp number as M-Pesa identifier.
func (o *Order) PaymentLine() string {
	switch {
	case o.Restaurant.TillNumber != "":
		return "Till Number " + o.Restaurant.TillNumber
	case o.Restaurant.PaybillNumber != "":
		return "Paybill " + o.Restaurant.PaybillNumber
	default:
		return "M-Pesa Number " + o.Restaurant.WhatsappNumber
	}
}

// Message renders the plain-text order message. Per-item prices keep their
// raw form; totals are shown with two decimals.
func (o *Order) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s, I would like to place an order:\n\n", o.Restaurant.Name)
	for _, it := range o.Items {
		fmt.Fprintf(&b, "%dx %s - KSh %s\n", it.Quantity, it.Name, formatAmount(it.Price))
	}
	fmt.Fprintf(&b, "\n*Subtotal:* KSh %.2f", o.Subtotal.Float())
	fmt.Fprintf(&b, "\n*Delivery Fee:* KSh %.2f", o.DeliveryFee.Float())
	fmt.Fprintf(&b, "\n*TOTAL:* KSh %.2f", o.Total.Float())
	fmt.Fprintf(&b, "\n\nMy Delivery Location: %s", o.Location)
	fmt.Fprintf(&b, "\n\nPaying via: %s", o.PaymentLine())
	return b.String()
}

func formatAmount(m entity.Money) string {
	return strconv.FormatFloat(m.Float(), 'f', -1, 64)
}
