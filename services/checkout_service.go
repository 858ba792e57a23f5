package services

import (
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/cart"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/checkout"
)

// CheckoutService composes the WhatsApp hand-off for the current cart. It
// does not clear the cart: that happens when the order is actually placed.
type CheckoutService struct {
	Carts *cart.Store
}

func NewCheckoutService(store *cart.Store) *CheckoutService {
	return &CheckoutService{Carts: store}
}

// WhatsAppOut carries everything the client needs to hand the order to the
// restaurant chat.
type WhatsAppOut struct {
	Restaurant  string  `json:"restaurant"`
	Message     string  `json:"message"`
	Link        string  `json:"link"`
	DialLink    string  `json:"dial_link"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

func (s *CheckoutService) WhatsApp(userID uint, location string) (*WhatsAppOut, error) {
	var (
		o   *checkout.Order
		err error
	)
	s.Carts.With(userID, func(c *cart.Cart) {
		o, err = checkout.Build(c, location)
	})
	if err != nil {
		return nil, err
	}

	link, err := o.Link()
	if err != nil {
		return nil, err
	}
	dial, _ := o.DialLink()

	return &WhatsAppOut{
		Restaurant:  o.Restaurant.Name,
		Message:     o.Message(),
		Link:        link,
		DialLink:    dial,
		Subtotal:    o.Subtotal.Float(),
		DeliveryFee: o.DeliveryFee.Float(),
		Total:       o.Total.Float(),
	}, nil
}
