package services

import (
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/cart"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/repository"
)

// CartService fronts the in-memory session carts. Only Add touches the
// database (to snapshot the product); everything else is pure cart state.
type CartService struct {
	Carts    *cart.Store
	Products *repository.ProductRepository
}

func NewCartService(store *cart.Store, products *repository.ProductRepository) *CartService {
	return &CartService{Carts: store, Products: products}
}

// CartView is what GET /cart returns.
type CartView struct {
	Items       []cart.Item  `json:"items"`
	Subtotal    entity.Money `json:"subtotal"`
	DeliveryFee entity.Money `json:"delivery_fee"`
	Total       entity.Money `json:"total"`
}

func (s *CartService) Get(userID uint) CartView {
	var v CartView
	s.Carts.With(userID, func(c *cart.Cart) {
		v.Items = c.Items()
		v.Subtotal = c.Total()
		v.DeliveryFee = c.DeliveryFee()
		v.Total = entity.Money(v.Subtotal.Float() + v.DeliveryFee.Float())
	})
	return v
}

// Add snapshots the product into a cart line. Re-adding the same product
// merges into the existing line.
func (s *CartService) Add(userID, productID uint) error {
	p, err := s.Products.Get(productID)
	if err != nil {
		return err
	}

	item := cart.Item{
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		ShippingFee: p.ShippingFee,
	}
	if p.Restaurant != nil {
		item.Restaurant = cart.RestaurantInfo{
			ID:                p.Restaurant.ID,
			Name:              p.Restaurant.Name,
			WhatsappNumber:    p.Restaurant.WhatsappNumber,
			TillNumber:        p.Restaurant.TillNumber,
			PaybillNumber:     p.Restaurant.PaybillNumber,
			BankName:          p.Restaurant.BankName,
			BankAccountNumber: p.Restaurant.BankAccountNumber,
		}
	}

	s.Carts.With(userID, func(c *cart.Cart) { c.AddItem(item) })
	return nil
}

func (s *CartService) Increment(userID, productID uint) {
	s.Carts.With(userID, func(c *cart.Cart) { c.IncrementQuantity(productID) })
}

func (s *CartService) Decrement(userID, productID uint) {
	s.Carts.With(userID, func(c *cart.Cart) { c.DecrementQuantity(productID) })
}

func (s *CartService) Remove(userID, productID uint) {
	s.Carts.With(userID, func(c *cart.Cart) { c.RemoveItem(productID) })
}

func (s *CartService) Clear(userID uint) {
	s.Carts.With(userID, func(c *cart.Cart) { c.Clear() })
}
