package services

import (
	"errors"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/cart"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/tracking"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/repository"
	"gorm.io/gorm"
)

// DeliveryFee is the flat KSh fee added to delivered orders.
const DeliveryFee = 500

// FeedRestarter restarts a user's live tracking feed after the tracker
// resets. Implemented by ws.TrackHub.
type FeedRestarter interface {
	Restart(userID uint)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Products *repository.ProductRepository
	Carts    *cart.Store
	Trackers *tracking.Registry
	Feeds    FeedRestarter
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	products *repository.ProductRepository,
	carts *cart.Store,
	trackers *tracking.Registry,
	feeds FeedRestarter,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, Products: products, Carts: carts, Trackers: trackers, Feeds: feeds}
}

// ----- DTOs from controller -----

type OrderItemIn struct {
	ID       uint `json:"id" binding:"required"`
	Quantity int  `json:"quantity" binding:"min=1"`
}

type CreateOrderReq struct {
	Items           []OrderItemIn `json:"items" binding:"required"`
	DeliveryAddress string        `json:"delivery_address" binding:"required"`
	PaymentMethod   string        `json:"payment_method"`
}

// DeliveryApplies reports whether the address incurs the delivery fee.
// Pickup orders and blank addresses do not.
func DeliveryApplies(address string) bool {
	return address != "" && address != "Pickup"
}

// Priced is one order line after product lookup: the post-discount unit
// price and quantity.
type Priced struct {
	UnitPrice entity.Money
	Quantity  int
}

// OrderTotal is the pure total computation: Σ unit×qty plus the flat
// delivery fee when the address calls for delivery.
func OrderTotal(lines []Priced, address string) entity.Money {
	var total float64
	for _, l := range lines {
		total += l.UnitPrice.Float() * float64(l.Quantity)
	}
	if DeliveryApplies(address) {
		total += DeliveryFee
	}
	return entity.Money(total)
}

// Create places an order: prices are recomputed server-side from the
// products' discounted prices, the order starts at received, the user's
// tracker resets, and the session cart is cleared.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("items is required")
	}

	ids := make([]uint, 0, len(req.Items))
	for _, it := range req.Items {
		ids = append(ids, it.ID)
	}
	products, err := s.Products.GetMany(ids)
	if err != nil {
		return nil, err
	}

	lines := make([]Priced, 0, len(req.Items))
	rows := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		p, ok := products[it.ID]
		if !ok {
			return nil, errors.New("product not found")
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		unit := p.EffectivePrice()
		lines = append(lines, Priced{UnitPrice: unit, Quantity: qty})
		rows = append(rows, entity.OrderItem{
			ProductID: p.ID,
			Quantity:  qty,
			Price:     unit,
		})
	}

	order := &entity.Order{
		UserID:          userID,
		Status:          string(tracking.StatusReceived),
		TotalAmount:     OrderTotal(lines, req.DeliveryAddress),
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		Items:           rows,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}

	// New order: tracking restarts from received, any live feed restarts
	// with it, and the session cart empties.
	s.Trackers.Get(userID).Reset()
	if s.Feeds != nil {
		s.Feeds.Restart(userID)
	}
	s.Carts.With(userID, func(c *cart.Cart) { c.Clear() })

	return order, nil
}

func (s *OrderService) ListForUser(userID uint, staff bool) ([]entity.Order, error) {
	if staff {
		return s.Repo.ListAll(0)
	}
	return s.Repo.ListForUser(userID, 0)
}

func (s *OrderService) Detail(userID, orderID uint, staff bool) (*entity.Order, error) {
	if staff {
		return s.Repo.Get(orderID)
	}
	return s.Repo.GetForUser(userID, orderID)
}

var ErrBadTransition = errors.New("invalid status transition")

// UpdateStatus moves an order one step forward. Regressions and skips are
// rejected; the guarded update loses gracefully when another request beat
// this one to the same transition.
func (s *OrderService) UpdateStatus(orderID uint, to string) (*entity.Order, error) {
	if !tracking.Valid(tracking.Status(to)) {
		return nil, ErrBadTransition
	}

	o, err := s.Repo.Get(orderID)
	if err != nil {
		return nil, err
	}
	if !tracking.CanTransition(tracking.Status(o.Status), tracking.Status(to)) {
		return nil, ErrBadTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrBadTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(orderID)
}
