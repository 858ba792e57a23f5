package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       Money   `json:"price"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Calories    int     `json:"calories"`

	IsPromoted         bool `json:"is_promoted"`
	DiscountPercentage int  `json:"discount_percentage"`

	// Per-product contribution to the cart's delivery fee.
	ShippingFee Money `json:"shipping_fee"`

	CategoryID uint     `json:"category"`
	Category   Category `json:"-"`

	RestaurantID *uint       `json:"restaurant"`
	Restaurant   *Restaurant `json:"restaurant_data,omitempty" gorm:"foreignKey:RestaurantID"`

	// Derived, never stored.
	DiscountedPrice Money `json:"discounted_price" gorm:"-"`
}

// EffectivePrice applies the promotion discount, if any.
func (p *Product) EffectivePrice() Money {
	if p.IsPromoted && p.DiscountPercentage > 0 {
		discount := p.Price.Float() * float64(p.DiscountPercentage) / 100
		return Money(p.Price.Float() - discount)
	}
	return p.Price
}

// AfterFind fills the derived discounted price so list/detail responses
// always carry it.
func (p *Product) AfterFind(tx *gorm.DB) error {
	p.DiscountedPrice = p.EffectivePrice()
	return nil
}
