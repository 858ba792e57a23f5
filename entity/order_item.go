package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"-"`
	Order   Order `json:"-"`

	ProductID uint    `json:"product"`
	Product   Product `json:"-"`

	Quantity int `json:"quantity"`
	// Unit price at order time (post-discount), so later price edits do not
	// rewrite history.
	Price Money `json:"price"`

	ProductName  string `json:"product_name" gorm:"-"`
	ProductImage string `json:"product_image" gorm:"-"`
}

// AfterFind projects display fields from the preloaded product.
func (it *OrderItem) AfterFind(tx *gorm.DB) error {
	if it.Product.ID != 0 {
		it.ProductName = it.Product.Name
		it.ProductImage = it.Product.Image
	}
	return nil
}
