package entity

import (
	"gorm.io/gorm"
)

// Reel is a short promotional video linked to a product.
type Reel struct {
	gorm.Model
	Video   string `json:"video"`
	Caption string `json:"caption"`
	Views   int64  `json:"views"`

	// Highlighted reels sort first in the feed.
	IsHighlight bool `json:"is_highlight"`

	ProductID *uint    `json:"product"`
	Product   *Product `json:"product_details,omitempty" gorm:"foreignKey:ProductID"`

	RestaurantID *uint       `json:"restaurant"`
	Restaurant   *Restaurant `json:"restaurant_data,omitempty" gorm:"foreignKey:RestaurantID"`

	// Per-viewer flag, filled by the service.
	IsSaved bool `json:"is_saved" gorm:"-"`
}
