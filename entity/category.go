package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name  string `json:"name"`
	Image string `json:"image"`

	RestaurantID *uint       `json:"restaurant"`
	Restaurant   *Restaurant `json:"restaurant_data,omitempty" gorm:"foreignKey:RestaurantID"`

	Products []Product `json:"-"`
}
