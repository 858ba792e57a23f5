package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"uniqueIndex"`
	Email     string `json:"email" gorm:"uniqueIndex"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"-"`
	IsStaff   bool   `json:"is_staff"`

	Orders     []Order     `json:"-"`
	SavedReels []SavedReel `json:"-"`
}
