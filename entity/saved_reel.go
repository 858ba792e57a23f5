package entity

import (
	"time"

	"gorm.io/gorm"
)

type SavedReel struct {
	gorm.Model
	UserID uint `json:"user" gorm:"uniqueIndex:idx_saved_user_reel"`
	User   User `json:"-"`

	ReelID uint  `json:"reel" gorm:"uniqueIndex:idx_saved_user_reel"`
	Reel   *Reel `json:"reel_details,omitempty" gorm:"foreignKey:ReelID"`

	SavedAt time.Time `json:"saved_at" gorm:"autoCreateTime"`
}
