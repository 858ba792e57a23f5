package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `json:"user"`
	User   User `json:"-"`

	// Lifecycle value from pkg/tracking: received, preparing, ready,
	// out_for_delivery, delivered. Only ever moves forward.
	Status string `json:"status"`

	TotalAmount     Money  `json:"total_amount"`
	DeliveryAddress string `json:"delivery_address"`
	PaymentMethod   string `json:"payment_method"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
