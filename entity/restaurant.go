package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Logo        string `json:"logo"`
	CoverImage  string `json:"cover_image"`

	// M-Pesa payment identifiers. Till takes priority over paybill at
	// checkout; the raw WhatsApp number is the last-resort identifier.
	WhatsappNumber    string `json:"whatsapp_number"`
	TillNumber        string `json:"till_number"`
	PaybillNumber     string `json:"paybill_number"`
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`

	DeliveryNote       string `json:"delivery_note"`
	IsVerified         bool   `json:"is_verified"`
	IsFeaturedCampaign bool   `json:"is_featured_campaign"`
	DiscountPercentage int    `json:"discount_percentage"`

	Products   []Product  `json:"-"`
	Categories []Category `json:"-"`
	Reels      []Reel     `json:"-"`
}
