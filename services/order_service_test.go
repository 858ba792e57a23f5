package services

import (
	"testing"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
)

func TestDeliveryApplies(t *testing.T) {
	cases := []struct {
		address string
		want    bool
	}{
		{"South C, Next to Mosque", true},
		{"Pickup", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := DeliveryApplies(tc.address); got != tc.want {
			t.Errorf("DeliveryApplies(%q) = %v, want %v", tc.address, got, tc.want)
		}
	}
}

func TestOrderTotal(t *testing.T) {
	lines := []Priced{
		{UnitPrice: entity.Money(500), Quantity: 2},
		{UnitPrice: entity.Money(300), Quantity: 1},
	}

	if got := OrderTotal(lines, "Pickup").Float(); got != 1300 {
		t.Errorf("pickup total = %v, want 1300", got)
	}
	if got := OrderTotal(lines, "Nairobi").Float(); got != 1300+DeliveryFee {
		t.Errorf("delivery total = %v, want %v", got, 1300+DeliveryFee)
	}
	if got := OrderTotal(nil, "").Float(); got != 0 {
		t.Errorf("empty total = %v, want 0", got)
	}
}

func TestOrderTotalUsesDiscountedUnitPrice(t *testing.T) {
	p := entity.Product{Price: 1000, IsPromoted: true, DiscountPercentage: 10}
	lines := []Priced{{UnitPrice: p.EffectivePrice(), Quantity: 3}}

	if got := OrderTotal(lines, "Pickup").Float(); got != 2700 {
		t.Errorf("total = %v, want 2700", got)
	}
}
