package entity

import (
	"encoding/json"
	"testing"
)

func TestMoneyUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `500`, 500},
		{"decimal", `499.99`, 499.99},
		{"string", `"500.00"`, 500},
		{"string int", `"300"`, 300},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"garbage", `"abc"`, 0},
		{"whitespace", `"  250.5 "`, 250.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m Money
			if err := json.Unmarshal([]byte(tc.in), &m); err != nil {
				t.Fatalf("unmarshal %q: %v", tc.in, err)
			}
			if m.Float() != tc.want {
				t.Errorf("got %v, want %v", m.Float(), tc.want)
			}
		})
	}
}

func TestMoneyMarshalAsNumber(t *testing.T) {
	b, err := json.Marshal(Money(500))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "500" {
		t.Errorf("got %s, want 500", b)
	}
}

func TestProductEffectivePrice(t *testing.T) {
	p := Product{Price: 1000, IsPromoted: true, DiscountPercentage: 20}
	if got := p.EffectivePrice().Float(); got != 800 {
		t.Errorf("promoted: got %v, want 800", got)
	}

	p = Product{Price: 1000, DiscountPercentage: 20} // not promoted
	if got := p.EffectivePrice().Float(); got != 1000 {
		t.Errorf("unpromoted: got %v, want 1000", got)
	}

	p = Product{Price: 1000, IsPromoted: true} // no percentage
	if got := p.EffectivePrice().Float(); got != 1000 {
		t.Errorf("zero discount: got %v, want 1000", got)
	}
}
