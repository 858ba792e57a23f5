package checkout

import (
	"errors"
	"strings"
	"testing"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/entity"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/cart"
)

func fixtureCart(rest cart.RestaurantInfo) *cart.Cart {
	c := cart.New()
	c.AddItem(cart.Item{ProductID: 1, Name: "Chicken Biryani", Price: entity.Money(500), Restaurant: rest})
	c.IncrementQuantity(1)
	c.AddItem(cart.Item{ProductID: 2, Name: "Mango Juice", Price: entity.Money(300), Restaurant: rest})
	return c
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"+254 712 345678", "254712345678"},
		{"254712345678", "254712345678"},
		{"+254-712-345-678", "254712345678"},
		{"(254) 712 345678", "254712345678"},
		{"", ""},
		{"no digits", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPaymentLinePriority(t *testing.T) {
	cases := []struct {
		name string
		rest cart.RestaurantInfo
		want string
		not  []string
	}{
		{
			name: "till wins",
			rest: cart.RestaurantInfo{WhatsappNumber: "254700000000", TillNumber: "123456", PaybillNumber: "888"},
			want: "Till Number 123456",
			not:  []string{"Paybill", "M-Pesa Number"},
		},
		{
			name: "paybill next",
			rest: cart.RestaurantInfo{WhatsappNumber: "254700000000", PaybillNumber: "888999"},
			want: "Paybill 888999",
			not:  []string{"Till Number", "M-Pesa Number"},
		},
		{
			name: "phone fallback",
			rest: cart.RestaurantInfo{WhatsappNumber: "254700000000"},
			want: "M-Pesa Number 254700000000",
			not:  []string{"Till Number", "Paybill"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := Build(fixtureCart(tc.rest), "")
			if err != nil {
				t.Fatal(err)
			}
			msg := o.Message()
			if !strings.Contains(msg, tc.want) {
				t.Errorf("message missing %q:\n%s", tc.want, msg)
			}
			for _, n := range tc.not {
				if strings.Contains(msg, n) {
					t.Errorf("message must not contain %q:\n%s", n, msg)
				}
			}
		})
	}
}

func TestMessageContents(t *testing.T) {
	rest := cart.RestaurantInfo{Name: "Mama Oliech", WhatsappNumber: "+254 712 345678", TillNumber: "123456"}
	o, err := Build(fixtureCart(rest), "South C, Next to Mosque")
	if err != nil {
		t.Fatal(err)
	}

	msg := o.Message()
	for _, want := range []string{
		"Hello Mama Oliech",
		"2x Chicken Biryani - KSh 500",
		"1x Mango Juice - KSh 300",
		"*Subtotal:* KSh 1300.00",
		"*Delivery Fee:* KSh 0.00",
		"*TOTAL:* KSh 1300.00",
		"My Delivery Location: South C, Next to Mosque",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildDefaultsLocation(t *testing.T) {
	rest := cart.RestaurantInfo{Name: "Mama Oliech", WhatsappNumber: "254712345678"}
	o, err := Build(fixtureCart(rest), "   ")
	if err != nil {
		t.Fatal(err)
	}
	if o.Location != DefaultLocation {
		t.Errorf("location = %q, want default", o.Location)
	}
}

func TestBuildFailsFast(t *testing.T) {
	if _, err := Build(cart.New(), ""); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("empty cart: err = %v, want ErrEmptyCart", err)
	}

	noContact := cart.RestaurantInfo{Name: "Ghost Kitchen"}
	if _, err := Build(fixtureCart(noContact), ""); !errors.Is(err, ErrNoContact) {
		t.Errorf("no contact: err = %v, want ErrNoContact", err)
	}

	// non-digit contact is as unusable as an empty one
	junk := cart.RestaurantInfo{Name: "Ghost Kitchen", WhatsappNumber: "call us"}
	if _, err := Build(fixtureCart(junk), ""); !errors.Is(err, ErrNoContact) {
		t.Errorf("junk contact: err = %v, want ErrNoContact", err)
	}
}

func TestLinkEncoding(t *testing.T) {
	rest := cart.RestaurantInfo{Name: "Mama Oliech", WhatsappNumber: "+254 712 345678"}
	o, err := Build(fixtureCart(rest), "")
	if err != nil {
		t.Fatal(err)
	}

	link, err := o.Link()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(link, "https://wa.me/254712345678?text=") {
		t.Errorf("link = %q, want wa.me with normalized phone", link)
	}
	if strings.ContainsAny(link, " \n*") {
		t.Errorf("link has unencoded characters: %q", link)
	}
	if !strings.Contains(link, "%0A") {
		t.Errorf("newlines should encode to %%0A: %q", link)
	}
}

func TestDialLink(t *testing.T) {
	rest := cart.RestaurantInfo{Name: "Mama Oliech", WhatsappNumber: "+254 712 345678"}
	o, err := Build(fixtureCart(rest), "")
	if err != nil {
		t.Fatal(err)
	}
	dial, err := o.DialLink()
	if err != nil {
		t.Fatal(err)
	}
	if dial != "tel:254712345678" {
		t.Errorf("dial = %q", dial)
	}
}

type fakeOpener struct {
	calls int
	errs  []error
}

func (f *fakeOpener) OpenURL(string) error {
	err := f.errs[f.calls]
	f.calls++
	return err
}

func TestOpenRetriesOnce(t *testing.T) {
	boom := errors.New("scheme unsupported")

	f := &fakeOpener{errs: []error{nil}}
	if err := Open(f, "https://wa.me/1"); err != nil || f.calls != 1 {
		t.Errorf("success path: err=%v calls=%d", err, f.calls)
	}

	f = &fakeOpener{errs: []error{boom, nil}}
	if err := Open(f, "https://wa.me/1"); err != nil || f.calls != 2 {
		t.Errorf("retry recovers: err=%v calls=%d", err, f.calls)
	}

	f = &fakeOpener{errs: []error{boom, boom}}
	if err := Open(f, "https://wa.me/1"); !errors.Is(err, boom) || f.calls != 2 {
		t.Errorf("retry once then fail: err=%v calls=%d", err, f.calls)
	}
}
