package checkout

import (
	"net/url"
	"strings"
)

// NormalizePhone strips every non-digit, so "+254 712 345678" becomes
// "254712345678", the form wa.me expects.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link builds the wa.me URL with the message percent-encoded. wa.me works
// on both Android and iOS and falls back to the browser when the app is
// not installed, which makes it more reliable than the whatsapp:// scheme.
func (o *Order) Link() (string, error) {
	phone := NormalizePhone(o.Restaurant.WhatsappNumber)
	if phone == "" {
		return "", ErrNoContact
	}
	encoded := strings.ReplaceAll(url.QueryEscape(o.Message()), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + encoded, nil
}

// DialLink is the tel: fallback for the call-to-order button.
func (o *Order) DialLink() (string, error) {
	phone := NormalizePhone(o.Restaurant.WhatsappNumber)
	if phone == "" {
		return "", ErrNoContact
	}
	return "tel:" + phone, nil
}

// Opener abstracts handing a URL to the platform (Linking on mobile, a
// browser redirect on web).
type Opener interface {
	OpenURL(url string) error
}

// Open is best-effort: when the first attempt fails it retries the same
// URL once, then surfaces the error.
func Open(o Opener, url string) error {
	if err := o.OpenURL(url); err != nil {
		return o.OpenURL(url)
	}
	return nil
}
