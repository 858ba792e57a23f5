package entity

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in KSh. The legacy API serialized decimals as strings
// ("500.00") and some rows carry nulls, so all coercion lives here instead
// of at each call site.
type Money float64

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*m = 0
			return nil
		}
		s = strings.TrimSpace(str)
		if s == "" {
			*m = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*m = 0
		return nil
	}
	*m = Money(f)
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(m))
}

// Float guards against NaN/Inf sneaking in from arithmetic.
func (m Money) Float() float64 {
	f := float64(m)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
