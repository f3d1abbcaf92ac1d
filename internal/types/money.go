// README: Common money value object used across modules.
package types

import "fmt"

type Money struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

// USD builds a Money value from whole cents.
func USD(cents int64) Money {
	return Money{AmountCents: cents, Currency: "USD"}
}

// String renders "$6" for whole amounts and "$6.50" otherwise.
func (m Money) String() string {
	if m.AmountCents%100 == 0 {
		return fmt.Sprintf("$%d", m.AmountCents/100)
	}
	return fmt.Sprintf("$%.2f", float64(m.AmountCents)/100)
}
