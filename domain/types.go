package domain

import (
	"github.com/shopspring/decimal"
	"time"
)

// Currency a currency code
type Currency string

// Amount a monetary amount... which should be a float...
type Amount float64

// Rate an exchange rate
type Rate float64

// Rates maps a target currency to the rate from some source currency
type Rates map[Currency]Rate

// ConversionRequest the input of a conversion, as entered in the wallet
type ConversionRequest struct {
	Amount Amount
	From   Currency
	To     Currency
}

// Exchanged the outcome of a conversion. Amount carries full precision,
// use Display for the 2 decimal form shown to users.
type Exchanged struct {
	Rate      Rate
	Amount    Amount
	Timestamp time.Time
}

// Display renders the converted amount rounded half away from zero to 2 decimals.
func (e Exchanged) Display() string {
	return decimal.NewFromFloat(float64(e.Amount)).StringFixed(2)
}
