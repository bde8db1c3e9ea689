// Package currency converts native marketplace amounts into the reference
// currency using fixed, configured rates. Rates are supplied by
// configuration, never fetched.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Reference is the common currency the consolidated report is expressed in.
const Reference = "EUR"

// ErrNoRate marks a configuration gap: an active marketplace settles in a
// currency that has no configured rate. Converting anyway would silently
// report wrong totals, so callers must abort the run before producing output.
var ErrNoRate = errors.New("no exchange rate configured")

// countryCurrency maps marketplace country codes to settlement currencies.
// Countries not listed settle in the reference currency.
var countryCurrency = map[string]string{
	"DE": "EUR",
	"FR": "EUR",
	"ES": "EUR",
	"IT": "EUR",
	"NL": "EUR",
	"BE": "EUR",
	"PL": "PLN",
	"SE": "SEK",
	"GB": "GBP",
	"UK": "GBP",
}

// CurrencyFor returns the settlement currency for a marketplace code.
func CurrencyFor(country string) string {
	if c, ok := countryCurrency[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return c
	}
	return Reference
}

// Converter multiplies native amounts by a fixed rate, expressed as units
// of reference currency per one unit of native currency.
type Converter struct {
	rates map[string]decimal.Decimal
}

// NewConverter builds a converter from configured rates keyed by currency
// code. The reference currency never needs a rate.
func NewConverter(rates map[string]float64) *Converter {
	m := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		m[strings.ToUpper(strings.TrimSpace(code))] = decimal.NewFromFloat(rate)
	}
	return &Converter{rates: m}
}

// Validate confirms a rate exists for every given marketplace. Run this
// before touching any file: a missing rate is unrecoverable configuration,
// not a data error, and must stop the run before output exists.
func (c *Converter) Validate(countries []string) error {
	for _, cc := range countries {
		cur := CurrencyFor(cc)
		if cur == Reference {
			continue
		}
		if _, ok := c.rates[cur]; !ok {
			return fmt.Errorf("%w: currency %s (marketplace %s)", ErrNoRate, cur, cc)
		}
	}
	return nil
}

// Convert returns amount expressed in the reference currency.
func (c *Converter) Convert(amount decimal.Decimal, country string) (decimal.Decimal, error) {
	cur := CurrencyFor(country)
	if cur == Reference {
		return amount, nil
	}
	rate, ok := c.rates[cur]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: currency %s (marketplace %s)", ErrNoRate, cur, country)
	}
	return amount.Mul(rate), nil
}
