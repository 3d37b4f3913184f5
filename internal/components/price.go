package components

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/message"
)

// Money is a normalised amount: cents are always in [0, 99].
type Money struct {
	Dollars int
	Cents   int
}

func normalizeMoney(dollars, cents int) Money {
	dollars = max(dollars, 0)
	cents = max(cents, 0)
	return Money{Dollars: dollars + cents/100, Cents: cents % 100}
}

// IsWhole reports whether the amount has no fractional part.
func (m Money) IsWhole() bool { return m.Cents == 0 }

// ParseMoney reads "149", "149.9" or "149.99". Signs and anything but
// digits are rejected.
func ParseMoney(value string) (Money, error) {
	value = strings.TrimSpace(value)
	whole, fraction, hasFraction := strings.Cut(value, ".")

	if !isDigits(whole) {
		return Money{}, fmt.Errorf("invalid amount %q: expected a non-negative number", value)
	}
	dollars, err := strconv.Atoi(whole)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	if !hasFraction {
		return normalizeMoney(dollars, 0), nil
	}
	if len(fraction) == 0 || len(fraction) > 2 || !isDigits(fraction) {
		return Money{}, fmt.Errorf("invalid amount %q: expected at most two decimal digits", value)
	}
	cents, err := strconv.Atoi(fraction)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	if len(fraction) == 1 {
		cents *= 10
	}
	return normalizeMoney(dollars, cents), nil
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Price is either a standard price or a sale price with its original.
type Price struct {
	amount   Money
	original Money
	onSale   bool
}

// StandardPrice builds a regular price.
func StandardPrice(dollars, cents int) Price {
	return Price{amount: normalizeMoney(dollars, cents)}
}

// SalePrice builds a discounted price.
func SalePrice(dollars, cents, originalDollars, originalCents int) Price {
	return Price{
		amount:   normalizeMoney(dollars, cents),
		original: normalizeMoney(originalDollars, originalCents),
		onSale:   true,
	}
}

// Amount is the price to pay.
func (p Price) Amount() Money { return p.amount }

// Original is the price before discount; the zero Money for standard prices.
func (p Price) Original() Money { return p.original }

// OnSale reports whether p carries an original price.
func (p Price) OnSale() bool { return p.onSale }

// FormatMoney renders m for the given format. Whole amounts print
// without decimals; grouping follows the format language.
func FormatMoney(m Money, format FormatContext) string {
	printer := message.NewPrinter(format.Language)
	if m.IsWhole() {
		return format.Symbol + printer.Sprintf("%d", m.Dollars)
	}
	return format.Symbol + printer.Sprintf("%.2f", float64(m.Dollars)+float64(m.Cents)/100)
}

// PriceText is a formatted price pair.
type PriceText struct {
	Price         string
	OriginalPrice string
}

// FormatPrice renders p. OriginalPrice is empty unless p is on sale.
func FormatPrice(p Price, format FormatContext) PriceText {
	text := PriceText{Price: FormatMoney(p.amount, format)}
	if p.onSale {
		text.OriginalPrice = FormatMoney(p.original, format)
	}
	return text
}
