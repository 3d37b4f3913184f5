package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name         string
		price        Price
		wantPrice    string
		wantOriginal string
	}{
		{name: "sale", price: SalePrice(129, 0, 179, 99), wantPrice: "$129", wantOriginal: "$179.99"},
		{name: "standard", price: StandardPrice(149, 99), wantPrice: "$149.99"},
		{name: "single digit cents", price: StandardPrice(5, 5), wantPrice: "$5.05"},
		{name: "cents carry", price: StandardPrice(9, 150), wantPrice: "$10.50"},
		{name: "cents carry to whole", price: StandardPrice(9, 100), wantPrice: "$10"},
		{name: "negative clamps", price: StandardPrice(-3, -20), wantPrice: "$0"},
		{name: "grouping", price: SalePrice(1299, 50, 12500, 0), wantPrice: "$1,299.50", wantOriginal: "$12,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPrice(tt.price, DefaultFormat())
			assert.Equal(t, tt.wantPrice, got.Price)
			assert.Equal(t, tt.wantOriginal, got.OriginalPrice)
		})
	}
}

func TestFormatMoneyFollowsLanguage(t *testing.T) {
	german := FormatContext{Language: language.German, Symbol: "€"}

	assert.Equal(t, "€1.299,50", FormatMoney(Money{Dollars: 1299, Cents: 50}, german))
	assert.Equal(t, "€129", FormatMoney(Money{Dollars: 129}, german))
}

func TestPriceAccessors(t *testing.T) {
	sale := SalePrice(10, 250, 20, 0)
	assert.True(t, sale.OnSale())
	assert.Equal(t, Money{Dollars: 12, Cents: 50}, sale.Amount())
	assert.Equal(t, Money{Dollars: 20}, sale.Original())

	standard := StandardPrice(7, 0)
	assert.False(t, standard.OnSale())
	assert.Equal(t, Money{}, standard.Original())
	assert.True(t, standard.Amount().IsWhole())
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input   string
		want    Money
		wantErr bool
	}{
		{input: "149", want: Money{Dollars: 149}},
		{input: "149.99", want: Money{Dollars: 149, Cents: 99}},
		{input: " 12.5 ", want: Money{Dollars: 12, Cents: 50}},
		{input: "0.07", want: Money{Cents: 7}},
		{input: "12.", wantErr: true},
		{input: "12.345", wantErr: true},
		{input: "twelve", wantErr: true},
		{input: "1.x", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "+5", wantErr: true},
		{input: "1.-5", wantErr: true},
		{input: "1.+5", wantErr: true},
		{input: ".50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
