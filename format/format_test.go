package format

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	coin "go-coin-overlay"
	"go-coin-overlay/convert"
)

func newTestFormatter() *Formatter {
	return New(convert.NewService(decimal.RequireFromString("0.3")), "kr")
}

func TestFormatter_Format(t *testing.T) {
	formatter := newTestFormatter()

	tests := []struct {
		name      string
		amount    coin.Copper
		decorated bool
		want      string
	}{
		{"zero plain", 0, false, ""},
		{"zero decorated", 0, true, ""},
		{"negative", -100, true, ""},
		{"one gold plain", 10000, false, " (3.00 kr)"},
		{"one gold decorated", 10000, true, " (|cFFFFD7003.00 kr|r)"},
		{"rounded to two decimals", 123456, false, " (3.70 kr)"},
		{"thousand separator", 100000000, false, " (3,000.00 kr)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatter.Format(tt.amount, tt.decorated))
		})
	}
}

func TestFormatter_Format_VariantsShareNumericText(t *testing.T) {
	formatter := newTestFormatter()

	decorated := formatter.Format(123456, true)
	plain := formatter.Format(123456, false)

	assert.NotEqual(t, decorated, plain)
	assert.Contains(t, decorated, "3.70")
	assert.Contains(t, plain, "3.70")
	assert.False(t, strings.Contains(plain, colorDirective))
}

func TestFormatter_Format_Deterministic(t *testing.T) {
	formatter := newTestFormatter()

	for i := 0; i < 3; i++ {
		assert.Equal(t, formatter.Format(52310, true), formatter.Format(52310, true))
		assert.Equal(t, formatter.Format(52310, false), formatter.Format(52310, false))
	}
}
