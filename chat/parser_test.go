package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	coin "go-coin-overlay"
)

func goldToken(n string) string {
	return n + `|TInterface\MoneyFrame\UI-GoldIcon:14:14:2:0|t`
}

func silverToken(n string) string {
	return n + `|TInterface\MoneyFrame\UI-SilverIcon:14:14:2:0|t`
}

func copperToken(n string) string {
	return n + `|TInterface\MoneyFrame\UI-CopperIcon:14:14:2:0|t`
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    coin.Copper
	}{
		{"empty message", "", 0},
		{"no tokens", "You receive loot: [Linen Cloth]", 0},
		{"single gold", "You loot " + goldToken("5"), 50000},
		{"single silver", silverToken("23"), 2300},
		{"single copper", copperToken("10"), 10},
		{
			"mixed denominations",
			"You loot " + goldToken("5") + " " + silverToken("23") + " " + copperToken("10"),
			52310,
		},
		{
			"denominations out of order",
			copperToken("10") + silverToken("23") + goldToken("5"),
			52310,
		},
		{
			"repeated gold tokens are additive",
			"Auction sold for " + goldToken("12") + ", deposit " + goldToken("3") + " returned",
			150000,
		},
		{"non-numeric capture skipped", "abc" + `|TInterface\MoneyFrame\UI-GoldIcon:0|t`, 0},
		{"overflowing capture skipped", goldToken("99999999999999999999"), 0},
		{"token without trailing tag ignored", "5|TInterface\\MoneyFrame\\UI-GoldIcon:0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMoney(tt.message))
		})
	}
}

func TestParseMoney_SurroundingTextPreserved(t *testing.T) {
	// Parsing only reads the message; tokens embedded mid-sentence still count.
	message := "Trade complete: " + goldToken("1") + " and " + copperToken("99") + ", enjoy!"
	assert.Equal(t, coin.Copper(10099), ParseMoney(message))
}
