// Package coin holds the shared money types used across the overlay modules.
package coin

import "github.com/shopspring/decimal"

// Copper a money amount in the host's smallest coin unit
type Copper int64

// Coin weights of the host's three-tier coinage.
const (
	PerSilver Copper = 100
	PerGold   Copper = 10000
)

// Exchanged the outcome of converting a coin amount into the target currency
type Exchanged struct {
	Rate  decimal.Decimal
	Value decimal.Decimal
}

// Split breaks the amount into whole gold, silver and copper coins.
// Negative amounts split as zero.
func (c Copper) Split() (gold, silver, copper int64) {
	if c < 0 {
		return 0, 0, 0
	}
	return int64(c / PerGold), int64((c % PerGold) / PerSilver), int64(c % PerSilver)
}
