package convert

import (
	"github.com/shopspring/decimal"

	coin "go-coin-overlay"
)

// Service interface for converting coin amounts into the target currency
type Service interface {
	Convert(amount coin.Copper) coin.Exchanged
}

// service converts with a rate fixed at construction time
type service struct {
	// rate target-currency value of one gold coin
	rate decimal.Decimal
}

// NewService constructs a valid Service. The rate is captured once and never
// changes for the life of the process.
func NewService(rate decimal.Decimal) Service {
	return &service{
		rate: rate,
	}
}

// Convert computes the target-currency value of a copper amount.
// Pure function: negative amounts convert as zero and there is no failure mode.
func (s *service) Convert(amount coin.Copper) coin.Exchanged {
	if amount < 0 {
		amount = 0
	}
	gold := decimal.New(int64(amount), 0).Div(decimal.New(int64(coin.PerGold), 0))
	return coin.Exchanged{
		Rate:  s.rate,
		Value: gold.Mul(s.rate),
	}
}
