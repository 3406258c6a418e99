package convert

import (
	"time"

	"github.com/go-kit/log"

	coin "go-coin-overlay"
)

// loggingService decorates a convert.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(amount coin.Copper) (ex coin.Exchanged) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"amount", amount,
			"rate", ex.Rate,
			"value", ex.Value,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Convert(amount)
}
