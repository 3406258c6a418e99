// Package settings holds the shared display configuration consulted by every
// hook wrapper, plus its on-disk persistence.
package settings

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Settings the live configuration shared by all wrappers. Each wrapper
// captures the same instance by reference at installation time. The host
// dispatches callbacks one at a time, so the wrappers never contend; the lock
// exists for the HTTP daemon, whose handlers read the flag concurrently.
type Settings struct {
	mu       sync.RWMutex
	enabled  bool
	rate     decimal.Decimal
	currency string
}

// New constructs Settings with a rate and currency fixed for the process
// lifetime. Only the enabled flag can change afterwards.
func New(enabled bool, rate decimal.Decimal, currency string) *Settings {
	return &Settings{
		enabled:  enabled,
		rate:     rate,
		currency: currency,
	}
}

// IsEnabled reports whether conversion display is on
func (s *Settings) IsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// SetEnabled flips the conversion display. Wrappers already running keep the
// snapshot they read; only future invocations observe the change.
func (s *Settings) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// Rate the target-currency value of one gold coin
func (s *Settings) Rate() decimal.Decimal {
	return s.rate
}

// Currency the target currency suffix, e.g. "kr"
func (s *Settings) Currency() string {
	return s.currency
}
