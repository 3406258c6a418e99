// Package hook installs non-destructive wrappers around the host's
// money-rendering entry points. Every wrapper invokes the original behavior
// first and only then appends or attaches the converted value.
package hook

import (
	"errors"

	coin "go-coin-overlay"
)

// Entry-point function types the host exposes as collaborators.
type (
	// MoneyStringFunc the primary money-to-string formatter
	MoneyStringFunc func(amount coin.Copper, colorize bool) string

	// CoinTextureFunc renders an amount as a coin-icon string
	CoinTextureFunc func(amount coin.Copper) string

	// LegacyMoneyFunc the legacy coin-text formatter, present only on some
	// host versions
	LegacyMoneyFunc func(amount coin.Copper, separator string) string

	// FrameUpdateFunc refreshes a money-display surface; may be called many
	// times per second
	FrameUpdateFunc func(surface string, amount coin.Copper, flags int)

	// TooltipMoneyFunc writes a money line into a tooltip
	TooltipMoneyFunc func(tip Tooltip, amount coin.Copper, kind int, prefix, suffix string)

	// MessageFilterFunc rewrites chat messages; suppress is always false here
	MessageFilterFunc func(surface, event, message string) (suppress bool, rewritten string)

	// PluginLookupFunc resolves an externally-loaded plugin's formatter once
	// the plugin becomes available
	PluginLookupFunc func() (MoneyStringFunc, bool)
)

// Tooltip a multi-line display object the tooltip wrapper appends to
type Tooltip interface {
	AddLine(text string)
}

// Slot names one wrappable host entry point
type Slot string

const (
	SlotMoneyString    Slot = "money_string"
	SlotCoinTexture    Slot = "coin_texture"
	SlotLegacyMoney    Slot = "legacy_money"
	SlotFrameUpdate    Slot = "frame_update"
	SlotFrameUpdateAlt Slot = "frame_update_alt"
	SlotTooltipMoney   Slot = "tooltip_money"
	SlotPluginMoney    Slot = "plugin_money"
)

// ErrInstalled a slot can be wrapped at most once per process lifetime
var ErrInstalled = errors.New("hook already installed")

// Host the set of optional entry points an embedding host hands over for
// wrapping. Nil fields are absent in the current environment and are skipped.
type Host struct {
	MoneyString    MoneyStringFunc
	CoinTexture    CoinTextureFunc
	LegacyMoney    LegacyMoneyFunc
	FrameUpdate    FrameUpdateFunc
	FrameUpdateAlt FrameUpdateFunc
	TooltipMoney   TooltipMoneyFunc
}
