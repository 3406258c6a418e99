package hook

import (
	"fmt"
	"strings"

	"github.com/go-kit/log"

	coin "go-coin-overlay"
	"go-coin-overlay/chat"
	"go-coin-overlay/format"
	"go-coin-overlay/overlay"
	"go-coin-overlay/settings"
)

// Registry wraps host entry points with conversion display. The settings
// reference is captured once at construction; every wrapper reads the enabled
// flag per invocation and acts on that snapshot.
type Registry struct {
	settings  *settings.Settings
	formatter *format.Formatter
	overlays  *overlay.Registry
	logger    log.Logger

	// installed guards against double wrapping, per slot
	installed map[Slot]bool
}

// NewRegistry constructs a valid Registry
func NewRegistry(s *settings.Settings, f *format.Formatter, o *overlay.Registry, logger log.Logger) *Registry {
	return &Registry{
		settings:  s,
		formatter: f,
		overlays:  o,
		logger:    logger,
		installed: map[Slot]bool{},
	}
}

// InstallMoneyString wraps the primary money-to-string formatter. The wrapped
// function returns the original text with the decorated conversion appended.
func (r *Registry) InstallMoneyString(orig MoneyStringFunc) (MoneyStringFunc, error) {
	if orig == nil {
		r.skip(SlotMoneyString)
		return nil, nil
	}
	if err := r.claim(SlotMoneyString); err != nil {
		return nil, err
	}
	return func(amount coin.Copper, colorize bool) string {
		return orig(amount, colorize) + r.suffix(amount)
	}, nil
}

// InstallCoinTexture wraps the coin-icon-string formatter
func (r *Registry) InstallCoinTexture(orig CoinTextureFunc) (CoinTextureFunc, error) {
	if orig == nil {
		r.skip(SlotCoinTexture)
		return nil, nil
	}
	if err := r.claim(SlotCoinTexture); err != nil {
		return nil, err
	}
	return func(amount coin.Copper) string {
		return orig(amount) + r.suffix(amount)
	}, nil
}

// InstallLegacyMoney wraps the legacy coin-text formatter
func (r *Registry) InstallLegacyMoney(orig LegacyMoneyFunc) (LegacyMoneyFunc, error) {
	if orig == nil {
		r.skip(SlotLegacyMoney)
		return nil, nil
	}
	if err := r.claim(SlotLegacyMoney); err != nil {
		return nil, err
	}
	return func(amount coin.Copper, separator string) string {
		return orig(amount, separator) + r.suffix(amount)
	}, nil
}

// InstallFrameUpdate wraps the frame-update procedure; the wrapper drives the
// overlay for the updated surface.
func (r *Registry) InstallFrameUpdate(orig FrameUpdateFunc) (FrameUpdateFunc, error) {
	return r.installFrameUpdate(SlotFrameUpdate, orig)
}

// InstallFrameUpdateAlt wraps the alternate frame-update procedure, which has
// equivalent semantics under its own slot.
func (r *Registry) InstallFrameUpdateAlt(orig FrameUpdateFunc) (FrameUpdateFunc, error) {
	return r.installFrameUpdate(SlotFrameUpdateAlt, orig)
}

func (r *Registry) installFrameUpdate(slot Slot, orig FrameUpdateFunc) (FrameUpdateFunc, error) {
	if orig == nil {
		r.skip(slot)
		return nil, nil
	}
	if err := r.claim(slot); err != nil {
		return nil, err
	}
	return func(surface string, amount coin.Copper, flags int) {
		orig(surface, amount, flags)
		r.updateOverlay(surface, amount)
	}, nil
}

// InstallTooltipMoney wraps the tooltip-money setter; the wrapper appends a
// conversion line after the original lines.
func (r *Registry) InstallTooltipMoney(orig TooltipMoneyFunc) (TooltipMoneyFunc, error) {
	if orig == nil {
		r.skip(SlotTooltipMoney)
		return nil, nil
	}
	if err := r.claim(SlotTooltipMoney); err != nil {
		return nil, err
	}
	return func(tip Tooltip, amount coin.Copper, kind int, prefix, suffix string) {
		orig(tip, amount, kind, prefix, suffix)
		r.appendTooltipLine(tip, amount)
	}, nil
}

// InstallPluginMoney wraps an externally-loaded plugin's formatter. While the
// plugin is absent nothing is installed and the host may retry at its next
// load-lifecycle point; once installed, further attempts report ErrInstalled.
func (r *Registry) InstallPluginMoney(lookup PluginLookupFunc) (MoneyStringFunc, bool, error) {
	if r.installed[SlotPluginMoney] {
		return nil, false, fmt.Errorf("%v: %w", SlotPluginMoney, ErrInstalled)
	}
	if lookup == nil {
		r.skip(SlotPluginMoney)
		return nil, false, nil
	}
	orig, ok := lookup()
	if !ok || orig == nil {
		r.logger.Log("msg", "plugin not yet available, install deferred", "slot", SlotPluginMoney)
		return nil, false, nil
	}
	if err := r.claim(SlotPluginMoney); err != nil {
		return nil, false, err
	}
	return func(amount coin.Copper, colorize bool) string {
		return orig(amount, colorize) + r.suffix(amount)
	}, true, nil
}

// InstallAll wraps every entry point the host exposes, in place. Absent
// entry points stay nil. Fails only on a double install.
func (r *Registry) InstallAll(host *Host) error {
	if wrapped, err := r.InstallMoneyString(host.MoneyString); err != nil {
		return err
	} else if wrapped != nil {
		host.MoneyString = wrapped
	}
	if wrapped, err := r.InstallCoinTexture(host.CoinTexture); err != nil {
		return err
	} else if wrapped != nil {
		host.CoinTexture = wrapped
	}
	if wrapped, err := r.InstallLegacyMoney(host.LegacyMoney); err != nil {
		return err
	} else if wrapped != nil {
		host.LegacyMoney = wrapped
	}
	if wrapped, err := r.InstallFrameUpdate(host.FrameUpdate); err != nil {
		return err
	} else if wrapped != nil {
		host.FrameUpdate = wrapped
	}
	if wrapped, err := r.InstallFrameUpdateAlt(host.FrameUpdateAlt); err != nil {
		return err
	} else if wrapped != nil {
		host.FrameUpdateAlt = wrapped
	}
	if wrapped, err := r.InstallTooltipMoney(host.TooltipMoney); err != nil {
		return err
	} else if wrapped != nil {
		host.TooltipMoney = wrapped
	}
	return nil
}

// MessageFilter returns the chat filter entry point. It never suppresses; a
// rewritten message is returned only when a money amount was found.
func (r *Registry) MessageFilter() MessageFilterFunc {
	return func(surface, event, message string) (bool, string) {
		return false, r.rewrite(message)
	}
}

// claim marks a slot as wrapped, rejecting a second install
func (r *Registry) claim(slot Slot) error {
	if r.installed[slot] {
		return fmt.Errorf("%v: %w", slot, ErrInstalled)
	}
	r.installed[slot] = true
	r.logger.Log("msg", "hook installed", "slot", slot)
	return nil
}

// skip records that an entry point is absent in this environment
func (r *Registry) skip(slot Slot) {
	r.logger.Log("msg", "entry point absent, hook skipped", "slot", slot)
}

// suffix computes the decorated text appended after a rendered amount. Any
// failure in the conversion path yields an empty suffix so the original
// result stands unmodified.
func (r *Registry) suffix(amount coin.Copper) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	if !r.settings.IsEnabled() || amount <= 0 {
		return ""
	}
	return r.formatter.Format(amount, true)
}

// updateOverlay drives the overlay for one surface. Disabled or empty amounts
// blank the text of an existing overlay; overlays are only created for
// displayable amounts.
func (r *Registry) updateOverlay(surface string, amount coin.Copper) {
	defer func() {
		_ = recover()
	}()
	if !r.settings.IsEnabled() || amount <= 0 {
		r.overlays.Clear(surface)
		return
	}
	r.overlays.SetText(surface, r.formatter.Format(amount, false))
}

// appendTooltipLine adds the conversion as its own tooltip line
func (r *Registry) appendTooltipLine(tip Tooltip, amount coin.Copper) {
	defer func() {
		_ = recover()
	}()
	if tip == nil {
		return
	}
	line := r.suffix(amount)
	if line == "" {
		return
	}
	tip.AddLine(strings.TrimSpace(line))
}

// rewrite appends the decorated conversion to a chat message carrying money
// tokens. Empty when nothing was found or display is disabled.
func (r *Registry) rewrite(message string) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	amount := chat.ParseMoney(message)
	if !r.settings.IsEnabled() || amount <= 0 {
		return ""
	}
	return message + r.formatter.Format(amount, true)
}
