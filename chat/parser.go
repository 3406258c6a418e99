// Package chat recovers coin amounts embedded in chat-style messages.
package chat

import (
	"regexp"
	"strconv"

	coin "go-coin-overlay"
)

// Icon texture names the host substitutes into money strings, one per coin.
const (
	goldIcon   = `UI-GoldIcon`
	silverIcon = `UI-SilverIcon`
	copperIcon = `UI-CopperIcon`
)

// moneyTokenPart builds the pattern for one icon-tagged coin token: a decimal
// integer immediately before the coin's texture tag.
func moneyTokenPart(icon string) string {
	return `(\d+)\s*\|TInterface\\MoneyFrame\\` + icon + `[^|]*\|t`
}

var (
	regexGoldToken   = regexp.MustCompile(moneyTokenPart(goldIcon))
	regexSilverToken = regexp.MustCompile(moneyTokenPart(silverIcon))
	regexCopperToken = regexp.MustCompile(moneyTokenPart(copperIcon))
)

// ParseMoney extracts the total copper amount from a message. All
// non-overlapping occurrences of every coin token are summed, in any order and
// multiplicity. Captures that fail to parse contribute zero; a message with no
// tokens yields zero.
func ParseMoney(message string) coin.Copper {
	if message == "" {
		return 0
	}
	total := sumTokens(regexGoldToken, message, coin.PerGold)
	total += sumTokens(regexSilverToken, message, coin.PerSilver)
	total += sumTokens(regexCopperToken, message, 1)
	return total
}

func sumTokens(re *regexp.Regexp, message string, weight coin.Copper) coin.Copper {
	var total coin.Copper
	for _, match := range re.FindAllStringSubmatch(message, -1) {
		n, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			continue
		}
		total += coin.Copper(n) * weight
	}
	return total
}
