package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"card-optimizer/domain"
)

// NoRateSentinel is shown when an offer carries no usable rate at all.
const NoRateSentinel = "—"

type NormalizedReward struct {
	PerPurchase decimal.Decimal
	DisplayRate string
}

// NormalizeReward derives a per-purchase dollar reward and a displayable
// rate from an offer of whatever shape the upstream produced. This is a
// total function: every input degrades to a neutral value, never an
// error, and the reward is never negative.
func NormalizeReward(offer domain.CardOffer, amount decimal.Decimal) NormalizedReward {
	per := offer.RewardAmount.NonNegative()

	rate := strings.TrimSpace(offer.RewardRate)
	switch {
	case rate != "":
		// Opaque upstream string, shown verbatim. Without a dollar
		// figure the reward stays zero: an unknown rate is unknown,
		// not guessed.
	case per.IsPositive() && amount.IsPositive():
		pct := per.Div(amount).Mul(decimal.NewFromInt(100)).Round(1)
		rate = fmt.Sprintf("%s%% cash back", pct.StringFixed(1))
	default:
		rate = NoRateSentinel
	}

	return NormalizedReward{PerPurchase: per, DisplayRate: rate}
}

var currencyLabelRe = regexp.MustCompile(`\$?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`)

// ParseCurrencyLabel extracts the first currency figure from human text,
// e.g. "Could earn $864/year on groceries" -> 864. The bool is false
// when no figure is present, so absence stays distinguishable from a
// genuine zero.
func ParseCurrencyLabel(s string) (decimal.Decimal, bool) {
	m := currencyLabelRe.FindStringSubmatch(s)
	if m == nil {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
