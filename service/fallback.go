package service

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"card-optimizer/domain"
)

// Canned payloads served when the upstream optimizer is unreachable or
// unconfigured. Offer data mirrors widely published card rates; the
// data_source fields carry the FALLBACK marker so provenance
// classification reports demo mode with reduced confidence.

const fallbackSource = "FALLBACK: Demo data (optimizer unavailable)"

// PointValue is the dollar value assumed for one point or mile when an
// offer only states a multiplier rate.
var PointValue = decimal.NewFromFloat(0.015)

// FallbackPayload builds a demo recommendation for the query: category
// guessed by keyword, amount lifted from the query text when present,
// reward figures re-derived from each offer's rate so the numbers stay
// consistent with the amount shown.
func FallbackPayload(query string) domain.OptimizePayload {
	q := strings.ToLower(query)

	var payload domain.OptimizePayload
	switch {
	case containsAny(q, "coffee", "cafe", "restaurant", "dining", "lunch", "dinner"):
		payload = fallbackDining()
	case containsAny(q, "grocery", "groceries", "supermarket"):
		payload = fallbackGrocery()
	case containsAny(q, "flight", "hotel", "travel", "trip", "vacation"):
		payload = fallbackTravel()
	default:
		payload = fallbackGeneric()
	}

	if amount, ok := ParseCurrencyLabel(query); ok && amount.IsPositive() {
		if txn := payload.Txn(); txn != nil {
			txn.Amount = domain.NewAmount(amount)
		}
	}

	rescaleRewards(&payload)
	return payload
}

func containsAny(s string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

var (
	percentRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	multiplierRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*x\b`)
)

// estimateReward derives a dollar reward from a human rate string:
// "N% ..." earns N percent, "Nx points|miles ..." earns N points per
// dollar at PointValue each, anything else earns the baseline rate.
func estimateReward(rate string, amount decimal.Decimal) decimal.Decimal {
	s := strings.ToLower(rate)
	if m := percentRe.FindStringSubmatch(s); m != nil {
		if pct, err := decimal.NewFromString(m[1]); err == nil {
			return amount.Mul(pct).Div(decimal.NewFromInt(100)).Round(2)
		}
	}
	if m := multiplierRe.FindStringSubmatch(s); m != nil && (strings.Contains(s, "point") || strings.Contains(s, "mile")) {
		if x, err := decimal.NewFromString(m[1]); err == nil {
			return amount.Mul(x).Mul(PointValue).Round(2)
		}
	}
	return BaselineReward(amount).Round(2)
}

// rescaleRewards recomputes each offer's reward from its rate string and
// the parsed amount, then re-ranks the slots by net value so the demo
// ranking stays honest for whatever amount the user asked about.
func rescaleRewards(p *domain.OptimizePayload) {
	txn := p.Txn()
	if txn == nil {
		return
	}
	amount := txn.Amount.NonNegative()
	if !amount.IsPositive() {
		return
	}

	offers := p.Recommendation.Offers()
	for _, offer := range offers {
		offer.RewardAmount = domain.NewAmount(estimateReward(offer.RewardRate, amount))
	}

	if len(offers) < 2 {
		return
	}
	sort.SliceStable(offers, func(i, j int) bool {
		return netValue(offers[i]).GreaterThan(netValue(offers[j]))
	})

	slots := []**domain.CardOffer{
		&p.Recommendation.BestOverall,
		&p.Recommendation.RunnerUp,
		&p.Recommendation.Alternative,
	}
	for i, slot := range slots {
		if i < len(offers) {
			*slot = offers[i]
		} else {
			*slot = nil
		}
	}
}

// netValue spreads the annual fee across a year of daily use, matching
// how the upstream pipeline ranks its own fallback offers.
func netValue(o *domain.CardOffer) decimal.Decimal {
	fee := o.AnnualFee.NonNegative().Div(decimal.NewFromInt(365))
	return o.RewardAmount.NonNegative().Sub(fee)
}

func fallbackDining() domain.OptimizePayload {
	return domain.OptimizePayload{
		ParsedTransaction: &domain.Transaction{
			Merchant: "Restaurant",
			Amount:   domain.AmountFromFloat(25),
			Category: "dining",
		},
		Recommendation: domain.Recommendation{
			BestOverall: &domain.CardOffer{
				Name:        "Capital One Savor",
				Issuer:      "Capital One",
				RewardRate:  "4% cash back on dining",
				AnnualFee:   domain.AmountFromFloat(95),
				SignupBonus: "$300 after $3k spend",
				AIReasoning: "Highest flat dining cash back rate",
				DataSource:  fallbackSource,
			},
			RunnerUp: &domain.CardOffer{
				Name:        "Chase Sapphire Preferred",
				Issuer:      "Chase",
				RewardRate:  "3x points on dining",
				AnnualFee:   domain.AmountFromFloat(95),
				AIReasoning: "Better for travel redemptions",
				DataSource:  fallbackSource,
			},
			Alternative: &domain.CardOffer{
				Name:        "Citi Double Cash",
				Issuer:      "Citi",
				RewardRate:  "2% cash back on everything",
				AnnualFee:   domain.AmountFromFloat(0),
				AIReasoning: "Simple flat-rate cash back with no fee",
				DataSource:  fallbackSource,
			},
		},
		FinancialImpact: &domain.FinancialImpact{
			OpportunityCost:  "Missing $0.75 vs basic 2% card",
			AnnualProjection: "Could earn $240/year on dining",
		},
	}
}

func fallbackGrocery() domain.OptimizePayload {
	return domain.OptimizePayload{
		ParsedTransaction: &domain.Transaction{
			Merchant: "Grocery Store",
			Amount:   domain.AmountFromFloat(120),
			Category: "grocery",
		},
		Recommendation: domain.Recommendation{
			BestOverall: &domain.CardOffer{
				Name:        "Amex Blue Cash Preferred",
				Issuer:      "American Express",
				RewardRate:  "6% cash back on groceries",
				AnnualFee:   domain.AmountFromFloat(95),
				SignupBonus: "$300 after $3k spend",
				AIReasoning: "Highest grocery cash back rate",
				DataSource:  fallbackSource,
			},
			RunnerUp: &domain.CardOffer{
				Name:        "Citi Custom Cash",
				Issuer:      "Citi",
				RewardRate:  "5% on top category",
				AnnualFee:   domain.AmountFromFloat(0),
				AIReasoning: "No annual fee alternative",
				DataSource:  fallbackSource,
			},
			Alternative: &domain.CardOffer{
				Name:        "Chase Freedom Flex",
				Issuer:      "Chase",
				RewardRate:  "5% rotating categories",
				AnnualFee:   domain.AmountFromFloat(0),
				AIReasoning: "Good when groceries are the bonus category",
				DataSource:  fallbackSource,
			},
		},
		FinancialImpact: &domain.FinancialImpact{
			OpportunityCost:  "Missing $4.80 vs basic 2% card",
			AnnualProjection: "Could earn $864/year on groceries",
		},
	}
}

func fallbackTravel() domain.OptimizePayload {
	return domain.OptimizePayload{
		ParsedTransaction: &domain.Transaction{
			Merchant: "Travel Purchase",
			Amount:   domain.AmountFromFloat(2000),
			Category: "travel",
		},
		Recommendation: domain.Recommendation{
			BestOverall: &domain.CardOffer{
				Name:        "Capital One Venture X",
				Issuer:      "Capital One",
				RewardRate:  "2x miles on everything",
				AnnualFee:   domain.AmountFromFloat(395),
				SignupBonus: "75,000 miles after $4k spend",
				AIReasoning: "Best overall travel rewards with lounge access",
				DataSource:  fallbackSource,
			},
			RunnerUp: &domain.CardOffer{
				Name:        "Chase Sapphire Reserve",
				Issuer:      "Chase",
				RewardRate:  "3x points on travel",
				AnnualFee:   domain.AmountFromFloat(550),
				AIReasoning: "Higher multiplier but higher fee",
				DataSource:  fallbackSource,
			},
			Alternative: &domain.CardOffer{
				Name:        "Wells Fargo Autograph",
				Issuer:      "Wells Fargo",
				RewardRate:  "3x points on travel",
				AnnualFee:   domain.AmountFromFloat(0),
				AIReasoning: "No annual fee travel rewards option",
				DataSource:  fallbackSource,
			},
		},
		FinancialImpact: &domain.FinancialImpact{
			OpportunityCost:  "Missing $20 vs basic 2% card",
			AnnualProjection: "Could earn $480/year on travel",
		},
	}
}

func fallbackGeneric() domain.OptimizePayload {
	return domain.OptimizePayload{
		ParsedTransaction: &domain.Transaction{
			Merchant: "Unknown",
			Amount:   domain.AmountFromFloat(100),
			Category: "shopping",
		},
		Recommendation: domain.Recommendation{
			BestOverall: &domain.CardOffer{
				Name:        "Citi Double Cash",
				Issuer:      "Citi",
				RewardRate:  "2% cash back on everything",
				AnnualFee:   domain.AmountFromFloat(0),
				SignupBonus: "$200 after $1.5k spend",
				AIReasoning: "Best general purpose cash back",
				DataSource:  fallbackSource,
			},
			RunnerUp: &domain.CardOffer{
				Name:        "Chase Freedom Unlimited",
				Issuer:      "Chase",
				RewardRate:  "1.5% cash back",
				AnnualFee:   domain.AmountFromFloat(0),
				AIReasoning: "No annual fee alternative",
				DataSource:  fallbackSource,
			},
			Alternative: &domain.CardOffer{
				Name:        "Capital One Quicksilver",
				Issuer:      "Capital One",
				RewardRate:  "1.5% cash back",
				AnnualFee:   domain.AmountFromFloat(0),
				AIReasoning: "Simple cash back, no foreign transaction fees",
				DataSource:  fallbackSource,
			},
		},
		FinancialImpact: &domain.FinancialImpact{
			OpportunityCost:  "Optimized for general spending",
			AnnualProjection: "Could earn $240/year",
		},
	}
}
