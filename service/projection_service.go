package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"card-optimizer/domain"
)

// Project turns one purchase plus an assumed frequency into annualized
// savings figures against the flat-rate baseline card. Pure and
// idempotent: the presentation layer recomputes it on every frequency
// edit, so identical inputs must yield identical output.
func Project(amount decimal.Decimal, best domain.CardOffer, preset domain.FrequencyPreset, category string) domain.ProjectionResult {
	amount = decimal.Max(amount, decimal.Zero)

	norm := NormalizeReward(best, amount)
	baseline := BaselineReward(amount)

	// Floored at zero: the claim is "extra earned vs. the baseline",
	// not a net difference, so an under-performing pick reports 0.
	extra := decimal.Max(norm.PerPurchase.Sub(baseline), decimal.Zero)

	value := preset.Value
	if value < 0 {
		value = 0
	}
	perYear := decimal.NewFromInt(int64(value * PeriodFactor(preset.Period)))

	annualExtra := extra.Mul(perYear).Round(2)

	return domain.ProjectionResult{
		PerPurchaseExtra: extra.Round(2),
		MonthlyExtra:     annualExtra.Div(decimal.NewFromInt(12)).Round(2),
		AnnualExtra:      annualExtra,
		FiveYearExtra:    annualExtra.Mul(decimal.NewFromInt(5)).Round(2),
		AnnualBest:       norm.PerPurchase.Mul(perYear).Round(2),
		AnnualBaseline:   baseline.Mul(perYear).Round(2),
		AssumptionText: fmt.Sprintf("Assumes typical purchase of $%s × %d %s.",
			amount.StringFixed(2), value, AnnualLabel(preset.Period, category)),
	}
}
