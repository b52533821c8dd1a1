package service

import (
	"strings"

	"card-optimizer/domain"
)

type frequencyRule struct {
	keywords []string
	preset   domain.FrequencyPreset
}

// Ordered keyword table; the first rule whose keyword appears in the
// category wins.
var frequencyRules = []frequencyRule{
	{[]string{"coffee", "cafe"}, domain.FrequencyPreset{Value: 4, Period: domain.PerWeek}},
	{[]string{"dining", "restaurant"}, domain.FrequencyPreset{Value: 2, Period: domain.PerWeek}},
	{[]string{"grocery"}, domain.FrequencyPreset{Value: 6, Period: domain.PerMonth}},
	{[]string{"gas", "fuel"}, domain.FrequencyPreset{Value: 4, Period: domain.PerMonth}},
	{[]string{"transit", "commute"}, domain.FrequencyPreset{Value: 5, Period: domain.PerWeek}},
	{[]string{"subscription", "stream"}, domain.FrequencyPreset{Value: 1, Period: domain.PerMonth}},
	{[]string{"utility"}, domain.FrequencyPreset{Value: 1, Period: domain.PerMonth}},
	{[]string{"travel", "flight", "airfare"}, domain.FrequencyPreset{Value: 1, Period: domain.PerYear}},
	{[]string{"hotel", "lodging"}, domain.FrequencyPreset{Value: 5, Period: domain.PerYear}},
	{[]string{"electronics", "retail"}, domain.FrequencyPreset{Value: 2, Period: domain.PerYear}},
}

// DefaultPreset covers categories no rule matches.
var DefaultPreset = domain.FrequencyPreset{Value: 1, Period: domain.PerMonth}

// DefaultFrequencyFor returns the assumed purchase frequency for a
// free-text category. Matching is case-insensitive substring.
func DefaultFrequencyFor(category string) domain.FrequencyPreset {
	c := strings.ToLower(category)
	for _, rule := range frequencyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(c, kw) {
				return rule.preset
			}
		}
	}
	return DefaultPreset
}

// PeriodFactor converts a period into a purchases-per-year multiplier.
// An unknown period reads as monthly rather than failing.
func PeriodFactor(p domain.Period) int {
	switch p {
	case domain.PerWeek:
		return 52
	case domain.PerMonth:
		return 12
	case domain.PerYear, domain.PerTrip:
		return 1
	default:
		return 12
	}
}

// AnnualLabel renders the unit shown next to the frequency input.
func AnnualLabel(p domain.Period, category string) string {
	c := strings.ToLower(category)
	if p == domain.PerTrip || strings.Contains(c, "travel") || strings.Contains(c, "flight") {
		return "trips per year"
	}
	switch p {
	case domain.PerWeek:
		return "per week"
	case domain.PerMonth:
		return "per month"
	default:
		return "per year"
	}
}
