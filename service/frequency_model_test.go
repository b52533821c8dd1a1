package service

import (
	"testing"

	"card-optimizer/domain"
)

func TestDefaultFrequencyFor_CoffeeShop(t *testing.T) {

	preset := DefaultFrequencyFor("coffee shop")

	if preset.Value != 4 || preset.Period != domain.PerWeek {
		t.Errorf("expected {4 per_week}, got {%d %s}", preset.Value, preset.Period)
	}
}

func TestDefaultFrequencyFor_CaseInsensitive(t *testing.T) {

	preset := DefaultFrequencyFor("Dining Out")

	if preset.Value != 2 || preset.Period != domain.PerWeek {
		t.Errorf("expected {2 per_week}, got {%d %s}", preset.Value, preset.Period)
	}
}

func TestDefaultFrequencyFor_Unknown(t *testing.T) {

	preset := DefaultFrequencyFor("unknown-category-xyz")

	if preset != DefaultPreset {
		t.Errorf("expected default preset, got {%d %s}", preset.Value, preset.Period)
	}
}

func TestDefaultFrequencyFor_FirstMatchWins(t *testing.T) {

	// "coffee" is listed before "travel"; a category mentioning both
	// must resolve to the coffee preset.
	preset := DefaultFrequencyFor("coffee while on travel")

	if preset.Value != 4 || preset.Period != domain.PerWeek {
		t.Errorf("expected coffee preset, got {%d %s}", preset.Value, preset.Period)
	}
}

func TestPeriodFactor(t *testing.T) {

	cases := []struct {
		period domain.Period
		want   int
	}{
		{domain.PerWeek, 52},
		{domain.PerMonth, 12},
		{domain.PerYear, 1},
		{domain.PerTrip, 1},
		{domain.Period("per_decade"), 12},
	}

	for _, c := range cases {
		if got := PeriodFactor(c.period); got != c.want {
			t.Errorf("PeriodFactor(%s): expected %d, got %d", c.period, c.want, got)
		}
	}
}

func TestAnnualLabel(t *testing.T) {

	cases := []struct {
		period   domain.Period
		category string
		want     string
	}{
		{domain.PerYear, "travel", "trips per year"},
		{domain.PerYear, "Flight booking", "trips per year"},
		{domain.PerTrip, "hotel", "trips per year"},
		{domain.PerWeek, "coffee", "per week"},
		{domain.PerMonth, "grocery", "per month"},
		{domain.PerYear, "electronics", "per year"},
	}

	for _, c := range cases {
		if got := AnnualLabel(c.period, c.category); got != c.want {
			t.Errorf("AnnualLabel(%s, %q): expected %q, got %q", c.period, c.category, c.want, got)
		}
	}
}
