package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"card-optimizer/domain"
)

func TestNormalizeReward_DollarAmount(t *testing.T) {

	offer := domain.CardOffer{
		Name:         "Some Card",
		RewardAmount: domain.AmountFromFloat(3),
	}

	norm := NormalizeReward(offer, decimal.NewFromInt(100))

	if !norm.PerPurchase.Equal(decimal.NewFromInt(3)) {
		t.Errorf("expected per-purchase 3, got %s", norm.PerPurchase)
	}
	if norm.DisplayRate != "3.0% cash back" {
		t.Errorf("expected synthesized rate, got %q", norm.DisplayRate)
	}
}

func TestNormalizeReward_NegativeClamped(t *testing.T) {

	offer := domain.CardOffer{
		RewardAmount: domain.AmountFromFloat(-5),
	}

	norm := NormalizeReward(offer, decimal.NewFromInt(100))

	if !norm.PerPurchase.IsZero() {
		t.Errorf("expected clamped 0, got %s", norm.PerPurchase)
	}
	if norm.DisplayRate != NoRateSentinel {
		t.Errorf("expected sentinel rate, got %q", norm.DisplayRate)
	}
}

func TestNormalizeReward_RateVerbatim(t *testing.T) {

	offer := domain.CardOffer{
		RewardRate: "3x points on dining",
	}

	norm := NormalizeReward(offer, decimal.NewFromInt(100))

	if norm.DisplayRate != "3x points on dining" {
		t.Errorf("expected verbatim rate, got %q", norm.DisplayRate)
	}
	// An opaque rate string cannot be converted to dollars safely.
	if !norm.PerPurchase.IsZero() {
		t.Errorf("expected per-purchase 0 for opaque rate, got %s", norm.PerPurchase)
	}
}

func TestNormalizeReward_EmptyOffer(t *testing.T) {

	norm := NormalizeReward(domain.CardOffer{}, decimal.Zero)

	if !norm.PerPurchase.IsZero() {
		t.Errorf("expected 0 reward, got %s", norm.PerPurchase)
	}
	if norm.DisplayRate != NoRateSentinel {
		t.Errorf("expected sentinel rate, got %q", norm.DisplayRate)
	}
}

func TestBaselineReward(t *testing.T) {

	if got := BaselineReward(decimal.NewFromInt(100)); !got.Equal(decimal.NewFromInt(2)) {
		t.Errorf("expected 2, got %s", got)
	}
	if got := BaselineReward(decimal.Zero); !got.IsZero() {
		t.Errorf("expected 0, got %s", got)
	}
}

func TestParseCurrencyLabel(t *testing.T) {

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Could earn $864/year on groceries", "864", true},
		{"$1,200 annually", "1200", true},
		{"120.50", "120.5", true},
		{"no numbers here", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, ok := ParseCurrencyLabel(c.in)
		if ok != c.ok {
			t.Errorf("ParseCurrencyLabel(%q): expected ok=%v, got %v", c.in, c.ok, ok)
			continue
		}
		if ok && !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("ParseCurrencyLabel(%q): expected %s, got %s", c.in, c.want, got)
		}
	}
}
