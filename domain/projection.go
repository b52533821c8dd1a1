package domain

import "github.com/shopspring/decimal"

// ProjectionResult is the presentation-ready savings projection for one
// card and one assumed purchase frequency. It is recomputed on every
// frequency edit and never persisted.
type ProjectionResult struct {
	PerPurchaseExtra decimal.Decimal `json:"per_purchase_extra"`
	MonthlyExtra     decimal.Decimal `json:"monthly_extra"`
	AnnualExtra      decimal.Decimal `json:"annual_extra"`
	FiveYearExtra    decimal.Decimal `json:"five_year_extra"`
	AnnualBest       decimal.Decimal `json:"annual_best"`
	AnnualBaseline   decimal.Decimal `json:"annual_baseline"`
	AssumptionText   string          `json:"assumption_text"`
}

// Provenance labels whether the recommendation came from a live market
// lookup, cached demo data, or plain AI analysis.
type Provenance struct {
	Source        string `json:"source"`
	IsLive        bool   `json:"is_live"`
	ConfidencePct int    `json:"confidence_pct"`
}
