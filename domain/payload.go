package domain

// MarketResult is one source the upstream market research surfaced.
type MarketResult struct {
	Title       string `json:"title,omitempty"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Credibility string `json:"credibility,omitempty"`
}

type MarketAnalysis struct {
	Results      []MarketResult `json:"results,omitempty"`
	QueriesUsed  []string       `json:"queries_used,omitempty"`
	TotalSources int            `json:"total_sources,omitempty"`
}

// FinancialImpact carries the upstream's own human-readable estimates.
// The strings are opaque here; ParseCurrencyLabel is the only way a
// number is ever read back out of them.
type FinancialImpact struct {
	AnnualProjection string `json:"annual_projection,omitempty"`
	OpportunityCost  string `json:"opportunity_cost,omitempty"`
}

// OptimizePayload is the full response of the upstream optimize call.
// Older payloads used the key "parsed_transaction" where newer ones use
// "transaction"; both are accepted and every field may be absent.
type OptimizePayload struct {
	Transaction       *Transaction     `json:"transaction,omitempty"`
	ParsedTransaction *Transaction     `json:"parsed_transaction,omitempty"`
	Recommendation    Recommendation   `json:"recommendation"`
	FinancialImpact   *FinancialImpact `json:"financial_impact,omitempty"`
	MarketAnalysis    *MarketAnalysis  `json:"market_analysis,omitempty"`
}

// Txn returns the parsed transaction under whichever key the upstream
// used, or nil when neither is present.
func (p OptimizePayload) Txn() *Transaction {
	if p.Transaction != nil {
		return p.Transaction
	}
	return p.ParsedTransaction
}

func (p OptimizePayload) MarketResults() []MarketResult {
	if p.MarketAnalysis == nil {
		return nil
	}
	return p.MarketAnalysis.Results
}
