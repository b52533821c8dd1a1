package service

import (
	"strings"

	"card-optimizer/domain"
)

// ClassifyProvenance labels where the recommendation's data came from
// and attaches a confidence tier. Total function: any input shape maps
// to a defined label.
func ClassifyProvenance(rec domain.Recommendation, market []domain.MarketResult) domain.Provenance {
	best := rec.BestOverall

	src := ""
	if best != nil {
		src = strings.TrimSpace(best.DataSource)
	}

	var label string
	var isLive bool
	switch {
	case src != "":
		switch {
		case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
			label, isLive = SourceLiveMarket, true
		case strings.Contains(src, FallbackMarker):
			label, isLive = SourceCachedDemo, false
		default:
			label = src
			lower := strings.ToLower(label)
			isLive = !strings.Contains(lower, "fallback") && !strings.Contains(lower, "cached")
		}
	case len(market) > 0:
		label, isLive = SourceLiveMarket, true
	default:
		// No explicit marker means a real AI decision, not degraded data.
		label, isLive = SourceAIAnalysis, true
	}

	confidence := ConfidenceUnknown
	switch {
	case strings.Contains(src, FallbackMarker):
		confidence = ConfidenceFallback
	case len(market) > 0 && best != nil:
		confidence = ConfidenceMarketCorroborated
	case best != nil:
		confidence = ConfidenceRecommendation
	}

	return domain.Provenance{Source: label, IsLive: isLive, ConfidencePct: confidence}
}
