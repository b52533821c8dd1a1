package service

const (
	// Confidence tiers. The values and their precedence are user-visible:
	// market corroboration beats a recommendation alone, which beats
	// degraded fallback data, which beats knowing nothing.
	ConfidenceMarketCorroborated = 95
	ConfidenceRecommendation     = 90
	ConfidenceFallback           = 75
	ConfidenceUnknown            = 85

	// Provenance labels.
	SourceLiveMarket = "Live Market Data"
	SourceCachedDemo = "Cached Data (Demo Mode)"
	SourceAIAnalysis = "AI Analysis"

	// FallbackMarker is the case-sensitive token the upstream puts in
	// data_source when it served canned demo data.
	FallbackMarker = "FALLBACK"

	// MaxFrequencyValue caps user-saved purchase frequencies.
	MaxFrequencyValue = 1000
)
