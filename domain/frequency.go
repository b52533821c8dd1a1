package domain

// Period is the unit of a purchase frequency.
type Period string

const (
	PerWeek  Period = "per_week"
	PerMonth Period = "per_month"
	PerYear  Period = "per_year"
	PerTrip  Period = "per_trip"
)

// FrequencyPreset describes how often a purchase in some category is
// assumed to recur. It comes from either the built-in category defaults
// or a saved user override, the override shadowing the default.
type FrequencyPreset struct {
	Value  int    `json:"value"`
	Period Period `json:"period"`
}
