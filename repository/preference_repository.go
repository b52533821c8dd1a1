package repository

import "card-optimizer/domain"

// PreferenceRepository persists the user's per-category frequency
// overrides, keyed by lowercased category. Get reports false on a
// missing or unreadable record so callers can fall back to the built-in
// defaults. Set is last-write-wins.
type PreferenceRepository interface {
	Get(category string) (domain.FrequencyPreset, bool)
	Set(category string, preset domain.FrequencyPreset) error
}
