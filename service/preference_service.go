package service

import (
	"errors"
	"fmt"
	"strings"

	"card-optimizer/domain"
	"card-optimizer/repository"
)

type PreferenceService struct {
	repo repository.PreferenceRepository
}

// NewPreferenceService creates a PreferenceService over the given store.
func NewPreferenceService(repo repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

// PresetFor returns the user's saved frequency for a category, or the
// built-in default when nothing usable was saved. The bool reports
// whether a saved override was found.
func (s *PreferenceService) PresetFor(category string) (domain.FrequencyPreset, bool) {
	key := normalizeCategory(category)
	if preset, ok := s.repo.Get(key); ok {
		return preset, true
	}
	return DefaultFrequencyFor(key), false
}

// SavePreset stores a frequency override. Last write wins per category.
func (s *PreferenceService) SavePreset(category string, preset domain.FrequencyPreset) error {
	if normalizeCategory(category) == "" {
		return errors.New("category must not be empty")
	}
	if preset.Value < 0 {
		return errors.New("frequency value must not be negative")
	}
	if preset.Value > MaxFrequencyValue {
		return fmt.Errorf("frequency value exceeds the maximum of %d", MaxFrequencyValue)
	}
	switch preset.Period {
	case domain.PerWeek, domain.PerMonth, domain.PerYear, domain.PerTrip:
	default:
		return fmt.Errorf("unknown period %q", preset.Period)
	}
	return s.repo.Set(normalizeCategory(category), preset)
}

// normalizeCategory lowercases the free-text category so lookups stay
// case-insensitive everywhere.
func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
