package repository

import (
	"sync"

	"card-optimizer/domain"
)

// PreferenceRepositoryMemory is an in-memory implementation of
// PreferenceRepository.
type PreferenceRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.FrequencyPreset
}

// NewPreferenceRepositoryMemory creates a new in-memory preference store.
func NewPreferenceRepositoryMemory() *PreferenceRepositoryMemory {
	return &PreferenceRepositoryMemory{
		data: make(map[string]domain.FrequencyPreset),
	}
}

func (r *PreferenceRepositoryMemory) Get(category string) (domain.FrequencyPreset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	preset, ok := r.data[category]
	return preset, ok
}

func (r *PreferenceRepositoryMemory) Set(category string, preset domain.FrequencyPreset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[category] = preset
	return nil
}
