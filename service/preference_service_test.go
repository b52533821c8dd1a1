package service

import (
	"testing"

	"card-optimizer/domain"
	"card-optimizer/repository"
)

type MockPreferenceRepository struct {
	Data      map[string]domain.FrequencyPreset
	SetCalled bool
}

func NewMockPreferenceRepository() *MockPreferenceRepository {
	return &MockPreferenceRepository{Data: map[string]domain.FrequencyPreset{}}
}

func (m *MockPreferenceRepository) Get(category string) (domain.FrequencyPreset, bool) {
	p, ok := m.Data[category]
	return p, ok
}

func (m *MockPreferenceRepository) Set(category string, preset domain.FrequencyPreset) error {
	m.SetCalled = true
	m.Data[category] = preset
	return nil
}

func TestPresetFor_DefaultWhenUnsaved(t *testing.T) {

	service := NewPreferenceService(NewMockPreferenceRepository())

	preset, saved := service.PresetFor("grocery")

	if saved {
		t.Errorf("expected saved=false for fresh category")
	}
	if preset.Value != 6 || preset.Period != domain.PerMonth {
		t.Errorf("expected grocery default {6 per_month}, got {%d %s}", preset.Value, preset.Period)
	}
}

func TestSavePreset_CaseInsensitiveRoundTrip(t *testing.T) {

	service := NewPreferenceService(repository.NewPreferenceRepositoryMemory())

	override := domain.FrequencyPreset{Value: 10, Period: domain.PerWeek}
	if err := service.SavePreset("Coffee", override); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, category := range []string{"coffee", "COFFEE", "Coffee"} {
		preset, saved := service.PresetFor(category)
		if !saved {
			t.Errorf("PresetFor(%q): expected saved=true", category)
		}
		if preset != override {
			t.Errorf("PresetFor(%q): expected %+v, got %+v", category, override, preset)
		}
	}
}

func TestSavePreset_InvalidInput(t *testing.T) {

	cases := []struct {
		name     string
		category string
		preset   domain.FrequencyPreset
	}{
		{"empty category", "", domain.FrequencyPreset{Value: 1, Period: domain.PerMonth}},
		{"negative value", "gas", domain.FrequencyPreset{Value: -1, Period: domain.PerMonth}},
		{"excessive value", "gas", domain.FrequencyPreset{Value: MaxFrequencyValue + 1, Period: domain.PerMonth}},
		{"unknown period", "gas", domain.FrequencyPreset{Value: 1, Period: "per_fortnight"}},
	}

	for _, c := range cases {
		mockRepo := NewMockPreferenceRepository()
		service := NewPreferenceService(mockRepo)

		if err := service.SavePreset(c.category, c.preset); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
		if mockRepo.SetCalled {
			t.Errorf("%s: repository Set should NOT be called", c.name)
		}
	}
}

func TestSavePreset_LastWriteWins(t *testing.T) {

	service := NewPreferenceService(repository.NewPreferenceRepositoryMemory())

	first := domain.FrequencyPreset{Value: 2, Period: domain.PerWeek}
	second := domain.FrequencyPreset{Value: 8, Period: domain.PerMonth}

	if err := service.SavePreset("transit", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.SavePreset("transit", second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	preset, _ := service.PresetFor("transit")
	if preset != second {
		t.Errorf("expected last write %+v, got %+v", second, preset)
	}
}
