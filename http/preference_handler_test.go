package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"card-optimizer/domain"
	"card-optimizer/repository"
	"card-optimizer/service"
)

func groceryOverride() domain.FrequencyPreset {
	return domain.FrequencyPreset{Value: 2, Period: domain.PerWeek}
}

func newTestPreferenceHandler() *PreferenceHandler {
	return NewPreferenceHandler(
		service.NewPreferenceService(repository.NewPreferenceRepositoryMemory()),
	)
}

func TestPreferenceHandler_SaveAndReadBackCaseInsensitive(t *testing.T) {

	handler := newTestPreferenceHandler()

	body := []byte(`{"category": "Coffee", "value": 10, "period": "per_week"}`)
	req := httptest.NewRequest(http.MethodPost, "/preferences", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Preferences(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/preferences?category=coffee", nil)
	w = httptest.NewRecorder()

	handler.Preferences(w, req)

	var resp PreferenceResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Saved {
		t.Errorf("expected saved=true after write")
	}
	if resp.Preset.Value != 10 || resp.Preset.Period != domain.PerWeek {
		t.Errorf("expected {10 per_week}, got %+v", resp.Preset)
	}
	if resp.Category != "coffee" {
		t.Errorf("expected lowercased category, got %q", resp.Category)
	}
}

func TestPreferenceHandler_DefaultForFreshCategory(t *testing.T) {

	handler := newTestPreferenceHandler()

	req := httptest.NewRequest(http.MethodGet, "/preferences?category=gas", nil)
	w := httptest.NewRecorder()

	handler.Preferences(w, req)

	var resp PreferenceResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Saved {
		t.Errorf("expected saved=false for fresh category")
	}
	if resp.Preset.Value != 4 || resp.Preset.Period != domain.PerMonth {
		t.Errorf("expected gas default {4 per_month}, got %+v", resp.Preset)
	}
}

func TestPreferenceHandler_MissingCategory(t *testing.T) {

	handler := newTestPreferenceHandler()

	req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
	w := httptest.NewRecorder()

	handler.Preferences(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPreferenceHandler_InvalidSave(t *testing.T) {

	handler := newTestPreferenceHandler()

	body := []byte(`{"category": "gas", "value": -1, "period": "per_month"}`)
	req := httptest.NewRequest(http.MethodPost, "/preferences", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Preferences(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPreferenceHandler_MethodNotAllowed(t *testing.T) {

	handler := newTestPreferenceHandler()

	req := httptest.NewRequest(http.MethodDelete, "/preferences", nil)
	w := httptest.NewRecorder()

	handler.Preferences(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
