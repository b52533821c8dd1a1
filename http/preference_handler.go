package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"card-optimizer/domain"
	"card-optimizer/service"
)

type PreferenceHandler struct {
	service *service.PreferenceService
}

func NewPreferenceHandler(service *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: service}
}

type PreferenceResponse struct {
	Category string                 `json:"category"`
	Preset   domain.FrequencyPreset `json:"preset"`
	Saved    bool                   `json:"saved"`
}

type SavePreferenceRequest struct {
	Category string        `json:"category"`
	Value    int           `json:"value"`
	Period   domain.Period `json:"period"`
}

// Preferences serves the per-category frequency override: GET reads the
// stored-or-default preset, POST saves an explicit override.
func (h *PreferenceHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPost:
		h.save(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *PreferenceHandler) get(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		http.Error(w, "category is required", http.StatusBadRequest)
		return
	}

	preset, saved := h.service.PresetFor(category)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PreferenceResponse{
		Category: strings.ToLower(category),
		Preset:   preset,
		Saved:    saved,
	})
}

func (h *PreferenceHandler) save(w http.ResponseWriter, r *http.Request) {
	var req SavePreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	preset := domain.FrequencyPreset{Value: req.Value, Period: req.Period}
	if err := h.service.SavePreset(req.Category, preset); err != nil {
		log.Printf("Error saving preference: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PreferenceResponse{
		Category: strings.ToLower(strings.TrimSpace(req.Category)),
		Preset:   preset,
		Saved:    true,
	})
}
