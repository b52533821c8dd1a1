package http

import (
	"encoding/json"
	"net/http"

	"card-optimizer/domain"
	"card-optimizer/service"
)

type ProjectionHandler struct {
	preferences *service.PreferenceService
}

func NewProjectionHandler(preferences *service.PreferenceService) *ProjectionHandler {
	return &ProjectionHandler{preferences: preferences}
}

type ProjectionRequest struct {
	Amount    domain.Amount           `json:"amount"`
	Category  string                  `json:"category"`
	Offer     domain.CardOffer        `json:"offer"`
	Frequency *domain.FrequencyPreset `json:"frequency,omitempty"`
}

// Project recomputes the savings projection for edited inputs. No
// upstream call is made; this is the synchronous recompute path behind
// the frequency controls.
func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	preset := domain.FrequencyPreset{}
	if req.Frequency != nil {
		preset = *req.Frequency
	} else {
		preset, _ = h.preferences.PresetFor(req.Category)
	}

	result := service.Project(req.Amount.NonNegative(), req.Offer, preset, req.Category)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
