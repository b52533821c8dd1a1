package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"card-optimizer/domain"
	"card-optimizer/service"
)

// optimizeTimeout bounds the single upstream call. On expiry the
// optimizer serves its fallback payload, so the handler always responds.
const optimizeTimeout = 25 * time.Second

type OptimizeHandler struct {
	optimizer   *service.OptimizerService
	preferences *service.PreferenceService
}

func NewOptimizeHandler(optimizer *service.OptimizerService, preferences *service.PreferenceService) *OptimizeHandler {
	return &OptimizeHandler{optimizer: optimizer, preferences: preferences}
}

type OptimizeRequest struct {
	Query       string `json:"query"`
	UserContext string `json:"user_context,omitempty"`
}

// OptimizeResponse is the full view the presentation layer renders:
// upstream payload plus the derived projection and provenance.
type OptimizeResponse struct {
	Transaction        *domain.Transaction      `json:"transaction,omitempty"`
	Recommendation     domain.Recommendation    `json:"recommendation"`
	MarketAnalysis     *domain.MarketAnalysis   `json:"market_analysis,omitempty"`
	FinancialImpact    *domain.FinancialImpact  `json:"financial_impact,omitempty"`
	HasRecommendations bool                     `json:"has_recommendations"`
	Projection         *domain.ProjectionResult `json:"projection,omitempty"`
	Frequency          *domain.FrequencyPreset  `json:"frequency,omitempty"`
	FrequencySaved     bool                     `json:"frequency_saved"`
	Provenance         domain.Provenance        `json:"provenance"`
	UpstreamEstimate   *decimal.Decimal         `json:"upstream_estimate,omitempty"`
}

func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), optimizeTimeout)
	defer cancel()

	payload, err := h.optimizer.Optimize(ctx, req.Query, req.UserContext)
	if err != nil {
		log.Printf("Error optimizing payment: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := h.buildView(payload)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// buildView derives the initial projection from the stored-or-default
// frequency preset. An empty recommendation produces a well-defined
// "no recommendations" response, not an error.
func (h *OptimizeHandler) buildView(payload domain.OptimizePayload) OptimizeResponse {
	resp := OptimizeResponse{
		Transaction:        payload.Txn(),
		Recommendation:     payload.Recommendation,
		MarketAnalysis:     payload.MarketAnalysis,
		FinancialImpact:    payload.FinancialImpact,
		HasRecommendations: !payload.Recommendation.IsEmpty(),
		Provenance:         service.ClassifyProvenance(payload.Recommendation, payload.MarketResults()),
	}

	if payload.FinancialImpact != nil {
		if est, ok := service.ParseCurrencyLabel(payload.FinancialImpact.AnnualProjection); ok {
			resp.UpstreamEstimate = &est
		}
	}

	txn := payload.Txn()
	offers := payload.Recommendation.Offers()
	if txn == nil || len(offers) == 0 {
		return resp
	}

	preset, saved := h.preferences.PresetFor(txn.Category)
	projection := service.Project(txn.Amount.NonNegative(), *offers[0], preset, txn.Category)

	resp.Projection = &projection
	resp.Frequency = &preset
	resp.FrequencySaved = saved
	return resp
}
