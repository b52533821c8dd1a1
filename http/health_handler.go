package http

import (
	"encoding/json"
	"net/http"

	"card-optimizer/service"
)

type HealthHandler struct {
	optimizer *service.OptimizerService
}

func NewHealthHandler(optimizer *service.OptimizerService) *HealthHandler {
	return &HealthHandler{optimizer: optimizer}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":               "healthy",
		"optimizer_configured": h.optimizer.Enabled(),
	})
}
