package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"card-optimizer/domain"
)

// OptimizerService is the client for the upstream optimize collaborator:
// the AI pipeline that parses the query, researches the market, and
// ranks cards. It is the single fallible boundary in the system; every
// failure degrades to a canned fallback payload rather than an error.
type OptimizerService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type optimizeRequest struct {
	Query       string `json:"query"`
	UserContext string `json:"user_context,omitempty"`
}

func NewOptimizerService() *OptimizerService {
	return NewOptimizerServiceWith(
		os.Getenv("OPTIMIZER_API_URL"),
		os.Getenv("OPTIMIZER_API_KEY"),
	)
}

func NewOptimizerServiceWith(apiURL, apiKey string) *OptimizerService {
	return &OptimizerService{
		apiKey:  apiKey,
		apiURL:  apiURL,
		enabled: apiURL != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled reports whether a live upstream endpoint is configured.
func (s *OptimizerService) Enabled() bool {
	return s.enabled
}

// Optimize sends the described purchase upstream and returns the full
// recommendation payload, bounded by the caller's context deadline. On
// timeout, transport failure, or an undecodable body it returns the
// fallback payload for the query instead, so the caller always gets
// either a complete payload or an explicit error, never a partial one.
func (s *OptimizerService) Optimize(ctx context.Context, query, userContext string) (domain.OptimizePayload, error) {
	if strings.TrimSpace(query) == "" {
		return domain.OptimizePayload{}, errors.New("query must not be empty")
	}

	if !s.enabled {
		return FallbackPayload(query), nil
	}

	payload, err := s.callUpstream(ctx, query, userContext)
	if err != nil {
		log.Printf("Warning: optimize call failed, serving fallback: %v", err)
		return FallbackPayload(query), nil
	}

	return payload, nil
}

func (s *OptimizerService) callUpstream(ctx context.Context, query, userContext string) (domain.OptimizePayload, error) {
	body, err := json.Marshal(optimizeRequest{Query: query, UserContext: userContext})
	if err != nil {
		return domain.OptimizePayload{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return domain.OptimizePayload{}, err
	}

	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.OptimizePayload{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return domain.OptimizePayload{}, fmt.Errorf("upstream error (status %d): %s", resp.StatusCode, string(b))
	}

	var payload domain.OptimizePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.OptimizePayload{}, err
	}

	return payload, nil
}
