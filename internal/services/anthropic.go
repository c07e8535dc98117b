// Anthropic-style messages API implementation of [Completer]
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/acrompton/shelf/internal/shared"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	defaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 1024
	apiVersion       = "2023-06-01"
)

// CompletionService implements [Completer] against an Anthropic-style
// messages endpoint with API-key authentication.
type CompletionService struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewCompletionService creates a CompletionService from configuration.
// The API key is required; everything else falls back to defaults.
func NewCompletionService(cfg shared.APIConfig, client *http.Client) (*CompletionService, error) {
	if cfg.Key == "" {
		return nil, shared.ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if client == nil {
		client = http.DefaultClient
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &CompletionService{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.Key,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		httpClient: client,
		limiter:    limiter,
	}, nil
}

// Complete sends one messages request and decodes the response.
//
// Model and MaxTokens are filled from configuration when the request
// leaves them unset. Requests are throttled by the configured rate
// limit before any network activity.
func (s *CompletionService) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if req.Model == "" {
		req.Model = s.model
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = s.maxTokens
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrNetwork, err)
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	apiURL := s.baseURL + "/v1/messages"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", s.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)
	httpReq.Header.Set("X-Request-ID", shared.GenerateID())

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("%w: status %d: %s", shared.ErrNetwork, resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("%w: status %d", shared.ErrNetwork, resp.StatusCode)
	}

	var completion CompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", shared.ErrNetwork, err)
	}

	return &completion, nil
}
