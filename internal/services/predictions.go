package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/acrompton/shelf/internal/shared"
)

// MaxPredictions caps the suggestion list length.
const MaxPredictions = 5

const predictionPrompt = `You are an album search autocomplete. The user has typed: "%s"

Return exactly 5 short album or artist search suggestions that complete or relate to this input.
Respond with ONLY a JSON array of 5 strings. No other text, no code fences.`

// PredictionService fetches short text-completion suggestions while the
// user types. Predictions are transient; they are never persisted and
// callers clear them on any failure.
type PredictionService struct {
	svc Completer
}

// NewPredictionService creates a PredictionService over the given Completer.
func NewPredictionService(svc Completer) *PredictionService {
	return &PredictionService{svc: svc}
}

// Fetch requests up to [MaxPredictions] suggestions for the query.
//
// The model is instructed to return a bare JSON array of strings;
// optional code-fence markers are stripped before parsing. Output that
// is not a valid JSON array of strings fails with [shared.ErrParse];
// transport failures pass through as [shared.ErrNetwork].
func (p *PredictionService) Fetch(ctx context.Context, query string) ([]string, error) {
	req := CompletionRequest{
		Messages: UserMessage(fmt.Sprintf(predictionPrompt, query)),
	}

	resp, err := p.svc.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	return ParseStringArray(resp.Text())
}

// ParseStringArray parses completion output expected to be a JSON array
// of strings, tolerating surrounding code fences and whitespace.
func ParseStringArray(text string) ([]string, error) {
	cleaned := StripCodeFences(text)

	var suggestions []string
	if err := json.Unmarshal([]byte(cleaned), &suggestions); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrParse, err)
	}

	if len(suggestions) > MaxPredictions {
		suggestions = suggestions[:MaxPredictions]
	}

	return suggestions, nil
}

// StripCodeFences removes a leading ```/```json marker and a trailing
// ``` marker, if present, and trims whitespace.
func StripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}

	return strings.TrimSpace(cleaned)
}
