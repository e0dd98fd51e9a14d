// Package suggest implements the outbound itinerary-suggestion provider.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"golang.org/x/time/rate"

	"github.com/tripforge/tripforge/internal/model"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrThrottled is returned when the outbound request budget is exhausted.
var ErrThrottled = errors.New("suggestion provider throttled")

// GeminiProvider calls the Gemini generateContent API and extracts a JSON
// suggestion list from the model's text output.
type GeminiProvider struct {
	apiKey  string
	modelID string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a GeminiProvider.
type Option func(*GeminiProvider)

// WithBaseURL overrides the API base URL (tests).
func WithBaseURL(url string) Option {
	return func(p *GeminiProvider) { p.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(p *GeminiProvider) { p.client = c }
}

// NewGemini creates a provider. rps/burst bound the outbound request rate
// so a burst of user requests cannot burn the API quota.
func NewGemini(apiKey, modelID string, rps float64, burst int, timeout time.Duration, opts ...Option) *GeminiProvider {
	p := &GeminiProvider{
		apiKey:  apiKey,
		modelID: modelID,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// jsonArrayPattern extracts the first JSON array from the model output,
// which often wraps it in markdown fences or prose.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// Suggest implements service.SuggestionProvider.
func (p *GeminiProvider) Suggest(ctx context.Context, destination string, dates model.DateRange, preferences string) ([]model.Suggestion, error) {
	if !p.limiter.Allow() {
		return nil, ErrThrottled
	}

	if preferences == "" {
		preferences = "General tourism"
	}

	prompt := fmt.Sprintf(
		"Create a detailed travel itinerary for %s from %s to %s. "+
			"Preferences: %s. "+
			"Return a JSON array of activities with fields: name (activity name), location (specific address), date (YYYY-MM-DD), estimatedCost (number). "+
			"Return ONLY valid JSON, no markdown or extra text.",
		destination, dates.Start, dates.End, preferences,
	)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, p.modelID, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call suggestion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("suggestion API status %d: %s", resp.StatusCode, snippet)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("empty suggestion response")
	}

	return extractSuggestions(parsed.Candidates[0].Content.Parts[0].Text)
}

// extractSuggestions pulls the suggestion array out of model text.
func extractSuggestions(text string) ([]model.Suggestion, error) {
	raw := jsonArrayPattern.FindString(text)
	if raw == "" {
		return nil, errors.New("no JSON array in suggestion response")
	}

	var suggestions []model.Suggestion
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}
	return suggestions, nil
}
