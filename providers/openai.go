package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"califica-tu-profe/errors"
)

const openAIBaseURL = "https://api.openai.com/v1"

// OpenAIModeration classifies text through the OpenAI moderation endpoint.
type OpenAIModeration struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func NewOpenAIModeration(cfg OpenAIConfig) *OpenAIModeration {
	if cfg.BaseURL == "" {
		cfg.BaseURL = openAIBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &OpenAIModeration{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (o *OpenAIModeration) Name() string { return "openai" }

type openAIRequest struct {
	Input string `json:"input"`
}

type openAIResponse struct {
	Results []struct {
		Flagged        bool               `json:"flagged"`
		CategoryScores map[string]float64 `json:"category_scores"`
	} `json:"results"`
}

func (o *OpenAIModeration) Classify(ctx context.Context, text string) (Signal, error) {
	body, err := json.Marshal(openAIRequest{Input: text})
	if err != nil {
		return Signal{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/moderations", bytes.NewReader(body))
	if err != nil {
		return Signal{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return Signal{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Signal{}, fmt.Errorf("%w: openai returned %d: %s", errors.ErrProviderResponse, resp.StatusCode, raw)
	}

	var parsed openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Signal{}, err
	}
	if len(parsed.Results) == 0 {
		return Signal{}, fmt.Errorf("%w: openai response carries no results", errors.ErrProviderResponse)
	}

	result := parsed.Results[0]
	return Signal{
		Provider:   o.Name(),
		Score:      maxScore(result.CategoryScores),
		Flagged:    result.Flagged,
		Categories: result.CategoryScores,
	}, nil
}

func maxScore(scores map[string]float64) float64 {
	var top float64
	for _, score := range scores {
		if score > top {
			top = score
		}
	}
	return top
}
