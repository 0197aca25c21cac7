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

const perspectiveBaseURL = "https://commentanalyzer.googleapis.com/v1alpha1"

// Perspective scores text toxicity through the Comment Analyzer API.
type Perspective struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type PerspectiveConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func NewPerspective(cfg PerspectiveConfig) *Perspective {
	if cfg.BaseURL == "" {
		cfg.BaseURL = perspectiveBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Perspective{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *Perspective) Name() string { return "perspective" }

type perspectiveRequest struct {
	Comment             perspectiveComment              `json:"comment"`
	Languages           []string                        `json:"languages"`
	RequestedAttributes map[string]perspectiveAttribute `json:"requestedAttributes"`
}

type perspectiveComment struct {
	Text string `json:"text"`
}

type perspectiveAttribute struct{}

type perspectiveResponse struct {
	AttributeScores map[string]struct {
		SummaryScore struct {
			Value float64 `json:"value"`
		} `json:"summaryScore"`
	} `json:"attributeScores"`
}

func (p *Perspective) Classify(ctx context.Context, text string) (Signal, error) {
	payload := perspectiveRequest{
		Comment:   perspectiveComment{Text: text},
		Languages: []string{"es"},
		RequestedAttributes: map[string]perspectiveAttribute{
			"TOXICITY": {},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Signal{}, err
	}

	url := fmt.Sprintf("%s/comments:analyze?key=%s", p.baseURL, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Signal{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Signal{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Signal{}, fmt.Errorf("%w: perspective returned %d: %s", errors.ErrProviderResponse, resp.StatusCode, raw)
	}

	var parsed perspectiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Signal{}, err
	}

	toxicity, ok := parsed.AttributeScores["TOXICITY"]
	if !ok {
		return Signal{}, fmt.Errorf("%w: perspective response misses TOXICITY attribute", errors.ErrProviderResponse)
	}

	return Signal{
		Provider: p.Name(),
		Score:    toxicity.SummaryScore.Value,
		Categories: map[string]float64{
			"toxicity": toxicity.SummaryScore.Value,
		},
	}, nil
}
