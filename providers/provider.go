//go:generate go run go.uber.org/mock/mockgen -source=provider.go -destination=../mocks/mock_provider.go -package=mocks
package providers

import "context"

// Signal is the normalized output of one external classification service.
// Heterogeneous provider payloads are folded into this single shape so the
// decision engine iterates providers uniformly instead of hardcoding names.
type Signal struct {
	Provider   string             `json:"provider"`
	Score      float64            `json:"score"`
	Flagged    bool               `json:"flagged"`
	Categories map[string]float64 `json:"categories,omitempty"`
}

// Provider is one external content-classification service. Classify must
// honour the context deadline; credentials and endpoints are supplied at
// construction.
type Provider interface {
	Name() string
	Classify(ctx context.Context, text string) (Signal, error)
}
