package moderation

import "califica-tu-profe/providers"

// LocalScore summarizes the local heuristics contribution inside a verdict.
type LocalScore struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// ScoreSummary groups every signal that backed a verdict. Providers are a
// uniform tagged list rather than one field per service.
type ScoreSummary struct {
	Local     *LocalScore        `json:"local,omitempty"`
	Providers []providers.Signal `json:"providers,omitempty"`
}

// Verdict is the allow/block decision for one submission. Computed fresh
// per call and never mutated afterwards; the caller decides whether to
// persist the source text when Allowed is true.
type Verdict struct {
	Allowed        bool         `json:"allowed"`
	Reasons        []string     `json:"reasons"`
	Confidence     float64      `json:"confidence"`
	FlaggedContent string       `json:"flaggedContent,omitempty"`
	Scores         ScoreSummary `json:"scores"`
}
