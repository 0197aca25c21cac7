package sentiment

import "strings"

type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Result is the full sentiment annotation for one piece of review text.
// Emotion values are deliberately not clamped to [0,1]: the /10 normalizer can
// exceed 1 on emotionally dense text, which callers use to detect outliers.
type Result struct {
	Score      float64            `json:"score"`
	Magnitude  float64            `json:"magnitude"`
	Label      Label              `json:"label"`
	Confidence float64            `json:"confidence"`
	Emotions   map[string]float64 `json:"emotions"`
	Topics     []string           `json:"topics"`
}

type Scorer struct {
	lexicon Lexicon
}

func NewScorer(lexicon Lexicon) Scorer {
	return Scorer{lexicon: lexicon}
}

// Score derives polarity, emotions and coarse topics from the text.
// Pure function over the injected lexicon; empty input yields a neutral result.
func (s Scorer) Score(text string) Result {
	result := Result{
		Label:    LabelNeutral,
		Emotions: map[string]float64{},
	}

	lowered := strings.ToLower(text)
	tokens := strings.Fields(lowered)

	var positive, negative int
	for _, token := range tokens {
		if containsAny(token, s.lexicon.Positive) {
			positive++
		}
		if containsAny(token, s.lexicon.Negative) {
			negative++
		}
	}

	if len(tokens) > 0 {
		// The x5 scaling compensates for lexicon sparsity relative to
		// typical review length.
		raw := float64(positive-negative) / float64(len(tokens))
		result.Score = clamp(raw*5, -1, 1)
		result.Magnitude = abs(raw)
		result.Confidence = clamp(result.Magnitude*2, 0, 1)
	}

	switch {
	case result.Score > 0.1:
		result.Label = LabelPositive
	case result.Score < -0.1:
		result.Label = LabelNegative
	}

	for emotion, words := range s.lexicon.Emotions {
		var hits int
		for _, token := range tokens {
			if containsAny(token, words) {
				hits++
			}
		}
		result.Emotions[emotion] = float64(hits) / 10
	}

	for _, rule := range s.lexicon.Topics {
		for _, trigger := range rule.Triggers {
			if strings.Contains(lowered, trigger) {
				result.Topics = append(result.Topics, rule.Topic)
				break
			}
		}
	}

	return result
}

func containsAny(token string, words []string) bool {
	for _, w := range words {
		if strings.Contains(token, w) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
