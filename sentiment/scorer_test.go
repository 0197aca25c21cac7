package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScorer_NeutralWithoutLexiconHits(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer(DefaultLexicon())

	tests := []string{
		"",
		"la cafeteria abre a las ocho",
		"el aula queda en el tercer piso",
	}
	for _, text := range tests {
		result := scorer.Score(text)
		req.Equal(LabelNeutral, result.Label, "text=%q", text)
		req.Zero(result.Score, "text=%q", text)
		req.Zero(result.Magnitude, "text=%q", text)
	}
}

func TestScorer_PositiveReview(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer(DefaultLexicon())

	result := scorer.Score("Es un profesor excelente y muy claro")

	req.Equal(LabelPositive, result.Label)
	req.Greater(result.Score, 0.1)
	req.Greater(result.Confidence, 0.0)
	// No evaluation/availability trigger appears, so no topic may fire.
	req.Empty(result.Topics)
}

func TestScorer_NegativeReview(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer(DefaultLexicon())

	result := scorer.Score("Muy injusto con las notas, pésimo profesor")

	req.Equal(LabelNegative, result.Label)
	req.Less(result.Score, -0.1)
}

func TestScorer_TopicsFromTriggers(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer(DefaultLexicon())

	result := scorer.Score("El examen final fue largo pero la clase ayuda")

	req.Contains(result.Topics, "evaluación")
	req.Contains(result.Topics, "enseñanza")
}

func TestScorer_EmotionsUnclamped(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer(DefaultLexicon())

	// 11 joy hits / 10 exceeds 1; emotion sums are not clamped.
	text := strings.TrimSpace(strings.Repeat("feliz ", 11))
	result := scorer.Score(text)
	req.Greater(result.Emotions["joy"], 1.0)
}

func TestScorer_ScoreClampedToOne(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer(DefaultLexicon())

	result := scorer.Score("excelente excelente excelente")
	req.Equal(1.0, result.Score)
}
