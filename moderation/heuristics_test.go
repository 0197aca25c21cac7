package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

func newDetector(t *testing.T) Detector {
	t.Helper()
	detector, err := NewDetector(DefaultWordlist(), replacementChar)
	require.NoError(t, err)
	return detector
}

func TestDetector_Evaluate(t *testing.T) {
	req := require.New(t)
	detector := newDetector(t)

	tests := []struct {
		name          string
		input         string
		inappropriate bool
		spam          bool
		fake          bool
	}{
		{
			name:  "Clean review",
			input: "Excelente profesor, explica con mucha claridad",
		},
		{
			name:          "Profanity hit",
			input:         "Este profesor es un idiota completo",
			inappropriate: true,
		},
		{
			name:          "Leet speak profanity",
			input:         "Este profesor es un 1d10ta completo",
			inappropriate: true,
		},
		{
			name:  "Spam link",
			input: "Mira mis apuntes en http://x.com antes del examen",
			spam:  true,
		},
		{
			name:  "Sales language",
			input: "Vende las respuestas del parcial por dinero",
			spam:  true,
		},
		{
			name:  "Too short",
			input: "malo",
			fake:  true,
		},
		{
			name:  "Repeated characters",
			input: "a" + strings.Repeat("a", 10),
			fake:  true,
		},
		{
			name:  "Empty string",
			input: "",
			fake:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := detector.Evaluate(tt.input)
			req.Equal(tt.inappropriate, flags.Inappropriate, "inappropriate, text=%q", tt.input)
			req.Equal(tt.spam, flags.Spam, "spam, text=%q", tt.input)
			req.Equal(tt.fake, flags.Fake, "fake, text=%q", tt.input)
		})
	}
}

func TestDetector_ScoreIsFlagRatio(t *testing.T) {
	req := require.New(t)
	detector := newDetector(t)

	req.Zero(detector.Evaluate("Una clase bastante normal y tranquila").Score)

	flags := detector.Evaluate("idiota")
	// Profanity plus too-short: two of three flags.
	req.True(flags.Inappropriate)
	req.True(flags.Fake)
	req.InDelta(2.0/3, flags.Score, 1e-9)
}

func TestDetector_Censor(t *testing.T) {
	req := require.New(t)
	detector := newDetector(t)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "Un idiota en el aula",
			expected: "Un ****** en el aula",
			words:    []string{"idiota"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "Es un i.d.i.0.t.a total",
			expected: "Es un *********** total",
			words:    []string{"idiota"},
		},
		{
			name:     "Nothing to censor",
			input:    "Un profesor ejemplar",
			expected: "Un profesor ejemplar",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := detector.Censor(tt.input)
			req.Equal(tt.expected, content)
			req.Equal(tt.words, words)
		})
	}
}
