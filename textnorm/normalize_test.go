package textnorm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Diacritics stripped", "Álvarez", "alvarez"},
		{"Already plain", "alvarez", "alvarez"},
		{"Mixed case and spacing", "  EXCELENTE Profesor  ", "excelente profesor"},
		{"Tilde n keeps base letter", "señor", "senor"},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	req := require.New(t)
	inputs := []string{"Álvarez", "Evaluación MUY justa", "ñoño", ""}
	for _, in := range inputs {
		once := Normalize(in)
		req.Equal(once, Normalize(once))
	}
}
