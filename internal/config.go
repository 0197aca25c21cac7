package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host     string `env:"HOST,required=true"`
	Port     int    `env:"PORT,required=true"`
	LogLevel string `env:"LOG_LEVEL,required=true"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`

	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`

	// External moderation providers. Empty keys disable the provider.
	PerspectiveAPIKey  string        `env:"PERSPECTIVE_API_KEY"`
	PerspectiveBaseURL string        `env:"PERSPECTIVE_BASE_URL"`
	OpenAIAPIKey       string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL      string        `env:"OPENAI_BASE_URL"`
	ProviderTimeout    time.Duration `env:"PROVIDER_TIMEOUT,required=true"`

	ToxicityThreshold float64 `env:"TOXICITY_THRESHOLD,required=true"`
	AuditExcerptLen   int     `env:"AUDIT_EXCERPT_LENGTH,required=true"`
	CharReplacement   string  `env:"CHARACTER_REPLACEMENT,required=true"`

	DebugPort *int `env:"DEBUG_PORT"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
