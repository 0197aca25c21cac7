package moderation

// Wordlist holds the local moderation lexicons. Immutable after
// construction, injected into the detector so tests can swap entries.
type Wordlist struct {
	Profanity []string
	Spam      []string
}

// DefaultWordlist returns the curated Spanish lists used in production.
func DefaultWordlist() Wordlist {
	return Wordlist{
		Profanity: []string{
			"estupido", "estúpido", "idiota", "imbecil", "imbécil",
			"pendejo", "pendeja", "cabron", "cabrón", "mierda",
			"maldito", "maldita", "basura humana", "inutil", "inútil",
		},
		Spam: []string{
			"http", "www.", "compra", "vende", "dinero",
		},
	}
}
