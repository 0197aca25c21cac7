package moderation

import (
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Flags is the local heuristics result for one piece of text.
type Flags struct {
	Inappropriate bool     `json:"inappropriate"`
	Spam          bool     `json:"spam"`
	Fake          bool     `json:"fake"`
	Score         float64  `json:"score"`
	Matches       []string `json:"matches,omitempty"`
}

// Any reports whether at least one flag fired.
func (f Flags) Any() bool {
	return f.Inappropriate || f.Spam || f.Fake
}

// minContentRunes is the floor under which a submission is treated as
// degenerate.
const minContentRunes = 10

// repeatRunLimit is the consecutive-identical-rune run that marks
// bot/garbage submissions.
const repeatRunLimit = 5

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// Detector runs the fast, network-free content checks. Profanity matching
// uses an Aho-Corasick automaton over a normalized rune stream, so leet
// speak ("p3nd3j0"), accents and injected punctuation still hit the lexicon.
type Detector struct {
	matcher      *goahocorasick.Machine
	spam         []string
	censoredChar rune
}

func NewDetector(wordlist Wordlist, censoredChar rune) (Detector, error) {
	patterns := make([][]rune, len(wordlist.Profanity))
	for i, word := range wordlist.Profanity {
		patterns[i] = normalizeRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Detector{}, err
	}

	spam := make([]string, len(wordlist.Spam))
	for i, indicator := range wordlist.Spam {
		spam[i] = strings.ToLower(indicator)
	}
	return Detector{matcher: m, spam: spam, censoredChar: censoredChar}, nil
}

// Evaluate runs all local checks in a single pass plus fixed-size lexicon
// scans; it never touches the network.
func (d Detector) Evaluate(text string) Flags {
	var flags Flags

	matches := d.findProfanity(text)
	if len(matches) > 0 {
		flags.Inappropriate = true
		flags.Matches = matches
	}

	lowered := strings.ToLower(text)
	for _, indicator := range d.spam {
		if strings.Contains(lowered, indicator) {
			flags.Spam = true
			break
		}
	}

	runes := []rune(text)
	flags.Fake = len(runes) < minContentRunes || hasRepeatedRun(runes)

	var fired int
	for _, hit := range []bool{flags.Inappropriate, flags.Spam, flags.Fake} {
		if hit {
			fired++
		}
	}
	flags.Score = float64(fired) / 3

	return flags
}

// Censor stars out every profanity occurrence while preserving spacing and
// punctuation, and returns the matched lexicon entries. Used to build the
// excerpt shown to administrators.
func (d Detector) Censor(original string) (string, []string) {
	mapping := normalizeText(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	spans := d.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	var words []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}

		words = append(words, string(span.Word))

		origStart := mapping.origIdx[normStart]
		origEnd := mapping.origIdx[normEnd-1] + 1
		for i := origStart; i < origEnd; i++ {
			origRunes[i] = d.censoredChar
		}
	}

	return string(origRunes), words
}

func (d Detector) findProfanity(text string) []string {
	mapping := normalizeText(text)
	if len(mapping.normalized) == 0 {
		return nil
	}

	spans := d.matcher.MultiPatternSearch(mapping.normalized, false)
	var words []string
	for _, span := range spans {
		words = append(words, string(span.Word))
	}
	return words
}

func hasRepeatedRun(runes []rune) bool {
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= repeatRunLimit {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// normalizeText transforms the input into a searchable rune stream and
// tracks the original rune positions so matches can be censored in place.
func normalizeText(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common leet speak characters back to their standard
// alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters ignored during the matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
