package services

import (
	"log/slog"

	"califica-tu-profe/sentiment"
	"califica-tu-profe/textnorm"
	"califica-tu-profe/topics"

	"github.com/abadojack/whatlanggo"
)

// ReviewAnnotation bundles the informational analyses attached to a review
// at submission time. Purely advisory: it never gates persistence.
type ReviewAnnotation struct {
	Sentiment sentiment.Result `json:"sentiment"`
	Topics    topics.Analysis  `json:"topics"`
	Language  string           `json:"language"`
}

type AnalysisService struct {
	scorer     sentiment.Scorer
	classifier topics.Classifier
	log        *slog.Logger
}

func NewAnalysisService(scorer sentiment.Scorer, classifier topics.Classifier, log *slog.Logger) AnalysisService {
	return AnalysisService{scorer: scorer, classifier: classifier, log: log}
}

// Analyze derives sentiment, topics and language for one review text.
// Pure computation over the injected lexicons; safe for any input length.
// Language detection runs on the raw text; the lexicon matchers get the
// diacritic-stripped form so "Pésimo" and "pesimo" score identically.
func (s AnalysisService) Analyze(text string) ReviewAnnotation {
	info := whatlanggo.Detect(text)
	normalized := textnorm.Normalize(text)

	annotation := ReviewAnnotation{
		Sentiment: s.scorer.Score(normalized),
		Topics:    s.classifier.Classify(normalized),
		Language:  info.Lang.Iso6391(),
	}

	s.log.Debug("Review analyzed",
		"label", annotation.Sentiment.Label,
		"primary_topic", annotation.Topics.Primary.ID,
		"lang", annotation.Language)

	return annotation
}
