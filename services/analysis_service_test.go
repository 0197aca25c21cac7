package services

import (
	"log/slog"
	"testing"

	"califica-tu-profe/sentiment"
	"califica-tu-profe/topics"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newAnalysisService() AnalysisService {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	scorer := sentiment.NewScorer(sentiment.DefaultLexicon())
	classifier := topics.NewClassifier(topics.DefaultClusters(), topics.DefaultMarkers(), topics.DefaultCategoryRules())
	return NewAnalysisService(scorer, classifier, log)
}

func TestAnalysisService_Analyze(t *testing.T) {
	req := require.New(t)
	service := newAnalysisService()

	annotation := service.Analyze(
		"Excelente profesor, explica la clase con claridad y el examen fue justo")

	req.Equal(sentiment.LabelPositive, annotation.Sentiment.Label)
	req.Equal("teaching_quality", annotation.Topics.Primary.ID)
	req.Equal("es", annotation.Language)
}

func TestAnalysisService_DiacriticInsensitive(t *testing.T) {
	req := require.New(t)
	service := newAnalysisService()

	accented := service.Analyze("PÉSIMO profesor y muy injusto con el examen")
	plain := service.Analyze("pesimo profesor y muy injusto con el examen")

	req.Equal(sentiment.LabelNegative, accented.Sentiment.Label)
	req.Equal(plain.Sentiment.Label, accented.Sentiment.Label)
	req.Equal(plain.Topics.Primary.ID, accented.Topics.Primary.ID)
}

func TestAnalysisService_EmptyText(t *testing.T) {
	req := require.New(t)
	service := newAnalysisService()

	annotation := service.Analyze("")

	req.Equal(sentiment.LabelNeutral, annotation.Sentiment.Label)
	req.Equal("teaching_quality", annotation.Topics.Primary.ID)
	req.Zero(annotation.Topics.Primary.Weight)
}
