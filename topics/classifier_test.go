package topics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newClassifier() Classifier {
	return NewClassifier(DefaultClusters(), DefaultMarkers(), DefaultCategoryRules())
}

func TestClassifier_EmptyTextDefaultsToTeachingQuality(t *testing.T) {
	req := require.New(t)
	analysis := newClassifier().Classify("")

	req.Equal("teaching_quality", analysis.Primary.ID)
	req.Zero(analysis.Primary.Weight)
	req.Zero(analysis.Confidence)
	req.Empty(analysis.All)
}

func TestClassifier_DominantTopic(t *testing.T) {
	req := require.New(t)
	analysis := newClassifier().Classify(
		"El examen parcial fue injusto y la calificación no corresponde con la prueba")

	req.Equal("evaluation", analysis.Primary.ID)
	req.Equal(analysis.Primary.Weight, analysis.Confidence)
	req.NotEmpty(analysis.All)
	req.Equal(analysis.All[0], analysis.Primary)
	// Negative marker "injusto" sits inside the window of "examen".
	req.Negative(analysis.Primary.Sentiment)
}

func TestClassifier_AllTopicsSortedDescending(t *testing.T) {
	req := require.New(t)
	analysis := newClassifier().Classify(
		"Explica muy bien la clase con buena metodología, aunque el examen fue largo")

	req.GreaterOrEqual(len(analysis.All), 2)
	for i := 1; i < len(analysis.All); i++ {
		req.GreaterOrEqual(analysis.All[i-1].Weight, analysis.All[i].Weight)
	}
	req.Equal("teaching_quality", analysis.Primary.ID)
}

func TestClassifier_ZeroWeightTopicsExcluded(t *testing.T) {
	req := require.New(t)
	analysis := newClassifier().Classify("El examen fue corto")

	for _, topic := range analysis.All {
		req.Positive(topic.Weight)
	}
}

func TestClassifier_Categories(t *testing.T) {
	req := require.New(t)
	c := newClassifier()

	analysis := c.Classify("Recomiendo su clase, se aprende mucho")
	req.Contains(analysis.Categories, "recomendado")

	analysis = c.Classify("No lo recomiendo para nada")
	req.Contains(analysis.Categories, "no recomendado")
	req.NotContains(analysis.Categories, "recomendado")
}

func TestClassifier_PositiveWindowSentiment(t *testing.T) {
	req := require.New(t)
	analysis := newClassifier().Classify("La clase es excelente y explica claro")

	req.Equal("teaching_quality", analysis.Primary.ID)
	req.Positive(analysis.Primary.Sentiment)
}
