package topics

import (
	"sort"
	"strings"
)

// Topic is one scored cluster for a given text.
type Topic struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Sentiment float64 `json:"sentiment"`
}

// Analysis is the classifier output. Primary is never empty: when nothing
// scores above zero it falls back to the teaching-quality cluster with
// weight 0.
type Analysis struct {
	Primary    Topic    `json:"primaryTopic"`
	All        []Topic  `json:"allTopics"`
	Confidence float64  `json:"confidence"`
	Categories []string `json:"categories"`
}

// window is the number of characters inspected on each side of a keyword
// occurrence when deriving per-topic sentiment.
const window = 50

// markerStep is the sentiment contribution of a single marker hit.
const markerStep = 0.2

type Classifier struct {
	clusters []Cluster
	markers  Markers
	rules    []CategoryRule
}

func NewClassifier(clusters []Cluster, markers Markers, rules []CategoryRule) Classifier {
	return Classifier{clusters: clusters, markers: markers, rules: rules}
}

// Classify scores the text against every cluster and returns the topics
// ordered by descending weight. The sort is stable, so equal weights keep
// cluster declaration order.
func (c Classifier) Classify(text string) Analysis {
	lowered := strings.ToLower(text)

	var scored []Topic
	for _, cluster := range c.clusters {
		topic := c.scoreCluster(lowered, cluster)
		if topic.Weight > 0 {
			scored = append(scored, topic)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Weight > scored[j].Weight
	})

	analysis := Analysis{
		All:        scored,
		Categories: c.categories(lowered),
	}

	if len(scored) > 0 {
		analysis.Primary = scored[0]
	} else {
		// Policy: never return an empty primary topic.
		fallback := c.clusters[0]
		analysis.Primary = Topic{ID: fallback.ID, Name: fallback.Name}
	}
	analysis.Confidence = analysis.Primary.Weight

	return analysis
}

func (c Classifier) scoreCluster(lowered string, cluster Cluster) Topic {
	var matches int
	var sentiment float64

	for _, keyword := range cluster.Keywords {
		for _, pos := range occurrences(lowered, keyword) {
			matches++
			sentiment += c.windowSentiment(lowered, pos, len(keyword))
		}
	}

	weight := float64(matches) / float64(len(cluster.Keywords))
	if weight > 1 {
		weight = 1
	}

	if sentiment > 1 {
		sentiment = 1
	} else if sentiment < -1 {
		sentiment = -1
	}

	return Topic{ID: cluster.ID, Name: cluster.Name, Weight: weight, Sentiment: sentiment}
}

// windowSentiment inspects the characters around one keyword occurrence and
// accumulates a step per polarity-marker hit.
func (c Classifier) windowSentiment(lowered string, pos, keywordLen int) float64 {
	start := pos - window
	if start < 0 {
		start = 0
	}
	end := pos + keywordLen + window
	if end > len(lowered) {
		end = len(lowered)
	}
	excerpt := lowered[start:end]

	var score float64
	for _, marker := range c.markers.Positive {
		if strings.Contains(excerpt, marker) {
			score += markerStep
		}
	}
	for _, marker := range c.markers.Negative {
		if strings.Contains(excerpt, marker) {
			score -= markerStep
		}
	}
	return score
}

func (c Classifier) categories(lowered string) []string {
	seen := map[string]bool{}
	var categories []string
	for _, rule := range c.rules {
		if strings.Contains(lowered, rule.Phrase) && !seen[rule.Category] {
			seen[rule.Category] = true
			categories = append(categories, rule.Category)
		}
	}
	// "no lo recomiendo" textually contains "recomiendo"; the negated
	// category wins when both fire.
	if seen["no recomendado"] && seen["recomendado"] {
		filtered := categories[:0]
		for _, cat := range categories {
			if cat != "recomendado" {
				filtered = append(filtered, cat)
			}
		}
		categories = filtered
	}
	return categories
}

func occurrences(text, keyword string) []int {
	var positions []int
	offset := 0
	for {
		idx := strings.Index(text[offset:], keyword)
		if idx < 0 {
			return positions
		}
		positions = append(positions, offset+idx)
		offset += idx + len(keyword)
	}
}
