package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerspective_Classify(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{
			"attributeScores": {
				"TOXICITY": {"summaryScore": {"value": 0.83}}
			}
		}`))
	}))
	defer server.Close()

	client := NewPerspective(PerspectiveConfig{APIKey: "test", BaseURL: server.URL})
	signal, err := client.Classify(context.Background(), "texto toxico")

	req.NoError(err)
	req.Equal("perspective", signal.Provider)
	req.InDelta(0.83, signal.Score, 1e-9)
	req.InDelta(0.83, signal.Categories["toxicity"], 1e-9)
}

func TestPerspective_Non200IsAnError(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewPerspective(PerspectiveConfig{APIKey: "test", BaseURL: server.URL})
	_, err := client.Classify(context.Background(), "texto")
	req.Error(err)
}

func TestOpenAIModeration_Classify(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{
			"results": [{
				"flagged": true,
				"category_scores": {"harassment": 0.91, "hate": 0.12}
			}]
		}`))
	}))
	defer server.Close()

	client := NewOpenAIModeration(OpenAIConfig{APIKey: "test", BaseURL: server.URL})
	signal, err := client.Classify(context.Background(), "texto")

	req.NoError(err)
	req.True(signal.Flagged)
	req.InDelta(0.91, signal.Score, 1e-9)
	req.Len(signal.Categories, 2)
}

func TestOpenAIModeration_EmptyResults(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewOpenAIModeration(OpenAIConfig{APIKey: "test", BaseURL: server.URL})
	_, err := client.Classify(context.Background(), "texto")
	req.Error(err)
}
