package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewGeminiClient("test-key", "gemini-1.5-flash-latest", 5*time.Second, WithBaseURL(srv.URL))
	require.NoError(t, err)
	return client
}

func TestNewGeminiClient_RequiresKeyAndModel(t *testing.T) {
	_, err := NewGeminiClient("", "model", time.Second)
	assert.Error(t, err)

	_, err = NewGeminiClient("key", "", time.Second)
	assert.Error(t, err)
}

func TestGeminiClient_GenerateContent_Success(t *testing.T) {
	var gotPath string
	var gotBody generateContentRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "Greetings, traveler."}},
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	})

	text, err := client.GenerateContent(context.Background(), "say hi")
	require.NoError(t, err)
	assert.Equal(t, "Greetings, traveler.", text)
	assert.Equal(t, "/v1beta/models/gemini-1.5-flash-latest:generateContent", gotPath)

	// Промпт должен уходить дословно
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "say hi", gotBody.Contents[0].Parts[0].Text)
}

func TestGeminiClient_GenerateContent_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"code":    429,
				"message": "Resource has been exhausted",
				"status":  "RESOURCE_EXHAUSTED",
			},
		})
	})

	_, err := client.GenerateContent(context.Background(), "say hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Resource has been exhausted")
}

func TestGeminiClient_GenerateContent_EmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	})

	_, err := client.GenerateContent(context.Background(), "say hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGeminiClient_GenerateContent_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})

	_, err := client.GenerateContent(context.Background(), "say hi")
	require.Error(t, err)
}
