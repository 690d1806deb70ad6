package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	MODEL   = "test-model"
	API_KEY = "test-api-key"
)

func newClient(t *testing.T, handler http.HandlerFunc) *GenerativeLanguageClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	baseURL, err := url.Parse(server.URL)
	require.Nil(t, err)
	return New(*baseURL, MODEL, API_KEY, time.Second)
}

func TestGenerateTextSuccess(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotRequest generateContentRequest

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("x-goog-api-key")
		err := json.NewDecoder(r.Body).Decode(&gotRequest)
		require.Nil(t, err)

		response := generateContentResponse{}
		response.Candidates = append(response.Candidates, struct {
			Content content `json:"content"`
		}{Content: content{Parts: []part{{Text: "Algebra is the study of symbols."}}}})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})

	text, err := client.GenerateText(context.Background(), "Explain algebra")

	require.Nil(t, err)
	assert.Equal(t, "Algebra is the study of symbols.", text)
	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
	assert.Equal(t, API_KEY, gotAPIKey)
	require.Equal(t, 1, len(gotRequest.Contents))
	require.Equal(t, 1, len(gotRequest.Contents[0].Parts))
	assert.Equal(t, "Explain algebra", gotRequest.Contents[0].Parts[0].Text)
}

func TestGenerateTextErrorStatus(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "quota exceeded"}`))
	})

	_, err := client.GenerateText(context.Background(), "Explain algebra")

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateTextNoCandidates(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": []}`))
	})

	_, err := client.GenerateText(context.Background(), "Explain algebra")

	require.NotNil(t, err)
}

func TestGenerateTextContextCancellation(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.GenerateText(ctx, "Explain algebra")

	require.NotNil(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
