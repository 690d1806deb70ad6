package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerativeLanguageClient calls the Google generative-language REST API.
type GenerativeLanguageClient struct {
	httpClient http.Client
	baseURL    url.URL
	model      string
	apiKey     string
}

func New(baseURL url.URL, model string, apiKey string, timeout time.Duration) *GenerativeLanguageClient {
	return &GenerativeLanguageClient{
		httpClient: http.Client{Timeout: timeout},
		baseURL:    baseURL,
		model:      model,
		apiKey:     apiKey,
	}
}

func (c *GenerativeLanguageClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	url := c.baseURL.JoinPath("v1beta", "models", fmt.Sprintf("%s:generateContent", c.model))

	var body bytes.Buffer
	encoder := json.NewEncoder(&body)
	err := encoder.Encode(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url.String(), &body)
	if err != nil {
		return "", err
	}
	request.Header.Add("content-type", "application/json")
	request.Header.Add("x-goog-api-key", c.apiKey)
	resp, err := c.httpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		return "", fmt.Errorf("got unsuccessful response from the language model API: %s", string(respBody))
	}

	decoded := generateContentResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("language model API returned no candidates")
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
