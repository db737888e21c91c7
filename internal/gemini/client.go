package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is a failure reported by the Gemini API: a non-2xx status, a
// network error, or a malformed response body. Callers must treat it as
// terminal for the request; the client never retries.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("gemini: %s", e.Message)
	}
	return fmt.Sprintf("gemini: status %d: %s", e.StatusCode, e.Message)
}

// Client communicates with the Google Generative Language API over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// DefaultBaseURL is the production Generative Language API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// New creates a Client targeting the given API base URL with the given key.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

// embedContentRequest is the JSON body for POST /v1beta/models/{model}:embedContent.
type embedContentRequest struct {
	Content content `json:"content"`
}

type embedding struct {
	Values []float32 `json:"values"`
}

type embedContentResponse struct {
	Embedding embedding `json:"embedding"`
}

// Embed returns the embedding vector for the given text using the specified model.
func (c *Client) Embed(ctx context.Context, model string, text string) ([]float32, error) {
	var result embedContentResponse
	body := embedContentRequest{Content: content{Parts: []part{{Text: text}}}}
	if err := c.post(ctx, fmt.Sprintf("/v1beta/models/%s:embedContent", model), body, &result); err != nil {
		return nil, err
	}
	if len(result.Embedding.Values) == 0 {
		return nil, &APIError{Message: fmt.Sprintf("model %s returned an empty embedding", model)}
	}
	return result.Embedding.Values, nil
}

// batchEmbedRequest is the JSON body for POST /v1beta/models/{model}:batchEmbedContents.
type batchEmbedRequest struct {
	Requests []batchEmbedEntry `json:"requests"`
}

type batchEmbedEntry struct {
	Model   string  `json:"model"`
	Content content `json:"content"`
}

type batchEmbedResponse struct {
	Embeddings []embedding `json:"embeddings"`
}

// EmbedBatch returns embedding vectors for multiple texts in a single API
// call, preserving input order. Returns nil (not error) for empty input.
func (c *Client) EmbedBatch(ctx context.Context, model string, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	req := batchEmbedRequest{Requests: make([]batchEmbedEntry, len(texts))}
	for i, t := range texts {
		req.Requests[i] = batchEmbedEntry{
			Model:   "models/" + model,
			Content: content{Parts: []part{{Text: t}}},
		}
	}

	var result batchEmbedResponse
	if err := c.post(ctx, fmt.Sprintf("/v1beta/models/%s:batchEmbedContents", model), req, &result); err != nil {
		return nil, err
	}
	if len(result.Embeddings) != len(texts) {
		return nil, &APIError{Message: fmt.Sprintf("batch embed returned %d vectors for %d texts", len(result.Embeddings), len(texts))}
	}

	vectors := make([][]float32, len(texts))
	for i, e := range result.Embeddings {
		if len(e.Values) == 0 {
			return nil, &APIError{Message: fmt.Sprintf("batch embed returned an empty vector at index %d", i)}
		}
		vectors[i] = e.Values
	}
	return vectors, nil
}

// generateContentRequest is the JSON body for POST /v1beta/models/{model}:generateContent.
type generateContentRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends a system instruction and a user prompt to the given
// model and returns the generated text verbatim.
func (c *Client) GenerateText(ctx context.Context, model string, systemInstruction string, prompt string) (string, error) {
	req := generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	if systemInstruction != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: systemInstruction}}}
	}

	var result generateContentResponse
	if err := c.post(ctx, fmt.Sprintf("/v1beta/models/%s:generateContent", model), req, &result); err != nil {
		return "", err
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", &APIError{Message: fmt.Sprintf("model %s returned no candidates", model)}
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// modelsResponse mirrors the JSON returned by GET /v1beta/models.
type modelsResponse struct {
	Models []modelEntry `json:"models"`
}

type modelEntry struct {
	Name string `json:"name"`
}

// IsReachable reports whether the API answers GET /v1beta/models with 200
// for the configured key.
func (c *Client) IsReachable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1beta/models", nil)
	if err != nil {
		return false
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// ListModels returns the names of the models available to the API key,
// without the "models/" prefix.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1beta/models", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("requesting model list: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	var models modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return nil, &APIError{Message: fmt.Sprintf("decoding model list: %v", err)}
	}

	names := make([]string, len(models.Models))
	for i, m := range models.Models {
		names[i] = strings.TrimPrefix(m.Name, "models/")
	}
	return names, nil
}

// HasModel reports whether the given model name is available to the API key.
func (c *Client) HasModel(ctx context.Context, name string) bool {
	models, err := c.ListModels(ctx)
	if err != nil {
		return false
	}
	for _, m := range models {
		if m == name {
			return true
		}
	}
	return false
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Message: fmt.Sprintf("decoding response: %v", err)}
	}
	return nil
}

// readErrorMessage extracts the error message from a Gemini error body,
// falling back to the raw body when it is not the standard shape.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "no error detail"
	}
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return strings.TrimSpace(string(data))
}
