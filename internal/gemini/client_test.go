package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-key")
}

func TestEmbed(t *testing.T) {
	var gotPath, gotKey string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		var req embedContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Content.Parts[0].Text != "hello" {
			t.Errorf("text = %q", req.Content.Parts[0].Text)
		}

		json.NewEncoder(w).Encode(embedContentResponse{
			Embedding: embedding{Values: []float32{0.1, 0.2, 0.3}},
		})
	})

	vec, err := c.Embed(context.Background(), "text-embedding-004", "hello")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if gotPath != "/v1beta/models/text-embedding-004:embedContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if len(vec) != 3 {
		t.Errorf("got %d values, want 3", len(vec))
	}
}

func TestEmbed_EmptyVectorIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(embedContentResponse{})
	})

	_, err := c.Embed(context.Background(), "m", "hello")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want APIError", err)
	}
}

func TestEmbed_APIErrorMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	})

	_, err := c.Embed(context.Background(), "m", "hello")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want APIError", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
	if apiErr.Message != "quota exceeded" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestEmbedBatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":batchEmbedContents") {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req batchEmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if len(req.Requests) != 2 {
			t.Errorf("got %d entries, want 2", len(req.Requests))
		}
		if req.Requests[0].Model != "models/text-embedding-004" {
			t.Errorf("entry model = %q", req.Requests[0].Model)
		}

		json.NewEncoder(w).Encode(batchEmbedResponse{
			Embeddings: []embedding{
				{Values: []float32{1}},
				{Values: []float32{2}},
			},
		})
	})

	vecs, err := c.EmbedBatch(context.Background(), "text-embedding-004", []string{"a", "b"})
	if err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	if len(vecs) != 2 || vecs[0][0] != 1 || vecs[1][0] != 2 {
		t.Errorf("vecs = %v", vecs)
	}
}

func TestEmbedBatch_EmptyInput(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty input")
	})

	vecs, err := c.EmbedBatch(context.Background(), "m", nil)
	if err != nil {
		t.Fatalf("EmbedBatch: %v", err)
	}
	if vecs != nil {
		t.Errorf("got %v, want nil", vecs)
	}
}

func TestEmbedBatch_CountMismatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(batchEmbedResponse{
			Embeddings: []embedding{{Values: []float32{1}}},
		})
	})

	_, err := c.EmbedBatch(context.Background(), "m", []string{"a", "b"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want APIError", err)
	}
	if !strings.Contains(apiErr.Message, "1 vectors for 2 texts") {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestGenerateText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "be helpful" {
			t.Errorf("system instruction = %+v", req.SystemInstruction)
		}
		if req.Contents[0].Role != "user" || req.Contents[0].Parts[0].Text != "the prompt" {
			t.Errorf("contents = %+v", req.Contents)
		}

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"part one "},{"text":"part two"}]}}]}`))
	})

	text, err := c.GenerateText(context.Background(), "gemini-2.0-flash", "be helpful", "the prompt")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if text != "part one part two" {
		t.Errorf("text = %q", text)
	}
}

func TestGenerateText_NoCandidates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := c.GenerateText(context.Background(), "m", "", "prompt")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want APIError", err)
	}
}

func TestListModels(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"models":[{"name":"models/gemini-2.0-flash"},{"name":"models/text-embedding-004"}]}`))
	})

	models, err := c.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(models) != 2 || models[0] != "gemini-2.0-flash" || models[1] != "text-embedding-004" {
		t.Errorf("models = %v", models)
	}
}

func TestHasModel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"models":[{"name":"models/gemini-2.0-flash"}]}`))
	})

	if !c.HasModel(context.Background(), "gemini-2.0-flash") {
		t.Error("expected model to be found")
	}
	if c.HasModel(context.Background(), "missing-model") {
		t.Error("did not expect missing model to be found")
	}
}

func TestIsReachable(t *testing.T) {
	ok := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if !ok.IsReachable(context.Background()) {
		t.Error("expected reachable")
	}

	denied := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	if denied.IsReachable(context.Background()) {
		t.Error("expected unreachable on 403")
	}
}

func TestReadErrorMessage_FallsBackToRawBody(t *testing.T) {
	msg := readErrorMessage(strings.NewReader("plain text failure"))
	if msg != "plain text failure" {
		t.Errorf("msg = %q", msg)
	}

	msg = readErrorMessage(strings.NewReader(""))
	if msg != "no error detail" {
		t.Errorf("msg = %q", msg)
	}
}
