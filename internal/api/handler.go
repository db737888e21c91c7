package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jgrande/kbchat/internal/locale"
	"github.com/jgrande/kbchat/internal/pipeline"
	"github.com/jgrande/kbchat/internal/storage"
)

const maxRequestBodySize = 1 << 20 // 1MB

var validate = validator.New()

// QueryAnswerer abstracts the answer pipeline for the HTTP layer.
type QueryAnswerer interface {
	Answer(ctx context.Context, q pipeline.Query) (pipeline.Result, error)
}

// ChatRequest is the inbound chat payload.
type ChatRequest struct {
	Query    string `json:"query" validate:"required"`
	Language string `json:"language"`
}

// ChatResponse carries either the generated answer or the localized refusal.
type ChatResponse struct {
	Text string `json:"text"`
}

// ChatDeps holds the chat handler dependencies. Store is optional; when nil,
// interactions are not recorded.
type ChatDeps struct {
	Answerer QueryAnswerer
	Store    *storage.Store
}

// NewChatHandler returns an http.Handler serving the public chat API: the
// health probe, the chat endpoint, and the language table the UI consumes.
func NewChatHandler(deps ChatDeps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)
	r.Get("/api/languages", handleLanguages)
	r.Post("/api/chat", handleChat(deps))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleLanguages serves the language list and per-language UI labels so the
// chat UI can render its picker and static strings.
func handleLanguages(w http.ResponseWriter, r *http.Request) {
	lang := locale.Normalize(r.URL.Query().Get("language"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"languages": locale.Languages,
		"default":   locale.DefaultLanguage,
		"uiText":    locale.UIText(lang),
	})
}

func handleChat(deps ChatDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			chatError(w, http.StatusBadRequest, "Query string is required")
			return
		}
		if err := validate.Struct(&req); err != nil {
			chatError(w, http.StatusBadRequest, "Query string is required")
			return
		}

		result, err := deps.Answerer.Answer(r.Context(), pipeline.Query{
			Text:     req.Query,
			Language: req.Language,
		})
		if err != nil {
			if errors.Is(err, pipeline.ErrEmptyQuery) {
				chatError(w, http.StatusBadRequest, "Query string is required")
				return
			}
			slog.Error("chat request failed", "error", err)
			chatError(w, http.StatusInternalServerError, "Failed to process the request")
			return
		}

		if deps.Store != nil {
			interaction := storage.Interaction{
				ID:            uuid.New().String(),
				CreatedAt:     time.Now().UTC(),
				Query:         req.Query,
				Language:      result.Language,
				Answer:        result.Text,
				Refused:       result.Refused,
				TopSimilarity: result.TopSimilarity,
				DurationMs:    result.DurationMs,
			}
			if err := deps.Store.SaveInteraction(interaction); err != nil {
				slog.Warn("failed to record interaction", "error", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ChatResponse{Text: result.Text})
	}
}

// chatError writes the public error shape: a single error string, no
// internal detail.
func chatError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
