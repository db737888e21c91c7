package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jgrande/kbchat/internal/storage"
)

// AppDeps holds dependencies for the management API.
type AppDeps struct {
	Store *storage.Store
	Token string
}

// NewAppHandler returns an http.Handler serving the bearer-authenticated
// management routes over the interaction log.
func NewAppHandler(deps AppDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(BearerAuth(deps.Token))

	r.Get("/interactions", handleListInteractions(deps))
	r.Get("/interactions/{id}", handleGetInteraction(deps))
	r.Delete("/interactions/{id}", handleDeleteInteraction(deps))

	return r
}

type interactionView struct {
	ID            string  `json:"id"`
	CreatedAt     string  `json:"created_at"`
	Query         string  `json:"query"`
	Language      string  `json:"language"`
	Answer        string  `json:"answer"`
	Refused       bool    `json:"refused"`
	TopSimilarity float64 `json:"top_similarity"`
	DurationMs    int64   `json:"duration_ms"`
}

func toView(i storage.Interaction) interactionView {
	return interactionView{
		ID:            i.ID,
		CreatedAt:     i.CreatedAt.UTC().Format(time.RFC3339),
		Query:         i.Query,
		Language:      i.Language,
		Answer:        i.Answer,
		Refused:       i.Refused,
		TopSimilarity: i.TopSimilarity,
		DurationMs:    i.DurationMs,
	}
}

func handleListInteractions(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", 20, 100)
		offset := queryInt(r, "offset", 0, 1<<30)

		interactions, err := deps.Store.ListInteractions(limit, offset)
		if err != nil {
			chatError(w, http.StatusInternalServerError, "failed to list interactions")
			return
		}

		views := make([]interactionView, len(interactions))
		for i, ix := range interactions {
			views[i] = toView(ix)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(views)
	}
}

func handleGetInteraction(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		interaction, err := deps.Store.GetInteraction(id)
		if errors.Is(err, storage.ErrNotFound) {
			chatError(w, http.StatusNotFound, "interaction not found")
			return
		}
		if err != nil {
			chatError(w, http.StatusInternalServerError, "failed to load interaction")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(toView(interaction))
	}
}

func handleDeleteInteraction(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := deps.Store.DeleteInteraction(id)
		if errors.Is(err, storage.ErrNotFound) {
			chatError(w, http.StatusNotFound, "interaction not found")
			return
		}
		if err != nil {
			chatError(w, http.StatusInternalServerError, "failed to delete interaction")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
	}
}

func queryInt(r *http.Request, name string, def, max int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	if v > max {
		return max
	}
	return v
}
