package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jgrande/kbchat/internal/storage"
)

const testToken = "test-token"

func newTestAppHandler(t *testing.T) (http.Handler, *storage.Store) {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewAppHandler(AppDeps{Store: store, Token: testToken}), store
}

func seedInteraction(t *testing.T, store *storage.Store, id string, createdAt time.Time) {
	t.Helper()
	err := store.SaveInteraction(storage.Interaction{
		ID:            id,
		CreatedAt:     createdAt,
		Query:         "query " + id,
		Language:      "en",
		Answer:        "answer " + id,
		TopSimilarity: 0.8,
	})
	if err != nil {
		t.Fatalf("seeding interaction: %v", err)
	}
}

func appRequest(t *testing.T, handler http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestApp_RequiresBearerToken(t *testing.T) {
	handler, _ := newTestAppHandler(t)

	if rec := appRequest(t, handler, "GET", "/interactions", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}
	if rec := appRequest(t, handler, "GET", "/interactions", "wrong-token"); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong token: status = %d, want 401", rec.Code)
	}
	if rec := appRequest(t, handler, "GET", "/interactions", testToken); rec.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", rec.Code)
	}
}

func TestApp_ListInteractions(t *testing.T) {
	handler, store := newTestAppHandler(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedInteraction(t, store, "older", base)
	seedInteraction(t, store, "newer", base.Add(time.Hour))

	rec := appRequest(t, handler, "GET", "/interactions", testToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var views []interactionView
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d interactions, want 2", len(views))
	}
	if views[0].ID != "newer" {
		t.Errorf("first interaction = %q, want newest first", views[0].ID)
	}
}

func TestApp_ListInteractions_Limit(t *testing.T) {
	handler, store := newTestAppHandler(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		seedInteraction(t, store, id, base.Add(time.Duration(i)*time.Minute))
	}

	rec := appRequest(t, handler, "GET", "/interactions?limit=2", testToken)
	var views []interactionView
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(views) != 2 {
		t.Errorf("got %d interactions, want 2", len(views))
	}
}

func TestApp_GetInteraction(t *testing.T) {
	handler, store := newTestAppHandler(t)
	seedInteraction(t, store, "ix1", time.Now().UTC())

	rec := appRequest(t, handler, "GET", "/interactions/ix1", testToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var view interactionView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if view.ID != "ix1" || view.Query != "query ix1" {
		t.Errorf("view = %+v", view)
	}
}

func TestApp_GetInteraction_NotFound(t *testing.T) {
	handler, _ := newTestAppHandler(t)

	rec := appRequest(t, handler, "GET", "/interactions/missing", testToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestApp_DeleteInteraction(t *testing.T) {
	handler, store := newTestAppHandler(t)
	seedInteraction(t, store, "ix1", time.Now().UTC())

	rec := appRequest(t, handler, "DELETE", "/interactions/ix1", testToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	count, err := store.CountInteractions()
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d after delete, want 0", count)
	}

	rec = appRequest(t, handler, "DELETE", "/interactions/ix1", testToken)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", rec.Code)
	}
}
