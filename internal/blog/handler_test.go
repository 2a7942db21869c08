package blog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studiosite-backend/internal/db"
	"studiosite-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	database, err := db.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.Migrate(context.Background(), database))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(NewService(NewRepository(database), time.UTC), validation.New(), logger)

	r := chi.NewRouter()
	r.Get("/api/blog", handler.PublicList)
	r.Get("/api/blog/admin/all", handler.AdminList)
	r.Get("/api/blog/{slug}", handler.PublicGetBySlug)
	r.Post("/api/blog", handler.AdminCreate)
	r.Patch("/api/blog/{id}", handler.AdminUpdate)
	r.Delete("/api/blog/{id}", handler.AdminDelete)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestPublicListEmptyReturnsArray(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/blog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestPublishFlowThroughHandlers(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/blog",
		`{"title":"Draft Post","slug":"draft-post","content":"body","author":"Team","is_published":false}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Draft: hidden from the public list and slug lookup.
	list := doJSON(t, r, http.MethodGet, "/api/blog", "")
	assert.JSONEq(t, `[]`, list.Body.String())
	get := doJSON(t, r, http.MethodGet, "/api/blog/draft-post", "")
	assert.Equal(t, http.StatusNotFound, get.Code)

	// Publishing with no published_at stamps it.
	upd := doJSON(t, r, http.MethodPatch, "/api/blog/1",
		`{"title":"Draft Post","slug":"draft-post","content":"body","author":"Team","is_published":true}`)
	require.Equal(t, http.StatusOK, upd.Code)

	get = doJSON(t, r, http.MethodGet, "/api/blog/draft-post", "")
	require.Equal(t, http.StatusOK, get.Code)

	var post Post
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &post))
	require.NotNil(t, post.PublishedAt)
	assert.WithinDuration(t, time.Now(), *post.PublishedAt, 5*time.Second)

	list = doJSON(t, r, http.MethodGet, "/api/blog", "")
	var items []Summary
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "draft-post", items[0].Slug)
}

func TestPublicListOmitsContent(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/blog",
		`{"title":"Live","slug":"live","content":"secret body","author":"Team","is_published":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	list := doJSON(t, r, http.MethodGet, "/api/blog", "")
	require.Equal(t, http.StatusOK, list.Code)
	assert.NotContains(t, list.Body.String(), "secret body")
}

func TestCreateRejectsBadSlug(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/blog",
		`{"title":"Bad","slug":"Not A Slug","content":"body","author":"Team"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Details, "Slug")
}

func TestAdminListIncludesDrafts(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/blog",
		`{"title":"Draft","slug":"draft","content":"body","author":"Team","is_published":false}`)

	rec := doJSON(t, r, http.MethodGet, "/api/blog/admin/all", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 1)
}

func TestDeleteThenPublicLookup404(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/blog",
		`{"title":"Gone","slug":"gone","content":"body","author":"Team","is_published":true}`)

	del := doJSON(t, r, http.MethodDelete, "/api/blog/1", "")
	require.Equal(t, http.StatusOK, del.Code)

	get := doJSON(t, r, http.MethodGet, "/api/blog/gone", "")
	assert.Equal(t, http.StatusNotFound, get.Code)
}
