package testimonials

import (
	"context"
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
	r.Get("/api/testimonials", handler.PublicList)
	r.Get("/api/testimonials/admin/all", handler.AdminList)
	r.Post("/api/testimonials", handler.AdminCreate)
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

func TestPublicListEmptyIs200(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/testimonials", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestPublicListHidesUnfeatured(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/testimonials",
		`{"client_name":"Hidden","testimonial":"quiet praise","is_featured":false}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	public := doJSON(t, r, http.MethodGet, "/api/testimonials", "")
	assert.JSONEq(t, `[]`, public.Body.String())

	admin := doJSON(t, r, http.MethodGet, "/api/testimonials/admin/all", "")
	assert.Contains(t, admin.Body.String(), "Hidden")
}

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/testimonials",
		`{"client_name":"A","testimonial":"ok","rating":9}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
