package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studiosite-backend/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() *auth.Manager {
	return &auth.Manager{
		Secret:     []byte("test-secret"),
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
		Issuer:     "test",
	}
}

func protected(adminKey string, manager *auth.Manager) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return AdminAuth(adminKey, manager)(ok)
}

func TestAdminAuthRejectsAnonymous(t *testing.T) {
	handler := protected("secret-key", newManager())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthAcceptsAPIKey(t *testing.T) {
	handler := protected("secret-key", nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Admin-Key", "secret-key")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuthRejectsWrongAPIKey(t *testing.T) {
	handler := protected("secret-key", nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Admin-Key", "wrong")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthAcceptsTokenCookie(t *testing.T) {
	manager := newManager()
	handler := protected("", manager)

	token, err := manager.NewAccessToken("admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessCookie, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuthAcceptsBearerToken(t *testing.T) {
	manager := newManager()
	handler := protected("", manager)

	token, err := manager.NewAccessToken("admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuthRejectsNonAdminRole(t *testing.T) {
	manager := newManager()
	handler := protected("", manager)

	token, err := manager.NewAccessToken("viewer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessCookie, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthRejectsForeignSecret(t *testing.T) {
	other := &auth.Manager{Secret: []byte("other-secret"), AccessTTL: time.Minute, RefreshTTL: time.Hour, Issuer: "test"}
	handler := protected("", newManager())

	token, err := other.NewAccessToken("admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessCookie, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthUnconfigured(t *testing.T) {
	handler := protected("", nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
