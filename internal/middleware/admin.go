package middleware

import (
	"net/http"
	"strings"

	"studiosite-backend/internal/auth"
	"studiosite-backend/internal/transport"
)

// AccessCookie is the cookie carrying the short-lived admin access token.
const AccessCookie = "studiosite_access"

// AdminAuth gates admin routes. A request passes when it carries a matching
// X-Admin-Key header, a valid access-token cookie, or a Bearer access token.
// On deny the request is rejected before any store access happens.
func AdminAuth(adminKey string, manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" && manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			if adminKey != "" && r.Header.Get("X-Admin-Key") == adminKey {
				next.ServeHTTP(w, r)
				return
			}

			if manager != nil {
				if token := accessToken(r); token != "" {
					claims, err := manager.Parse(token)
					if err == nil && claims.Role == "admin" {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		})
	}
}

func accessToken(r *http.Request) string {
	if cookie, err := r.Cookie(AccessCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
