package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"studiosite-backend/internal/auth"
	"studiosite-backend/internal/transport"
)

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminStatusResponse struct {
	Status string `json:"status"`
}

func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req AdminLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	if s.JWT == nil {
		log.Warn("admin login: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if !s.verifyCredentials(ctx, req.Username, req.Password) {
		log.Warn("admin login: invalid credentials", slog.String("username", req.Username))
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	if err := s.issueSession(ctx, w); err != nil {
		log.Error("admin login: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	log.Info("admin login: ok", slog.String("username", req.Username))
	transport.WriteJSON(w, http.StatusOK, AdminStatusResponse{Status: "ok"})
}

// verifyCredentials checks the admin_users table first and falls back to the
// credentials from the environment so a fresh deployment can log in before any
// account row exists.
func (s *Server) verifyCredentials(ctx context.Context, username, password string) bool {
	if s.Admins != nil {
		user, err := s.Admins.GetByUsername(ctx, username)
		if err == nil {
			return auth.ComparePassword(user.PasswordHash, password) == nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			s.Log.Error("admin login: user lookup failed", slog.String("error", err.Error()))
			return false
		}
	}

	if username != s.Cfg.AdminUser {
		return false
	}
	if s.Cfg.AdminPasswordHash != "" {
		return auth.ComparePassword(s.Cfg.AdminPasswordHash, password) == nil
	}
	return s.Cfg.AdminPassword != "" && password == s.Cfg.AdminPassword
}

func (s *Server) issueSession(ctx context.Context, w http.ResponseWriter) error {
	accessToken, err := s.JWT.NewAccessToken("admin")
	if err != nil {
		return err
	}
	refreshToken, sessionID, err := s.JWT.NewRefreshToken("admin")
	if err != nil {
		return err
	}
	if err := s.Sessions.Add(ctx, sessionID, s.JWT.RefreshTTL); err != nil {
		return err
	}

	setAuthCookies(w, accessToken, refreshToken, s.JWT.AccessTTL, s.JWT.RefreshTTL, s.Cfg.CookieSecure)
	return nil
}

func (s *Server) AdminRefresh(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.JWT == nil {
		log.Warn("admin refresh: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	cookie, err := r.Cookie(refreshCookie)
	if err != nil || cookie.Value == "" {
		log.Warn("admin refresh: missing refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	claims, err := s.JWT.Parse(cookie.Value)
	if err != nil || claims.Role != "admin" {
		log.Warn("admin refresh: invalid refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	live, err := s.Sessions.Valid(ctx, claims.ID)
	if err != nil {
		log.Error("admin refresh: session check failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "session error", nil)
		return
	}
	if !live {
		log.Warn("admin refresh: revoked session")
		transport.WriteError(w, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	// Rotate: the old refresh session dies with this exchange.
	_ = s.Sessions.Revoke(ctx, claims.ID)

	if err := s.issueSession(ctx, w); err != nil {
		log.Error("admin refresh: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	log.Info("admin refresh: ok")
	transport.WriteJSON(w, http.StatusOK, AdminStatusResponse{Status: "ok"})
}

func (s *Server) AdminLogout(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	if s.JWT != nil {
		if cookie, err := r.Cookie(refreshCookie); err == nil && cookie.Value != "" {
			if claims, err := s.JWT.Parse(cookie.Value); err == nil {
				ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
				defer cancel()
				_ = s.Sessions.Revoke(ctx, claims.ID)
			}
		}
	}

	clearAuthCookies(w, s.Cfg.CookieSecure)
	log.Info("admin logout: ok")
	transport.WriteJSON(w, http.StatusOK, AdminStatusResponse{Status: "ok"})
}

// AdminMe sits behind the auth gate; the admin UI calls it on load to decide
// whether to show the console or the login page.
func (s *Server) AdminMe(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]string{"role": "admin"})
}
