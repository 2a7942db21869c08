// Package handlers hosts the admin auth surface: login, refresh, logout and
// admin account management. Entity routes live in their own packages.
package handlers

import (
	"log/slog"
	"net/http"

	"studiosite-backend/internal/admins"
	"studiosite-backend/internal/auth"
	"studiosite-backend/internal/config"
	"studiosite-backend/internal/httpx"
	"studiosite-backend/internal/middleware"
	"studiosite-backend/internal/session"
	"studiosite-backend/internal/validation"

	"github.com/go-playground/validator/v10"
)

type Server struct {
	Cfg      *config.Config
	Val      *validation.Validator
	Log      *slog.Logger
	JWT      *auth.Manager
	Sessions session.Registry
	Admins   admins.Repository
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}

func decodeJSON(r *http.Request, v interface{}) error {
	return httpx.DecodeJSON(r.Body, v)
}

func validationDetails(errs validator.ValidationErrors) map[string]string {
	return httpx.ValidationDetails(errs)
}
