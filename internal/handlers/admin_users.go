package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"studiosite-backend/internal/auth"
	"studiosite-backend/internal/transport"

	"github.com/go-chi/chi/v5"
)

type AdminCreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

type AdminUpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

func (s *Server) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req AdminCreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin user create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin user create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error("admin user create: hash error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "hash error", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := s.Admins.Create(ctx, strings.TrimSpace(req.Username), hash, time.Now().In(s.Cfg.Timezone))
	if err != nil {
		// Unique constraint on username comes back here.
		log.Error("admin user create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin user create: ok", slog.Int64("user_id", id))
	transport.WriteCreated(w, id)
}

func (s *Server) AdminUpdateUserPassword(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Warn("admin user password: invalid id")
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var req AdminUpdatePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin user password: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin user password: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error("admin user password: hash error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "hash error", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Admins.UpdatePassword(ctx, id, hash); err != nil {
		log.Error("admin user password: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin user password: ok", slog.Int64("user_id", id))
	transport.WriteSuccess(w)
}
