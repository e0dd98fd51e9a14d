package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tripforge/tripforge/internal/handler/dto"
	"github.com/tripforge/tripforge/internal/middleware"
	"github.com/tripforge/tripforge/internal/service"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Register creates a new account and returns a token.
// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	fields := requireFields(map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	})
	if req.Email != "" && !strings.Contains(req.Email, "@") {
		fields = append(fields, dto.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if req.Password != "" && len(req.Password) < 8 {
		fields = append(fields, dto.FieldError{Field: "password", Message: "must be at least 8 characters"})
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	result, err := h.auth.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Contact:  req.Contact,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "EMAIL_TAKEN", "email already registered")
			return
		}
		h.logger.Error("registration failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	writeJSON(w, http.StatusCreated, dto.AuthResponse{
		UserID: result.User.ID,
		Token:  result.Token,
		Name:   result.User.Name,
		Email:  result.User.Email,
	})
}

// Login verifies credentials and returns a token.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if fields := requireFields(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}); len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
			return
		}
		h.logger.Error("login failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		UserID: result.User.ID,
		Token:  result.Token,
		Name:   result.User.Name,
		Email:  result.User.Email,
	})
}
