package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tripforge/tripforge/internal/handler/dto"
	"github.com/tripforge/tripforge/internal/middleware"
	"github.com/tripforge/tripforge/internal/service"
)

// ContactHandler serves the public contact form.
type ContactHandler struct {
	contacts *service.ContactService
	logger   *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(contacts *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, logger: logger}
}

// Submit stores a contact-form message and sends a best-effort
// notification email.
// POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	fields := requireFields(map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"message": req.Message,
	})
	if req.Email != "" && !strings.Contains(req.Email, "@") {
		fields = append(fields, dto.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	if _, err := h.contacts.Submit(r.Context(), service.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}); err != nil {
		h.logger.Error("contact submission failed",
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: "Message received"})
}
