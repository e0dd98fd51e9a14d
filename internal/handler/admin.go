package handler

import (
	"log/slog"
	"net/http"

	"github.com/tripforge/tripforge/internal/middleware"
	"github.com/tripforge/tripforge/internal/service"
)

// AdminHandler serves the admin-only read endpoints. Routes are mounted
// behind middleware.RequireAdmin.
type AdminHandler struct {
	admin  *service.AdminService
	logger *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(admin *service.AdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, logger: logger}
}

// Stats returns usage counts and the most common destinations.
// GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(r.Context())
	if err != nil {
		h.respondError(w, r, err, "admin stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// ListUsers returns every registered user.
// GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.ListUsers(r.Context())
	if err != nil {
		h.respondError(w, r, err, "admin list users")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// ListTrips returns every trip, newest first.
// GET /api/admin/trips
func (h *AdminHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.admin.ListTrips(r.Context())
	if err != nil {
		h.respondError(w, r, err, "admin list trips")
		return
	}

	writeJSON(w, http.StatusOK, trips)
}

func (h *AdminHandler) respondError(w http.ResponseWriter, r *http.Request, err error, op string) {
	h.logger.Error(op+" failed",
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetRequestID(r.Context())),
	)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
}
