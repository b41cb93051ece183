// Package handler is the thin HTTP layer over the admin auth service.
// It decodes requests, delegates, and translates errors to the JSON
// error envelope; business rules stay in the service.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"admingate/internal/admin/models"
	"admingate/internal/platform/middleware"
	dErrors "admingate/pkg/domain-errors"
	"admingate/pkg/httputil"
)

// Service defines the authentication operations the handler depends on.
type Service interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminView, error)
	Login(ctx context.Context, req *models.LoginRequest, userAgent string) (*models.LoginResult, error)
	Details(ctx context.Context, email string) (*models.AdminView, error)
}

// Handler handles the admin authentication endpoints.
type Handler struct {
	admin  Service
	logger *slog.Logger
}

// New creates a new admin auth Handler.
func New(admin Service, logger *slog.Logger) *Handler {
	return &Handler{
		admin:  admin,
		logger: logger,
	}
}

// Register registers the public auth routes with the chi router.
// These routes are reachable without a bearer token.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/register", h.HandleRegister)
	r.Post("/auth/login", h.HandleLogin)
}

// RegisterProtected registers routes that the parent router must wrap with
// the bearer token middleware.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/admin/getadmindetails", h.HandleAdminDetails)
}

// HandleRegister implements POST /auth/register.
// Creates an admin account; the account always starts Active.
//
// Input: { "name": "Jane", "email": "jane@example.com", "password": "..." }
// Output: AdminView without the password field.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	// Decode into a value: the JSON document `null` decodes cleanly into a
	// pointer as nil, and a nil request must never reach the service.
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON in request body"))
		return
	}

	view, err := h.admin.Register(ctx, &req)
	if err != nil {
		h.logger.WarnContext(ctx, "register failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "register successful",
		"request_id", requestID,
		"email", view.Email,
	)
	httputil.WriteJSON(w, http.StatusOK, view)
}

// HandleLogin implements POST /auth/login.
// All three rejection reasons come back as a 400 envelope whose error field
// says which check failed.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON in request body"))
		return
	}

	result, err := h.admin.Login(ctx, &req, r.UserAgent())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "login successful",
		"request_id", requestID,
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleAdminDetails implements GET /admin/getadmindetails.
// The email comes from the verified token claim bound by the auth
// middleware, never from request parameters.
func (h *Handler) HandleAdminDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	email := middleware.GetAdminEmail(ctx)
	if email == "" {
		// Route mounted without the auth middleware; a wiring bug.
		h.logger.ErrorContext(ctx, "details requested without authenticated email",
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	view, err := h.admin.Details(ctx, email)
	if err != nil {
		h.logger.WarnContext(ctx, "details lookup failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, view)
}
