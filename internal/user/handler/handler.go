package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"recordkeeper/internal/user/models"
	id "recordkeeper/pkg/domain"
	"recordkeeper/pkg/platform/httputil"
	"recordkeeper/pkg/requestcontext"
)

// Service defines the user operations the handler needs.
type Service interface {
	Create(ctx context.Context, acct id.AccountID, cmd models.CreateCommand) error
	Replace(ctx context.Context, acct id.AccountID, cmd models.CreateCommand) error
	Update(ctx context.Context, acct id.AccountID, update models.Update) error
	Remove(ctx context.Context, acct id.AccountID) error
	Fetch(ctx context.Context, acct id.AccountID) (*models.View, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the caller's user record routes. The router must already
// run the auth middleware.
func (h *Handler) Register(r chi.Router) {
	r.Post("/users/me", h.HandleCreate)
	r.Put("/users/me", h.HandleReplace)
	r.Patch("/users/me", h.HandleUpdate)
	r.Delete("/users/me", h.HandleRemove)
	r.Get("/users/me", h.HandleFetch)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	acct, err := httputil.RequireAccountID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[CreateUserRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.Create(ctx, acct, req.ToCommand()); err != nil {
		h.logger.ErrorContext(ctx, "create user failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, &MutationResponse{AccountID: acct.String(), Result: "created"})
}

// HandleReplace overwrites every field; it also creates the record when
// none exists.
func (h *Handler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	acct, err := httputil.RequireAccountID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[CreateUserRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.Replace(ctx, acct, req.ToCommand()); err != nil {
		h.logger.ErrorContext(ctx, "replace user failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &MutationResponse{AccountID: acct.String(), Result: "replaced"})
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	acct, err := httputil.RequireAccountID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[UpdateUserRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.Update(ctx, acct, req.ToUpdate()); err != nil {
		h.logger.ErrorContext(ctx, "update user failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &MutationResponse{AccountID: acct.String(), Result: "updated"})
}

func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	acct, err := httputil.RequireAccountID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Remove(ctx, acct); err != nil {
		h.logger.ErrorContext(ctx, "remove user failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleFetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	acct, err := httputil.RequireAccountID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	view, err := h.service.Fetch(ctx, acct)
	if err != nil {
		h.logger.ErrorContext(ctx, "fetch user failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, view)
}
