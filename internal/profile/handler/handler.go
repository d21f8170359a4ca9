package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"recordkeeper/internal/profile/models"
	id "recordkeeper/pkg/domain"
	"recordkeeper/pkg/platform/httputil"
	"recordkeeper/pkg/requestcontext"
)

// Service defines the profile operations the handler needs.
type Service interface {
	Create(ctx context.Context, acct id.AccountID, cmd models.CreateCommand) error
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

// Register mounts the caller's profile routes. There is no full replace for
// profiles.
func (h *Handler) Register(r chi.Router) {
	r.Post("/profiles/me", h.HandleCreate)
	r.Patch("/profiles/me", h.HandleUpdate)
	r.Delete("/profiles/me", h.HandleRemove)
	r.Get("/profiles/me", h.HandleFetch)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	acct, err := httputil.RequireAccountID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[CreateProfileRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.Create(ctx, acct, req.ToCommand()); err != nil {
		h.logger.ErrorContext(ctx, "create profile failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, &MutationResponse{AccountID: acct.String(), Result: "created"})
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	acct, err := httputil.RequireAccountID(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[UpdateProfileRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.Update(ctx, acct, req.ToUpdate()); err != nil {
		h.logger.ErrorContext(ctx, "update profile failed", "error", err, "request_id", requestID)
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
		h.logger.ErrorContext(ctx, "remove profile failed", "error", err, "request_id", requestID)
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
		h.logger.ErrorContext(ctx, "fetch profile failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, view)
}
