// Package handler is the thin HTTP layer over the lifecycle engine. It
// delegates to the service without embedding business logic so transport
// concerns stay isolated.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paperflow/internal/paper/models"
	dErrors "paperflow/pkg/domain-errors"
	"paperflow/pkg/platform/httputil"
)

// PaperService is the engine surface the transport needs.
type PaperService interface {
	Create(ctx context.Context, req *models.CreatePaperRequest) (*models.Paper, error)
	List(ctx context.Context) ([]*models.Paper, error)
	ListFullySlotted(ctx context.Context) ([]*models.Paper, error)
	FillSlot(ctx context.Context, id string, req *models.FillSlotRequest) (*models.Paper, error)
	AdvanceStage(ctx context.Context, id string, target models.Stage) (*models.AdvanceResult, error)
}

type Handler struct {
	papers PaperService
	logger *slog.Logger
}

func New(papers PaperService, logger *slog.Logger) *Handler {
	return &Handler{papers: papers, logger: logger}
}

// Register wires the paper routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/papers", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/filled-slots", h.handleListFilledSlots)
		r.Post("/", h.handleCreate)
		r.Put("/{id}/update-stage", h.handleUpdateStage)
		r.Put("/{id}/fill-slot", h.handleFillSlot)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	papers, err := h.papers.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, papers)
}

func (h *Handler) handleListFilledSlots(w http.ResponseWriter, r *http.Request) {
	papers, err := h.papers.ListFullySlotted(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, papers)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeValidation, "invalid request body"))
		return
	}

	created, err := h.papers.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdateStage(w http.ResponseWriter, r *http.Request) {
	var req models.AdvanceStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeValidation, "invalid request body"))
		return
	}

	res, err := h.papers.AdvanceStage(r.Context(), chi.URLParam(r, "id"), req.Stage)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleFillSlot(w http.ResponseWriter, r *http.Request) {
	var req models.FillSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeValidation, "invalid request body"))
		return
	}

	updated, err := h.papers.FillSlot(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	httputil.WriteError(w, err)
}
