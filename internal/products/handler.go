package products

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

// Handler serves the product lookup endpoint.
type Handler struct {
	logger *slog.Logger
	repo   Repository
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, repo Repository) *Handler {
	return &Handler{logger: logger, repo: repo}
}

// MountRoutes registers product routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products/{branchId}", h.List)
}

// List handles GET /api/products/{branchId}.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	branchID, err := strconv.ParseInt(chi.URLParam(r, "branchId"), 10, 64)
	if err != nil || branchID <= 0 {
		httpx.Error(w, http.StatusBadRequest, "invalid branch id")
		return
	}
	list, err := h.repo.ListByBranch(r.Context(), branchID)
	if err != nil {
		h.logger.Error("list products failed", slog.Int64("branch_id", branchID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, list)
}
