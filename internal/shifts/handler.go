package shifts

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

// Handler wires the shift HTTP endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers shift routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/shifts/open", h.Open)
	r.Post("/shifts/close/{shiftId}", h.Close)
	r.Get("/shifts/{shiftId}", h.Show)
}

// Open handles POST /api/shifts/open.
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	var req OpenShiftRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	shiftID, err := h.service.Open(r.Context(), req)
	if err != nil {
		h.logger.Warn("open shift failed", slog.Int64("safe_id", req.SafeID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"shiftId": shiftID, "message": "shift opened"})
}

type closeShiftRequest struct {
	ClosingBalance float64 `json:"closingBalance" validate:"gte=0"`
}

// Close handles POST /api/shifts/close/{shiftId}.
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	shiftID, err := strconv.ParseInt(chi.URLParam(r, "shiftId"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid shift id")
		return
	}
	var req closeShiftRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Close(r.Context(), shiftID, req.ClosingBalance); err != nil {
		h.logger.Warn("close shift failed", slog.Int64("shift_id", shiftID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "shift closed"})
}

// Show handles GET /api/shifts/{shiftId}.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	shiftID, err := strconv.ParseInt(chi.URLParam(r, "shiftId"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid shift id")
		return
	}
	shift, err := h.service.Get(r.Context(), shiftID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, shift)
}
