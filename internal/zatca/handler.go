package zatca

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

// Handler wires the tax-authority submission endpoint.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers zatca routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/zatca/send-invoice", h.Send)
}

type sendInvoiceRequest struct {
	InvoiceID int64 `json:"invoiceId"`
}

// Send handles POST /api/zatca/send-invoice.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}

	result, err := h.service.SubmitInvoice(r.Context(), req.InvoiceID)
	if err != nil {
		h.logger.Error("zatca submission failed", slog.Int64("invoice_id", req.InvoiceID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": "invoice submitted to tax authority",
		"uuid":    result.UUID,
	})
}
