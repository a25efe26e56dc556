package sales

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

// Handler wires the sales HTTP endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers sales routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/sales/invoice", h.Create)
	r.Get("/invoices/{id}", h.Show)
}

type createInvoiceResponse struct {
	InvoiceID int64  `json:"invoiceId"`
	Message   string `json:"message"`
}

// Create handles POST /api/sales/invoice.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	invoiceID, err := h.service.CreateInvoice(r.Context(), req)
	if err != nil {
		h.logger.Error("create invoice failed",
			slog.Int64("branch_id", req.BranchID),
			slog.Int64("customer_id", req.CustomerID),
			slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, createInvoiceResponse{InvoiceID: invoiceID, Message: "invoice created"})
}

// Show handles GET /api/invoices/{id}.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid invoice id")
		return
	}
	invoice, err := h.service.GetInvoice(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}
