package reports

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

const dateLayout = "2006-01-02"

// Handler wires the dashboard and report endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers report routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/dashboard/{branchId}", h.Dashboard)
	r.Get("/reports/sales/{branchId}", h.SalesReport)
	r.Get("/reports/sales/{branchId}/export", h.ExportCSV)
}

// Dashboard handles GET /api/dashboard/{branchId}.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	branchID, err := strconv.ParseInt(chi.URLParam(r, "branchId"), 10, 64)
	if err != nil || branchID <= 0 {
		httpx.Error(w, http.StatusBadRequest, "invalid branch id")
		return
	}
	dash, err := h.service.Dashboard(r.Context(), branchID)
	if err != nil {
		h.logger.Error("dashboard failed", slog.Int64("branch_id", branchID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dash)
}

// SalesReport handles GET /api/reports/sales/{branchId}?startDate&endDate.
func (h *Handler) SalesReport(w http.ResponseWriter, r *http.Request) {
	branchID, from, to, ok := h.parseReportParams(w, r)
	if !ok {
		return
	}
	report, err := h.service.SalesReport(r.Context(), branchID, from, to)
	if err != nil {
		h.logger.Error("sales report failed", slog.Int64("branch_id", branchID), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

// ExportCSV handles GET /api/reports/sales/{branchId}/export.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	branchID, from, to, ok := h.parseReportParams(w, r)
	if !ok {
		return
	}
	report, err := h.service.SalesReport(r.Context(), branchID, from, to)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sales-report.csv"`)
	if err := WriteCSV(w, report); err != nil {
		h.logger.Error("csv export failed", slog.Int64("branch_id", branchID), slog.Any("error", err))
	}
}

func (h *Handler) parseReportParams(w http.ResponseWriter, r *http.Request) (int64, time.Time, time.Time, bool) {
	branchID, err := strconv.ParseInt(chi.URLParam(r, "branchId"), 10, 64)
	if err != nil || branchID <= 0 {
		httpx.Error(w, http.StatusBadRequest, "invalid branch id")
		return 0, time.Time{}, time.Time{}, false
	}
	from, err := time.Parse(dateLayout, r.URL.Query().Get("startDate"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
		return 0, time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(dateLayout, r.URL.Query().Get("endDate"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "endDate must be YYYY-MM-DD")
		return 0, time.Time{}, time.Time{}, false
	}
	return branchID, from, to, true
}
