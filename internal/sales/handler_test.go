package sales

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, repo *memoryRepo) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(repo, nil, nil))
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func TestHandlerCreateInvoice(t *testing.T) {
	repo := newMemoryRepo()
	repo.balances[balanceKey(1, 10)] = 10
	router := newTestRouter(t, repo)

	body, err := json.Marshal(validRequest())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales/invoice", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp createInvoiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(1), resp.InvoiceID)
	require.Equal(t, "invoice created", resp.Message)
}

func TestHandlerCreateInvoiceRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales/invoice", bytes.NewReader([]byte("{not json")))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "malformed request body")
}

func TestHandlerCreateInvoiceRejectsMissingFields(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales/invoice", bytes.NewReader([]byte(`{"branchId":1}`)))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerCreateInvoiceSurfacesValidationError(t *testing.T) {
	repo := newMemoryRepo()
	router := newTestRouter(t, repo)

	payload := validRequest()
	payload.TotalAmount = 999
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales/invoice", bytes.NewReader(body))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Error)
}

func TestHandlerShowInvoice(t *testing.T) {
	repo := newMemoryRepo()
	repo.balances[balanceKey(1, 10)] = 10
	router := newTestRouter(t, repo)

	svc := NewService(repo, nil, nil)
	id, err := svc.CreateInvoice(httptest.NewRequest(http.MethodGet, "/", nil).Context(), validRequest())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices/1", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var inv Invoice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inv))
	require.Equal(t, id, inv.ID)
	require.Len(t, inv.Lines, 1)
}

func TestHandlerShowInvoiceNotFound(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices/42", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerShowInvoiceBadID(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices/abc", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
