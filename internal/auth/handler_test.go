package auth

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

func newLoginRouter(t *testing.T, svc *Service) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(logger, svc).MountRoutes(r)
	return r
}

func postLogin(t *testing.T, router chi.Router, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint(t *testing.T) {
	user := testUser(t, "s3cret")
	router := newLoginRouter(t, newTestService(t, user))

	rec := postLogin(t, router, map[string]any{
		"username": "aisha",
		"password": "s3cret",
		"branchId": 3,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, user.ID, resp.User.ID)
	require.Equal(t, "manager", resp.User.Role)
	require.Equal(t, int64(3), resp.User.BranchID)
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	router := newLoginRouter(t, newTestService(t, testUser(t, "s3cret")))

	rec := postLogin(t, router, map[string]any{
		"username": "aisha",
		"password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid username or password")
}

func TestLoginEndpointMissingFields(t *testing.T) {
	router := newLoginRouter(t, newTestService(t))

	rec := postLogin(t, router, map[string]any{"username": "aisha"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpointMalformedBody(t *testing.T) {
	router := newLoginRouter(t, newTestService(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte("{")))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
