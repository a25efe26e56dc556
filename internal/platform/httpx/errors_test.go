package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", fmt.Errorf("%w: invoice 9", ErrNotFound), http.StatusNotFound},
		{"duplicate", fmt.Errorf("%w: safe busy", ErrDuplicate), http.StatusConflict},
		{"validation", fmt.Errorf("%w: bad quantity", ErrValidation), http.StatusBadRequest},
		{"unauthorized", fmt.Errorf("%w: bad credentials", ErrUnauthorized), http.StatusUnauthorized},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondError(rec, tc.err)
			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotEmpty(t, body.Error)
		})
	}
}

// Internal failures must not leak their detail into the response.
func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, errors.New("dial tcp 10.0.0.3:5432: connection refused"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "internal server error", body.Error)
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	var target struct {
		Name string `json:"name"`
	}
	require.NoError(t, DecodeJSON(req, &target))
	require.Equal(t, "x", target.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{broken`))
	require.Error(t, DecodeJSON(req, &target))
}
