package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

type contextKey struct{}

// Identity describes the authenticated caller attached to a request context.
type Identity struct {
	UserID int64
	Role   string
}

// IdentityFromContext returns the caller identity, or nil outside the middleware.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(contextKey{}).(*Identity)
	return id
}

// RequireAuth rejects requests without a valid bearer token.
func (m *TokenManager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			httpx.Error(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		userID, role, err := m.Parse(tokenStr)
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		ctx := context.WithValue(r.Context(), contextKey{}, &Identity{UserID: userID, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
