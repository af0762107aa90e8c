package middleware

import (
	"context"
	"net/http"
	"strings"

	"massive-gateway/internal/model"
	"massive-gateway/internal/service"
)

type contextKey string

const claimsContextKey contextKey = "gateway_claims"

type AuthMiddleware struct {
	service *service.AuthService
}

func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: authService}
}

// RequireAuth enforces bearer-token auth when the auth service is
// enabled; otherwise requests pass through untouched.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	if m.service == nil || !m.service.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			writeUnauthorized(w, "missing bearer token")
			return
		}

		claims, err := m.service.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			writeUnauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ClaimsFromContext(ctx context.Context) (service.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(service.Claims)
	return claims, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = jsonEncode(w, model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    "UNAUTHORIZED",
			Message: message,
		},
	})
}
