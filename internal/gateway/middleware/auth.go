package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/unilab/labdash/internal/modules/session/infrastructure/jwt"
)

type contextKey string

const (
	ContextKeyOperatorID contextKey = "operator_id"
	ContextKeyOperator   contextKey = "operator"
	ContextKeyRole       contextKey = "role"
)

type AuthMiddleWare struct {
	jwtSecret string
}

// NewAuthMiddleware returns a middleware that verifies session tokens signed
// with jwtSecret.
func NewAuthMiddleware(jwtSecret string) *AuthMiddleWare {
	return &AuthMiddleWare{jwtSecret: jwtSecret}
}

// RequireAuth rejects requests without a valid session token. The token is
// read from the Authorization Bearer header, falling back to the token query
// parameter because browsers cannot set headers on a websocket upgrade. The
// operator identity is injected into the request context.
func (m *AuthMiddleWare) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearerToken(r.Header.Get("Authorization"))
		if tokenStr == "" {
			tokenStr = r.URL.Query().Get("token")
		}

		if tokenStr == "" {
			http.Error(w, `{"error": "missing or invalid authorization"}`, http.StatusUnauthorized)
			return
		}

		claims, err := jwt.ValidateToken(tokenStr, m.jwtSecret)
		if err != nil {
			http.Error(w, `{"error": "invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyOperatorID, claims.OperatorID)
		ctx = context.WithValue(ctx, ContextKeyOperator, claims.Username)
		ctx = context.WithValue(ctx, ContextKeyRole, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// OperatorFromContext returns the operator id and username set by RequireAuth.
func OperatorFromContext(ctx context.Context) (uuid.UUID, string, bool) {
	id, ok := ctx.Value(ContextKeyOperatorID).(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	name, _ := ctx.Value(ContextKeyOperator).(string)
	return id, name, true
}

// WithOperator returns a copy of ctx carrying the operator identity, the same
// way RequireAuth stores it.
func WithOperator(ctx context.Context, id uuid.UUID, username, role string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyOperatorID, id)
	ctx = context.WithValue(ctx, ContextKeyOperator, username)
	return context.WithValue(ctx, ContextKeyRole, role)
}
