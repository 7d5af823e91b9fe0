package middleware

import (
	"context"
	"net/http"
	"strings"

	"medicare-portal/internal/domain/entity"
	"medicare-portal/internal/session"
	"medicare-portal/pkg/response"
)

type contextKey string

const sessionKey contextKey = "session"

type SessionMiddleware struct {
	sessions session.Store
}

func NewSessionMiddleware(sessions session.Store) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
	}
}

// Authenticate resolves "Authorization: Bearer <session id>" to the stored
// session and attaches it to the request context.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		sess, err := m.sessions.Get(r.Context(), parts[1])
		if err == session.ErrNotFound {
			response.Unauthorized(w, "Session not found or expired")
			return
		}
		if err != nil {
			response.InternalServerError(w, "Failed to load session")
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionFromContext extracts the authenticated session from context
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*entity.Session)
	return sess, ok
}

// RequireRole guards a subrouter to sessions of the given role.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := GetSessionFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "")
				return
			}
			if sess.User.Role != role {
				response.Forbidden(w, "Insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
