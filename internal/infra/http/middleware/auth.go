package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xavierca1/mini-crm/internal/entity"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionLoader carrega a sessão persistida; satisfeito por auth.Service.
type SessionLoader interface {
	LoadSession(ctx context.Context) *entity.Session
}

// RequireSession barra requisições sem o token da sessão persistida e injeta a
// sessão no contexto, em vez de deixá-la como estado global ambiente.
func RequireSession(loader SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := loader.LoadSession(r.Context())
			if !session.Authenticated() || bearerToken(r) != session.Token {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error":   "UNAUTHORIZED",
					"message": "sessão ausente ou expirada, faça login novamente",
				})
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext devolve a sessão injetada pelo RequireSession, ou uma
// sessão não autenticada quando o middleware não rodou.
func SessionFromContext(ctx context.Context) *entity.Session {
	if session, ok := ctx.Value(sessionContextKey).(*entity.Session); ok {
		return session
	}
	return &entity.Session{Status: entity.SessionUnauthenticated}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
