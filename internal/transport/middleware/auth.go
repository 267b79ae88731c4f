package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/pkg/ctxutil"
)

type tokenResolver interface {
	ResolveActor(ctx context.Context, token string) (domain.Actor, error)
}

// Auth resolves the session token from the Authorization header or the
// session cookie. Requests without a token pass through anonymously; handlers
// reject them where an actor is required.
func Auth(resolver tokenResolver, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			actor, err := resolver.ResolveActor(r.Context(), token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "session expired or revoked")
				return
			}
			ctx := ctxutil.WithActor(r.Context(), actor)
			ctx = ctxutil.WithSessionToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionToken returns the bearer token, falling back to the session cookie.
func SessionToken(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookieName == "" {
		return ""
	}
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
