package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// Auth requires a bearer token and stores its subject as the caller's user id.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeFailure(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}
			userID, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeFailure(w, http.StatusUnauthorized, "unauthorized", "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), userID)))
		})
	}
}

// DefaultUser acts as userID on every request. Used when bearer tokens are disabled.
func DefaultUser(userID string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), userID)))
		})
	}
}

// withUser stores the caller and reports it to an enclosing Logger.
func withUser(ctx context.Context, userID string) context.Context {
	if e, ok := ctx.Value(logEntryKey{}).(*logEntry); ok {
		e.userID = userID
	}
	return ctxutil.WithUserID(ctx, userID)
}

func extractBearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
