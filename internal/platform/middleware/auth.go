package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"admingate/internal/jwttoken"
)

// TokenVerifier validates a compact bearer token and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (*jwttoken.Claims, error)
}

// FailureRecorder counts rejected bearer tokens. May be nil.
type FailureRecorder interface {
	IncrementAuthFailures()
}

type contextKeyAdminEmail struct{}

// ContextKeyAdminEmail is exported for use in handlers.
var ContextKeyAdminEmail = contextKeyAdminEmail{}

// GetAdminEmail retrieves the authenticated admin email from the context.
// It is empty on any request that did not pass through RequireAuth.
func GetAdminEmail(ctx context.Context) string {
	email, ok := ctx.Value(ContextKeyAdminEmail).(string)
	if !ok {
		return ""
	}
	return email
}

// RequireAuth rejects requests without a valid bearer token and binds the
// token's email claim to the request context. Routes mounted outside this
// middleware, such as the /auth endpoints or health probes, are never
// touched by it.
//
// Expired and malformed tokens both produce the same generic 401 so the
// response does not reveal which check failed.
func RequireAuth(verifier TokenVerifier, logger *slog.Logger, failures FailureRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				if failures != nil {
					failures.IncrementAuthFailures()
				}
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				if failures != nil {
					failures.IncrementAuthFailures()
				}
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(ctx),
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx = context.WithValue(ctx, ContextKeyAdminEmail, claims.Email())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
