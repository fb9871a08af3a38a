package handler

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/bsak/authsvc/internal/service"
)

type contextKey string

const subjectContextKey contextKey = "subject"

// SubjectFromContext extracts the authenticated subject (email) from the
// request context. Returns the empty string if the request is unauthenticated.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectContextKey).(string)
	return subject
}

// RequireBearer is the transport authorization gate. It validates the
// "Authorization: Bearer <token>" header against the token service and
// injects the subject into the request context; requests without a live
// token get 401 before the protected handler runs.
func RequireBearer(tokens *service.TokenService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authorization, "Bearer ")
		if !ok {
			writeErrorMessage(w, r, http.StatusUnauthorized, "Invalid or expired token!")
			return
		}

		subject, err := tokens.ExtractSubject(strings.TrimSpace(token))
		if err != nil {
			writeErrorMessage(w, r, http.StatusUnauthorized, "Invalid or expired token!")
			return
		}

		ctx := context.WithValue(r.Context(), subjectContextKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SecurityHeaders sets conservative response headers on every request.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the originating client address, preferring the first
// X-Forwarded-For entry when the service runs behind a proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
