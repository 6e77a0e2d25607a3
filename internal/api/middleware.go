// Package api is the HTTP transport for the lost-and-found service.
package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/campuslaf/laf-backend/internal/api/respond"
	"github.com/campuslaf/laf-backend/internal/auth"
)

type ctxKey int

const authCtxKey ctxKey = iota

// RequestID tags every request with an id, honoring one supplied by the
// caller, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-Id", id)
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

// Logging emits one structured line per request.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Str("request_id", r.Header.Get("X-Request-Id")).
			Msg("http request")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Authenticate verifies the bearer token, if any, and stores the outcome in
// the request context. It never rejects: public routes run unauthenticated
// and staff routes are gated by RequireStaff.
func Authenticate(authorizer auth.Authorizer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result := authorizer.Check(r.Context(), bearerToken(r))
			ctx := context.WithValue(r.Context(), authCtxKey, result)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthResult returns the authentication outcome stored by Authenticate.
func AuthResult(r *http.Request) auth.Result {
	if result, ok := r.Context().Value(authCtxKey).(auth.Result); ok {
		return result
	}
	return auth.Result{Reason: "unauthenticated"}
}

// RequireStaff rejects requests whose token did not verify.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := AuthResult(r)
		if !result.Authenticated {
			respond.WriteUnauthorized(w, result.Reason)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}
