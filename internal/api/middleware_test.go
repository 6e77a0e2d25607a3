package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslaf/laf-backend/internal/auth"
)

func TestRequireStaffRejectsWithDenialReason(t *testing.T) {
	denied := &auth.MockAuthorizer{Result: auth.Result{Reason: "token expired"}}
	h := Authenticate(denied)(RequireStaff(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for unauthenticated callers")
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "token expired")
}

func TestRequireStaffPassesVerifiedCaller(t *testing.T) {
	var email string
	h := Authenticate(auth.AllowAll("staff@example.edu"))(RequireStaff(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := AuthResult(r)
		require.NotNil(t, result.Claims)
		email = result.Claims.Email
		w.WriteHeader(http.StatusOK)
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "staff@example.edu", email)
}

func TestAuthResultDefaultsWhenMiddlewareAbsent(t *testing.T) {
	result := AuthResult(httptest.NewRequest("GET", "/", nil))
	assert.False(t, result.Authenticated)
}
