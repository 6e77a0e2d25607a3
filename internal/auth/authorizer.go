package auth

import "context"

// Claims carries the identity attached to a verified token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Result is the outcome of an authorization check. Reason is human-readable
// and safe to return to the caller on denial.
type Result struct {
	Authenticated bool
	Reason        string
	Claims        *Claims
}

// Authorizer decides whether a bearer token identifies staff. It never
// issues tokens; public routes consult it only to record the caller's
// authentication state.
type Authorizer interface {
	Check(ctx context.Context, token string) Result
}
