package auth

import "context"

// MockAuthorizer is a test double with a fixed outcome.
type MockAuthorizer struct {
	Result Result
}

func (m *MockAuthorizer) Check(context.Context, string) Result {
	return m.Result
}

// AllowAll returns an authorizer that accepts every caller as the given
// staff identity.
func AllowAll(email string) *MockAuthorizer {
	return &MockAuthorizer{Result: Result{
		Authenticated: true,
		Reason:        "authenticated",
		Claims:        &Claims{Email: email},
	}}
}
