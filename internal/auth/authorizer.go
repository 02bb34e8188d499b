// Package auth applies authorization to outgoing requests.
package auth

import "net/http"

// AuthorizationHeader is the header carrying the access token. The API
// expects the raw token with no "Bearer " prefix.
const AuthorizationHeader = "authorization"

// Authorizer attaches authorization to a fully-constructed request. It is
// called immediately before dispatch, so it observes the final method,
// headers, and body. Application never fails.
type Authorizer interface {
	Apply(req *http.Request)
}

// TokenAuthorizer sets the authorization header from a static access token.
// With an empty token it is the identity.
type TokenAuthorizer struct {
	token string
}

// NewTokenAuthorizer creates a token authorizer.
func NewTokenAuthorizer(token string) *TokenAuthorizer {
	return &TokenAuthorizer{token: token}
}

// Apply implements Authorizer.
func (a *TokenAuthorizer) Apply(req *http.Request) {
	if a.token == "" {
		return
	}

	req.Header.Set(AuthorizationHeader, a.token)
}
