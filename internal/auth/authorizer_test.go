package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lattice-io/lattice-client/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestTokenAuthorizer_Apply(t *testing.T) {
	t.Parallel()

	authorizer := auth.NewTokenAuthorizer("secret-token")

	req := httptest.NewRequest("GET", "https://api.lattice.dev/v1/apps", nil)
	req.Header.Set("Accept", "application/json")

	authorizer.Apply(req)

	assert.Equal(t, "secret-token", req.Header.Get(auth.AuthorizationHeader))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
}

func TestTokenAuthorizer_NoBearerPrefix(t *testing.T) {
	t.Parallel()

	authorizer := auth.NewTokenAuthorizer("secret-token")

	req := httptest.NewRequest("GET", "https://api.lattice.dev/v1/apps", nil)
	authorizer.Apply(req)

	assert.NotContains(t, req.Header.Get(auth.AuthorizationHeader), "Bearer")
}

func TestTokenAuthorizer_EmptyToken(t *testing.T) {
	t.Parallel()

	authorizer := auth.NewTokenAuthorizer("")

	req := httptest.NewRequest("GET", "https://api.lattice.dev/v1/apps", nil)
	authorizer.Apply(req)

	_, present := req.Header[http.CanonicalHeaderKey(auth.AuthorizationHeader)]
	assert.False(t, present)
}
