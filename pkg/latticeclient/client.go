package latticeclient

import (
	"fmt"
	"strings"

	"github.com/lattice-io/lattice-client/internal/client"
	"github.com/lattice-io/lattice-client/internal/constants"
	"github.com/lattice-io/lattice-client/pkg/lattice"
)

// New creates a new Lattice API client. The access token is required; the
// API endpoint defaults to the production endpoint and is normalized by
// trimming a trailing slash and adding "https://" when no scheme is present.
func New(config *lattice.Config) (lattice.Client, error) {
	if config == nil {
		return nil, lattice.ErrConfigRequired
	}

	if config.AccessToken == "" {
		return nil, lattice.ErrAccessTokenRequired
	}

	normalized := *config
	normalized.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	latticeClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return latticeClient, nil
}

// normalizeEndpoint applies the default endpoint and canonicalizes the URL
// form.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
