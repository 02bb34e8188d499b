package client

import (
	"context"
	"fmt"

	"github.com/lattice-io/lattice-client/internal/constants"
	"github.com/lattice-io/lattice-client/internal/http"
	"github.com/lattice-io/lattice-client/pkg/lattice"
)

// AppsClient implements lattice.AppsClient.
type AppsClient struct {
	httpClient *http.Client
}

// NewAppsClient creates a new apps client.
func NewAppsClient(httpClient *http.Client) *AppsClient {
	return &AppsClient{
		httpClient: httpClient,
	}
}

// List implements lattice.AppsClient.List.
func (c *AppsClient) List(ctx context.Context, opts *lattice.ListOptions) (*lattice.ListResponse[lattice.App], error) {
	resp, err := c.httpClient.Get(ctx, constants.APIVersionPrefix+"/apps", opts.Encode())
	if err != nil {
		return nil, fmt.Errorf("listing apps: %w", err)
	}

	return lattice.ParseAppListingResponse(resp.Body)
}

// Get implements lattice.AppsClient.Get.
func (c *AppsClient) Get(ctx context.Context, handle lattice.Handle) (*lattice.App, error) {
	if err := handle.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app handle: %w", err)
	}

	path := fmt.Sprintf("%s/apps/%s", constants.APIVersionPrefix, handle)

	resp, err := c.httpClient.Get(ctx, path, "")
	if err != nil {
		return nil, fmt.Errorf("getting app: %w", err)
	}

	return lattice.ParseAppItemResponse(resp.Body)
}
