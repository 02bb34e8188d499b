package client

import (
	"context"
	"fmt"

	"github.com/lattice-io/lattice-client/internal/constants"
	"github.com/lattice-io/lattice-client/internal/http"
	"github.com/lattice-io/lattice-client/pkg/lattice"
)

// ObjectsClient implements lattice.ObjectsClient.
type ObjectsClient struct {
	httpClient *http.Client
}

// NewObjectsClient creates a new objects client.
func NewObjectsClient(httpClient *http.Client) *ObjectsClient {
	return &ObjectsClient{
		httpClient: httpClient,
	}
}

// List implements lattice.ObjectsClient.List.
func (c *ObjectsClient) List(ctx context.Context, app lattice.Handle, opts *lattice.ListOptions) (*lattice.ListResponse[lattice.AppObject], error) {
	if err := app.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app handle: %w", err)
	}

	path := fmt.Sprintf("%s/apps/%s/objects", constants.APIVersionPrefix, app)

	resp, err := c.httpClient.Get(ctx, path, opts.Encode())
	if err != nil {
		return nil, fmt.Errorf("listing objects: %w", err)
	}

	return lattice.ParseAppObjectListingResponse(resp.Body)
}

// Get implements lattice.ObjectsClient.Get.
func (c *ObjectsClient) Get(ctx context.Context, app, object lattice.Handle) (*lattice.AppObject, error) {
	if err := app.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app handle: %w", err)
	}

	if err := object.Validate(); err != nil {
		return nil, fmt.Errorf("invalid object handle: %w", err)
	}

	path := fmt.Sprintf("%s/apps/%s/objects/%s", constants.APIVersionPrefix, app, object)

	resp, err := c.httpClient.Get(ctx, path, "")
	if err != nil {
		return nil, fmt.Errorf("getting object: %w", err)
	}

	return lattice.ParseAppObjectItemResponse(resp.Body)
}
