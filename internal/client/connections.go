package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lattice-io/lattice-client/internal/constants"
	"github.com/lattice-io/lattice-client/internal/http"
	"github.com/lattice-io/lattice-client/pkg/lattice"
)

// Static errors for err113 compliance.
var ErrConnectionIDRequired = errors.New("connection id is required")

// ConnectionsClient implements lattice.ConnectionsClient.
type ConnectionsClient struct {
	httpClient *http.Client
}

// NewConnectionsClient creates a new connections client.
func NewConnectionsClient(httpClient *http.Client) *ConnectionsClient {
	return &ConnectionsClient{
		httpClient: httpClient,
	}
}

// connectionPath builds the item route for a connection, validating every
// handle interpolated into it.
func connectionPath(app, object lattice.Handle, id string) (string, error) {
	if err := app.Validate(); err != nil {
		return "", fmt.Errorf("invalid app handle: %w", err)
	}

	if err := object.Validate(); err != nil {
		return "", fmt.Errorf("invalid object handle: %w", err)
	}

	if id == "" {
		return "", ErrConnectionIDRequired
	}

	return fmt.Sprintf("%s/connections/%s/%s/%s", constants.APIVersionPrefix, app, object, id), nil
}

// List implements lattice.ConnectionsClient.List.
func (c *ConnectionsClient) List(ctx context.Context, opts *lattice.ListOptions) (*lattice.ListResponse[lattice.Connection], error) {
	resp, err := c.httpClient.Get(ctx, constants.APIVersionPrefix+"/connections", opts.Encode())
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	return lattice.ParseConnectionListingResponse(resp.Body)
}

// Get implements lattice.ConnectionsClient.Get.
func (c *ConnectionsClient) Get(ctx context.Context, app, object lattice.Handle, id string) (*lattice.Connection, error) {
	path, err := connectionPath(app, object, id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, "")
	if err != nil {
		return nil, fmt.Errorf("getting connection: %w", err)
	}

	return lattice.ParseConnectionItemResponse(resp.Body)
}

// Upsert implements lattice.ConnectionsClient.Upsert. A nil request issues a
// bodyless PUT and the server applies its defaults.
func (c *ConnectionsClient) Upsert(ctx context.Context, app, object lattice.Handle, id string, request *lattice.ConnectionUpsertRequest) (*lattice.Connection, error) {
	path, err := connectionPath(app, object, id)
	if err != nil {
		return nil, err
	}

	var body interface{}

	if request != nil {
		if err := request.Validate(); err != nil {
			return nil, fmt.Errorf("invalid connection request: %w", err)
		}

		body = request
	}

	resp, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("upserting connection: %w", err)
	}

	return lattice.ParseConnectionItemResponse(resp.Body)
}

// Delete implements lattice.ConnectionsClient.Delete. Deletions may
// legitimately return no content, so an empty or unparsable success body
// resolves to a nil connection rather than an error.
func (c *ConnectionsClient) Delete(ctx context.Context, app, object lattice.Handle, id string) (*lattice.Connection, error) {
	path, err := connectionPath(app, object, id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting connection: %w", err)
	}

	var payload lattice.ConnectionPayload
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, nil
	}

	return lattice.ParseConnection(payload)
}
