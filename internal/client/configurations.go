package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lattice-io/lattice-client/internal/constants"
	"github.com/lattice-io/lattice-client/internal/http"
	"github.com/lattice-io/lattice-client/pkg/lattice"
)

// ConfigurationsClient implements lattice.ConfigurationsClient.
type ConfigurationsClient struct {
	httpClient *http.Client
}

// NewConfigurationsClient creates a new configurations client.
func NewConfigurationsClient(httpClient *http.Client) *ConfigurationsClient {
	return &ConfigurationsClient{
		httpClient: httpClient,
	}
}

// List implements lattice.ConfigurationsClient.List.
func (c *ConfigurationsClient) List(ctx context.Context, opts *lattice.ListOptions) (*lattice.ListResponse[lattice.Configuration], error) {
	resp, err := c.httpClient.Get(ctx, constants.APIVersionPrefix+"/configurations", opts.Encode())
	if err != nil {
		return nil, fmt.Errorf("listing configurations: %w", err)
	}

	return lattice.ParseConfigurationListingResponse(resp.Body)
}

// Get implements lattice.ConfigurationsClient.Get.
func (c *ConfigurationsClient) Get(ctx context.Context, handle lattice.Handle) (*lattice.Configuration, error) {
	if err := handle.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration handle: %w", err)
	}

	path := fmt.Sprintf("%s/configurations/%s", constants.APIVersionPrefix, handle)

	resp, err := c.httpClient.Get(ctx, path, "")
	if err != nil {
		return nil, fmt.Errorf("getting configuration: %w", err)
	}

	return lattice.ParseConfigurationItemResponse(resp.Body)
}

// Upsert implements lattice.ConfigurationsClient.Upsert.
func (c *ConfigurationsClient) Upsert(ctx context.Context, handle lattice.Handle, request *lattice.ConfigurationUpsertRequest) (*lattice.Configuration, error) {
	if err := handle.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration handle: %w", err)
	}

	var body interface{}

	if request != nil {
		if err := request.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration request: %w", err)
		}

		body = request
	}

	path := fmt.Sprintf("%s/configurations/%s", constants.APIVersionPrefix, handle)

	resp, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("upserting configuration: %w", err)
	}

	return lattice.ParseConfigurationItemResponse(resp.Body)
}

// Delete implements lattice.ConfigurationsClient.Delete. An empty or
// unparsable success body resolves to a nil configuration rather than an
// error.
func (c *ConfigurationsClient) Delete(ctx context.Context, handle lattice.Handle) (*lattice.Configuration, error) {
	if err := handle.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration handle: %w", err)
	}

	path := fmt.Sprintf("%s/configurations/%s", constants.APIVersionPrefix, handle)

	resp, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting configuration: %w", err)
	}

	var payload lattice.ConfigurationPayload
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, nil
	}

	return lattice.ParseConfiguration(payload)
}
