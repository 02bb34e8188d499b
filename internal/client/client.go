// Package client implements the lattice.Client interface and its resource
// modules.
package client

import (
	"github.com/lattice-io/lattice-client/internal/auth"
	"github.com/lattice-io/lattice-client/internal/constants"
	"github.com/lattice-io/lattice-client/internal/http"
	"github.com/lattice-io/lattice-client/pkg/lattice"
)

// Client implements the lattice.Client interface. The configuration is read
// once at construction and never mutated afterwards; resource modules share
// the same immutable transport.
type Client struct {
	httpClient *http.Client
	baseURL    string

	apps           lattice.AppsClient
	objects        lattice.ObjectsClient
	connections    lattice.ConnectionsClient
	configurations lattice.ConfigurationsClient
}

// New creates a new Lattice API client from a validated configuration.
func New(config *lattice.Config) (*Client, error) {
	if config == nil {
		return nil, lattice.ErrConfigRequired
	}

	if config.AccessToken == "" {
		return nil, lattice.ErrAccessTokenRequired
	}

	baseURL := config.APIEndpoint
	if baseURL == "" {
		baseURL = constants.DefaultAPIEndpoint
	}

	httpOpts := createHTTPClientOptions(config)
	authorizer := auth.NewTokenAuthorizer(config.AccessToken)
	httpClient := http.NewClient(baseURL, authorizer, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *lattice.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.apps = NewAppsClient(c.httpClient)
	c.objects = NewObjectsClient(c.httpClient)
	c.connections = NewConnectionsClient(c.httpClient)
	c.configurations = NewConfigurationsClient(c.httpClient)
}

// Apps implements lattice.Client.Apps.
func (c *Client) Apps() lattice.AppsClient {
	return c.apps
}

// Objects implements lattice.Client.Objects.
func (c *Client) Objects() lattice.ObjectsClient {
	return c.objects
}

// Connections implements lattice.Client.Connections.
func (c *Client) Connections() lattice.ConnectionsClient {
	return c.connections
}

// Configurations implements lattice.Client.Configurations.
func (c *Client) Configurations() lattice.ConfigurationsClient {
	return c.configurations
}
