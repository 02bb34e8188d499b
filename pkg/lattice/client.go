package lattice

import (
	"context"
	"errors"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAccessTokenRequired = errors.New("access token is required")
)

// AppsClient provides read access to the app catalog.
type AppsClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[App], error)
	Get(ctx context.Context, handle Handle) (*App, error)
}

// ObjectsClient provides read access to the objects an app exposes.
type ObjectsClient interface {
	List(ctx context.Context, app Handle, opts *ListOptions) (*ListResponse[AppObject], error)
	Get(ctx context.Context, app, object Handle) (*AppObject, error)
}

// ConnectionsClient manages connections between app objects and the platform.
type ConnectionsClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Connection], error)
	Get(ctx context.Context, app, object Handle, id string) (*Connection, error)
	Upsert(ctx context.Context, app, object Handle, id string, request *ConnectionUpsertRequest) (*Connection, error)
	// Delete dissociates a connection. The deleted connection is returned
	// when the server echoes it back; a nil connection with a nil error means
	// the server responded with no content.
	Delete(ctx context.Context, app, object Handle, id string) (*Connection, error)
}

// ConfigurationsClient manages named configuration bundles.
type ConfigurationsClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Configuration], error)
	Get(ctx context.Context, handle Handle) (*Configuration, error)
	Upsert(ctx context.Context, handle Handle, request *ConfigurationUpsertRequest) (*Configuration, error)
	Delete(ctx context.Context, handle Handle) (*Configuration, error)
}

// Client is the top-level entry point, one accessor per resource kind.
type Client interface {
	Apps() AppsClient
	Objects() ObjectsClient
	Connections() ConnectionsClient
	Configurations() ConfigurationsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a lattice.Client.
//
// AccessToken is required and is sent verbatim in the authorization header of
// every request; the API does not use a "Bearer " prefix. APIEndpoint is
// optional and defaults to the production endpoint; latticeclient.New
// normalizes it by trimming a trailing slash and adding "https://" when no
// scheme is present.
//
// The configuration is validated once at construction and never mutated
// afterwards. Per-request timeouts are controlled via the context passed to
// client methods; there is no built-in retry, caching, or rate limiting.
type Config struct {
	// APIEndpoint is the base URL for the Lattice API. Optional; defaults to
	// the production endpoint.
	APIEndpoint string

	// AccessToken is the raw token placed in the authorization header.
	// Required, non-empty.
	AccessToken string

	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string

	// Debug enables request/response tracing when a Logger is provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// HTTPClient overrides the underlying transport. Intended for tests and
	// callers that need custom TLS or proxy behavior.
	HTTPClient *http.Client
}
