package constants

import "time"

// API defaults.
const (
	// DefaultAPIEndpoint is the production Lattice API host used when no
	// endpoint is configured.
	DefaultAPIEndpoint = "https://api.lattice.dev"

	// APIVersionPrefix is the path prefix shared by every resource route.
	APIVersionPrefix = "/v1"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)
