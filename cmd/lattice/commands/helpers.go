// Package commands implements the lattice CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/lattice-io/lattice-client/pkg/lattice"
	"github.com/lattice-io/lattice-client/pkg/latticeclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultJSONIndent = 2

	// NotAvailable fills table cells with no value.
	NotAvailable = "N/A"
)

// Static errors for err113 compliance.
var (
	ErrNotLoggedIn      = errors.New("not logged in, use 'lattice login' or set LATTICE_TOKEN")
	ErrInvalidFilter    = errors.New("invalid filter format, expected name=value")
	ErrInvalidSetting   = errors.New("invalid setting format, expected key=value")
	ErrEndpointRequired = errors.New("API endpoint is required")
)

// createClient builds an API client from the effective CLI configuration.
// The --api flag wins over the config file; the token comes from the config
// file, the --token flag, or LATTICE_TOKEN.
func createClient(apiFlag string) (lattice.Client, error) {
	endpoint := apiFlag
	if endpoint == "" {
		endpoint = viper.GetString("api")
	}

	token := viper.GetString("token")
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	config := &lattice.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newCLILogger()
	}

	return latticeclient.New(config)
}

// newCLILogger adapts an hclog logger to the client's logging interface.
func newCLILogger() lattice.Logger {
	return &hclogAdapter{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:   "lattice",
			Level:  hclog.Debug,
			Output: os.Stderr,
		}),
	}
}

type hclogAdapter struct {
	logger hclog.Logger
}

func (a *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, flatten(fields)...)
}

func (a *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, flatten(fields)...)
}

func (a *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, flatten(fields)...)
}

func (a *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, flatten(fields)...)
}

func flatten(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}

// listOptionsFromFlags assembles list options from the shared pagination and
// filter flags.
func listOptionsFromFlags(pageSize int, nextToken string, filters []string) (*lattice.ListOptions, error) {
	opts := lattice.NewListOptions()

	if pageSize > 0 {
		opts = opts.WithPageSize(pageSize)
	}

	if nextToken != "" {
		opts = opts.WithNextToken(nextToken)
	}

	for _, filter := range filters {
		name, value, found := strings.Cut(filter, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidFilter, filter)
		}

		opts = opts.WithFilter(name, value)
	}

	return opts, nil
}

// encodeJSON writes indented JSON to stdout.
func encodeJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	return nil
}

// encodeYAML writes YAML to stdout.
func encodeYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	return encoder.Close()
}

// formatTime renders a timestamp for table output, empty for the zero time.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format("2006-01-02 15:04:05")
}

// printNextToken reports the continuation token after a table listing.
func printNextToken(pagination *lattice.Pagination) {
	if pagination == nil || pagination.NextToken == "" {
		return
	}

	fmt.Printf("\nMore results available, use --next-token %s\n", pagination.NextToken)
}
