package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lattice-io/lattice-client/pkg/lattice"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// NewConfigurationsCommand creates the configurations command group.
func NewConfigurationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "configurations",
		Aliases: []string{"configuration", "configs"},
		Short:   "Manage configurations",
		Long:    "List, create, update, and delete configurations",
	}

	cmd.AddCommand(newConfigurationsListCommand())
	cmd.AddCommand(newConfigurationsGetCommand())
	cmd.AddCommand(newConfigurationsUpsertCommand())
	cmd.AddCommand(newConfigurationsDeleteCommand())

	return cmd
}

func newConfigurationsListCommand() *cobra.Command {
	var (
		pageSize  int
		nextToken string
		filters   []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			opts, err := listOptionsFromFlags(pageSize, nextToken, filters)
			if err != nil {
				return err
			}

			configurations, err := client.Configurations().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list configurations: %w", err)
			}

			return renderConfigurationListing(configurations)
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of items per page")
	cmd.Flags().StringVar(&nextToken, "next-token", "", "continuation token from a previous page")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "filter in name=value form (repeatable)")

	return cmd
}

func newConfigurationsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get HANDLE",
		Short: "Show a single configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			configuration, err := client.Configurations().Get(context.Background(), lattice.Handle(args[0]))
			if err != nil {
				return fmt.Errorf("failed to get configuration: %w", err)
			}

			return renderConfiguration(configuration)
		},
	}

	return cmd
}

func newConfigurationsUpsertCommand() *cobra.Command {
	var (
		name         string
		connection   string
		status       string
		settings     []string
		settingsFile string
	)

	cmd := &cobra.Command{
		Use:     "upsert HANDLE",
		Aliases: []string{"create", "update"},
		Short:   "Create or update a configuration",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			parsedSettings, err := parseSettings(settings, settingsFile)
			if err != nil {
				return err
			}

			request := &lattice.ConfigurationUpsertRequest{
				Name:       name,
				Connection: connection,
				Settings:   parsedSettings,
				Status:     lattice.Status(status),
			}

			configuration, err := client.Configurations().Upsert(context.Background(),
				lattice.Handle(args[0]), request)
			if err != nil {
				return fmt.Errorf("failed to upsert configuration: %w", err)
			}

			return renderConfiguration(configuration)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name (required)")
	cmd.Flags().StringVar(&connection, "connection", "", "connection id this configuration applies to")
	cmd.Flags().StringVar(&status, "status", "", "status (enabled, disabled)")
	cmd.Flags().StringArrayVar(&settings, "setting", nil, "setting in key=value form (repeatable)")
	cmd.Flags().StringVar(&settingsFile, "settings-file", "", "YAML or JSON file with settings")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newConfigurationsDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete HANDLE",
		Short: "Delete a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			configuration, err := client.Configurations().Delete(context.Background(), lattice.Handle(args[0]))
			if err != nil {
				return fmt.Errorf("failed to delete configuration: %w", err)
			}

			if configuration == nil {
				fmt.Printf("Configuration %s deleted\n", args[0])

				return nil
			}

			return renderConfiguration(configuration)
		},
	}

	return cmd
}

// parseSettings merges file-based settings with key=value overrides, the
// overrides winning.
func parseSettings(pairs []string, file string) (map[string]interface{}, error) {
	if len(pairs) == 0 && file == "" {
		return nil, nil
	}

	settings := make(map[string]interface{})

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}

		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("parsing settings file: %w", err)
		}
	}

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidSetting, pair)
		}

		settings[key] = value
	}

	return settings, nil
}

func renderConfigurationListing(configurations *lattice.ListResponse[lattice.Configuration]) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON, OutputFormatYAML:
		payloads := make([]lattice.ConfigurationPayload, 0, len(configurations.Items))
		for i := range configurations.Items {
			payloads = append(payloads, configurations.Items[i].Payload())
		}

		if output == OutputFormatJSON {
			return encodeJSON(payloads)
		}

		return encodeYAML(payloads)
	default:
		if len(configurations.Items) == 0 {
			fmt.Println("No configurations found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Handle", "Name", "Connection", "Status", "Created")

		for i := range configurations.Items {
			configuration := &configurations.Items[i]

			connection := configuration.Connection
			if connection == "" {
				connection = NotAvailable
			}

			_ = table.Append(configuration.Handle.String(), configuration.Name,
				connection, string(configuration.Status), formatTime(configuration.CreatedAt))
		}

		_ = table.Render()
		printNextToken(configurations.Pagination)
	}

	return nil
}

func renderConfiguration(configuration *lattice.Configuration) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return encodeJSON(configuration.Payload())
	case OutputFormatYAML:
		return encodeYAML(configuration.Payload())
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Handle", configuration.Handle.String())
		_ = table.Append("Name", configuration.Name)

		if configuration.Connection != "" {
			_ = table.Append("Connection", configuration.Connection)
		}

		_ = table.Append("Status", string(configuration.Status))

		for key, value := range configuration.Settings {
			_ = table.Append("Setting: "+key, fmt.Sprintf("%v", value))
		}

		if !configuration.CreatedAt.IsZero() {
			_ = table.Append("Created", formatTime(configuration.CreatedAt))
		}

		if !configuration.UpdatedAt.IsZero() {
			_ = table.Append("Updated", formatTime(configuration.UpdatedAt))
		}

		_ = table.Render()
	}

	return nil
}
