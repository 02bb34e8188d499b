package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/lattice-io/lattice-client/pkg/lattice"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAppsCommand creates the apps command group.
func NewAppsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apps",
		Aliases: []string{"app"},
		Short:   "Manage apps",
		Long:    "List and inspect the apps available on the platform",
	}

	cmd.AddCommand(newAppsListCommand())
	cmd.AddCommand(newAppsGetCommand())

	return cmd
}

func newAppsListCommand() *cobra.Command {
	var (
		pageSize  int
		nextToken string
		filters   []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List apps",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			opts, err := listOptionsFromFlags(pageSize, nextToken, filters)
			if err != nil {
				return err
			}

			apps, err := client.Apps().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list apps: %w", err)
			}

			return renderAppListing(apps)
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of items per page")
	cmd.Flags().StringVar(&nextToken, "next-token", "", "continuation token from a previous page")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "filter in name=value form (repeatable)")

	return cmd
}

func newAppsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get HANDLE",
		Short: "Show a single app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			app, err := client.Apps().Get(context.Background(), lattice.Handle(args[0]))
			if err != nil {
				return fmt.Errorf("failed to get app: %w", err)
			}

			return renderApp(app)
		},
	}

	return cmd
}

func renderAppListing(apps *lattice.ListResponse[lattice.App]) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON, OutputFormatYAML:
		payloads := make([]lattice.AppPayload, 0, len(apps.Items))
		for i := range apps.Items {
			payloads = append(payloads, apps.Items[i].Payload())
		}

		if output == OutputFormatJSON {
			return encodeJSON(payloads)
		}

		return encodeYAML(payloads)
	default:
		if len(apps.Items) == 0 {
			fmt.Println("No apps found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Handle", "Name", "URL", "Created", "Updated")

		for i := range apps.Items {
			app := &apps.Items[i]

			appURL := NotAvailable
			if app.URL != nil {
				appURL = app.URL.String()
			}

			_ = table.Append(app.Handle.String(), app.Name, appURL,
				formatTime(app.CreatedAt), formatTime(app.UpdatedAt))
		}

		_ = table.Render()
		printNextToken(apps.Pagination)
	}

	return nil
}

func renderApp(app *lattice.App) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return encodeJSON(app.Payload())
	case OutputFormatYAML:
		return encodeYAML(app.Payload())
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Handle", app.Handle.String())
		_ = table.Append("Name", app.Name)

		if app.URL != nil {
			_ = table.Append("URL", app.URL.String())
		}

		if !app.CreatedAt.IsZero() {
			_ = table.Append("Created", formatTime(app.CreatedAt))
		}

		if !app.UpdatedAt.IsZero() {
			_ = table.Append("Updated", formatTime(app.UpdatedAt))
		}

		_ = table.Render()
	}

	return nil
}
