package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/lattice-io/lattice-client/pkg/lattice"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewConnectionsCommand creates the connections command group.
func NewConnectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connections",
		Aliases: []string{"connection", "conns"},
		Short:   "Manage connections",
		Long:    "List, create, update, and delete the connections joining app objects to the platform",
	}

	cmd.AddCommand(newConnectionsListCommand())
	cmd.AddCommand(newConnectionsGetCommand())
	cmd.AddCommand(newConnectionsUpsertCommand())
	cmd.AddCommand(newConnectionsDeleteCommand())

	return cmd
}

func newConnectionsListCommand() *cobra.Command {
	var (
		pageSize  int
		nextToken string
		filters   []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			opts, err := listOptionsFromFlags(pageSize, nextToken, filters)
			if err != nil {
				return err
			}

			connections, err := client.Connections().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list connections: %w", err)
			}

			return renderConnectionListing(connections)
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of items per page")
	cmd.Flags().StringVar(&nextToken, "next-token", "", "continuation token from a previous page")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "filter in name=value form (repeatable)")

	return cmd
}

func newConnectionsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get APP OBJECT ID",
		Short: "Show a single connection",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			connection, err := client.Connections().Get(context.Background(),
				lattice.Handle(args[0]), lattice.Handle(args[1]), args[2])
			if err != nil {
				return fmt.Errorf("failed to get connection: %w", err)
			}

			return renderConnection(connection)
		},
	}

	return cmd
}

func newConnectionsUpsertCommand() *cobra.Command {
	var (
		id       string
		joinType string
		status   string
	)

	cmd := &cobra.Command{
		Use:     "upsert APP OBJECT",
		Aliases: []string{"create", "update"},
		Short:   "Create or update a connection",
		Long: `Create or update a connection between an app object and the platform.

When --id is omitted, a new connection id is generated. Omitted attributes
keep the server-side defaults.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			if id == "" {
				id = uuid.NewString()
			}

			var request *lattice.ConnectionUpsertRequest
			if joinType != "" || status != "" {
				request = &lattice.ConnectionUpsertRequest{
					JoinType: lattice.JoinType(joinType),
					Status:   lattice.Status(status),
				}
			}

			connection, err := client.Connections().Upsert(context.Background(),
				lattice.Handle(args[0]), lattice.Handle(args[1]), id, request)
			if err != nil {
				return fmt.Errorf("failed to upsert connection: %w", err)
			}

			return renderConnection(connection)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "connection id (generated when omitted)")
	cmd.Flags().StringVar(&joinType, "join-type", "", "join type (one, many)")
	cmd.Flags().StringVar(&status, "status", "", "status (enabled, disabled)")

	return cmd
}

func newConnectionsDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete APP OBJECT ID",
		Short: "Delete a connection",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			connection, err := client.Connections().Delete(context.Background(),
				lattice.Handle(args[0]), lattice.Handle(args[1]), args[2])
			if err != nil {
				return fmt.Errorf("failed to delete connection: %w", err)
			}

			if connection == nil {
				fmt.Printf("Connection %s deleted\n", args[2])

				return nil
			}

			return renderConnection(connection)
		},
	}

	return cmd
}

func renderConnectionListing(connections *lattice.ListResponse[lattice.Connection]) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON, OutputFormatYAML:
		payloads := make([]lattice.ConnectionPayload, 0, len(connections.Items))
		for i := range connections.Items {
			payloads = append(payloads, connections.Items[i].Payload())
		}

		if output == OutputFormatJSON {
			return encodeJSON(payloads)
		}

		return encodeYAML(payloads)
	default:
		if len(connections.Items) == 0 {
			fmt.Println("No connections found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "App", "Object", "Join Type", "Status", "Created")

		for i := range connections.Items {
			connection := &connections.Items[i]
			_ = table.Append(connection.ID, connection.App.Handle.String(),
				connection.Object.Handle.String(), string(connection.JoinType),
				string(connection.Status), formatTime(connection.CreatedAt))
		}

		_ = table.Render()
		printNextToken(connections.Pagination)
	}

	return nil
}

func renderConnection(connection *lattice.Connection) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return encodeJSON(connection.Payload())
	case OutputFormatYAML:
		return encodeYAML(connection.Payload())
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", connection.ID)
		_ = table.Append("App", connection.App.Handle.String())
		_ = table.Append("Object", connection.Object.Handle.String())
		_ = table.Append("Join Type", string(connection.JoinType))
		_ = table.Append("Status", string(connection.Status))

		if !connection.CreatedAt.IsZero() {
			_ = table.Append("Created", formatTime(connection.CreatedAt))
		}

		if !connection.UpdatedAt.IsZero() {
			_ = table.Append("Updated", formatTime(connection.UpdatedAt))
		}

		_ = table.Render()
	}

	return nil
}
