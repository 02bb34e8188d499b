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

// NewObjectsCommand creates the objects command group.
func NewObjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "objects",
		Aliases: []string{"object"},
		Short:   "Manage app objects",
		Long:    "List and inspect the objects an app exposes",
	}

	cmd.AddCommand(newObjectsListCommand())
	cmd.AddCommand(newObjectsGetCommand())

	return cmd
}

func newObjectsListCommand() *cobra.Command {
	var (
		pageSize  int
		nextToken string
		filters   []string
	)

	cmd := &cobra.Command{
		Use:   "list APP",
		Short: "List the objects of an app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			opts, err := listOptionsFromFlags(pageSize, nextToken, filters)
			if err != nil {
				return err
			}

			objects, err := client.Objects().List(context.Background(), lattice.Handle(args[0]), opts)
			if err != nil {
				return fmt.Errorf("failed to list objects: %w", err)
			}

			return renderObjectListing(objects)
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of items per page")
	cmd.Flags().StringVar(&nextToken, "next-token", "", "continuation token from a previous page")
	cmd.Flags().StringArrayVarP(&filters, "filter", "f", nil, "filter in name=value form (repeatable)")

	return cmd
}

func newObjectsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get APP OBJECT",
		Short: "Show a single app object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient(cmd.Flag("api").Value.String())
			if err != nil {
				return err
			}

			object, err := client.Objects().Get(context.Background(),
				lattice.Handle(args[0]), lattice.Handle(args[1]))
			if err != nil {
				return fmt.Errorf("failed to get object: %w", err)
			}

			return renderObject(object)
		},
	}

	return cmd
}

func renderObjectListing(objects *lattice.ListResponse[lattice.AppObject]) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON, OutputFormatYAML:
		payloads := make([]lattice.AppObjectPayload, 0, len(objects.Items))
		for i := range objects.Items {
			payloads = append(payloads, objects.Items[i].Payload())
		}

		if output == OutputFormatJSON {
			return encodeJSON(payloads)
		}

		return encodeYAML(payloads)
	default:
		if len(objects.Items) == 0 {
			fmt.Println("No objects found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Handle", "Name", "Created", "Updated")

		for i := range objects.Items {
			object := &objects.Items[i]
			_ = table.Append(object.Handle.String(), object.Name,
				formatTime(object.CreatedAt), formatTime(object.UpdatedAt))
		}

		_ = table.Render()
		printNextToken(objects.Pagination)
	}

	return nil
}

func renderObject(object *lattice.AppObject) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return encodeJSON(object.Payload())
	case OutputFormatYAML:
		return encodeYAML(object.Payload())
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Handle", object.Handle.String())
		_ = table.Append("Name", object.Name)

		if !object.CreatedAt.IsZero() {
			_ = table.Append("Created", formatTime(object.CreatedAt))
		}

		if !object.UpdatedAt.IsZero() {
			_ = table.Append("Updated", formatTime(object.UpdatedAt))
		}

		_ = table.Render()
	}

	return nil
}
