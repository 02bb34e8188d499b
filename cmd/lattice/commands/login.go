package commands

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"syscall"

	"github.com/lattice-io/lattice-client/internal/constants"
	"github.com/lattice-io/lattice-client/pkg/lattice"
	"github.com/lattice-io/lattice-client/pkg/latticeclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to a Lattice API",
		Long:  "Store the API endpoint and access token used by subsequent commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get API endpoint
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API endpoint: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return ErrEndpointRequired
			}

			// Get access token without echoing it
			if token == "" {
				fmt.Print("Access token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))

				fmt.Println()
			}

			// Verification should fail fast on a wrong endpoint.
			client, err := latticeclient.New(&lattice.Config{
				APIEndpoint: apiEndpoint,
				AccessToken: token,
				HTTPClient:  &http.Client{Timeout: constants.ShortHTTPTimeout},
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials before persisting them
			if _, err := client.Apps().List(context.Background(), lattice.NewListOptions().WithPageSize(1)); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			viper.Set("api", apiEndpoint)
			viper.Set("token", token)

			if err := persistConfig(); err != nil {
				return err
			}

			fmt.Printf("Logged in to %s\n", apiEndpoint)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVarP(&token, "token", "t", "", "access token")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("token", "")

			if err := persistConfig(); err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
