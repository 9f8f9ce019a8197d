package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/openlabs/spree-go/pkg/spree"
	"github.com/openlabs/spree-go/pkg/spreeclient"
)

// NewLoginCommand creates the login command. It prompts for a token when one
// is not given, verifies it against the API, and stores the endpoint and
// token in the config file.
func NewLoginCommand() *cobra.Command {
	var endpoint string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store API endpoint and token",
		Long:  "Verify an API token against the Spree endpoint and save both to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoginCommand(endpoint)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Spree API endpoint (defaults to --api / config)")

	return cmd
}

func runLoginCommand(endpoint string) error {
	if endpoint == "" {
		endpoint = viper.GetString("api")
	}

	if endpoint == "" {
		return spree.ErrEndpointRequired
	}

	token := viper.GetString("token")
	if token == "" {
		var err error

		token, err = promptToken()
		if err != nil {
			return err
		}
	}

	if token == "" {
		return spree.ErrTokenRequired
	}

	client, err := spreeclient.NewWithToken(endpoint, token)
	if err != nil {
		return err
	}

	// A one-item listing is the cheapest way to verify the token.
	_, err = client.Products().List(context.Background(), spree.NewQueryParams().WithPerPage(1))
	if err != nil {
		if spree.IsUnauthorized(err) {
			return fmt.Errorf("token rejected by %s: %w", endpoint, err)
		}

		return fmt.Errorf("verifying token: %w", err)
	}

	err = persistCredentials(endpoint, token)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Logged in to %s\n", endpoint)

	return nil
}

func promptToken() (string, error) {
	_, _ = fmt.Fprint(os.Stdout, "API token: ")

	byteToken, err := term.ReadPassword(int(syscall.Stdin))

	_, _ = fmt.Fprintln(os.Stdout)

	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}

	return strings.TrimSpace(string(byteToken)), nil
}

func persistCredentials(endpoint, token string) error {
	viper.Set("api", endpoint)
	viper.Set("token", token)

	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		cfgFile = filepath.Join(home, ".spree", "config.yml")
	}

	err := viper.WriteConfigAs(cfgFile)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
