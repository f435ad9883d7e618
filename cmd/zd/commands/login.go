package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/helpdesk-io/zdclient/pkg/zdclient"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

// NewLoginCommand creates the login command. Instance, email, and oauth come
// from the global flags or interactive prompts; the token is always prompted
// for so it never lands in shell history.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Login to a Zendesk instance",
		Long:  "Authenticate against a Zendesk instance and persist the credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			url := viper.GetString("url")
			email := viper.GetString("email")
			oauth := viper.GetBool("oauth")

			if url == "" {
				fmt.Print("Instance URL (e.g. company.zendesk.com): ")
				url, _ = reader.ReadString('\n')
				url = strings.TrimSpace(url)
			}

			if url == "" {
				return ErrURLRequired
			}

			if !oauth && email == "" {
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			fmt.Print("Token: ")

			byteToken, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read token: %w", err)
			}

			fmt.Println()

			token := strings.TrimSpace(string(byteToken))
			if token == "" {
				return ErrCredentialRequired
			}

			client, err := zdclient.New(&zendesk.Config{
				URL:   url,
				Email: email,
				Token: token,
				OAuth: oauth,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials with the cheapest authenticated call.
			_, err = client.Users().List(context.Background(), zendesk.NewParams().With("per_page", 1))
			if err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}

			config.URL = url
			config.Email = email
			config.Token = token
			config.OAuth = oauth

			if err := saveConfig(config); err != nil {
				return err
			}

			successf("Logged in to %s", url)

			return nil
		},
	}
}
