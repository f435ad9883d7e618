package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/helpdesk-io/zdclient/internal/constants"
)

// ErrUnknownConfigKey is returned when a config key is not recognized.
var ErrUnknownConfigKey = errors.New("unknown configuration key")

// Config is the persisted CLI configuration at ~/.zd/config.yml.
type Config struct {
	URL     string `yaml:"url,omitempty"`
	Email   string `yaml:"email,omitempty"`
	Token   string `yaml:"token,omitempty"`
	OAuth   bool   `yaml:"oauth,omitempty"`
	Output  string `yaml:"output,omitempty"`
	NoColor bool   `yaml:"no_color,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the persisted zd configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			// Redact the credential for display only.
			display := *config
			if display.Token != "" {
				display.Token = "********"
			}

			return renderOutput(display, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")

				_ = table.Append("url", display.URL)
				_ = table.Append("email", display.Email)
				_ = table.Append("token", display.Token)
				_ = table.Append("oauth", strconv.FormatBool(display.OAuth))
				_ = table.Append("output", display.Output)
				_ = table.Append("no_color", strconv.FormatBool(display.NoColor))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of: url, email, token, oauth, output, no_color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			if err := applyConfigValue(config, args[0], args[1]); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			successf("Set %s", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			if err := applyConfigValue(config, args[0], ""); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			successf("Unset %s", args[0])

			return nil
		},
	}
}

func applyConfigValue(config *Config, key, value string) error {
	switch key {
	case "url":
		config.URL = value
	case "email":
		config.Email = value
	case "token":
		config.Token = value
	case "oauth":
		config.OAuth = value == "true"
	case "output":
		config.Output = value
	case "no_color", "no-color":
		config.NoColor = value == "true"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
	}

	return nil
}

// configFilePath resolves the config file location, honoring an explicit
// --config flag.
func configFilePath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, ".zd", "config.yml"), nil
}

func loadConfig() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
