// Package commands implements the zd CLI command tree.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/helpdesk-io/zdclient/pkg/zdclient"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrURLRequired        = errors.New("instance URL is required (use --url, ZD_URL, or 'zd login')")
	ErrCredentialRequired = errors.New("credentials are required (use --token, ZD_TOKEN, or 'zd login')")
	ErrQueryRequired      = errors.New("search query is required")
	ErrIDRequired         = errors.New("at least one id is required")
)

var titleCaser = cases.Title(language.English)

// CreateClient builds an API client from the resolved CLI configuration.
func CreateClient() (zendesk.Client, error) {
	url := viper.GetString("url")
	if url == "" {
		return nil, ErrURLRequired
	}

	token := viper.GetString("token")
	if token == "" {
		return nil, ErrCredentialRequired
	}

	config := &zendesk.Config{
		URL:   url,
		Token: token,
		Email: viper.GetString("email"),
		OAuth: viper.GetBool("oauth"),
		Debug: viper.GetBool("verbose"),
	}

	if config.Debug {
		config.Logger = &stderrLogger{}
	}

	client, err := zdclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// renderOutput dispatches on the configured output format, falling back to
// the provided table renderer.
func renderOutput[T any](data T, tableRenderer func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(data)
	default:
		return tableRenderer()
	}
}

// parseID parses a decimal resource identifier from a CLI argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}

	return id, nil
}

// parseIDList parses a comma-separated list of identifiers.
func parseIDList(arg string) ([]int64, error) {
	parts := strings.Split(arg, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := parseID(part)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, ErrIDRequired
	}

	return ids, nil
}

// listParams builds the shared pagination and sorting parameters for list
// commands.
func listParams(page, perPage int, sortBy, sortOrder string) zendesk.Params {
	params := zendesk.NewParams()

	if page > 0 {
		params.With("page", page)
	}

	if perPage > 0 {
		params.With("per_page", perPage)
	}

	if sortBy != "" {
		params.With("sort_by", sortBy)
	}

	if sortOrder != "" {
		params.With("sort_order", sortOrder)
	}

	return params
}

// formatTime renders an optional timestamp for table output.
func formatTime(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format("2006-01-02")
}

// formatLabel turns an identifier like "ticket_field" into "Ticket Field".
func formatLabel(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

// statusColor renders a ticket status with a severity color for table
// output. Color is disabled by the global no-color flag.
func statusColor(status string) string {
	if viper.GetBool("no-color") {
		return status
	}

	switch status {
	case "new", "open":
		return color.RedString(status)
	case "pending", "hold":
		return color.YellowString(status)
	case "solved", "closed":
		return color.GreenString(status)
	default:
		return status
	}
}

// successf prints a green confirmation line.
func successf(format string, args ...interface{}) {
	if viper.GetBool("no-color") {
		fmt.Fprintf(os.Stdout, format+"\n", args...)

		return
	}

	_, _ = color.New(color.FgGreen).Fprintf(os.Stdout, format+"\n", args...)
}

// stderrLogger writes verbose HTTP logs to stderr.
type stderrLogger struct{}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("debug", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("info", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("warn", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("error", msg, fields)
}
