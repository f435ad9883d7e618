//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/helpdesk-io/zdclient/pkg/zdclient"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	URL     string
	Email   string
	Token   string
	OAuth   bool
	Verbose bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		URL:     os.Getenv("ZD_TEST_URL"),
		Email:   os.Getenv("ZD_TEST_EMAIL"),
		Token:   os.Getenv("ZD_TEST_TOKEN"),
		OAuth:   os.Getenv("ZD_TEST_OAUTH") == "true",
		Verbose: os.Getenv("ZD_TEST_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test if required config is missing.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.URL == "" {
		t.Skip("ZD_TEST_URL not set, skipping integration test")
	}

	if config.Token == "" {
		t.Skip("ZD_TEST_TOKEN not set, skipping integration test")
	}

	if !config.OAuth && config.Email == "" {
		t.Skip("ZD_TEST_EMAIL not set, skipping integration test")
	}
}

// NewClient builds a client against the configured test instance.
func (config *TestConfig) NewClient(t *testing.T) zendesk.Client {
	t.Helper()

	client, err := zdclient.New(&zendesk.Config{
		URL:   config.URL,
		Email: config.Email,
		Token: config.Token,
		OAuth: config.OAuth,
		Debug: config.Verbose,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}
