// Package zdclient provides the main entry point for creating Zendesk API clients
package zdclient

import (
	"fmt"
	"strings"

	"github.com/helpdesk-io/zdclient/internal/client"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

// New creates a new Zendesk API client. The base URL is normalized by
// trimming a trailing slash and assuming https when no scheme is present.
func New(config *zendesk.Config) (zendesk.Client, error) {
	if config == nil {
		return nil, zendesk.ErrConfigRequired
	}

	if config.URL == "" {
		return nil, &zendesk.ConfigError{Field: "url"}
	}

	// Normalize the instance URL
	baseURL := strings.TrimSuffix(config.URL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.URL = baseURL

	zdClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return zdClient, nil
}

// NewWithAPIToken creates a new client using email/API-token authentication.
func NewWithAPIToken(url, email, token string) (zendesk.Client, error) {
	return New(&zendesk.Config{
		URL:   url,
		Email: email,
		Token: token,
	})
}

// NewWithOAuthToken creates a new client using an OAuth access token.
func NewWithOAuthToken(url, token string) (zendesk.Client, error) {
	return New(&zendesk.Config{
		URL:   url,
		Token: token,
		OAuth: true,
	})
}
