package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-io/zdclient/internal/client"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("api token credentials", func(t *testing.T) {
		t.Parallel()

		zdClient, err := client.New(&zendesk.Config{
			URL:   "https://example.zendesk.com",
			Email: "agent@example.org",
			Token: "secret",
		})
		require.NoError(t, err)
		assert.NotNil(t, zdClient.Tickets())
		assert.NotNil(t, zdClient.TicketFields())
		assert.NotNil(t, zdClient.Organizations())
		assert.NotNil(t, zdClient.Users())
		assert.NotNil(t, zdClient.UserFields())
		assert.NotNil(t, zdClient.Macros())
		assert.NotNil(t, zdClient.Search())
	})

	t.Run("oauth credentials without email", func(t *testing.T) {
		t.Parallel()

		zdClient, err := client.New(&zendesk.Config{
			URL:   "https://example.zendesk.com",
			Token: "access-token",
			OAuth: true,
		})
		require.NoError(t, err)
		assert.NotNil(t, zdClient)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, zendesk.ErrConfigRequired)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			config *zendesk.Config
			field  string
		}{
			{
				name:   "missing url",
				config: &zendesk.Config{Email: "agent@example.org", Token: "secret"},
				field:  "url",
			},
			{
				name:   "missing token",
				config: &zendesk.Config{URL: "https://example.zendesk.com", Email: "agent@example.org"},
				field:  "token",
			},
			{
				name:   "missing email for api token auth",
				config: &zendesk.Config{URL: "https://example.zendesk.com", Token: "secret"},
				field:  "email",
			},
		}

		for _, testCase := range tests {
			t.Run(testCase.name, func(t *testing.T) {
				t.Parallel()

				_, err := client.New(testCase.config)
				require.Error(t, err)
				assert.True(t, zendesk.IsConfigError(err))

				configErr := &zendesk.ConfigError{}
				require.ErrorAs(t, err, &configErr)
				assert.Equal(t, testCase.field, configErr.Field)
			})
		}
	})
}

func TestClient_AuthorizationHeader(t *testing.T) {
	t.Parallel()
	t.Run("basic credentials on every request", func(t *testing.T) {
		t.Parallel()

		var captured []string

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			captured = append(captured, request.Header.Get("Authorization"))
			_, _ = writer.Write([]byte(`{"tickets": []}`))
		}))
		defer server.Close()

		zdClient, err := client.New(&zendesk.Config{
			URL:   server.URL,
			Email: "agent@example.org",
			Token: "secret",
		})
		require.NoError(t, err)

		_, err = zdClient.Tickets().List(context.Background(), nil)
		require.NoError(t, err)

		_, err = zdClient.Organization(12).Tickets().List(context.Background(), nil)
		require.NoError(t, err)

		require.Len(t, captured, 2)
		// base64("agent@example.org/token:secret")
		assert.Equal(t, "Basic YWdlbnRAZXhhbXBsZS5vcmcvdG9rZW46c2VjcmV0", captured[0])
		assert.Equal(t, captured[0], captured[1])
	})

	t.Run("bearer token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "Bearer access-token", request.Header.Get("Authorization"))
			_, _ = writer.Write([]byte(`{"tickets": []}`))
		}))
		defer server.Close()

		zdClient, err := client.New(&zendesk.Config{
			URL:   server.URL,
			Token: "access-token",
			OAuth: true,
		})
		require.NoError(t, err)

		_, err = zdClient.Tickets().List(context.Background(), nil)
		require.NoError(t, err)
	})
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"tickets": []}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}

	zdClient, err := client.New(&zendesk.Config{
		URL:    server.URL,
		Email:  "agent@example.org",
		Token:  "secret",
		Debug:  true,
		Logger: logger,
	})
	require.NoError(t, err)

	_, err = zdClient.Tickets().List(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, logger.messages, 2)
	assert.Equal(t, "HTTP Request", logger.messages[0])
	assert.Equal(t, "HTTP Response", logger.messages[1])
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {}
