package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-io/zdclient/internal/auth"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		email          string
		token          string
		oauth          bool
		expectedHeader string
		wantErrField   string
	}{
		{
			name:  "api token credentials",
			email: "agent@example.org",
			token: "secret",
			// base64("agent@example.org/token:secret")
			expectedHeader: "Basic YWdlbnRAZXhhbXBsZS5vcmcvdG9rZW46c2VjcmV0",
		},
		{
			name:           "oauth token",
			token:          "access-token",
			oauth:          true,
			expectedHeader: "Bearer access-token",
		},
		{
			name:           "oauth ignores email",
			email:          "agent@example.org",
			token:          "access-token",
			oauth:          true,
			expectedHeader: "Bearer access-token",
		},
		{
			name:         "missing token",
			email:        "agent@example.org",
			wantErrField: "token",
		},
		{
			name:         "missing email for api token auth",
			token:        "secret",
			wantErrField: "email",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			authenticator, err := auth.New(testCase.email, testCase.token, testCase.oauth)

			if testCase.wantErrField != "" {
				require.Error(t, err)

				configErr := &zendesk.ConfigError{}
				require.ErrorAs(t, err, &configErr)
				assert.Equal(t, testCase.wantErrField, configErr.Field)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expectedHeader, authenticator.Header())
		})
	}
}
