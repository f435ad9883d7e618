// Package auth derives the Authorization header value for the client.
package auth

import (
	"encoding/base64"
	"fmt"

	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

// Authenticator holds the single Authorization header value derived from
// credentials at construction time. It is immutable and safe for concurrent
// use; the header is never recomputed per request.
type Authenticator struct {
	header string
}

// New validates the credential fields and derives the header value.
//
// With oauth false, email and token are combined as "email/token:token" and
// sent under the Basic scheme. With oauth true, the token is sent directly
// under the Bearer scheme and email is not required.
func New(email, token string, oauth bool) (*Authenticator, error) {
	if token == "" {
		return nil, &zendesk.ConfigError{Field: "token"}
	}

	if oauth {
		return &Authenticator{header: "Bearer " + token}, nil
	}

	if email == "" {
		return nil, &zendesk.ConfigError{Field: "email"}
	}

	credentials := fmt.Sprintf("%s/token:%s", email, token)
	encoded := base64.StdEncoding.EncodeToString([]byte(credentials))

	return &Authenticator{header: "Basic " + encoded}, nil
}

// Header returns the precomputed Authorization header value.
func (a *Authenticator) Header() string {
	return a.header
}
