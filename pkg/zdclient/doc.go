// Package zdclient provides the primary entry point for constructing a
// Zendesk API client that implements the zendesk.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the zendesk package. Most
// applications should import zdclient to build a client, then use the
// returned zendesk.Client to access resource-specific operation sets, for
// example Tickets(), Users(), Macros(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/helpdesk-io/zdclient/pkg/zdclient"
//	  "github.com/helpdesk-io/zdclient/pkg/zendesk"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Email plus API token (the common case):
//	  cli, err := zdclient.NewWithAPIToken("example.zendesk.com", "agent@example.org", "api-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an OAuth access token:
//	  cli, err = zdclient.NewWithOAuthToken("example.zendesk.com", "access-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration:
//	  cli, err = zdclient.New(&zendesk.Config{
//	    URL:   "https://example.zendesk.com",
//	    Email: "agent@example.org",
//	    Token: "api-token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource operation sets via the zendesk.Client interface
//	  tickets, err := cli.Tickets().List(ctx, zendesk.NewParams().With("sort_by", "created_at"))
//	  if err != nil { log.Fatal(err) }
//	  _ = tickets
//	}
//
// The URL is normalized on construction: a trailing slash is trimmed and
// "https://" is assumed when no scheme is given, so a bare subdomain works.
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIToken and
// NewWithOAuthToken that wrap New with the appropriate configuration.
package zdclient
