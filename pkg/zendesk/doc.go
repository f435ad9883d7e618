// Package zendesk provides types, interfaces, and helpers for working with
// the Zendesk Support API (v2).
//
// # Overview
//
// The zendesk package defines the domain types (e.g., Ticket, User,
// Organization, Macro) and the uniform resource operation surface
// (OperationSet) exposed for each resource type. A concrete implementation is
// provided by the zdclient package, which wires configuration, transport, and
// authentication. Most consumers should import zdclient to construct a client
// and then interact with the Client interface exposed here.
//
// Getting a client
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
//	  cli, err := zdclient.New(ctx, &zendesk.Config{
//	    URL:   "https://example.zendesk.com",
//	    Email: "agent@example.com",
//	    Token: "api-token",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of tickets
//	  tickets, err := cli.Tickets().List(ctx, zendesk.NewParams().With("per_page", 50))
//	  if err != nil { log.Fatal(err) }
//	  _ = tickets
//	}
//
// # Nested resources
//
// Parent-scoped access hangs the child operation set under the parent's URL:
//
//	comments, err := cli.Ticket(7).Comments().List(ctx, nil)
//
// issues GET /api/v2/tickets/7/comments.json. Only the relationships
// explicitly declared on each scope are reachable.
//
// # Errors
//
// Failures surface as typed errors (TimeoutError, TransportError,
// HTTPStatusError, EmptyReplyError, MalformedResponseError, ShapeError) with
// the full cause chain preserved. Use the predicate helpers (IsTimeout,
// IsNotFound, ...) or errors.As to distinguish them programmatically. The
// client logs nothing and never retries; both are the caller's concern.
package zendesk
