// Package client wires the transport, authenticator, and per-resource
// operation sets into the zendesk.Client registry.
package client

import (
	"github.com/helpdesk-io/zdclient/internal/auth"
	"github.com/helpdesk-io/zdclient/internal/constants"
	"github.com/helpdesk-io/zdclient/internal/http"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

// Resource descriptors. The descriptor fixes the envelope field names and
// the URL path segment; everything else about an operation set is derived
// from it.
var (
	ticketsDescriptor       = zendesk.NewDescriptor("ticket", "tickets")
	ticketFieldsDescriptor  = zendesk.NewDescriptor("ticket_field", "ticket_fields")
	organizationsDescriptor = zendesk.NewDescriptor("organization", "organizations")
	usersDescriptor         = zendesk.NewDescriptor("user", "users")
	userFieldsDescriptor    = zendesk.NewDescriptor("user_field", "user_fields")
	macrosDescriptor        = zendesk.NewDescriptor("macro", "macros")
	commentsDescriptor      = zendesk.NewDescriptor("comment", "comments")
	auditsDescriptor        = zendesk.NewDescriptor("audit", "audits")
	identitiesDescriptor    = zendesk.NewDescriptor("identity", "identities")

	// Search has its own path segment; results come back under "results".
	searchDescriptor = zendesk.NewDescriptor("result", "results").WithPath("search")
)

// Client implements the zendesk.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     zendesk.Logger

	// Resource clients
	tickets       zendesk.TicketsClient
	ticketFields  zendesk.TicketFieldsClient
	organizations zendesk.OrganizationsClient
	users         zendesk.UsersClient
	userFields    zendesk.UserFieldsClient
	macros        zendesk.MacrosClient
	search        zendesk.SearchClient
}

// New creates a new API client from the given configuration. The credential
// material is validated and folded into a single Authorization header here;
// construction is the only place authentication can fail.
func New(config *zendesk.Config) (*Client, error) {
	if config == nil {
		return nil, zendesk.ErrConfigRequired
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	authenticator, err := auth.New(config.Email, config.Token, config.OAuth)
	if err != nil {
		return nil, err
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.URL, authenticator.Header(), httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.URL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *zendesk.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := config.RetryWaitMin
		if retryWaitMin <= 0 {
			retryWaitMin = constants.DefaultRetryWaitMin
		}

		retryWaitMax := config.RetryWaitMax
		if retryWaitMax <= 0 {
			retryWaitMax = constants.DefaultRetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.tickets = NewOperations[zendesk.Ticket](c.httpClient, ticketsDescriptor)
	c.ticketFields = NewOperations[zendesk.TicketField](c.httpClient, ticketFieldsDescriptor)
	c.organizations = NewOperations[zendesk.Organization](c.httpClient, organizationsDescriptor)
	c.users = NewOperations[zendesk.User](c.httpClient, usersDescriptor)
	c.userFields = NewOperations[zendesk.UserField](c.httpClient, userFieldsDescriptor)
	c.macros = NewOperations[zendesk.Macro](c.httpClient, macrosDescriptor)
	c.search = NewOperations[zendesk.SearchResult](c.httpClient, searchDescriptor)
}

// Close releases the idle connections held by the transport.
func (c *Client) Close() {
	c.httpClient.Close()
}

// Resource client accessors

// Tickets implements zendesk.Client.Tickets.
func (c *Client) Tickets() zendesk.TicketsClient {
	return c.tickets
}

// TicketFields implements zendesk.Client.TicketFields.
func (c *Client) TicketFields() zendesk.TicketFieldsClient {
	return c.ticketFields
}

// Organizations implements zendesk.Client.Organizations.
func (c *Client) Organizations() zendesk.OrganizationsClient {
	return c.organizations
}

// Users implements zendesk.Client.Users.
func (c *Client) Users() zendesk.UsersClient {
	return c.users
}

// UserFields implements zendesk.Client.UserFields.
func (c *Client) UserFields() zendesk.UserFieldsClient {
	return c.userFields
}

// Macros implements zendesk.Client.Macros.
func (c *Client) Macros() zendesk.MacrosClient {
	return c.macros
}

// Search implements zendesk.Client.Search.
func (c *Client) Search() zendesk.SearchClient {
	return c.search
}

// Nested resource scopes. The child sets a scope exposes are fixed per
// parent type; scopes are cheap values built on demand.

// Ticket implements zendesk.Client.Ticket.
func (c *Client) Ticket(id int64) zendesk.TicketScope {
	return &ticketScope{httpClient: c.httpClient, id: id}
}

// Organization implements zendesk.Client.Organization.
func (c *Client) Organization(id int64) zendesk.OrganizationScope {
	return &organizationScope{httpClient: c.httpClient, id: id}
}

// User implements zendesk.Client.User.
func (c *Client) User(id int64) zendesk.UserScope {
	return &userScope{httpClient: c.httpClient, id: id}
}

type ticketScope struct {
	httpClient *http.Client
	id         int64
}

func (s *ticketScope) Comments() zendesk.CommentsClient {
	return NewNestedOperations[zendesk.Comment](s.httpClient, commentsDescriptor, "tickets", s.id)
}

func (s *ticketScope) Audits() zendesk.AuditsClient {
	return NewNestedOperations[zendesk.Audit](s.httpClient, auditsDescriptor, "tickets", s.id)
}

type organizationScope struct {
	httpClient *http.Client
	id         int64
}

func (s *organizationScope) Users() zendesk.UsersClient {
	return NewNestedOperations[zendesk.User](s.httpClient, usersDescriptor, "organizations", s.id)
}

func (s *organizationScope) Tickets() zendesk.TicketsClient {
	return NewNestedOperations[zendesk.Ticket](s.httpClient, ticketsDescriptor, "organizations", s.id)
}

type userScope struct {
	httpClient *http.Client
	id         int64
}

func (s *userScope) Identities() zendesk.IdentitiesClient {
	return NewNestedOperations[zendesk.Identity](s.httpClient, identitiesDescriptor, "users", s.id)
}

func (s *userScope) Tickets() zendesk.TicketsClient {
	return NewNestedOperations[zendesk.Ticket](s.httpClient, ticketsDescriptor, "users", s.id)
}

// loggerAdapter adapts zendesk.Logger to http.Logger.
type loggerAdapter struct {
	logger zendesk.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
