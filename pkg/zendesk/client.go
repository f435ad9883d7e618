package zendesk

import (
	"context"
)

// OperationSet is the six bound operations for one resource at one prefix.
// Every operation issues exactly one HTTP request; there is no automatic
// pagination and no automatic retry. All operations take a context so callers
// can cancel an in-flight request independent of the stall timeout.
type OperationSet[T any] interface {
	// List fetches one page of the collection and unwraps the plural
	// envelope field.
	List(ctx context.Context, params Params) ([]T, error)

	// Show fetches one resource by identifier and unwraps the singular
	// envelope field.
	Show(ctx context.Context, id int64, params Params) (*T, error)

	// ShowMany fetches the named resources in one request. The ids parameter
	// is serialized comma-joined and wins over any caller-supplied "ids".
	ShowMany(ctx context.Context, ids []int64, params Params) ([]T, error)

	// Create posts the attributes wrapped in the singular envelope field and
	// unwraps the same field from the response.
	Create(ctx context.Context, attrs *T) (*T, error)

	// Update puts the attributes wrapped in the singular envelope field and
	// unwraps the same field from the response.
	Update(ctx context.Context, id int64, attrs *T) (*T, error)

	// Delete removes one resource. Delete responses carry no named envelope
	// field, so the raw (typically empty) envelope is returned unwrapped.
	Delete(ctx context.Context, id int64) (Envelope, error)
}

// TicketsClient operates on tickets.
type TicketsClient = OperationSet[Ticket]

// TicketFieldsClient operates on ticket field definitions.
type TicketFieldsClient = OperationSet[TicketField]

// OrganizationsClient operates on organizations.
type OrganizationsClient = OperationSet[Organization]

// UsersClient operates on users.
type UsersClient = OperationSet[User]

// UserFieldsClient operates on user field definitions.
type UserFieldsClient = OperationSet[UserField]

// MacrosClient operates on macros.
type MacrosClient = OperationSet[Macro]

// SearchClient operates on the search endpoint. Search shares the uniform
// operation surface; in practice only List is meaningful.
type SearchClient = OperationSet[SearchResult]

// CommentsClient operates on a ticket's comments.
type CommentsClient = OperationSet[Comment]

// AuditsClient operates on a ticket's audits.
type AuditsClient = OperationSet[Audit]

// IdentitiesClient operates on a user's identities.
type IdentitiesClient = OperationSet[Identity]

// TicketScope exposes the sub-resources nested under one ticket.
type TicketScope interface {
	Comments() CommentsClient
	Audits() AuditsClient
}

// OrganizationScope exposes the sub-resources nested under one organization.
type OrganizationScope interface {
	Users() UsersClient
	Tickets() TicketsClient
}

// UserScope exposes the sub-resources nested under one user.
type UserScope interface {
	Identities() IdentitiesClient
	Tickets() TicketsClient
}

// Client is the resource registry: one operation set per top-level resource
// type, plus parent-scoped access to the declared nested resources.
type Client interface {
	Tickets() TicketsClient
	TicketFields() TicketFieldsClient
	Organizations() OrganizationsClient
	Users() UsersClient
	UserFields() UserFieldsClient
	Macros() MacrosClient
	Search() SearchClient

	// Ticket scopes the declared child resources under /tickets/{id}.
	Ticket(id int64) TicketScope
	// Organization scopes the declared child resources under
	// /organizations/{id}.
	Organization(id int64) OrganizationScope
	// User scopes the declared child resources under /users/{id}.
	User(id int64) UserScope
}
