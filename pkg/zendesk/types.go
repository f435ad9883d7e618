package zendesk

import (
	"time"
)

// Ticket represents a support ticket.
type Ticket struct {
	ID             int64         `json:"id,omitempty"              yaml:"id,omitempty"`
	URL            string        `json:"url,omitempty"             yaml:"url,omitempty"`
	ExternalID     string        `json:"external_id,omitempty"     yaml:"external_id,omitempty"`
	Subject        string        `json:"subject,omitempty"         yaml:"subject,omitempty"`
	Description    string        `json:"description,omitempty"     yaml:"description,omitempty"`
	Status         string        `json:"status,omitempty"          yaml:"status,omitempty"`
	Priority       string        `json:"priority,omitempty"        yaml:"priority,omitempty"`
	Type           string        `json:"type,omitempty"            yaml:"type,omitempty"`
	RequesterID    int64         `json:"requester_id,omitempty"    yaml:"requester_id,omitempty"`
	SubmitterID    int64         `json:"submitter_id,omitempty"    yaml:"submitter_id,omitempty"`
	AssigneeID     int64         `json:"assignee_id,omitempty"     yaml:"assignee_id,omitempty"`
	OrganizationID int64         `json:"organization_id,omitempty" yaml:"organization_id,omitempty"`
	GroupID        int64         `json:"group_id,omitempty"        yaml:"group_id,omitempty"`
	Tags           []string      `json:"tags,omitempty"            yaml:"tags,omitempty"`
	CustomFields   []CustomField `json:"custom_fields,omitempty"   yaml:"custom_fields,omitempty"`
	Comment        *Comment      `json:"comment,omitempty"         yaml:"comment,omitempty"`
	CreatedAt      *time.Time    `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      *time.Time    `json:"updated_at,omitempty"      yaml:"updated_at,omitempty"`
}

// CustomField is one custom field value on a ticket or user.
type CustomField struct {
	ID    int64       `json:"id"    yaml:"id"`
	Value interface{} `json:"value" yaml:"value"`
}

// TicketField represents a ticket field definition.
type TicketField struct {
	ID          int64      `json:"id,omitempty"          yaml:"id,omitempty"`
	URL         string     `json:"url,omitempty"         yaml:"url,omitempty"`
	Type        string     `json:"type,omitempty"        yaml:"type,omitempty"`
	Title       string     `json:"title,omitempty"       yaml:"title,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Position    int        `json:"position,omitempty"    yaml:"position,omitempty"`
	Active      bool       `json:"active,omitempty"      yaml:"active,omitempty"`
	Required    bool       `json:"required,omitempty"    yaml:"required,omitempty"`
	Tag         string     `json:"tag,omitempty"         yaml:"tag,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"  yaml:"updated_at,omitempty"`
}

// Organization represents a customer organization.
type Organization struct {
	ID                 int64                  `json:"id,omitempty"                  yaml:"id,omitempty"`
	URL                string                 `json:"url,omitempty"                 yaml:"url,omitempty"`
	Name               string                 `json:"name,omitempty"                yaml:"name,omitempty"`
	ExternalID         string                 `json:"external_id,omitempty"         yaml:"external_id,omitempty"`
	Details            string                 `json:"details,omitempty"             yaml:"details,omitempty"`
	Notes              string                 `json:"notes,omitempty"               yaml:"notes,omitempty"`
	DomainNames        []string               `json:"domain_names,omitempty"        yaml:"domain_names,omitempty"`
	Tags               []string               `json:"tags,omitempty"                yaml:"tags,omitempty"`
	OrganizationFields map[string]interface{} `json:"organization_fields,omitempty" yaml:"organization_fields,omitempty"`
	SharedTickets      bool                   `json:"shared_tickets,omitempty"      yaml:"shared_tickets,omitempty"`
	SharedComments     bool                   `json:"shared_comments,omitempty"     yaml:"shared_comments,omitempty"`
	CreatedAt          *time.Time             `json:"created_at,omitempty"          yaml:"created_at,omitempty"`
	UpdatedAt          *time.Time             `json:"updated_at,omitempty"          yaml:"updated_at,omitempty"`
}

// User represents an agent or end user.
type User struct {
	ID             int64                  `json:"id,omitempty"              yaml:"id,omitempty"`
	URL            string                 `json:"url,omitempty"             yaml:"url,omitempty"`
	Name           string                 `json:"name,omitempty"            yaml:"name,omitempty"`
	Email          string                 `json:"email,omitempty"           yaml:"email,omitempty"`
	Role           string                 `json:"role,omitempty"            yaml:"role,omitempty"`
	Phone          string                 `json:"phone,omitempty"           yaml:"phone,omitempty"`
	ExternalID     string                 `json:"external_id,omitempty"     yaml:"external_id,omitempty"`
	OrganizationID int64                  `json:"organization_id,omitempty" yaml:"organization_id,omitempty"`
	TimeZone       string                 `json:"time_zone,omitempty"       yaml:"time_zone,omitempty"`
	Active         bool                   `json:"active,omitempty"          yaml:"active,omitempty"`
	Verified       bool                   `json:"verified,omitempty"        yaml:"verified,omitempty"`
	Suspended      bool                   `json:"suspended,omitempty"       yaml:"suspended,omitempty"`
	Tags           []string               `json:"tags,omitempty"            yaml:"tags,omitempty"`
	UserFields     map[string]interface{} `json:"user_fields,omitempty"     yaml:"user_fields,omitempty"`
	LastLoginAt    *time.Time             `json:"last_login_at,omitempty"   yaml:"last_login_at,omitempty"`
	CreatedAt      *time.Time             `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      *time.Time             `json:"updated_at,omitempty"      yaml:"updated_at,omitempty"`
}

// UserField represents a user field definition.
type UserField struct {
	ID          int64      `json:"id,omitempty"          yaml:"id,omitempty"`
	URL         string     `json:"url,omitempty"         yaml:"url,omitempty"`
	Key         string     `json:"key,omitempty"         yaml:"key,omitempty"`
	Type        string     `json:"type,omitempty"        yaml:"type,omitempty"`
	Title       string     `json:"title,omitempty"       yaml:"title,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Position    int        `json:"position,omitempty"    yaml:"position,omitempty"`
	Active      bool       `json:"active,omitempty"      yaml:"active,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"  yaml:"updated_at,omitempty"`
}

// MacroAction is one field mutation a macro applies.
type MacroAction struct {
	Field string      `json:"field" yaml:"field"`
	Value interface{} `json:"value" yaml:"value"`
}

// Macro represents a predefined set of ticket actions.
type Macro struct {
	ID          int64         `json:"id,omitempty"          yaml:"id,omitempty"`
	URL         string        `json:"url,omitempty"         yaml:"url,omitempty"`
	Title       string        `json:"title,omitempty"       yaml:"title,omitempty"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Active      bool          `json:"active,omitempty"      yaml:"active,omitempty"`
	Position    int           `json:"position,omitempty"    yaml:"position,omitempty"`
	Actions     []MacroAction `json:"actions,omitempty"     yaml:"actions,omitempty"`
	CreatedAt   *time.Time    `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"  yaml:"updated_at,omitempty"`
}

// Comment represents one comment on a ticket.
type Comment struct {
	ID        int64      `json:"id,omitempty"         yaml:"id,omitempty"`
	Type      string     `json:"type,omitempty"       yaml:"type,omitempty"`
	Body      string     `json:"body,omitempty"       yaml:"body,omitempty"`
	HTMLBody  string     `json:"html_body,omitempty"  yaml:"html_body,omitempty"`
	Public    bool       `json:"public,omitempty"     yaml:"public,omitempty"`
	AuthorID  int64      `json:"author_id,omitempty"  yaml:"author_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// AuditEvent is one event inside a ticket audit.
type AuditEvent struct {
	ID        int64  `json:"id,omitempty"         yaml:"id,omitempty"`
	Type      string `json:"type,omitempty"       yaml:"type,omitempty"`
	FieldName string `json:"field_name,omitempty" yaml:"field_name,omitempty"`
	Body      string `json:"body,omitempty"       yaml:"body,omitempty"`
}

// Audit represents one audit record on a ticket.
type Audit struct {
	ID        int64        `json:"id,omitempty"         yaml:"id,omitempty"`
	TicketID  int64        `json:"ticket_id,omitempty"  yaml:"ticket_id,omitempty"`
	AuthorID  int64        `json:"author_id,omitempty"  yaml:"author_id,omitempty"`
	Events    []AuditEvent `json:"events,omitempty"     yaml:"events,omitempty"`
	CreatedAt *time.Time   `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Identity represents one contact identity of a user.
type Identity struct {
	ID        int64      `json:"id,omitempty"         yaml:"id,omitempty"`
	UserID    int64      `json:"user_id,omitempty"    yaml:"user_id,omitempty"`
	Type      string     `json:"type,omitempty"       yaml:"type,omitempty"`
	Value     string     `json:"value,omitempty"      yaml:"value,omitempty"`
	Verified  bool       `json:"verified,omitempty"   yaml:"verified,omitempty"`
	Primary   bool       `json:"primary,omitempty"    yaml:"primary,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// SearchResult is one result from the search endpoint. Results are
// heterogeneous across resource types, so they stay as decoded JSON objects;
// the result_type field names the underlying resource.
type SearchResult map[string]interface{}

// ResultType returns the result_type field, or "" when absent.
func (r SearchResult) ResultType() string {
	resultType, _ := r["result_type"].(string)

	return resultType
}
