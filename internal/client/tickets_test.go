package client_test

import (
	"net/http"
	"testing"

	"github.com/helpdesk-io/zdclient/internal/client"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

func ticketsOf(c *client.Client) zendesk.OperationSet[zendesk.Ticket] {
	return c.Tickets()
}

func TestTickets_List(t *testing.T) {
	t.Parallel()

	tests := []client.TestListOperation[zendesk.Ticket]{
		{
			Name:         "all tickets",
			ExpectedPath: "/api/v2/tickets.json",
			PluralField:  "tickets",
			Resources: []zendesk.Ticket{
				{ID: 1, Subject: "Printer on fire", Status: "open"},
				{ID: 2, Subject: "Wrong invoice", Status: "pending"},
			},
		},
		{
			Name:          "sorted by creation time",
			Params:        zendesk.NewParams().With("sort_by", "created_at"),
			ExpectedPath:  "/api/v2/tickets.json",
			ExpectedQuery: "sort_by=created_at",
			PluralField:   "tickets",
			Resources:     []zendesk.Ticket{{ID: 3}},
		},
		{
			Name:         "missing tickets field",
			ExpectedPath: "/api/v2/tickets.json",
			RawResponse:  `{"count": 0}`,
			WantErr:      true,
			ErrMessage:   `missing expected field "tickets"`,
		},
		{
			Name:         "server error",
			ExpectedPath: "/api/v2/tickets.json",
			StatusCode:   http.StatusInternalServerError,
			RawResponse:  `{"error": "boom"}`,
			WantErr:      true,
			ErrMessage:   "listing tickets",
		},
	}

	client.RunListTests(t, tests, ticketsOf)
}

func TestTickets_Show(t *testing.T) {
	t.Parallel()

	tests := []client.TestShowOperation[zendesk.Ticket]{
		{
			Name:         "existing ticket",
			ID:           35436,
			ExpectedPath: "/api/v2/tickets/35436.json",
			Response:     `{"ticket": {"id": 35436, "subject": "Printer on fire", "priority": "urgent"}}`,
		},
		{
			Name:         "unknown ticket",
			ID:           999999,
			ExpectedPath: "/api/v2/tickets/999999.json",
			StatusCode:   http.StatusNotFound,
			Response:     `{"error": "RecordNotFound"}`,
			WantErr:      true,
			ErrMessage:   "404 Not Found",
		},
	}

	client.RunShowTests(t, tests, ticketsOf, func(t *testing.T, ticket *zendesk.Ticket) {
		t.Helper()

		if ticket.Priority != "urgent" {
			t.Errorf("expected urgent priority, got %q", ticket.Priority)
		}
	})
}

func TestTickets_Create(t *testing.T) {
	t.Parallel()

	tests := []client.TestMutateOperation[zendesk.Ticket]{
		{
			Name:          "new ticket",
			Attrs:         &zendesk.Ticket{Subject: "Printer on fire", Comment: &zendesk.Comment{Body: "It is burning."}},
			SingularField: "ticket",
			ExpectedPath:  "/api/v2/tickets.json",
			StatusCode:    http.StatusCreated,
			Response:      `{"ticket": {"id": 42, "subject": "Printer on fire", "status": "new"}}`,
		},
		{
			Name:          "validation failure",
			Attrs:         &zendesk.Ticket{},
			SingularField: "ticket",
			ExpectedPath:  "/api/v2/tickets.json",
			StatusCode:    http.StatusUnprocessableEntity,
			Response:      `{"error": "RecordInvalid"}`,
			WantErr:       true,
			ErrMessage:    "creating ticket",
		},
	}

	client.RunCreateTests(t, tests, ticketsOf)
}

func TestTickets_Update(t *testing.T) {
	t.Parallel()

	tests := []client.TestMutateOperation[zendesk.Ticket]{
		{
			Name:          "solve ticket",
			ID:            42,
			Attrs:         &zendesk.Ticket{Status: "solved"},
			SingularField: "ticket",
			ExpectedPath:  "/api/v2/tickets/42.json",
			Response:      `{"ticket": {"id": 42, "status": "solved"}}`,
		},
	}

	client.RunUpdateTests(t, tests, ticketsOf)
}

func TestTickets_Delete(t *testing.T) {
	t.Parallel()

	tests := []client.TestDeleteOperation{
		{
			Name:         "existing ticket",
			ID:           42,
			ExpectedPath: "/api/v2/tickets/42.json",
			StatusCode:   http.StatusNoContent,
		},
		{
			Name:         "unknown ticket",
			ID:           999999,
			ExpectedPath: "/api/v2/tickets/999999.json",
			StatusCode:   http.StatusNotFound,
			Response:     `{"error": "RecordNotFound"}`,
			WantErr:      true,
			ErrMessage:   "deleting ticket 999999",
		},
	}

	client.RunDeleteTests(t, tests, ticketsOf)
}
