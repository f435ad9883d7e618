package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-io/zdclient/internal/client"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestOperations_EnvelopeHandling(t *testing.T) {
	t.Parallel()
	t.Run("show unwraps singular field", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/tickets/35436.json", request.URL.Path)
			_, _ = writer.Write([]byte(`{"ticket": {"id": 35436, "subject": "Help, my printer is on fire!"}}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		ticket, err := testClient.Tickets().Show(context.Background(), 35436, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(35436), ticket.ID)
		assert.Equal(t, "Help, my printer is on fire!", ticket.Subject)
	})

	t.Run("list unwraps plural field", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/tickets.json", request.URL.Path)
			_, _ = writer.Write([]byte(`{"tickets": [{"id": 1}, {"id": 2}], "count": 2}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		tickets, err := testClient.Tickets().List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, tickets, 2)
		assert.Equal(t, int64(1), tickets[0].ID)
		assert.Equal(t, int64(2), tickets[1].ID)
	})

	t.Run("missing envelope field is a shape error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		_, err := testClient.Tickets().Show(context.Background(), 1, nil)
		require.Error(t, err)
		assert.True(t, zendesk.IsShapeError(err))
		assert.Contains(t, err.Error(), `"ticket"`)

		_, err = testClient.Tickets().List(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, zendesk.IsShapeError(err))
		assert.Contains(t, err.Error(), `"tickets"`)
	})

	t.Run("invalid JSON is a malformed response error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`<html>service unavailable</html>`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		_, err := testClient.Tickets().List(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, zendesk.IsMalformedResponse(err))
	})

	t.Run("http status error keeps the response status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error": "RecordNotFound"}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		_, err := testClient.Tickets().Show(context.Background(), 999999, nil)
		require.Error(t, err)
		assert.True(t, zendesk.IsNotFound(err))
		assert.Contains(t, err.Error(), "getting ticket 999999")
		assert.Contains(t, err.Error(), "404 Not Found")
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestOperations_ShowMany(t *testing.T) {
	t.Parallel()
	t.Run("ids are comma-joined", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/tickets/show_many.json", request.URL.Path)
			assert.Equal(t, "1,2,3", request.URL.Query().Get("ids"))
			_, _ = writer.Write([]byte(`{"tickets": [{"id": 1}, {"id": 2}, {"id": 3}]}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		tickets, err := testClient.Tickets().ShowMany(context.Background(), []int64{1, 2, 3}, nil)
		require.NoError(t, err)
		assert.Len(t, tickets, 3)
	})

	t.Run("synthesized ids win over caller params", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "1,2", request.URL.Query().Get("ids"))
			assert.Equal(t, "1", request.URL.Query().Get("page"))
			_, _ = writer.Write([]byte(`{"tickets": [{"id": 1}, {"id": 2}]}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		params := zendesk.NewParams().With("ids", "9,8,7").With("page", 1)

		tickets, err := testClient.Tickets().ShowMany(context.Background(), []int64{1, 2}, params)
		require.NoError(t, err)
		assert.Len(t, tickets, 2)
		// Caller params must not observe the synthesized ids.
		assert.Equal(t, "9,8,7", params["ids"])
	})
}

func TestOperations_MutationBodies(t *testing.T) {
	t.Parallel()
	t.Run("create nests attrs under singular field", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/tickets.json", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]zendesk.Ticket

			err := json.NewDecoder(request.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, "My printer is on fire!", body["ticket"].Subject)

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"ticket": {"id": 42, "subject": "My printer is on fire!", "status": "new"}}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		ticket, err := testClient.Tickets().Create(context.Background(), &zendesk.Ticket{Subject: "My printer is on fire!"})
		require.NoError(t, err)
		assert.Equal(t, int64(42), ticket.ID)
		assert.Equal(t, "new", ticket.Status)
	})

	t.Run("update puts attrs under singular field", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/tickets/42.json", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)

			var body map[string]zendesk.Ticket

			err := json.NewDecoder(request.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, "solved", body["ticket"].Status)

			_, _ = writer.Write([]byte(`{"ticket": {"id": 42, "status": "solved"}}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		ticket, err := testClient.Tickets().Update(context.Background(), 42, &zendesk.Ticket{Status: "solved"})
		require.NoError(t, err)
		assert.Equal(t, "solved", ticket.Status)
	})

	t.Run("delete returns the raw envelope", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/tickets/42.json", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		envelope, err := testClient.Tickets().Delete(context.Background(), 42)
		require.NoError(t, err)
		assert.Empty(t, envelope)
	})
}

func TestOperations_QueryEncoding(t *testing.T) {
	t.Parallel()
	t.Run("params encode deterministically", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "page=2&sort_by=created_at&sort_order=desc", request.URL.RawQuery)
			_, _ = writer.Write([]byte(`{"tickets": []}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		params := zendesk.NewParams().
			With("sort_order", "desc").
			With("page", 2).
			With("sort_by", "created_at")

		_, err := testClient.Tickets().List(context.Background(), params)
		require.NoError(t, err)
	})

	t.Run("slice values are comma-joined", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "open,pending", request.URL.Query().Get("status"))
			_, _ = writer.Write([]byte(`{"tickets": []}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		params := zendesk.NewParams().With("status", []string{"open", "pending"})

		_, err := testClient.Tickets().List(context.Background(), params)
		require.NoError(t, err)
	})
}

func TestOperations_NestedPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		expectedPath string
		plural       string
		call         func(*client.Client, context.Context) (int, error)
	}{
		{
			name:         "ticket comments",
			expectedPath: "/api/v2/tickets/7/comments.json",
			plural:       "comments",
			call: func(c *client.Client, ctx context.Context) (int, error) {
				comments, err := c.Ticket(7).Comments().List(ctx, nil)

				return len(comments), err
			},
		},
		{
			name:         "ticket audits",
			expectedPath: "/api/v2/tickets/7/audits.json",
			plural:       "audits",
			call: func(c *client.Client, ctx context.Context) (int, error) {
				audits, err := c.Ticket(7).Audits().List(ctx, nil)

				return len(audits), err
			},
		},
		{
			name:         "organization users",
			expectedPath: "/api/v2/organizations/12/users.json",
			plural:       "users",
			call: func(c *client.Client, ctx context.Context) (int, error) {
				users, err := c.Organization(12).Users().List(ctx, nil)

				return len(users), err
			},
		},
		{
			name:         "organization tickets",
			expectedPath: "/api/v2/organizations/12/tickets.json",
			plural:       "tickets",
			call: func(c *client.Client, ctx context.Context) (int, error) {
				tickets, err := c.Organization(12).Tickets().List(ctx, nil)

				return len(tickets), err
			},
		},
		{
			name:         "user identities",
			expectedPath: "/api/v2/users/9/identities.json",
			plural:       "identities",
			call: func(c *client.Client, ctx context.Context) (int, error) {
				identities, err := c.User(9).Identities().List(ctx, nil)

				return len(identities), err
			},
		},
		{
			name:         "user tickets",
			expectedPath: "/api/v2/users/9/tickets.json",
			plural:       "tickets",
			call: func(c *client.Client, ctx context.Context) (int, error) {
				tickets, err := c.User(9).Tickets().List(ctx, nil)

				return len(tickets), err
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.expectedPath, request.URL.Path)
				_, _ = writer.Write([]byte(`{"` + testCase.plural + `": [{}]}`))
			}))
			defer server.Close()

			testClient := client.NewTestClient(server.URL)

			count, err := testCase.call(testClient, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}
