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

func organizationsOf(c *client.Client) zendesk.OperationSet[zendesk.Organization] {
	return c.Organizations()
}

func TestOrganizations_List(t *testing.T) {
	t.Parallel()

	tests := []client.TestListOperation[zendesk.Organization]{
		{
			Name:         "all organizations",
			ExpectedPath: "/api/v2/organizations.json",
			PluralField:  "organizations",
			Resources: []zendesk.Organization{
				{ID: 1, Name: "Acme Corp"},
				{ID: 2, Name: "Globex"},
			},
		},
	}

	client.RunListTests(t, tests, organizationsOf)
}

func TestOrganizations_Show(t *testing.T) {
	t.Parallel()

	tests := []client.TestShowOperation[zendesk.Organization]{
		{
			Name:         "existing organization",
			ID:           12,
			ExpectedPath: "/api/v2/organizations/12.json",
			Response:     `{"organization": {"id": 12, "name": "Acme Corp", "domain_names": ["acme.example.org"]}}`,
		},
	}

	client.RunShowTests(t, tests, organizationsOf, func(t *testing.T, org *zendesk.Organization) {
		t.Helper()
		assert.Equal(t, "Acme Corp", org.Name)
		assert.Equal(t, []string{"acme.example.org"}, org.DomainNames)
	})
}

func TestOrganizations_CreateUpdateDelete(t *testing.T) {
	t.Parallel()

	createTests := []client.TestMutateOperation[zendesk.Organization]{
		{
			Name:          "new organization",
			Attrs:         &zendesk.Organization{Name: "Initech"},
			SingularField: "organization",
			ExpectedPath:  "/api/v2/organizations.json",
			StatusCode:    http.StatusCreated,
			Response:      `{"organization": {"id": 3, "name": "Initech"}}`,
		},
	}

	client.RunCreateTests(t, createTests, organizationsOf)

	updateTests := []client.TestMutateOperation[zendesk.Organization]{
		{
			Name:          "rename organization",
			ID:            3,
			Attrs:         &zendesk.Organization{Name: "Initech LLC"},
			SingularField: "organization",
			ExpectedPath:  "/api/v2/organizations/3.json",
			Response:      `{"organization": {"id": 3, "name": "Initech LLC"}}`,
		},
	}

	client.RunUpdateTests(t, updateTests, organizationsOf)

	deleteTests := []client.TestDeleteOperation{
		{
			Name:         "existing organization",
			ID:           3,
			ExpectedPath: "/api/v2/organizations/3.json",
			StatusCode:   http.StatusNoContent,
		},
	}

	client.RunDeleteTests[zendesk.Organization](t, deleteTests, organizationsOf)
}

func TestOrganizations_NestedCollections(t *testing.T) {
	t.Parallel()
	t.Run("organization users", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/organizations/12/users.json", request.URL.Path)
			_, _ = writer.Write([]byte(`{"users": [{"id": 1, "organization_id": 12}]}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		users, err := testClient.Organization(12).Users().List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, int64(12), users[0].OrganizationID)
	})

	t.Run("organization tickets with params", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/organizations/12/tickets.json", request.URL.Path)
			assert.Equal(t, "2", request.URL.Query().Get("page"))
			_, _ = writer.Write([]byte(`{"tickets": [{"id": 7, "organization_id": 12}]}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		tickets, err := testClient.Organization(12).Tickets().List(context.Background(), zendesk.NewParams().With("page", 2))
		require.NoError(t, err)
		require.Len(t, tickets, 1)
	})
}
