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

func TestSearch_List(t *testing.T) {
	t.Parallel()
	t.Run("query hits the search path", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/search.json", request.URL.Path)
			assert.Equal(t, "status:open type:ticket", request.URL.Query().Get("query"))

			_, _ = writer.Write([]byte(`{
				"results": [
					{"id": 1, "result_type": "ticket", "subject": "Printer on fire"},
					{"id": 9, "result_type": "user", "name": "Johnny Agent"}
				],
				"count": 2
			}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		params := zendesk.NewParams().With("query", "status:open type:ticket")

		results, err := testClient.Search().List(context.Background(), params)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "ticket", results[0].ResultType())
		assert.Equal(t, "user", results[1].ResultType())
		assert.Equal(t, "Johnny Agent", results[1]["name"])
	})

	t.Run("missing results field is a shape error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"count": 0}`))
		}))
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		_, err := testClient.Search().List(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, zendesk.IsShapeError(err))
	})
}
