package zendesk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

func TestDescriptor(t *testing.T) {
	t.Parallel()
	t.Run("path defaults to plural", func(t *testing.T) {
		t.Parallel()

		desc := zendesk.NewDescriptor("ticket", "tickets")
		assert.Equal(t, "ticket", desc.Singular)
		assert.Equal(t, "tickets", desc.Plural)
		assert.Equal(t, "tickets", desc.Path)
	})

	t.Run("with path returns a copy", func(t *testing.T) {
		t.Parallel()

		desc := zendesk.NewDescriptor("result", "results")
		search := desc.WithPath("search")

		assert.Equal(t, "search", search.Path)
		assert.Equal(t, "results", desc.Path)
	})
}

func TestSearchResult_ResultType(t *testing.T) {
	t.Parallel()

	result := zendesk.SearchResult{"id": float64(1), "result_type": "ticket"}
	assert.Equal(t, "ticket", result.ResultType())

	assert.Empty(t, zendesk.SearchResult{}.ResultType())
}
