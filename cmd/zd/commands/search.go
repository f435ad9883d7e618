package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/helpdesk-io/zdclient/internal/constants"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var (
		page      int
		perPage   int
		sortBy    string
		sortOrder string
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search across resources",
		Long: "Search tickets, users, and organizations with the Zendesk query syntax, " +
			"for example: zd search 'type:ticket status:open'",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return ErrQueryRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := listParams(page, perPage, sortBy, sortOrder)
			params.With("query", query)

			results, err := client.Search().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to search: %w", err)
			}

			return renderOutput(results, func() error {
				return renderSearchTable(results)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "sort field (updated_at, created_at, priority, status)")
	cmd.Flags().StringVar(&sortOrder, "sort-order", "", "sort order (asc, desc)")

	return cmd
}

func renderSearchTable(results []zendesk.SearchResult) error {
	if len(results) == 0 {
		_, _ = os.Stdout.WriteString("No results found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Type", "ID", "Summary")

	for _, result := range results {
		_ = table.Append(
			formatLabel(result.ResultType()),
			searchResultID(result),
			searchResultSummary(result),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func searchResultID(result zendesk.SearchResult) string {
	// JSON numbers decode as float64 inside the untyped result object.
	if id, ok := result["id"].(float64); ok {
		return fmt.Sprintf("%d", int64(id))
	}

	return NotAvailable
}

// searchResultSummary picks a human-readable label for a heterogeneous
// search result: subject for tickets, name for users and organizations.
func searchResultSummary(result zendesk.SearchResult) string {
	for _, key := range []string{"subject", "name", "title"} {
		if value, ok := result[key].(string); ok && value != "" {
			return value
		}
	}

	return NotAvailable
}
