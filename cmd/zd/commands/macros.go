package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/helpdesk-io/zdclient/internal/constants"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

// NewMacrosCommand creates the macros command group.
func NewMacrosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "macros",
		Aliases: []string{"macro"},
		Short:   "Manage macros",
		Long:    "List and inspect Zendesk macros",
	}

	cmd.AddCommand(newMacrosListCommand())
	cmd.AddCommand(newMacrosGetCommand())

	return cmd
}

func newMacrosListCommand() *cobra.Command {
	var (
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List macros",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			macros, err := client.Macros().List(context.Background(), listParams(page, perPage, "", ""))
			if err != nil {
				return fmt.Errorf("failed to list macros: %w", err)
			}

			return renderOutput(macros, func() error {
				if len(macros) == 0 {
					_, _ = os.Stdout.WriteString("No macros found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Title", "Active", "Actions")

				for _, macro := range macros {
					_ = table.Append(
						fmt.Sprintf("%d", macro.ID),
						macro.Title,
						fmt.Sprintf("%t", macro.Active),
						fmt.Sprintf("%d", len(macro.Actions)),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func newMacrosGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MACRO_ID",
		Short: "Get macro details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			macro, err := client.Macros().Show(context.Background(), id, nil)
			if err != nil {
				return fmt.Errorf("failed to get macro: %w", err)
			}

			return renderOutput(macro, func() error {
				return renderMacroDetail(macro)
			})
		},
	}
}

func renderMacroDetail(macro *zendesk.Macro) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", fmt.Sprintf("%d", macro.ID))
	_ = table.Append("Title", macro.Title)
	_ = table.Append("Description", macro.Description)
	_ = table.Append("Active", fmt.Sprintf("%t", macro.Active))
	_ = table.Append("Created", formatTime(macro.CreatedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if len(macro.Actions) == 0 {
		return nil
	}

	actions := tablewriter.NewWriter(os.Stdout)
	actions.Header("Field", "Value")

	for _, action := range macro.Actions {
		_ = actions.Append(formatLabel(action.Field), fmt.Sprintf("%v", action.Value))
	}

	if err := actions.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
