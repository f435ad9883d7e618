package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewFieldsCommand creates the fields command group.
func NewFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Inspect field definitions",
		Long:  "List ticket and user field definitions",
	}

	cmd.AddCommand(newTicketFieldsCommand())
	cmd.AddCommand(newUserFieldsCommand())

	return cmd
}

func newTicketFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tickets",
		Aliases: []string{"ticket"},
		Short:   "Ticket field definitions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List ticket fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			fields, err := client.TicketFields().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list ticket fields: %w", err)
			}

			return renderOutput(fields, func() error {
				if len(fields) == 0 {
					_, _ = os.Stdout.WriteString("No ticket fields found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Title", "Type", "Required", "Active")

				for _, field := range fields {
					_ = table.Append(
						fmt.Sprintf("%d", field.ID),
						field.Title,
						formatLabel(field.Type),
						fmt.Sprintf("%t", field.Required),
						fmt.Sprintf("%t", field.Active),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get FIELD_ID",
		Short: "Get a ticket field",
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

			field, err := client.TicketFields().Show(context.Background(), id, nil)
			if err != nil {
				return fmt.Errorf("failed to get ticket field: %w", err)
			}

			return renderOutput(field, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", fmt.Sprintf("%d", field.ID))
				_ = table.Append("Title", field.Title)
				_ = table.Append("Type", formatLabel(field.Type))
				_ = table.Append("Description", field.Description)
				_ = table.Append("Required", fmt.Sprintf("%t", field.Required))
				_ = table.Append("Active", fmt.Sprintf("%t", field.Active))
				_ = table.Append("Created", formatTime(field.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	})

	return cmd
}

func newUserFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "User field definitions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List user fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			fields, err := client.UserFields().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list user fields: %w", err)
			}

			return renderOutput(fields, func() error {
				if len(fields) == 0 {
					_, _ = os.Stdout.WriteString("No user fields found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Key", "Title", "Type", "Active")

				for _, field := range fields {
					_ = table.Append(
						fmt.Sprintf("%d", field.ID),
						field.Key,
						field.Title,
						formatLabel(field.Type),
						fmt.Sprintf("%t", field.Active),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get FIELD_ID",
		Short: "Get a user field",
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

			field, err := client.UserFields().Show(context.Background(), id, nil)
			if err != nil {
				return fmt.Errorf("failed to get user field: %w", err)
			}

			return renderOutput(field, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", fmt.Sprintf("%d", field.ID))
				_ = table.Append("Key", field.Key)
				_ = table.Append("Title", field.Title)
				_ = table.Append("Type", formatLabel(field.Type))
				_ = table.Append("Description", field.Description)
				_ = table.Append("Active", fmt.Sprintf("%t", field.Active))
				_ = table.Append("Created", formatTime(field.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	})

	return cmd
}
