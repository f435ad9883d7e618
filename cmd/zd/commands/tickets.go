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

// NewTicketsCommand creates the tickets command group.
func NewTicketsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tickets",
		Aliases: []string{"ticket"},
		Short:   "Manage tickets",
		Long:    "List, create, update, and delete Zendesk tickets",
	}

	cmd.AddCommand(newTicketsListCommand())
	cmd.AddCommand(newTicketsGetCommand())
	cmd.AddCommand(newTicketsCreateCommand())
	cmd.AddCommand(newTicketsUpdateCommand())
	cmd.AddCommand(newTicketsDeleteCommand())
	cmd.AddCommand(newTicketsCommentsCommand())
	cmd.AddCommand(newTicketsAuditsCommand())

	return cmd
}

func newTicketsListCommand() *cobra.Command {
	var (
		page      int
		perPage   int
		sortBy    string
		sortOrder string
		ids       string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets",
		Long:  "List tickets, optionally restricted to a set of ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := listParams(page, perPage, sortBy, sortOrder)

			var tickets []zendesk.Ticket

			if ids != "" {
				idList, err := parseIDList(ids)
				if err != nil {
					return err
				}

				tickets, err = client.Tickets().ShowMany(ctx, idList, params)
				if err != nil {
					return fmt.Errorf("failed to list tickets: %w", err)
				}
			} else {
				tickets, err = client.Tickets().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list tickets: %w", err)
				}
			}

			return renderOutput(tickets, func() error {
				return renderTicketTable(tickets)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "sort field (e.g. created_at)")
	cmd.Flags().StringVar(&sortOrder, "sort-order", "", "sort order (asc, desc)")
	cmd.Flags().StringVar(&ids, "ids", "", "comma-separated ticket ids to fetch in one request")

	return cmd
}

func newTicketsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TICKET_ID",
		Short: "Get ticket details",
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

			ticket, err := client.Tickets().Show(context.Background(), id, nil)
			if err != nil {
				return fmt.Errorf("failed to get ticket: %w", err)
			}

			return renderOutput(ticket, func() error {
				return renderTicketDetail(ticket)
			})
		},
	}
}

func newTicketsCreateCommand() *cobra.Command {
	var (
		subject  string
		comment  string
		priority string
		ticket   zendesk.Ticket
		tags     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ticket",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ticket.Subject = subject
			ticket.Priority = priority

			if comment != "" {
				ticket.Comment = &zendesk.Comment{Body: comment}
			}

			if tags != "" {
				ticket.Tags = strings.Split(tags, ",")
			}

			created, err := client.Tickets().Create(context.Background(), &ticket)
			if err != nil {
				return fmt.Errorf("failed to create ticket: %w", err)
			}

			successf("Ticket %d created", created.ID)

			return renderOutput(created, func() error { return nil })
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "ticket subject")
	cmd.Flags().StringVar(&comment, "comment", "", "initial comment body")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (low, normal, high, urgent)")
	cmd.Flags().StringVar(&ticket.Type, "type", "", "type (problem, incident, question, task)")
	cmd.Flags().Int64Var(&ticket.RequesterID, "requester", 0, "requester user id")
	cmd.Flags().Int64Var(&ticket.AssigneeID, "assignee", 0, "assignee user id")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newTicketsUpdateCommand() *cobra.Command {
	var (
		status   string
		priority string
		comment  string
		assignee int64
	)

	cmd := &cobra.Command{
		Use:   "update TICKET_ID",
		Short: "Update a ticket",
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

			attrs := zendesk.Ticket{
				Status:     status,
				Priority:   priority,
				AssigneeID: assignee,
			}

			if comment != "" {
				attrs.Comment = &zendesk.Comment{Body: comment}
			}

			updated, err := client.Tickets().Update(context.Background(), id, &attrs)
			if err != nil {
				return fmt.Errorf("failed to update ticket: %w", err)
			}

			successf("Ticket %d updated", updated.ID)

			return renderOutput(updated, func() error { return nil })
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "status (new, open, pending, hold, solved, closed)")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (low, normal, high, urgent)")
	cmd.Flags().StringVar(&comment, "comment", "", "comment to add")
	cmd.Flags().Int64Var(&assignee, "assignee", 0, "assignee user id")

	return cmd
}

func newTicketsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TICKET_ID",
		Short: "Delete a ticket",
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

			_, err = client.Tickets().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete ticket: %w", err)
			}

			successf("Ticket %d deleted", id)

			return nil
		},
	}
}

func newTicketsCommentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comments TICKET_ID",
		Short: "List ticket comments",
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

			comments, err := client.Ticket(id).Comments().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list comments: %w", err)
			}

			return renderOutput(comments, func() error {
				if len(comments) == 0 {
					_, _ = os.Stdout.WriteString("No comments found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Author", "Public", "Created", "Body")

				for _, comment := range comments {
					body := comment.Body
					if len(body) > 60 {
						body = body[:57] + "..."
					}

					_ = table.Append(
						fmt.Sprintf("%d", comment.ID),
						fmt.Sprintf("%d", comment.AuthorID),
						fmt.Sprintf("%t", comment.Public),
						formatTime(comment.CreatedAt),
						body,
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newTicketsAuditsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "audits TICKET_ID",
		Short: "List ticket audits",
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

			audits, err := client.Ticket(id).Audits().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list audits: %w", err)
			}

			return renderOutput(audits, func() error {
				if len(audits) == 0 {
					_, _ = os.Stdout.WriteString("No audits found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Author", "Events", "Created")

				for _, audit := range audits {
					_ = table.Append(
						fmt.Sprintf("%d", audit.ID),
						fmt.Sprintf("%d", audit.AuthorID),
						fmt.Sprintf("%d", len(audit.Events)),
						formatTime(audit.CreatedAt),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func renderTicketTable(tickets []zendesk.Ticket) error {
	if len(tickets) == 0 {
		_, _ = os.Stdout.WriteString("No tickets found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Subject", "Status", "Priority", "Assignee", "Updated")

	for _, ticket := range tickets {
		assignee := NotAvailable
		if ticket.AssigneeID != 0 {
			assignee = fmt.Sprintf("%d", ticket.AssigneeID)
		}

		_ = table.Append(
			fmt.Sprintf("%d", ticket.ID),
			ticket.Subject,
			statusColor(ticket.Status),
			ticket.Priority,
			assignee,
			formatTime(ticket.UpdatedAt),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderTicketDetail(ticket *zendesk.Ticket) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", fmt.Sprintf("%d", ticket.ID))
	_ = table.Append("Subject", ticket.Subject)
	_ = table.Append("Status", statusColor(ticket.Status))
	_ = table.Append("Priority", ticket.Priority)
	_ = table.Append("Type", ticket.Type)
	_ = table.Append("Requester", fmt.Sprintf("%d", ticket.RequesterID))
	_ = table.Append("Assignee", fmt.Sprintf("%d", ticket.AssigneeID))
	_ = table.Append("Organization", fmt.Sprintf("%d", ticket.OrganizationID))
	_ = table.Append("Tags", strings.Join(ticket.Tags, ", "))
	_ = table.Append("Created", formatTime(ticket.CreatedAt))
	_ = table.Append("Updated", formatTime(ticket.UpdatedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
