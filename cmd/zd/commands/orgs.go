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

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"org", "organizations"},
		Short:   "Manage organizations",
		Long:    "List, create, update, and delete Zendesk organizations",
	}

	cmd.AddCommand(newOrgsListCommand())
	cmd.AddCommand(newOrgsGetCommand())
	cmd.AddCommand(newOrgsCreateCommand())
	cmd.AddCommand(newOrgsUpdateCommand())
	cmd.AddCommand(newOrgsDeleteCommand())
	cmd.AddCommand(newOrgsUsersCommand())
	cmd.AddCommand(newOrgsTicketsCommand())

	return cmd
}

func newOrgsListCommand() *cobra.Command {
	var (
		page    int
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			orgs, err := client.Organizations().List(context.Background(), listParams(page, perPage, "", ""))
			if err != nil {
				return fmt.Errorf("failed to list organizations: %w", err)
			}

			return renderOutput(orgs, func() error {
				return renderOrgTable(orgs)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func newOrgsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORG_ID",
		Short: "Get organization details",
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

			org, err := client.Organizations().Show(context.Background(), id, nil)
			if err != nil {
				return fmt.Errorf("failed to get organization: %w", err)
			}

			return renderOutput(org, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", fmt.Sprintf("%d", org.ID))
				_ = table.Append("Name", org.Name)
				_ = table.Append("Domains", strings.Join(org.DomainNames, ", "))
				_ = table.Append("Tags", strings.Join(org.Tags, ", "))
				_ = table.Append("Shared Tickets", fmt.Sprintf("%t", org.SharedTickets))
				_ = table.Append("Details", org.Details)
				_ = table.Append("Created", formatTime(org.CreatedAt))
				_ = table.Append("Updated", formatTime(org.UpdatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newOrgsCreateCommand() *cobra.Command {
	var org zendesk.Organization

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			created, err := client.Organizations().Create(context.Background(), &org)
			if err != nil {
				return fmt.Errorf("failed to create organization: %w", err)
			}

			successf("Organization %d created", created.ID)

			return renderOutput(created, func() error { return nil })
		},
	}

	cmd.Flags().StringVar(&org.Name, "name", "", "organization name")
	cmd.Flags().StringSliceVar(&org.DomainNames, "domains", nil, "email domains mapped to this organization")
	cmd.Flags().StringVar(&org.Details, "details", "", "free-form details")
	cmd.Flags().StringSliceVar(&org.Tags, "tags", nil, "tags")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newOrgsUpdateCommand() *cobra.Command {
	var org zendesk.Organization

	cmd := &cobra.Command{
		Use:   "update ORG_ID",
		Short: "Update an organization",
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

			updated, err := client.Organizations().Update(context.Background(), id, &org)
			if err != nil {
				return fmt.Errorf("failed to update organization: %w", err)
			}

			successf("Organization %d updated", updated.ID)

			return renderOutput(updated, func() error { return nil })
		},
	}

	cmd.Flags().StringVar(&org.Name, "name", "", "organization name")
	cmd.Flags().StringSliceVar(&org.DomainNames, "domains", nil, "email domains mapped to this organization")
	cmd.Flags().StringVar(&org.Details, "details", "", "free-form details")
	cmd.Flags().StringSliceVar(&org.Tags, "tags", nil, "tags")

	return cmd
}

func newOrgsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ORG_ID",
		Short: "Delete an organization",
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

			_, err = client.Organizations().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete organization: %w", err)
			}

			successf("Organization %d deleted", id)

			return nil
		},
	}
}

func newOrgsUsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "users ORG_ID",
		Short: "List users in an organization",
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

			users, err := client.Organization(id).Users().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			return renderOutput(users, func() error {
				return renderUserTable(users)
			})
		},
	}
}

func newOrgsTicketsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tickets ORG_ID",
		Short: "List tickets for an organization",
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

			tickets, err := client.Organization(id).Tickets().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list tickets: %w", err)
			}

			return renderOutput(tickets, func() error {
				return renderTicketTable(tickets)
			})
		},
	}
}

func renderOrgTable(orgs []zendesk.Organization) error {
	if len(orgs) == 0 {
		_, _ = os.Stdout.WriteString("No organizations found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Domains", "Created")

	for _, org := range orgs {
		_ = table.Append(
			fmt.Sprintf("%d", org.ID),
			org.Name,
			strings.Join(org.DomainNames, ", "),
			formatTime(org.CreatedAt),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
