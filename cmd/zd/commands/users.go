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

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List, create, update, and delete Zendesk users",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersUpdateCommand())
	cmd.AddCommand(newUsersDeleteCommand())
	cmd.AddCommand(newUsersIdentitiesCommand())
	cmd.AddCommand(newUsersTicketsCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		page    int
		perPage int
		role    string
		ids     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := listParams(page, perPage, "", "")

			if role != "" {
				params.With("role", role)
			}

			var users []zendesk.User

			if ids != "" {
				idList, err := parseIDList(ids)
				if err != nil {
					return err
				}

				users, err = client.Users().ShowMany(ctx, idList, params)
				if err != nil {
					return fmt.Errorf("failed to list users: %w", err)
				}
			} else {
				users, err = client.Users().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list users: %w", err)
				}
			}

			return renderOutput(users, func() error {
				return renderUserTable(users)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().StringVar(&role, "role", "", "filter by role (end-user, agent, admin)")
	cmd.Flags().StringVar(&ids, "ids", "", "comma-separated user ids to fetch in one request")

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get user details",
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

			user, err := client.Users().Show(context.Background(), id, nil)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return renderOutput(user, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", fmt.Sprintf("%d", user.ID))
				_ = table.Append("Name", user.Name)
				_ = table.Append("Email", user.Email)
				_ = table.Append("Role", user.Role)
				_ = table.Append("Organization", fmt.Sprintf("%d", user.OrganizationID))
				_ = table.Append("Active", fmt.Sprintf("%t", user.Active))
				_ = table.Append("Suspended", fmt.Sprintf("%t", user.Suspended))
				_ = table.Append("Last Login", formatTime(user.LastLoginAt))
				_ = table.Append("Created", formatTime(user.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newUsersCreateCommand() *cobra.Command {
	var user zendesk.User

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			created, err := client.Users().Create(context.Background(), &user)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			successf("User %d created", created.ID)

			return renderOutput(created, func() error { return nil })
		},
	}

	cmd.Flags().StringVar(&user.Name, "name", "", "user name")
	cmd.Flags().StringVar(&user.Email, "email", "", "user email")
	cmd.Flags().StringVar(&user.Role, "role", "", "role (end-user, agent, admin)")
	cmd.Flags().StringVar(&user.Phone, "phone", "", "phone number")
	cmd.Flags().Int64Var(&user.OrganizationID, "organization", 0, "organization id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUsersUpdateCommand() *cobra.Command {
	var user zendesk.User

	cmd := &cobra.Command{
		Use:   "update USER_ID",
		Short: "Update a user",
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

			if cmd.Flags().Changed("suspended") {
				user.Suspended, _ = cmd.Flags().GetBool("suspended")
			}

			updated, err := client.Users().Update(context.Background(), id, &user)
			if err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}

			successf("User %d updated", updated.ID)

			return renderOutput(updated, func() error { return nil })
		},
	}

	cmd.Flags().StringVar(&user.Name, "name", "", "user name")
	cmd.Flags().StringVar(&user.Role, "role", "", "role (end-user, agent, admin)")
	cmd.Flags().Int64Var(&user.OrganizationID, "organization", 0, "organization id")
	cmd.Flags().Bool("suspended", false, "suspend or unsuspend the user")

	return cmd
}

func newUsersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user",
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

			_, err = client.Users().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			successf("User %d deleted", id)

			return nil
		},
	}
}

func newUsersIdentitiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "identities USER_ID",
		Short: "List user identities",
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

			identities, err := client.User(id).Identities().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list identities: %w", err)
			}

			return renderOutput(identities, func() error {
				if len(identities) == 0 {
					_, _ = os.Stdout.WriteString("No identities found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Type", "Value", "Verified", "Primary")

				for _, identity := range identities {
					_ = table.Append(
						fmt.Sprintf("%d", identity.ID),
						formatLabel(identity.Type),
						identity.Value,
						fmt.Sprintf("%t", identity.Verified),
						fmt.Sprintf("%t", identity.Primary),
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

func newUsersTicketsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tickets USER_ID",
		Short: "List tickets requested by a user",
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

			tickets, err := client.User(id).Tickets().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list tickets: %w", err)
			}

			return renderOutput(tickets, func() error {
				return renderTicketTable(tickets)
			})
		},
	}
}

func renderUserTable(users []zendesk.User) error {
	if len(users) == 0 {
		_, _ = os.Stdout.WriteString("No users found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Role", "Created")

	for _, user := range users {
		_ = table.Append(
			fmt.Sprintf("%d", user.ID),
			user.Name,
			user.Email,
			user.Role,
			formatTime(user.CreatedAt),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
