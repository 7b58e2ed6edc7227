package cli

import (
	"fmt"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(
		newUserAddCmd(app),
		newUserListCmd(app),
		newUserPlanCmd(app),
	)

	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	var name string
	var planMonths int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.Create(cmd.Context(), name, planMonths)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatUserCreated(u))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().IntVar(&planMonths, "plan-months", 12, "Plan length in months (2, 6, 12, 24 or 36)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatUserList(users))
			return nil
		},
	}
}

func newUserPlanCmd(app *App) *cobra.Command {
	var userID string
	var months int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Change a user's plan length",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveUser(cmd.Context(), app, userID)
			if err != nil {
				return err
			}
			if err := app.Users.SetPlanMonths(cmd.Context(), id, months); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan set to %d months.\n", months)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().IntVar(&months, "months", 0, "Plan length in months (2, 6, 12, 24 or 36)")
	_ = cmd.MarkFlagRequired("months")

	return cmd
}
