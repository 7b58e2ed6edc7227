package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/spf13/cobra"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Describe the person you want to become",
	}

	cmd.AddCommand(
		newGoalSetCmd(app),
		newGoalListCmd(app),
	)

	return cmd
}

func newGoalSetCmd(app *App) *cobra.Command {
	var userID, start, end, ideal string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a goal for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDay, err := parseDayFlag("start", start, app.now().Location())
			if err != nil {
				return err
			}
			endDay, err := parseDayFlag("end", end, app.now().Location())
			if err != nil {
				return err
			}
			if startDay == nil || endDay == nil {
				return errors.New("--start and --end are required")
			}

			g := &domain.Goal{
				UserID:                 userID,
				StartDate:              *startDay,
				EndDate:                *endDay,
				IdealPersonDescription: ideal,
			}
			if err := app.Goals.Set(cmd.Context(), g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal set for %s to %s.\n",
				domain.FormatDay(g.StartDate), domain.FormatDay(g.EndDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ideal, "ideal", "", "Who you want to become")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("ideal")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals, marking the active one",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveUser(ctx, app, userID)
			if err != nil {
				return err
			}
			goals, err := app.Goals.List(ctx, id)
			if err != nil {
				return err
			}
			active, err := app.Goals.GetActive(ctx, id, app.now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGoalList(goals, active))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")

	return cmd
}
