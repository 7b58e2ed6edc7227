package cli

import (
	"fmt"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/alexanderramin/journey/internal/contract"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize themes, relationships and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveUser(ctx, app, userID)
			if err != nil {
				return err
			}
			now := app.now()
			resp, err := app.Reports.GetReport(ctx, contract.ReportRequest{UserID: id, Now: &now})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReport(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")

	return cmd
}

func newAnalysisCmd(app *App) *cobra.Command {
	var userID, answerID string

	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Show the latest AI analysis, or the one for a given answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if answerID != "" {
				res, err := app.Analyses.GetAnalysisForAnswer(ctx, answerID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAnalysis(res, app.now()))
				return nil
			}

			id, err := resolveUser(ctx, app, userID)
			if err != nil {
				return err
			}
			latest, err := app.Analyses.GetLatestAnalysis(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAnalysis(latest, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&answerID, "answer", "", "Answer ID (takes precedence over --user)")

	return cmd
}

func newProgressCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show answer count and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveUser(ctx, app, userID)
			if err != nil {
				return err
			}
			now := app.now()
			view, err := app.Progress.GetProgress(ctx, id, now)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgress(view, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")

	return cmd
}
