package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/alexanderramin/journey/internal/contract"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveUser(ctx, app, userID)
			if err != nil {
				return err
			}
			now := app.now()
			resp, err := app.Prompts.GetTodayPrompt(ctx, contract.TodayPromptRequest{UserID: id})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTodayPrompt(resp, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")

	return cmd
}

func newAnswerCmd(app *App) *cobra.Command {
	var userID, text string
	var promptID int64

	cmd := &cobra.Command{
		Use:   "answer",
		Short: "Answer a prompt (today's by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveUser(ctx, app, userID)
			if err != nil {
				return err
			}
			now := app.now()

			promptText := ""
			if promptID == 0 {
				today, err := app.Prompts.GetTodayPrompt(ctx, contract.TodayPromptRequest{UserID: id})
				if err != nil {
					return err
				}
				if today.Prompt == nil {
					return errors.New("no prompt available: the catalog is empty")
				}
				promptID = today.Prompt.ID
				promptText = today.Prompt.Content
			}

			if strings.TrimSpace(text) == "" {
				if !app.Interactive {
					return errors.New("--text is required when not running in a terminal")
				}
				if promptText == "" {
					promptText = fmt.Sprintf("Prompt #%d", promptID)
				}
				if err := answerForm(promptText, &text).Run(); err != nil {
					return err
				}
			}

			req := contract.NewSubmitAnswerRequest(id, promptID, text)
			req.Now = &now
			resp, err := app.Answers.SubmitAnswer(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSubmitResult(resp, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().Int64Var(&promptID, "prompt", 0, "Prompt ID (defaults to today's prompt)")
	cmd.Flags().StringVar(&text, "text", "", "Answer text (opens an editor form when omitted in a terminal)")

	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	var userID, date string
	var promptID int64
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past answers, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveUser(ctx, app, userID)
			if err != nil {
				return err
			}
			day, err := parseDayFlag("date", date, app.now().Location())
			if err != nil {
				return err
			}

			req := contract.AnswerHistoryRequest{UserID: id, Date: day, Limit: limit}
			if cmd.Flags().Changed("prompt") {
				req.PromptID = &promptID
			}
			resp, err := app.Answers.GetAnswerHistory(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(resp.Entries, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&date, "date", "", "Only answers on this day (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&promptID, "prompt", 0, "Only answers to this prompt (takes precedence over --date)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of answers (0 for all)")

	return cmd
}
