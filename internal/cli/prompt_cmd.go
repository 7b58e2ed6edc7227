package cli

import (
	"fmt"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/spf13/cobra"
)

func newPromptCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Manage the prompt catalog",
	}

	cmd.AddCommand(
		newPromptAddCmd(app),
		newPromptListCmd(app),
		newPromptImportCmd(app),
	)

	return cmd
}

func newPromptAddCmd(app *App) *cobra.Command {
	var text, origin string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a prompt to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Prompts.Create(cmd.Context(), text, domain.PromptOrigin(origin))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added prompt #%d (%s).\n", p.ID, p.Origin)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Prompt text")
	cmd.Flags().StringVar(&origin, "origin", string(domain.OriginSystem), "Prompt origin (system or admin)")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newPromptListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the prompt catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts, err := app.Prompts.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPromptList(prompts))
			return nil
		},
	}
}

func newPromptImportCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Append prompts from a JSON catalog file",
		Long: `Append prompts from a JSON catalog file of the form

  {"prompts": [{"content": "What do you love?", "origin": "system"}]}

Prompts already in the catalog are skipped, so a file can be imported again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportCatalog(cmd.Context(), file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d prompts (%d already present).\n", len(res.Added), res.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the catalog JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
