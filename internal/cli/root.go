package cli

import (
	"time"

	"github.com/alexanderramin/journey/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Users    service.UserService
	Prompts  service.PromptService
	Goals    service.GoalService
	Answers  service.AnswerService
	Analyses service.AnalysisQueryService
	Progress service.ProgressService
	Reports  service.ReportService
	Import   service.ImportService

	// Interactive enables huh forms for values missing from flags.
	Interactive bool
	// Location decides the calendar day for streaks, goals and --date
	// filters. Nil means the system zone.
	Location *time.Location
	// Now overrides the clock. Its result is used as is, location included.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	loc := a.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// NewRootCmd creates the top-level "journey" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "journey",
		Short:         "Daily self-reflection prompts with background insight",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newUserCmd(app),
		newPromptCmd(app),
		newGoalCmd(app),
		newTodayCmd(app),
		newAnswerCmd(app),
		newHistoryCmd(app),
		newReportCmd(app),
		newAnalysisCmd(app),
		newProgressCmd(app),
	)

	return root
}
