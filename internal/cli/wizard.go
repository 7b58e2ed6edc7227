package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/cli/formatter"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// journeyHuhTheme returns a huh theme using the formatter palette.
func journeyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// answerForm collects a multi-line answer to prompt.
func answerForm(prompt string, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(prompt).
				Description("Write freely. Submit with Enter, new line with Alt+Enter.").
				CharLimit(4000).
				Value(result).
				Validate(validateNonBlank),
		),
	).WithTheme(journeyHuhTheme()).WithShowHelp(false)
}

// wizardSelectUser creates a huh form to pick a user, or returns nil when
// there are none.
func wizardSelectUser(ctx context.Context, app *App, result *string) *huh.Form {
	users, err := app.Users.List(ctx)
	if err != nil || len(users) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(users))
	for _, u := range users {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", u.Name, u.ID[:min(8, len(u.ID))]), u.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Who is reflecting?").
				Options(options...).
				Value(result),
		),
	).WithTheme(journeyHuhTheme()).WithShowHelp(false)
}

// resolveUser returns the --user flag value, falling back to an interactive
// picker when the terminal allows it.
func resolveUser(ctx context.Context, app *App, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if !app.Interactive {
		return "", errors.New("--user is required")
	}
	var picked string
	form := wizardSelectUser(ctx, app, &picked)
	if form == nil {
		return "", errors.New("no users yet: create one with 'journey user add --name <name>'")
	}
	if err := form.Run(); err != nil {
		return "", err
	}
	return picked, nil
}

func validateNonBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("write at least a few words")
	}
	return nil
}

// parseDayFlag parses an optional YYYY-MM-DD flag value as midnight in loc.
func parseDayFlag(name, value string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := domain.ParseDayIn(value, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: use YYYY-MM-DD", name, value)
	}
	return &d, nil
}
