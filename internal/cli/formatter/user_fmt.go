package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/contract"
	"github.com/alexanderramin/journey/internal/domain"
)

// FormatUserList renders users as a table.
func FormatUserList(users []*domain.User) string {
	if len(users) == 0 {
		return Dim("No users yet. Create one with: journey user add --name <name>")
	}
	rows := make([][]string, len(users))
	for i, u := range users {
		rows[i] = []string{
			u.ID,
			Bold(u.Name),
			fmt.Sprintf("%d months", u.PlanMonths),
			Dim(u.CreatedAt.Format("2006-01-02")),
		}
	}
	return RenderTable([]string{"ID", "NAME", "PLAN", "CREATED"}, rows)
}

// FormatUserCreated confirms a new user and shows the ID to pass to later
// commands.
func FormatUserCreated(u *domain.User) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("User created.") + "\n\n")
	b.WriteString(labelLine("name", Bold(u.Name)))
	b.WriteString(labelLine("id", u.ID))
	b.WriteString(labelLine("plan", fmt.Sprintf("%d months", u.PlanMonths)))
	return b.String()
}

// FormatGoalList renders goals newest first, marking the one active on now.
func FormatGoalList(goals []*domain.Goal, active *domain.Goal) string {
	if len(goals) == 0 {
		return Dim("No goals set.")
	}
	rows := make([][]string, len(goals))
	for i, g := range goals {
		marker := " "
		if active != nil && g.ID == active.ID {
			marker = StyleGreen.Render("●")
		}
		rows[i] = []string{
			marker,
			domain.FormatDay(g.StartDate),
			domain.FormatDay(g.EndDate),
			Excerpt(g.IdealPersonDescription, 60),
		}
	}
	return RenderTable([]string{"", "FROM", "TO", "IDEAL SELF"}, rows)
}

// FormatProgress renders the progress record with the displayed streak.
func FormatProgress(v *contract.ProgressView, now time.Time) string {
	var b strings.Builder
	b.WriteString(labelLine("answers", fmt.Sprintf("%d", v.TotalAnswers)))
	b.WriteString(labelLine("streak", StreakIndicator(v.CurrentStreak)))
	if v.CurrentStreak == 0 && v.ConsecutiveDays > 0 {
		b.WriteString(labelLine("", Dim(fmt.Sprintf("last run was %d days", v.ConsecutiveDays))))
	}
	last := Dim("never")
	if v.LastAnsweredDate != nil {
		// A stored calendar day, not an instant: keep its Y-M-D as is.
		y, m, d := v.LastAnsweredDate.Date()
		last = HumanDate(time.Date(y, m, d, 12, 0, 0, 0, now.Location()), now)
	}
	b.WriteString(labelLine("last", last))
	b.WriteString(labelLine("level", fmt.Sprintf("%d", v.SelfAwarenessLevel)))
	return RenderBox("Progress", strings.TrimRight(b.String(), "\n"))
}
