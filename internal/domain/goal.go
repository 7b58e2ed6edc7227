package domain

import (
	"errors"
	"time"
)

// ErrInvalidGoalWindow is returned when a goal ends before it starts.
var ErrInvalidGoalWindow = errors.New("goal end date is before start date")

// Goal is a user-declared "ideal self" bounded by a calendar window. It is
// only ever read by the analysis pipeline, as extra context for the model.
type Goal struct {
	ID                     string
	UserID                 string
	StartDate              time.Time
	EndDate                time.Time
	IdealPersonDescription string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (g *Goal) Validate() error {
	if CivilDate(g.EndDate).Before(CivilDate(g.StartDate)) {
		return ErrInvalidGoalWindow
	}
	return nil
}

// ActiveOn reports whether day falls inside the goal window (inclusive).
func (g *Goal) ActiveOn(day time.Time) bool {
	d := CivilDate(day)
	return !d.Before(CivilDate(g.StartDate)) && !d.After(CivilDate(g.EndDate))
}
