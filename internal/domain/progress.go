package domain

import "time"

const dayLayout = "2006-01-02"

// Progress is the per-user longitudinal record. It is mutated only by
// RecordAnswer, once per submitted answer.
type Progress struct {
	UserID             string
	TotalAnswers       int
	ConsecutiveDays    int
	LastAnsweredDate   *time.Time
	SelfAwarenessLevel int
}

// NewProgress returns the initial record for a user with no answers.
func NewProgress(userID string) *Progress {
	return &Progress{UserID: userID, SelfAwarenessLevel: 1}
}

// RecordAnswer advances the streak state for an answer submitted on today.
// Several answers on the same day count toward TotalAnswers but not the streak.
func (p *Progress) RecordAnswer(today time.Time) {
	day := CivilDate(today)

	switch {
	case p.LastAnsweredDate == nil:
		p.ConsecutiveDays = 1
	case CivilDate(*p.LastAnsweredDate).Equal(day):
		// unchanged
	case CivilDate(*p.LastAnsweredDate).AddDate(0, 0, 1).Equal(day):
		p.ConsecutiveDays++
	default:
		p.ConsecutiveDays = 1
	}

	p.TotalAnswers++
	p.LastAnsweredDate = &day
}

// CurrentStreak is the streak as it should be displayed on today: a record
// whose last answer is older than yesterday has lapsed and shows 0.
func (p *Progress) CurrentStreak(today time.Time) int {
	if p.LastAnsweredDate == nil {
		return 0
	}
	last := CivilDate(*p.LastAnsweredDate)
	day := CivilDate(today)
	if last.Equal(day) || last.AddDate(0, 0, 1).Equal(day) {
		return p.ConsecutiveDays
	}
	return 0
}

// CivilDate drops the clock part of t, keeping the calendar day as seen in
// t's own location. The result is midnight UTC so dates compare with Equal.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDay renders a calendar day the way it is stored.
func FormatDay(t time.Time) string {
	return CivilDate(t).Format(dayLayout)
}

// ParseDay parses a YYYY-MM-DD calendar day.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(dayLayout, s)
}

// ParseDayIn parses a YYYY-MM-DD calendar day as midnight in loc.
func ParseDayIn(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, loc)
}

// DayBounds returns the half-open range [start, end) of the calendar day
// containing t, in t's location. The range follows DST shifts.
func DayBounds(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
