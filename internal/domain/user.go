package domain

import (
	"errors"
	"time"
)

// ErrInvalidPlanMonths is returned when a plan length is outside AllowedPlanMonths.
var ErrInvalidPlanMonths = errors.New("plan length must be one of 2, 6, 12, 24 or 36 months")

// DefaultPlanMonths is the plan length assigned to users who never chose one.
const DefaultPlanMonths = 12

// AllowedPlanMonths is the canonical set of accepted plan lengths.
var AllowedPlanMonths = map[int]bool{2: true, 6: true, 12: true, 24: true, 36: true}

type User struct {
	ID         string
	Name       string
	PlanMonths int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidatePlanMonths rejects plan lengths outside the allowed set.
func ValidatePlanMonths(months int) error {
	if !AllowedPlanMonths[months] {
		return ErrInvalidPlanMonths
	}
	return nil
}
