package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

const goalColumns = `id, user_id, start_date, end_date, ideal_person_description, created_at, updated_at`

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO user_goals (` + goalColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.UserID,
		domain.FormatDay(g.StartDate),
		domain.FormatDay(g.EndDate),
		g.IdealPersonDescription,
		formatTime(g.CreatedAt),
		formatTime(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) FindActive(ctx context.Context, userID string, day time.Time) (*domain.Goal, error) {
	d := domain.FormatDay(day)
	query := `SELECT ` + goalColumns + ` FROM user_goals
		WHERE user_id = ? AND start_date <= ? AND end_date >= ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`
	g, err := scanGoal(r.db.QueryRowContext(ctx, query, userID, d, d))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("active goal on %s: %w", d, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	return g, nil
}

func (r *SQLiteGoalRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM user_goals WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal row: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	var start, end, createdAt, updatedAt string
	if err := row.Scan(&g.ID, &g.UserID, &start, &end, &g.IdealPersonDescription, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if g.StartDate, err = domain.ParseDay(start); err != nil {
		return nil, err
	}
	if g.EndDate, err = domain.ParseDay(end); err != nil {
		return nil, err
	}
	if g.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if g.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}
