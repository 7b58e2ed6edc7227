package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) Get(ctx context.Context, userID string) (*domain.Progress, error) {
	query := `SELECT user_id, total_answers, consecutive_days, last_answered_date, self_awareness_level
		FROM user_progress WHERE user_id = ?`
	var p domain.Progress
	var last sql.NullString
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID,
		&p.TotalAnswers,
		&p.ConsecutiveDays,
		&last,
		&p.SelfAwarenessLevel,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("progress for %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning progress: %w", err)
	}
	p.LastAnsweredDate = parseNullableDay(last)
	return &p, nil
}

func (r *SQLiteProgressRepo) Upsert(ctx context.Context, p *domain.Progress) error {
	query := `INSERT INTO user_progress (user_id, total_answers, consecutive_days,
		last_answered_date, self_awareness_level)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			total_answers = excluded.total_answers,
			consecutive_days = excluded.consecutive_days,
			last_answered_date = excluded.last_answered_date,
			self_awareness_level = excluded.self_awareness_level`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID,
		p.TotalAnswers,
		p.ConsecutiveDays,
		nullableDayToString(p.LastAnsweredDate),
		p.SelfAwarenessLevel,
	)
	if err != nil {
		return fmt.Errorf("upserting progress: %w", err)
	}
	return nil
}
