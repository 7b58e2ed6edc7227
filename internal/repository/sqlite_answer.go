package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/domain"
)

// SQLiteAnswerRepo implements AnswerRepo using a SQLite database.
type SQLiteAnswerRepo struct {
	db db.DBTX
}

// NewSQLiteAnswerRepo creates a new SQLiteAnswerRepo.
func NewSQLiteAnswerRepo(conn db.DBTX) *SQLiteAnswerRepo {
	return &SQLiteAnswerRepo{db: conn}
}

const answerColumns = `a.id, a.user_id, a.prompt_id, a.content, a.created_at`

func (r *SQLiteAnswerRepo) Create(ctx context.Context, a *domain.Answer) error {
	query := `INSERT INTO answers (id, user_id, prompt_id, content, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.PromptID,
		a.Content,
		formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting answer: %w", err)
	}
	return nil
}

func (r *SQLiteAnswerRepo) GetByID(ctx context.Context, id string) (*domain.Answer, error) {
	query := `SELECT ` + answerColumns + ` FROM answers a WHERE a.id = ?`
	a, err := scanAnswer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("answer %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning answer: %w", err)
	}
	return a, nil
}

func (r *SQLiteAnswerRepo) FindLatestForPrompt(ctx context.Context, userID string, promptID int64) (*domain.Answer, error) {
	query := `SELECT ` + answerColumns + ` FROM answers a
		WHERE a.user_id = ? AND a.prompt_id = ?
		ORDER BY a.created_at DESC, a.rowid DESC
		LIMIT 1`
	a, err := scanAnswer(r.db.QueryRowContext(ctx, query, userID, promptID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("previous answer to prompt %d: %w", promptID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning previous answer: %w", err)
	}
	return a, nil
}

func (r *SQLiteAnswerRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM answers WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting answers: %w", err)
	}
	return n, nil
}

func (r *SQLiteAnswerRepo) CountDistinctPrompts(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT prompt_id) FROM answers WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting answered prompts: %w", err)
	}
	return n, nil
}

func (r *SQLiteAnswerRepo) ListHistory(ctx context.Context, userID string) ([]domain.HistoryItem, error) {
	query := `SELECT ` + answerColumns + `, p.content FROM answers a
		JOIN prompts p ON p.id = a.prompt_id
		WHERE a.user_id = ?
		ORDER BY a.created_at, a.rowid`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing answer history: %w", err)
	}
	defer rows.Close()
	return scanHistory(rows)
}

func (r *SQLiteAnswerRepo) ListByUser(ctx context.Context, userID string, f AnswerFilter) ([]domain.HistoryItem, error) {
	var b strings.Builder
	b.WriteString(`SELECT ` + answerColumns + `, p.content FROM answers a
		JOIN prompts p ON p.id = a.prompt_id
		WHERE a.user_id = ?`)
	args := []any{userID}

	switch {
	case f.PromptID != nil:
		b.WriteString(` AND a.prompt_id = ?`)
		args = append(args, *f.PromptID)
	case f.Date != nil:
		start, end := domain.DayBounds(*f.Date)
		b.WriteString(` AND a.created_at >= ? AND a.created_at < ?`)
		args = append(args, formatTime(start), formatTime(end))
	}

	b.WriteString(` ORDER BY a.created_at DESC, a.rowid DESC`)
	if f.Limit > 0 {
		b.WriteString(` LIMIT ?`)
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	defer rows.Close()
	return scanHistory(rows)
}

func scanAnswer(row rowScanner, extra ...any) (*domain.Answer, error) {
	var a domain.Answer
	var createdAt string
	dest := append([]any{&a.ID, &a.UserID, &a.PromptID, &a.Content, &createdAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	a.CreatedAt = t
	return &a, nil
}

func scanHistory(rows *sql.Rows) ([]domain.HistoryItem, error) {
	var items []domain.HistoryItem
	for rows.Next() {
		var promptContent string
		a, err := scanAnswer(rows, &promptContent)
		if err != nil {
			return nil, fmt.Errorf("scanning answer row: %w", err)
		}
		items = append(items, domain.HistoryItem{Answer: *a, PromptContent: promptContent})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}
	return items, nil
}
