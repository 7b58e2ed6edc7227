package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/domain"
)

// SQLitePromptRepo implements PromptRepo using a SQLite database.
type SQLitePromptRepo struct {
	db db.DBTX
}

// NewSQLitePromptRepo creates a new SQLitePromptRepo.
func NewSQLitePromptRepo(conn db.DBTX) *SQLitePromptRepo {
	return &SQLitePromptRepo{db: conn}
}

func (r *SQLitePromptRepo) Create(ctx context.Context, p *domain.Prompt) error {
	if p.Origin == "" {
		p.Origin = domain.OriginSystem
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO prompts (content, origin, created_at) VALUES (?, ?, ?)`,
		p.Content, string(p.Origin), formatTime(p.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting prompt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading prompt id: %w", err)
	}
	p.ID = id
	return nil
}

func (r *SQLitePromptRepo) GetByID(ctx context.Context, id int64) (*domain.Prompt, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, content, origin, created_at FROM prompts WHERE id = ?`, id)
	p, err := scanPrompt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("prompt %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning prompt: %w", err)
	}
	return p, nil
}

func (r *SQLitePromptRepo) List(ctx context.Context) ([]*domain.Prompt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, content, origin, created_at FROM prompts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}
	defer rows.Close()

	var prompts []*domain.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning prompt row: %w", err)
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prompts: %w", err)
	}
	return prompts, nil
}

func (r *SQLitePromptRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM prompts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting prompts: %w", err)
	}
	return n, nil
}

func scanPrompt(row rowScanner) (*domain.Prompt, error) {
	var p domain.Prompt
	var origin, createdAt string
	if err := row.Scan(&p.ID, &p.Content, &origin, &createdAt); err != nil {
		return nil, err
	}
	p.Origin = domain.PromptOrigin(origin)
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = t
	return &p, nil
}
