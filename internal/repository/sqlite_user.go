package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, name, plan_months, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Name,
		u.PlanMonths,
		formatTime(u.CreatedAt),
		formatTime(u.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, plan_months, created_at, updated_at FROM users WHERE id = ?`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return u, nil
}

func (r *SQLiteUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id, name, plan_months, created_at, updated_at FROM users ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

func (r *SQLiteUserRepo) UpdatePlanMonths(ctx context.Context, id string, months int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET plan_months = ?, updated_at = ? WHERE id = ?`,
		months, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating plan length: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating plan length: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var createdAt, updatedAt string
	if err := row.Scan(&u.ID, &u.Name, &u.PlanMonths, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	var err error
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
