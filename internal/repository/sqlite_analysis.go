package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/domain"
)

// SQLiteAnalysisRepo implements AnalysisRepo using a SQLite database.
type SQLiteAnalysisRepo struct {
	db db.DBTX
}

// NewSQLiteAnalysisRepo creates a new SQLiteAnalysisRepo.
func NewSQLiteAnalysisRepo(conn db.DBTX) *SQLiteAnalysisRepo {
	return &SQLiteAnalysisRepo{db: conn}
}

const analysisColumns = `id, user_id, answer_id, strengths, weaknesses, values_summary,
	improvement_suggestions, relationship_map, analyzed_at`

func (r *SQLiteAnalysisRepo) Create(ctx context.Context, a *domain.AnalysisResult) error {
	rel := a.Relationships
	if rel == nil {
		rel = map[string]string{}
	}
	relJSON, err := json.Marshal(rel)
	if err != nil {
		return fmt.Errorf("encoding relationship map: %w", err)
	}

	query := `INSERT INTO ai_analysis (` + analysisColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.AnswerID,
		a.Strengths,
		a.Weaknesses,
		a.Values,
		a.ImprovementSuggestions,
		string(relJSON),
		formatTime(a.AnalyzedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting analysis for answer %s: %w", a.AnswerID, err)
	}
	return nil
}

func (r *SQLiteAnalysisRepo) GetLatestByUser(ctx context.Context, userID string) (*domain.AnalysisResult, error) {
	query := `SELECT ` + analysisColumns + ` FROM ai_analysis
		WHERE user_id = ?
		ORDER BY analyzed_at DESC, rowid DESC
		LIMIT 1`
	a, err := scanAnalysis(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("analysis for %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}
	return a, nil
}

func (r *SQLiteAnalysisRepo) GetByAnswer(ctx context.Context, answerID string) (*domain.AnalysisResult, error) {
	query := `SELECT ` + analysisColumns + ` FROM ai_analysis WHERE answer_id = ?`
	a, err := scanAnalysis(r.db.QueryRowContext(ctx, query, answerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("analysis for answer %s: %w", answerID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}
	return a, nil
}

func (r *SQLiteAnalysisRepo) ListByAnswers(ctx context.Context, answerIDs []string) (map[string]*domain.AnalysisResult, error) {
	out := make(map[string]*domain.AnalysisResult, len(answerIDs))
	if len(answerIDs) == 0 {
		return out, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(answerIDs)), ",")
	args := make([]any, len(answerIDs))
	for i, id := range answerIDs {
		args[i] = id
	}

	query := `SELECT ` + analysisColumns + ` FROM ai_analysis WHERE answer_id IN (` + placeholders + `)`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning analysis row: %w", err)
		}
		out[a.AnswerID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}
	return out, nil
}

func scanAnalysis(row rowScanner) (*domain.AnalysisResult, error) {
	var a domain.AnalysisResult
	var relJSON, analyzedAt string
	err := row.Scan(
		&a.ID, &a.UserID, &a.AnswerID, &a.Strengths, &a.Weaknesses, &a.Values,
		&a.ImprovementSuggestions, &relJSON, &analyzedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Relationships = map[string]string{}
	if relJSON != "" {
		if err := json.Unmarshal([]byte(relJSON), &a.Relationships); err != nil {
			return nil, fmt.Errorf("decoding relationship map: %w", err)
		}
	}
	if a.AnalyzedAt, err = parseTime(analyzedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
