package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/uniprompt/internal/db"
	"github.com/alexanderramin/uniprompt/internal/domain"
)

// SQLiteSharedPromptRepo implements SharedPromptRepo using a SQLite database.
type SQLiteSharedPromptRepo struct {
	db db.DBTX
}

// NewSQLiteSharedPromptRepo creates a new SQLiteSharedPromptRepo.
func NewSQLiteSharedPromptRepo(conn db.DBTX) *SQLiteSharedPromptRepo {
	return &SQLiteSharedPromptRepo{db: conn}
}

const sharedPromptColumns = `id, prompt_text, author_name, likes, assignment_type, created_at`

func (r *SQLiteSharedPromptRepo) Create(ctx context.Context, p *domain.SharedPrompt) error {
	query := `INSERT INTO shared_prompts (` + sharedPromptColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.PromptText,
		p.AuthorName,
		p.Likes,
		p.AssignmentType,
		formatTimestamp(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting shared prompt: %w", err)
	}
	return nil
}

func (r *SQLiteSharedPromptRepo) GetByID(ctx context.Context, id string) (*domain.SharedPrompt, error) {
	query := `SELECT ` + sharedPromptColumns + ` FROM shared_prompts WHERE id = ?`
	p, err := scanSharedPrompt(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("shared prompt %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteSharedPromptRepo) List(ctx context.Context, opts ListOptions) ([]*domain.SharedPrompt, error) {
	order, err := orderClause(opts.Order)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + sharedPromptColumns + ` FROM shared_prompts`
	var args []any
	if opts.AssignmentType != "" {
		query += ` WHERE assignment_type = ?`
		args = append(args, opts.AssignmentType)
	}
	query += order
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing shared prompts: %w", err)
	}
	defer rows.Close()

	var prompts []*domain.SharedPrompt
	for rows.Next() {
		p, err := scanSharedPrompt(rows)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shared prompts: %w", err)
	}
	return prompts, nil
}

// UpdateLikes overwrites the like counter. Concurrent writers race and the
// last write wins.
func (r *SQLiteSharedPromptRepo) UpdateLikes(ctx context.Context, id string, likes int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE shared_prompts SET likes = ? WHERE id = ?`, likes, id)
	if err != nil {
		return fmt.Errorf("updating likes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating likes: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("shared prompt %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSharedPrompt(row rowScanner) (*domain.SharedPrompt, error) {
	var p domain.SharedPrompt
	var createdAtStr string
	err := row.Scan(&p.ID, &p.PromptText, &p.AuthorName, &p.Likes, &p.AssignmentType, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning shared prompt: %w", err)
	}
	p.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}
