package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/uniprompt/internal/db"
)

// SQLiteLikedPromptRepo implements LikedPromptRepo using a SQLite database.
type SQLiteLikedPromptRepo struct {
	db db.DBTX
}

// NewSQLiteLikedPromptRepo creates a new SQLiteLikedPromptRepo.
func NewSQLiteLikedPromptRepo(conn db.DBTX) *SQLiteLikedPromptRepo {
	return &SQLiteLikedPromptRepo{db: conn}
}

func (r *SQLiteLikedPromptRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT prompt_id FROM liked_prompts ORDER BY liked_at, prompt_id`)
	if err != nil {
		return nil, fmt.Errorf("listing liked prompts: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning liked prompt: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating liked prompts: %w", err)
	}
	return ids, nil
}

func (r *SQLiteLikedPromptRepo) Has(ctx context.Context, promptID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM liked_prompts WHERE prompt_id = ?`, promptID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking liked prompt: %w", err)
	}
	return n > 0, nil
}

// Add marks promptID as liked. Adding twice keeps the first timestamp.
func (r *SQLiteLikedPromptRepo) Add(ctx context.Context, promptID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO liked_prompts (prompt_id, liked_at) VALUES (?, ?)`,
		promptID, formatTimestamp(at))
	if err != nil {
		return fmt.Errorf("adding liked prompt: %w", err)
	}
	return nil
}

func (r *SQLiteLikedPromptRepo) Remove(ctx context.Context, promptID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM liked_prompts WHERE prompt_id = ?`, promptID); err != nil {
		return fmt.Errorf("removing liked prompt: %w", err)
	}
	return nil
}
