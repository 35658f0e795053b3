package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/uniprompt/internal/domain"
)

// ErrNotFound is wrapped by lookups and updates that match no row.
var ErrNotFound = errors.New("not found")

// Sortable shared prompt columns.
const (
	OrderLikes     = "likes"
	OrderCreatedAt = "created_at"
	OrderID        = "id"
)

// OrderBy is one sort key of a listing.
type OrderBy struct {
	Field string
	Desc  bool
}

// ListOptions filters and sorts a shared prompt listing. An empty Order
// sorts by creation time, oldest first.
type ListOptions struct {
	Order          []OrderBy
	AssignmentType string
	Limit          int
}

// SharedPromptRepo is the record store behind the shared prompt library.
type SharedPromptRepo interface {
	List(ctx context.Context, opts ListOptions) ([]*domain.SharedPrompt, error)
	GetByID(ctx context.Context, id string) (*domain.SharedPrompt, error)
	Create(ctx context.Context, p *domain.SharedPrompt) error
	UpdateLikes(ctx context.Context, id string, likes int) error
}

// LikedPromptRepo tracks which shared prompts the local user has liked.
// It only drives the liked/unliked display; the store's like counter is
// authoritative.
type LikedPromptRepo interface {
	List(ctx context.Context) ([]string, error)
	Has(ctx context.Context, promptID string) (bool, error)
	Add(ctx context.Context, promptID string, at time.Time) error
	Remove(ctx context.Context, promptID string) error
}
