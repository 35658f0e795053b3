package service

import (
	"context"

	"github.com/alexanderramin/uniprompt/internal/domain"
)

// LibraryEntry is a shared prompt as the local user sees it.
type LibraryEntry struct {
	Prompt *domain.SharedPrompt
	Liked  bool
}

// PublishRequest carries a prompt to share.
type PublishRequest struct {
	PromptText     string
	AuthorName     string
	AssignmentType string
}

// LikeResult is the like state to display after a toggle attempt.
type LikeResult struct {
	PromptID string
	Liked    bool
	Likes    int
}

type LibraryService interface {
	List(ctx context.Context, assignmentType string) ([]LibraryEntry, error)
	Get(ctx context.Context, id string) (*LibraryEntry, error)
	Publish(ctx context.Context, req PublishRequest) (*domain.SharedPrompt, error)
	ToggleLike(ctx context.Context, id string, displayedLikes int) (LikeResult, error)
}
