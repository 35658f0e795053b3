package testutil

import (
	"time"

	"github.com/alexanderramin/uniprompt/internal/domain"
	"github.com/google/uuid"
)

// SharedPrompt options
type SharedPromptOption func(*domain.SharedPrompt)

func WithAuthor(name string) SharedPromptOption {
	return func(p *domain.SharedPrompt) {
		p.AuthorName = name
	}
}

func WithLikes(n int) SharedPromptOption {
	return func(p *domain.SharedPrompt) {
		p.Likes = n
	}
}

func WithCreatedAt(t time.Time) SharedPromptOption {
	return func(p *domain.SharedPrompt) {
		p.CreatedAt = t
	}
}

func WithAssignmentType(v string) SharedPromptOption {
	return func(p *domain.SharedPrompt) {
		p.AssignmentType = v
	}
}

func NewTestSharedPrompt(text string, opts ...SharedPromptOption) *domain.SharedPrompt {
	p := &domain.SharedPrompt{
		ID:         uuid.New().String(),
		PromptText: text,
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
