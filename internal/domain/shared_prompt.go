package domain

import (
	"strings"
	"time"
)

// AnonymousAuthor is displayed for shared prompts published without a name.
const AnonymousAuthor = "익명"

// SharedPrompt is a prompt published to the shared library.
type SharedPrompt struct {
	ID         string
	PromptText string
	AuthorName string
	Likes      int
	CreatedAt  time.Time

	// AssignmentType is the wizard assignment type the prompt was composed
	// for, empty for prompts pasted in by hand.
	AssignmentType string
}

// DisplayAuthor returns the author name or AnonymousAuthor.
func (p *SharedPrompt) DisplayAuthor() string {
	return CoalesceStr(strings.TrimSpace(p.AuthorName), AnonymousAuthor)
}

// LikeDelta applies a like (+1) or unlike (-1) to a displayed count.
// The result never drops below zero.
func LikeDelta(current int, like bool) int {
	if like {
		return current + 1
	}
	if current <= 0 {
		return 0
	}
	return current - 1
}
