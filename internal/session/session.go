// Package session owns the answer state of one wizard run and keeps the
// composed prompt in sync with it.
package session

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/uniprompt/internal/composer"
	"github.com/alexanderramin/uniprompt/internal/domain"
	"github.com/atotto/clipboard"
)

// ErrIncompletePrompt is returned when copying a prompt that still shows the
// guidance message or a required-answer placeholder.
var ErrIncompletePrompt = errors.New("프롬프트의 필수 항목을 모두 채워주세요")

// Clipboard receives copied prompt text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Session holds the answers of one wizard run. Every setter recomputes the
// output before returning. A Session is not safe for concurrent use.
type Session struct {
	composer *composer.Composer
	state    domain.AnswerState
	output   string
}

// New starts an empty session.
func New(c *composer.Composer) *Session {
	s := &Session{composer: c}
	s.recompute()
	return s
}

func (s *Session) recompute() {
	s.output = s.composer.Assemble(s.state)
}

// Output returns the prompt for the current answers.
func (s *Session) Output() string {
	return s.output
}

// State returns a copy of the current answers.
func (s *Session) State() domain.AnswerState {
	return s.state.Clone()
}

// Replace swaps in a complete answer set.
func (s *Session) Replace(state domain.AnswerState) {
	s.state = state.Clone()
	s.recompute()
}

// SelectChoice picks a preset value, or domain.CustomValue, for a choice field.
func (s *Session) SelectChoice(f domain.ChoiceField, value string) {
	s.state.SetChoice(f, value)
	s.recompute()
}

// SetCustom sets the free text used while a field is on domain.CustomValue.
func (s *Session) SetCustom(f domain.ChoiceField, text string) {
	s.state.SetCustom(f, text)
	s.recompute()
}

// ToggleEmphasis ticks or unticks an emphasis tag.
func (s *Session) ToggleEmphasis(tag domain.EmphasisTag, on bool) {
	s.state.ToggleEmphasis(tag, on)
	s.recompute()
}

// SetEmphasisCustom sets the free-text emphasis requirement.
func (s *Session) SetEmphasisCustom(text string) {
	s.state.SetEmphasisCustom(text)
	s.recompute()
}

// SetText sets one of the free-text answers.
func (s *Session) SetText(f domain.TextField, text string) {
	s.state.SetText(f, text)
	s.recompute()
}

// Ready reports whether the current output can be copied.
func (s *Session) Ready() bool {
	return !composer.HasUnresolved(s.output)
}

// Copy writes the current prompt to cb. It refuses while the prompt is
// incomplete.
func (s *Session) Copy(cb Clipboard) error {
	if !s.Ready() {
		return ErrIncompletePrompt
	}
	if err := cb.WriteAll(s.output); err != nil {
		return fmt.Errorf("copying prompt: %w", err)
	}
	return nil
}
