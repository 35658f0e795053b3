// Package composer turns a wizard AnswerState into the instruction document
// handed to an AI writing assistant.
//
// Composition is a pure function of the state: the recipe for the selected
// assignment type names the blocks, each block renders a section or nothing,
// and the surviving sections are joined with one blank line between them.
package composer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/uniprompt/internal/domain"
)

// GuidanceMessage is returned instead of a document until an assignment type
// has been chosen.
const GuidanceMessage = "Step 1에서 과제 유형을 선택해주세요."

// CoreHeadingPolicy decides what coreInstructions renders when there are no
// emphasis items and no keywords.
type CoreHeadingPolicy string

const (
	// CoreHeadingOmit leaves the whole section out.
	CoreHeadingOmit CoreHeadingPolicy = "omit"
	// CoreHeadingAlways keeps the heading with an empty body.
	CoreHeadingAlways CoreHeadingPolicy = "always"
)

// ParseCoreHeadingPolicy validates a policy name. Empty selects CoreHeadingOmit.
func ParseCoreHeadingPolicy(s string) (CoreHeadingPolicy, error) {
	switch CoreHeadingPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CoreHeadingOmit:
		return CoreHeadingOmit, nil
	case CoreHeadingAlways:
		return CoreHeadingAlways, nil
	}
	return "", fmt.Errorf("unknown core heading policy %q (want omit or always)", s)
}

// Options configures a Composer.
type Options struct {
	MetaInstructions bool
	CoreHeading      CoreHeadingPolicy
}

// DefaultOptions includes meta instructions and omits an empty
// coreInstructions section.
func DefaultOptions() Options {
	return Options{
		MetaInstructions: true,
		CoreHeading:      CoreHeadingOmit,
	}
}

// Composer assembles prompts. It holds only immutable options and is safe to
// share.
type Composer struct {
	opts Options
}

// New creates a Composer with the given options.
func New(opts Options) *Composer {
	if opts.CoreHeading == "" {
		opts.CoreHeading = CoreHeadingOmit
	}
	return &Composer{opts: opts}
}

// Options returns the options the composer was built with.
func (c *Composer) Options() Options {
	return c.opts
}

var (
	blankRun    = regexp.MustCompile(`(\n\s*){3,}`)
	emptyBullet = regexp.MustCompile(`\n- \n`)
)

// Assemble composes the prompt for state. It never fails: missing answers
// render as inline placeholders, and a missing assignment type yields
// GuidanceMessage.
func (c *Composer) Assemble(state domain.AnswerState) string {
	if state.AssignmentType.Value == "" {
		return GuidanceMessage
	}

	recipe := c.SelectRecipe(state.AssignmentType.Value)
	sections := make([]string, 0, len(recipe))
	for _, kind := range recipe {
		if text := c.Block(kind, &state); text != "" {
			sections = append(sections, text)
		}
	}

	return tidy(strings.Join(sections, "\n\n"))
}

// tidy collapses runs of blank lines and drops empty top-level bullets.
// Dropping a bullet can join two blank runs, so the collapse runs again.
func tidy(out string) string {
	out = blankRun.ReplaceAllString(out, "\n\n")
	out = emptyBullet.ReplaceAllString(out, "\n")
	return blankRun.ReplaceAllString(out, "\n\n")
}

// HasUnresolved reports whether text is the guidance message or still
// contains a required-answer placeholder.
func HasUnresolved(text string) bool {
	if strings.TrimSpace(text) == "" || text == GuidanceMessage {
		return true
	}
	return strings.Contains(text, PlaceholderAssignmentType) ||
		strings.Contains(text, PlaceholderTopic)
}
