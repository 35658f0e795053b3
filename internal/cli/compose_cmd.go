package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/uniprompt/internal/cli/formatter"
	"github.com/alexanderramin/uniprompt/internal/composer"
	"github.com/alexanderramin/uniprompt/internal/domain"
	"github.com/alexanderramin/uniprompt/internal/service"
	"github.com/alexanderramin/uniprompt/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// coreHeadingValue is a pflag.Value accepting the core heading policy names.
type coreHeadingValue struct {
	policy *composer.CoreHeadingPolicy
}

var _ pflag.Value = coreHeadingValue{}

func (v coreHeadingValue) String() string {
	if v.policy == nil {
		return ""
	}
	return string(*v.policy)
}

func (v coreHeadingValue) Set(s string) error {
	p, err := composer.ParseCoreHeadingPolicy(s)
	if err != nil {
		return err
	}
	*v.policy = p
	return nil
}

func (v coreHeadingValue) Type() string { return "omit|always" }

type choiceFlags struct {
	value  string
	custom string
}

type composeFlags struct {
	assignment choiceFlags
	level      choiceFlags
	tone       choiceFlags
	major      string

	emphasis       []string
	emphasisCustom string
	emphasisText   string

	topic          string
	keywords       string
	references     []string
	referencesFile string

	noMeta      bool
	coreHeading composer.CoreHeadingPolicy
	render      bool
	copy        bool
	publish     bool
	author      string
}

func newComposeCmd(app *App) *cobra.Command {
	f := &composeFlags{coreHeading: app.Composer.CoreHeading, render: app.RenderMarkdown}

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose a prompt from flags",
		Long: `Compose a prompt without the wizard. Preset keys are listed by
"uniprompt presets"; every --x flag has a --x-custom variant for free text.`,
		Example: `  uniprompt compose --type report --level undergrad-senior --tone critical \
    --major 경제학 --topic "탄소세의 효과" --emphasis case-study,citation-apa \
    --reference "Stern (2007)" --reference "Nordhaus (2019)" --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := f.answerState(cmd.InOrStdin())
			if err != nil {
				return err
			}

			opts := app.Composer
			if f.noMeta {
				opts.MetaInstructions = false
			}
			opts.CoreHeading = f.coreHeading

			s := app.newSession(opts)
			s.Replace(state)
			return emitComposed(cmd, app, s, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.assignment.value, "type", "", "Assignment type key")
	fl.StringVar(&f.assignment.custom, "type-custom", "", "Assignment type as free text")
	fl.StringVar(&f.level.value, "level", "", "Author level key")
	fl.StringVar(&f.level.custom, "level-custom", "", "Author level as free text")
	fl.StringVar(&f.tone.value, "tone", "", "Tone key")
	fl.StringVar(&f.tone.custom, "tone-custom", "", "Tone as free text")
	fl.StringVar(&f.major, "major", "", "Field of study")
	fl.StringSliceVar(&f.emphasis, "emphasis", nil, "Emphasis keys, comma separated, in priority order")
	fl.StringVar(&f.emphasisCustom, "emphasis-custom", "", "Additional emphasis as free text")
	fl.StringVar(&f.emphasisText, "emphasis-text", "", "All emphasis as a single free-text field")
	fl.StringVar(&f.topic, "topic", "", "Topic")
	fl.StringVar(&f.keywords, "keywords", "", "Keywords")
	fl.StringArrayVar(&f.references, "reference", nil, "Reference entry (repeatable)")
	fl.StringVar(&f.referencesFile, "references-file", "", `File with one reference per line ("-" for stdin)`)
	fl.BoolVar(&f.noMeta, "no-meta", false, "Leave out the meta-instructions section")
	fl.Var(coreHeadingValue{policy: &f.coreHeading}, "core-heading", "Detailed instructions heading when empty")
	fl.BoolVar(&f.render, "render", f.render, "Render the prompt as terminal markdown")
	fl.BoolVar(&f.copy, "copy", false, "Copy the prompt to the clipboard")
	fl.BoolVar(&f.publish, "publish", false, "Share the prompt in the library")
	fl.StringVar(&f.author, "author", "", "Author name shown in the library")

	cmd.MarkFlagsMutuallyExclusive("type", "type-custom")
	cmd.MarkFlagsMutuallyExclusive("level", "level-custom")
	cmd.MarkFlagsMutuallyExclusive("tone", "tone-custom")
	cmd.MarkFlagsMutuallyExclusive("reference", "references-file")
	cmd.MarkFlagsMutuallyExclusive("emphasis-text", "emphasis")
	cmd.MarkFlagsMutuallyExclusive("emphasis-text", "emphasis-custom")

	return cmd
}

// answerState validates the flags and builds the answers they describe.
func (f *composeFlags) answerState(stdin io.Reader) (domain.AnswerState, error) {
	var s domain.AnswerState

	for _, c := range []struct {
		field domain.ChoiceField
		flag  string
		in    choiceFlags
	}{
		{domain.FieldAssignmentType, "type", f.assignment},
		{domain.FieldAuthorLevel, "level", f.level},
		{domain.FieldTone, "tone", f.tone},
	} {
		if err := applyChoiceFlag(&s, c.field, c.flag, c.in); err != nil {
			return s, err
		}
	}
	s.SetChoice(domain.FieldMajorField, strings.TrimSpace(f.major))

	for _, raw := range f.emphasis {
		tag := domain.EmphasisTag(strings.TrimSpace(raw))
		if tag == "" {
			continue
		}
		if tag != domain.EmphasisCustom && composer.EmphasisLabel(tag) == string(tag) {
			return s, fmt.Errorf("unknown --emphasis %q (see `uniprompt presets`)", raw)
		}
		s.ToggleEmphasis(tag, true)
	}
	if f.emphasisCustom != "" {
		s.ToggleEmphasis(domain.EmphasisCustom, true)
		s.SetEmphasisCustom(f.emphasisCustom)
	}
	if f.emphasisText != "" {
		s.Emphasis = domain.LegacyEmphasis(f.emphasisText)
	}

	s.SetText(domain.FieldTopic, f.topic)
	s.SetText(domain.FieldKeywords, f.keywords)

	refs := strings.Join(f.references, "\n")
	if f.referencesFile != "" {
		data, err := readInput(f.referencesFile, stdin)
		if err != nil {
			return s, fmt.Errorf("reading references: %w", err)
		}
		refs = string(data)
	}
	s.SetText(domain.FieldReferences, refs)

	return s, nil
}

func applyChoiceFlag(s *domain.AnswerState, field domain.ChoiceField, flag string, in choiceFlags) error {
	if in.custom != "" {
		s.SetChoice(field, domain.CustomValue)
		s.SetCustom(field, in.custom)
		return nil
	}
	value := strings.TrimSpace(in.value)
	if value == "" {
		return nil
	}
	if _, ok := composer.TableFor(field)[value]; !ok {
		return fmt.Errorf("unknown --%s %q (see `uniprompt presets`, or use --%s-custom)", flag, value, flag)
	}
	s.SetChoice(field, value)
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// emitComposed prints the prompt and performs the requested copy and
// publish actions.
func emitComposed(cmd *cobra.Command, app *App, s *session.Session, f *composeFlags) error {
	out := cmd.OutOrStdout()

	text := s.Output()
	if f.render {
		rendered, err := renderMarkdown(text, defaultRenderWidth)
		if err != nil {
			return err
		}
		text = rendered
	}
	fmt.Fprintln(out, strings.TrimRight(text, "\n"))

	if !s.Ready() {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.ReadyIndicator(false))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if f.copy {
		if err := s.Copy(app.clipboard()); err != nil {
			return err
		}
		fmt.Fprintln(out, formatter.Success("클립보드에 복사했습니다."))
	}
	if f.publish {
		if err := publishSession(ctx, out, app, s, f.author); err != nil {
			return err
		}
	}
	return nil
}

// publishSession shares the session's prompt. Incomplete prompts are refused
// with session.ErrIncompletePrompt.
func publishSession(ctx context.Context, out io.Writer, app *App, s *session.Session, author string) error {
	if app.Library == nil {
		return errors.New("prompt library is not configured")
	}
	if !s.Ready() {
		return session.ErrIncompletePrompt
	}

	state := s.State()
	assignment := state.AssignmentType.Value
	if state.AssignmentType.IsCustom() {
		assignment = strings.TrimSpace(state.AssignmentType.Custom)
	}

	p, err := app.Library.Publish(ctx, service.PublishRequest{
		PromptText:     s.Output(),
		AuthorName:     author,
		AssignmentType: assignment,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatter.FormatPublished(p))
	return nil
}
