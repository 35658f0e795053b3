package cli

import (
	"slices"

	"github.com/alexanderramin/uniprompt/internal/cli/formatter"
	"github.com/alexanderramin/uniprompt/internal/composer"
	"github.com/alexanderramin/uniprompt/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// uniHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func uniHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[✔] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// Post-wizard actions.
const (
	actionCopy    = "copy"
	actionPublish = "publish"
)

// wizardAnswers is the value store the huh form writes into.
type wizardAnswers struct {
	assignmentType   string
	assignmentCustom string
	authorLevel      string
	levelCustom      string
	tone             string
	toneCustom       string
	majorField       string

	// emphasis is the multi-select value, in option order. emphasisOrder
	// keeps the same tags in the order they were ticked.
	emphasis       []string
	emphasisOrder  []string
	emphasisCustom string

	topic      string
	keywords   string
	references string

	actions []string
	author  string
}

// trackEmphasisOrder reconciles emphasisOrder with the current selection:
// unticked tags drop out, newly ticked ones go to the end.
func (a *wizardAnswers) trackEmphasisOrder() {
	kept := a.emphasisOrder[:0]
	for _, tag := range a.emphasisOrder {
		if slices.Contains(a.emphasis, tag) {
			kept = append(kept, tag)
		}
	}
	for _, tag := range a.emphasis {
		if !slices.Contains(kept, tag) {
			kept = append(kept, tag)
		}
	}
	a.emphasisOrder = kept
}

func (a *wizardAnswers) wants(action string) bool {
	return slices.Contains(a.actions, action)
}

// state converts the form values into an AnswerState.
func (a *wizardAnswers) state() domain.AnswerState {
	var s domain.AnswerState

	setChoice(&s, domain.FieldAssignmentType, a.assignmentType, a.assignmentCustom)
	setChoice(&s, domain.FieldAuthorLevel, a.authorLevel, a.levelCustom)
	setChoice(&s, domain.FieldTone, a.tone, a.toneCustom)
	s.SetChoice(domain.FieldMajorField, a.majorField)

	for _, tag := range a.emphasisOrder {
		s.ToggleEmphasis(domain.EmphasisTag(tag), true)
	}
	if s.Emphasis.Has(domain.EmphasisCustom) {
		s.SetEmphasisCustom(a.emphasisCustom)
	}

	s.SetText(domain.FieldTopic, a.topic)
	s.SetText(domain.FieldKeywords, a.keywords)
	s.SetText(domain.FieldReferences, a.references)
	return s
}

func setChoice(s *domain.AnswerState, f domain.ChoiceField, value, custom string) {
	s.SetChoice(f, value)
	if value == domain.CustomValue {
		s.SetCustom(f, custom)
	}
}

// newWizardForm builds the three-step questionnaire plus the closing
// actions step. Custom text inputs are separate groups hidden until their
// choice is set to custom.
func newWizardForm(a *wizardAnswers, libraryEnabled bool) *huh.Form {
	emphasisOpts := presetOptions(composer.EmphasisTags, "", false)
	emphasisOpts = append(emphasisOpts, huh.NewOption("기타 (직접 입력)", string(domain.EmphasisCustom)))

	actionOpts := []huh.Option[string]{huh.NewOption("클립보드에 복사", actionCopy)}
	if libraryEnabled {
		actionOpts = append(actionOpts, huh.NewOption("라이브러리에 공유", actionPublish))
	}

	return huh.NewForm(
		huh.NewGroup(
			choiceSelect("Step 1. 과제 유형", composer.AssignmentTypes, "-- 선택하세요 --", &a.assignmentType).
				Validate(requireChoice),
		),
		customGroup("과제 유형 직접 입력", &a.assignmentType, &a.assignmentCustom),

		huh.NewGroup(
			choiceSelect("Step 2. 작성자 수준", composer.AuthorLevels, "선택 안 함", &a.authorLevel),
		),
		customGroup("작성자 수준 직접 입력", &a.authorLevel, &a.levelCustom),
		huh.NewGroup(
			choiceSelect("Step 2. 문체", composer.Tones, "선택 안 함", &a.tone),
		),
		customGroup("문체 직접 입력", &a.tone, &a.toneCustom),
		huh.NewGroup(
			huh.NewInput().
				Title("Step 2. 전공 분야").
				Placeholder("예: 경제학").
				Value(&a.majorField),
		),

		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Step 3. 강조 사항").
				Description("스페이스로 선택, 선택한 순서대로 지시서에 들어갑니다").
				Options(emphasisOpts...).
				Value(&a.emphasis),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("강조 사항 직접 입력").
				Value(&a.emphasisCustom),
		).WithHideFunc(func() bool { return !slices.Contains(a.emphasis, string(domain.EmphasisCustom)) }),
		huh.NewGroup(
			huh.NewInput().
				Title("Step 3. 주제").
				Placeholder("예: 탄소세가 산업 구조에 미치는 영향").
				Value(&a.topic),
			huh.NewInput().
				Title("Step 3. 키워드").
				Value(&a.keywords),
			huh.NewText().
				Title("Step 3. 참고 자료").
				Description("한 줄에 하나씩").
				Lines(4).
				Value(&a.references),
		),

		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("완료 후 작업").
				Options(actionOpts...).
				Value(&a.actions),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("공유할 이름 (비우면 익명)").
				Value(&a.author),
		).WithHideFunc(func() bool { return !a.wants(actionPublish) }),
	).WithTheme(uniHuhTheme()).WithShowHelp(false)
}
