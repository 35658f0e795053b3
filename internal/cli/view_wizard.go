package cli

import (
	"strings"

	"github.com/alexanderramin/uniprompt/internal/cli/formatter"
	"github.com/alexanderramin/uniprompt/internal/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type wizardKeyMap struct {
	Cancel      key.Binding
	PreviewUp   key.Binding
	PreviewDown key.Binding
}

func defaultWizardKeys() wizardKeyMap {
	return wizardKeyMap{
		Cancel:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
		PreviewUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "preview up")),
		PreviewDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "preview down")),
	}
}

func (k wizardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		k.PreviewUp,
		k.PreviewDown,
		k.Cancel,
	}
}

func (k wizardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// wizardModel shows the questionnaire next to a live preview of the composed
// prompt. Every message that reaches the form resyncs the session, so the
// preview always reflects the current answers.
type wizardModel struct {
	answers *wizardAnswers
	form    *huh.Form
	session *session.Session
	preview viewport.Model
	keys    wizardKeyMap
	help    help.Model
	render  func(text string, width int) string

	width, height int
	completed     bool
	cancelled     bool
}

func newWizardModel(app *App) *wizardModel {
	a := &wizardAnswers{}
	m := &wizardModel{
		answers: a,
		form:    newWizardForm(a, app.Library != nil),
		session: app.newSession(app.Composer),
		preview: viewport.New(defaultRenderWidth/2, 20),
		keys:    defaultWizardKeys(),
		help:    help.New(),
		render:  previewRenderer(app.RenderMarkdown),
	}
	m.sync()
	return m
}

func (m *wizardModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.PreviewUp, m.keys.PreviewDown):
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	m.sync()

	switch m.form.State {
	case huh.StateCompleted:
		m.completed = true
		return m, tea.Quit
	case huh.StateAborted:
		m.cancelled = true
		return m, tea.Quit
	}
	return m, cmd
}

// sync pushes the form values through the session and redraws the preview.
func (m *wizardModel) sync() {
	m.answers.trackEmphasisOrder()
	m.session.Replace(m.answers.state())
	m.preview.SetContent(m.render(m.session.Output(), m.preview.Width))
}

const previewChrome = 4 // border plus horizontal padding

func (m *wizardModel) resize(width, height int) {
	m.width, m.height = width, height
	formWidth := width / 2
	m.form = m.form.WithWidth(formWidth)

	m.preview.Width = max(width-formWidth-previewChrome, 10)
	m.preview.Height = max(height-4, 5)
	m.sync()
}

func (m *wizardModel) View() string {
	formWidth := m.width / 2
	if formWidth == 0 {
		formWidth = defaultRenderWidth / 2
	}
	left := lipgloss.NewStyle().Width(formWidth).Render(m.form.View())

	title := formatter.StyleHeader.Render("미리보기") + "  " + formatter.ReadyIndicator(m.session.Ready())
	right := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(0, 1).
		Render(title + "\n" + m.preview.View())

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
