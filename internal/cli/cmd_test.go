package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/alexanderramin/uniprompt/internal/composer"
	"github.com/alexanderramin/uniprompt/internal/repository"
	"github.com/alexanderramin/uniprompt/internal/service"
	"github.com/alexanderramin/uniprompt/internal/session"
	"github.com/alexanderramin/uniprompt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClipboard struct {
	text  string
	calls int
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.calls++
	c.text = text
	return nil
}

// testApp wires an App backed by an in-memory DB and a recording clipboard.
func testApp(t *testing.T) (*App, *recordingClipboard) {
	t.Helper()
	db := testutil.NewTestDB(t)
	cb := &recordingClipboard{}

	return &App{
		Library: service.NewLibraryService(
			repository.NewSQLiteSharedPromptRepo(db),
			repository.NewSQLiteLikedPromptRepo(db),
		),
		Composer:  composer.DefaultOptions(),
		Clipboard: cb,
	}, cb
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdWithInput(t, app, nil, args...)
}

func executeCmdWithInput(t *testing.T, app *App, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

var reportArgs = []string{
	"compose",
	"--type", "report",
	"--level", "undergrad-senior",
	"--tone", "critical",
	"--major", "경제학",
	"--topic", "탄소세의 효과",
}

// --- Root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app, _ := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "uniprompt")
	assert.Contains(t, output, "compose")
}

func TestWizardCmd_RequiresTerminal(t *testing.T) {
	app, _ := testApp(t)
	app.IsInteractive = func() bool { return false }

	_, err := executeCmd(t, app, "wizard")
	assert.ErrorContains(t, err, "interactive terminal")
}

// --- compose ---

func TestComposeCmd_FullReport(t *testing.T) {
	app, _ := testApp(t)

	args := append(append([]string{}, reportArgs...),
		"--emphasis", "word-count,case-study",
		"--emphasis-custom", "그래프 2개 포함",
		"--keywords", "탄소 가격제",
		"--reference", "Stern (2007)",
		"--reference", "Nordhaus (2019)",
	)
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err)

	assert.Contains(t, out, "# [Uni-Prompt] AI 작업 지시서")
	assert.Contains(t, out, "'3-4학년 학부생'의 과제")
	assert.Contains(t, out, "'비평적 스타일' 스타일")
	assert.Contains(t, out, "경제학")
	assert.Contains(t, out, "- **주제:** 탄소세의 효과")
	assert.Contains(t, out, "## 3. 작업 순서 (Chain of Thought)")
	assert.Contains(t, out, "    - Stern (2007)\n    - Nordhaus (2019)")

	words := strings.Index(out, "분량 엄수")
	cases := strings.Index(out, "사례 위주로 작성")
	custom := strings.Index(out, "그래프 2개 포함")
	assert.True(t, words < cases && cases < custom, "emphasis must keep flag order")
	assert.NotContains(t, out, "필수 항목 미입력")
}

func TestComposeCmd_NoTypePrintsGuidance(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "compose", "--topic", "무시됨")
	require.NoError(t, err)
	assert.Contains(t, out, composer.GuidanceMessage)
	assert.NotContains(t, out, "무시됨")
	assert.Contains(t, out, "필수 항목 미입력")
}

func TestComposeCmd_CustomChoices(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "compose",
		"--type-custom", "학회 발표문",
		"--tone-custom", "친근한 말투",
		"--topic", "LLM 평가",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "학회 발표문")
	assert.Contains(t, out, "'친근한 말투' 스타일")
	// Custom assignment types fall back to the default recipe.
	assert.Contains(t, out, "## 6. 최종 출력 규칙")
}

func TestComposeCmd_RejectsUnknownPreset(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "compose", "--type", "report", "--tone", "sarcastic")
	assert.ErrorContains(t, err, `unknown --tone "sarcastic"`)

	_, err = executeCmd(t, app, "compose", "--type", "report", "--emphasis", "brevity")
	assert.ErrorContains(t, err, `unknown --emphasis "brevity"`)
}

func TestComposeCmd_ChoiceAndCustomAreExclusive(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "compose", "--type", "report", "--type-custom", "x")
	assert.Error(t, err)
}

func TestComposeCmd_EmphasisText(t *testing.T) {
	app, _ := testApp(t)

	args := append(append([]string{}, reportArgs...), "--emphasis-text", "A4 3장 이내")
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "- **교수님 강조 사항:**\n    - A4 3장 이내")

	_, err = executeCmd(t, app, append(append([]string{}, reportArgs...),
		"--emphasis-text", "x", "--emphasis", "word-count")...)
	assert.Error(t, err)
}

func TestComposeCmd_NoMeta(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, append(append([]string{}, reportArgs...), "--no-meta")...)
	require.NoError(t, err)
	assert.NotContains(t, out, "Meta-Instructions")
}

func TestComposeCmd_CoreHeadingPolicy(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, reportArgs...)
	require.NoError(t, err)
	assert.NotContains(t, out, "## 4. 세부 지침")

	out, err = executeCmd(t, app, append(append([]string{}, reportArgs...), "--core-heading", "always")...)
	require.NoError(t, err)
	assert.Contains(t, out, "## 4. 세부 지침 (Detailed Instructions)")

	_, err = executeCmd(t, app, append(append([]string{}, reportArgs...), "--core-heading", "never")...)
	assert.ErrorContains(t, err, "unknown core heading policy")
}

func TestComposeCmd_ReferencesFromStdin(t *testing.T) {
	app, _ := testApp(t)

	stdin := strings.NewReader("Kahneman (2011)\n\nThaler (2015)\n")
	out, err := executeCmdWithInput(t, app, stdin,
		append(append([]string{}, reportArgs...), "--references-file", "-")...)
	require.NoError(t, err)
	assert.Contains(t, out, "    - Kahneman (2011)\n    - Thaler (2015)")
}

func TestComposeCmd_CopyRefusesIncompletePrompt(t *testing.T) {
	app, cb := testApp(t)

	_, err := executeCmd(t, app, "compose", "--type", "report", "--copy")
	assert.ErrorIs(t, err, session.ErrIncompletePrompt)
	assert.Zero(t, cb.calls)
}

func TestComposeCmd_CopyWritesClipboard(t *testing.T) {
	app, cb := testApp(t)

	out, err := executeCmd(t, app, append(append([]string{}, reportArgs...), "--copy")...)
	require.NoError(t, err)
	require.Equal(t, 1, cb.calls)
	assert.True(t, strings.HasPrefix(cb.text, "# [Uni-Prompt] AI 작업 지시서"))
	assert.Contains(t, out, cb.text)
	assert.Contains(t, out, "클립보드에 복사했습니다")
}

func TestComposeCmd_PublishSharesPrompt(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, append(append([]string{}, reportArgs...), "--publish", "--author", "지민")...)
	require.NoError(t, err)
	assert.Contains(t, out, "프롬프트를 공유했습니다")

	entries, err := app.Library.List(context.Background(), "report")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "지민", entries[0].Prompt.AuthorName)
	assert.Contains(t, entries[0].Prompt.PromptText, "탄소세의 효과")
}

func TestComposeCmd_PublishRefusesIncompletePrompt(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "compose", "--type", "ppt", "--publish")
	assert.ErrorIs(t, err, session.ErrIncompletePrompt)

	entries, err := app.Library.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestComposeCmd_Render(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, append(append([]string{}, reportArgs...), "--render")...)
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "Uni-Prompt")
}

// --- presets ---

func TestPresetsCmd(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "presets")
	require.NoError(t, err)
	out = stripANSI(out)
	assert.Contains(t, out, "lab-report")
	assert.Contains(t, out, "실험 보고서")
	assert.Contains(t, out, "brainstorming")
}
