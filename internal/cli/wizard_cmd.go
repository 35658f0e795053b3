package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/uniprompt/internal/cli/formatter"
	"github.com/alexanderramin/uniprompt/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Compose a prompt step by step with a live preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("the wizard needs an interactive terminal; use `uniprompt compose` instead")
			}
			return runWizard(cmd, app)
		},
	}
}

func runWizard(cmd *cobra.Command, app *App) error {
	m := newWizardModel(app)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}
	wm, ok := final.(*wizardModel)
	if !ok {
		return fmt.Errorf("unexpected wizard model %T", final)
	}
	return finishWizard(context.Background(), cmd.OutOrStdout(), app, wm)
}

// finishWizard prints the composed prompt and runs the actions chosen in the
// last step. An incomplete prompt skips copy and publish with a warning.
func finishWizard(ctx context.Context, out io.Writer, app *App, m *wizardModel) error {
	if m.cancelled || !m.completed {
		fmt.Fprintln(out, formatter.Dim("취소되었습니다."))
		return nil
	}

	fmt.Fprintln(out, m.session.Output())

	if m.answers.wants(actionCopy) {
		switch err := m.session.Copy(app.clipboard()); {
		case errors.Is(err, session.ErrIncompletePrompt):
			fmt.Fprintln(out, formatter.StyleYellow.Render("복사하지 않았습니다: "+err.Error()))
		case err != nil:
			return err
		default:
			fmt.Fprintln(out, formatter.Success("클립보드에 복사했습니다."))
		}
	}

	if m.answers.wants(actionPublish) {
		err := publishSession(ctx, out, app, m.session, m.answers.author)
		if errors.Is(err, session.ErrIncompletePrompt) {
			fmt.Fprintln(out, formatter.StyleYellow.Render("공유하지 않았습니다: "+err.Error()))
			return nil
		}
		return err
	}
	return nil
}
