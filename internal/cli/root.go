package cli

import (
	"github.com/alexanderramin/uniprompt/internal/composer"
	"github.com/alexanderramin/uniprompt/internal/service"
	"github.com/alexanderramin/uniprompt/internal/session"
	"github.com/spf13/cobra"
)

// App holds the services and settings shared by CLI commands.
type App struct {
	Library  service.LibraryService
	Composer composer.Options

	// Clipboard receives copied prompts. Nil uses the system clipboard.
	Clipboard session.Clipboard

	// RenderMarkdown renders composed prompts through glamour by default.
	RenderMarkdown bool

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "uniprompt" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "uniprompt",
		Short: "Academic writing prompt composer",
		Long: `uniprompt composes a structured instruction document for an AI writing
assistant from a few answers about your assignment, and shares finished
prompts through a liked-ranked library.

Run without arguments in a terminal to start the interactive wizard.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runWizard(cmd, app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newComposeCmd(app),
		newWizardCmd(app),
		newPresetsCmd(app),
		newLibraryCmd(app),
	)

	return root
}
