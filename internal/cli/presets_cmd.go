package cli

import (
	"fmt"

	"github.com/alexanderramin/uniprompt/internal/cli/formatter"
	"github.com/alexanderramin/uniprompt/internal/composer"
	"github.com/spf13/cobra"
)

func newPresetsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List preset keys and recipe block order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPresets(composer.New(app.Composer)))
			return nil
		},
	}
}
