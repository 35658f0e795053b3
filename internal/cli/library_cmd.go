package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/uniprompt/internal/cli/formatter"
	"github.com/alexanderramin/uniprompt/internal/service"
	"github.com/spf13/cobra"
)

// resolvePromptID matches input against full IDs, then unique ID prefixes.
func resolvePromptID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("prompt ID is required")
	}

	entries, err := app.Library.List(ctx, "")
	if err != nil {
		return "", err
	}

	var matches []string
	for _, e := range entries {
		if e.Prompt.ID == input {
			return e.Prompt.ID, nil
		}
		if strings.HasPrefix(e.Prompt.ID, input) {
			matches = append(matches, e.Prompt.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("prompt not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("prompt ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newLibraryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "library",
		Aliases: []string{"lib"},
		Short:   "Browse, share and like prompts",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Library == nil {
				return errors.New("prompt library is not configured")
			}
			return nil
		},
	}

	cmd.AddCommand(
		newLibraryListCmd(app),
		newLibraryShowCmd(app),
		newLibraryPublishCmd(app),
		newLibraryLikeCmd(app),
	)

	return cmd
}

func newLibraryListCmd(app *App) *cobra.Command {
	var assignmentType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shared prompts, most liked first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Library.List(context.Background(), assignmentType)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLibrary(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&assignmentType, "type", "", "Only prompts composed for this assignment type")
	return cmd
}

func newLibraryShowCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a shared prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePromptID(ctx, app, args[0])
			if err != nil {
				return err
			}
			entry, err := app.Library.Get(ctx, id)
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), entry.Prompt.PromptText)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLibraryEntry(entry))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the prompt text")
	return cmd
}

func newLibraryPublishCmd(app *App) *cobra.Command {
	var text, file, author, assignmentType string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Share a prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				data, err := readInput(file, cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading prompt: %w", err)
				}
				text = string(data)
			}

			p, err := app.Library.Publish(context.Background(), service.PublishRequest{
				PromptText:     text,
				AuthorName:     author,
				AssignmentType: assignmentType,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPublished(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Prompt text")
	cmd.Flags().StringVar(&file, "file", "", `Read the prompt from a file ("-" for stdin)`)
	cmd.Flags().StringVar(&author, "author", "", "Author name (blank shows as anonymous)")
	cmd.Flags().StringVar(&assignmentType, "type", "", "Assignment type the prompt was written for")
	cmd.MarkFlagsMutuallyExclusive("text", "file")
	cmd.MarkFlagsOneRequired("text", "file")

	return cmd
}

func newLibraryLikeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "like ID",
		Short: "Like a shared prompt, or take the like back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePromptID(ctx, app, args[0])
			if err != nil {
				return err
			}
			entry, err := app.Library.Get(ctx, id)
			if err != nil {
				return err
			}

			res, err := app.Library.ToggleLike(ctx, id, entry.Prompt.Likes)
			if err != nil {
				return fmt.Errorf("like not saved, still %s: %w",
					formatter.LikeIndicator(res.Liked, res.Likes), err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLikeResult(res))
			return nil
		},
	}
}
