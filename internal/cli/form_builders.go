package cli

import (
	"errors"

	"github.com/alexanderramin/uniprompt/internal/composer"
	"github.com/alexanderramin/uniprompt/internal/domain"
	"github.com/charmbracelet/huh"
)

const customOptionLabel = "직접 입력"

// presetOptions turns a preset list into select options. A leading blank
// option keeps the field unanswered; custom appends the free-text option.
func presetOptions(presets []composer.Preset, blank string, custom bool) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(presets)+2)
	if blank != "" {
		opts = append(opts, huh.NewOption(blank, ""))
	}
	for _, p := range presets {
		opts = append(opts, huh.NewOption(p.Label, p.Key))
	}
	if custom {
		opts = append(opts, huh.NewOption(customOptionLabel, domain.CustomValue))
	}
	return opts
}

// choiceSelect returns a select over presets plus the custom option.
func choiceSelect(title string, presets []composer.Preset, blank string, value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(presetOptions(presets, blank, true)...).
		Value(value)
}

// customGroup returns a group holding the free-text input for a choice. It is
// shown only while the choice is set to custom.
func customGroup(title string, choice, value *string) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().
			Title(title).
			Placeholder("자유롭게 입력하세요").
			Value(value),
	).WithHideFunc(func() bool { return *choice != domain.CustomValue })
}

func requireChoice(s string) error {
	if s == "" {
		return errors.New("과제 유형을 선택해주세요")
	}
	return nil
}
