package composer

import "github.com/alexanderramin/uniprompt/internal/domain"

// Resolve returns the display string of a preset-or-custom choice.
// A custom choice yields its override even when empty; a known preset yields
// its phrase; anything else is returned verbatim, which is "" when unset.
func Resolve(c domain.Choice, table Table) string {
	if c.IsCustom() {
		return c.Custom
	}
	if label, ok := table[c.Value]; ok {
		return label
	}
	return c.Value
}

// ResolveField resolves a named field of state through its lookup table.
func ResolveField(state *domain.AnswerState, f domain.ChoiceField) string {
	return Resolve(state.Choice(f), TableFor(f))
}
