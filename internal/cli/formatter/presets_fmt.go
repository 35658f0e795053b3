package formatter

import (
	"strings"

	"github.com/alexanderramin/uniprompt/internal/composer"
)

// FormatPresets lists every preset key with its rendered phrase, followed by
// the block order of each recipe.
func FormatPresets(c *composer.Composer) string {
	var b strings.Builder

	sections := []struct {
		title   string
		presets []composer.Preset
	}{
		{"과제 유형 (--type)", composer.AssignmentTypes},
		{"작성자 수준 (--level)", composer.AuthorLevels},
		{"문체 (--tone)", composer.Tones},
		{"강조 사항 (--emphasis)", composer.EmphasisTags},
	}
	for _, s := range sections {
		b.WriteString(Header(s.title))
		b.WriteString("\n")
		rows := make([][]string, 0, len(s.presets))
		for _, p := range s.presets {
			rows = append(rows, []string{StyleBlue.Render(p.Key), p.Label})
		}
		b.WriteString(RenderTable([]string{"KEY", "LABEL"}, rows))
		b.WriteString("\n")
	}

	b.WriteString(Header("레시피"))
	b.WriteString("\n")
	rows := make([][]string, 0)
	for _, key := range composer.RecipeKeys() {
		rows = append(rows, []string{StylePurple.Render(key), strings.Join(c.SelectRecipe(key).Names(), " → ")})
	}
	b.WriteString(RenderTable([]string{"RECIPE", "BLOCKS"}, rows))
	return b.String()
}
