package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"just now", now.Add(-10 * time.Second), "방금 전"},
		{"minutes", now.Add(-5 * time.Minute), "5분 전"},
		{"hours", now.Add(-3 * time.Hour), "3시간 전"},
		{"yesterday", now.Add(-30 * time.Hour), "어제"},
		{"older", time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC), "2025-12-01"},
		{"future today", now.Add(time.Hour), "오늘"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestampFrom(tt.input, now))
		})
	}
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", stripANSI(TruncID("1234567890abcdef")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}

func TestExcerpt_SkipsHeadings(t *testing.T) {
	text := "# [Uni-Prompt] AI 작업 지시서\n\n## 1. AI 페르소나\n- 당신은 전문가입니다."
	assert.Equal(t, "당신은 전문가입니다.", Excerpt(text, 40))
}

func TestExcerpt_TruncatesByDisplayWidth(t *testing.T) {
	got := Excerpt("가나다라마바사", 7)
	assert.Equal(t, "가나다…", got)
	assert.LessOrEqual(t, lipgloss.Width(got), 7)
}

func TestExcerpt_HeadingOnly(t *testing.T) {
	assert.Equal(t, "제목", Excerpt("# 제목", 20))
}

func TestRenderTable_AlignsWideCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"KEY", "LABEL"},
		[][]string{{"report", "리포트"}, {"ppt", "PPT 개요"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)

	assert.Equal(t, 8, strings.Index(lines[0], "LABEL"))
	assert.Equal(t, 8, strings.Index(lines[2], "리포트"))
	assert.Equal(t, 8, strings.Index(lines[3], "PPT 개요"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_ShortRow(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"x"}}))
	assert.Contains(t, out, "x")
}
