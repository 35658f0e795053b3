package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/uniprompt/internal/composer"
	"github.com/alexanderramin/uniprompt/internal/domain"
	"github.com/alexanderramin/uniprompt/internal/service"
)

const excerptWidth = 40

// AssignmentLabel returns the display label for an assignment type key.
func AssignmentLabel(key string) string {
	if key == "" {
		return "--"
	}
	return composer.Resolve(domain.Choice{Value: key}, composer.TableFor(domain.FieldAssignmentType))
}

// FormatLibrary renders the shared prompt library as a ranked table.
func FormatLibrary(entries []service.LibraryEntry) string {
	return formatLibraryAt(entries, time.Now())
}

func formatLibraryAt(entries []service.LibraryEntry, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("공유 프롬프트 라이브러리"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(Dim("아직 공유된 프롬프트가 없습니다. `uniprompt library publish`로 첫 프롬프트를 공유해보세요."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			StyleDim.Render(fmt.Sprintf("%d", i+1)),
			TruncID(e.Prompt.ID),
			LikeIndicator(e.Liked, e.Prompt.Likes),
			e.Prompt.DisplayAuthor(),
			AssignmentLabel(e.Prompt.AssignmentType),
			HumanTimestampFrom(e.Prompt.CreatedAt, now),
			Excerpt(e.Prompt.PromptText, excerptWidth),
		})
	}
	b.WriteString(RenderTable([]string{"#", "ID", "좋아요", "작성자", "유형", "등록", "내용"}, rows))
	return b.String()
}

// FormatLibraryEntry renders one shared prompt in full.
func FormatLibraryEntry(e *service.LibraryEntry) string {
	p := e.Prompt
	meta := fmt.Sprintf("%s  %s  %s  %s",
		Bold(p.DisplayAuthor()),
		LikeIndicator(e.Liked, p.Likes),
		AssignmentLabel(p.AssignmentType),
		Dim(p.CreatedAt.Local().Format("2006-01-02 15:04")),
	)
	return RenderBox(TruncID(p.ID), meta+"\n\n"+p.PromptText) + "\n"
}

// FormatPublished confirms a publish.
func FormatPublished(p *domain.SharedPrompt) string {
	return fmt.Sprintf("%s %s (%s)\n",
		Success("프롬프트를 공유했습니다:"),
		TruncID(p.ID),
		p.DisplayAuthor(),
	)
}

// FormatLikeResult reports the like state after a toggle.
func FormatLikeResult(r service.LikeResult) string {
	verb := "좋아요를 취소했습니다"
	if r.Liked {
		verb = "좋아요를 눌렀습니다"
	}
	return fmt.Sprintf("%s %s  %s\n", TruncID(r.PromptID), verb, LikeIndicator(r.Liked, r.Likes))
}
