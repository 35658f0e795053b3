package composer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/uniprompt/internal/domain"
)

// BlockKind identifies one section of the composed prompt.
type BlockKind int

const (
	BlockHeader BlockKind = iota
	BlockPersona
	BlockTaskDefinition
	BlockChainOfThought
	BlockCoreInstructions
	BlockSourceHandling
	BlockSelfCorrection
	BlockMetaInstructions
)

var blockNames = [...]string{
	BlockHeader:           "header",
	BlockPersona:          "persona",
	BlockTaskDefinition:   "taskDefinition",
	BlockChainOfThought:   "chainOfThought",
	BlockCoreInstructions: "coreInstructions",
	BlockSourceHandling:   "sourceHandling",
	BlockSelfCorrection:   "selfCorrection",
	BlockMetaInstructions: "metaInstructions",
}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockNames) {
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
	return blockNames[k]
}

// Placeholder text rendered in place of missing required answers.
const (
	PlaceholderAssignmentType = "[과제 유형 선택 필요]"
	PlaceholderTopic          = "[주제 입력 필요]"
)

// Fallback phrases for optional persona fields.
const (
	fallbackMajorField  = "다양한 분야"
	fallbackAuthorLevel = "학생"
	fallbackTone        = "기본"
)

// chainOfThoughtTypes are the assignment types that get the step-by-step
// work procedure.
var chainOfThoughtTypes = map[string]bool{
	string(domain.AssignmentReport):    true,
	string(domain.AssignmentSummary):   true,
	string(domain.AssignmentPPT):       true,
	string(domain.AssignmentLabReport): true,
}

const headerText = "# [Uni-Prompt] AI 작업 지시서"

const chainOfThoughtText = `## 3. 작업 순서 (Chain of Thought)
1. **정보 분석:** 내가 제공하는 모든 정보를 종합적으로 분석한다.
2. **구조 설계:** 분석 내용을 바탕으로, 과제에 가장 적합한 구조를 설계한다.
3. **초안 작성:** 설계한 구조에 따라 내용을 채워 초안을 작성한다.
4. **자체 검토:** '자체 검토 체크리스트'에 따라 결과물을 검토하고 수정한다.`

const coreInstructionsHeading = "## 4. 세부 지침 (Detailed Instructions)"

const metaInstructionsText = "## 6. 최종 출력 규칙 (Meta-Instructions)\n" +
	"**가장 중요:** 너의 답변은 일회성으로 끝나서는 안 되며, 나와의 지속적인 상호작용을 위한 '워크스페이스'를 제공해야 한다. 다음 규칙을 반드시 준수해줘.\n" +
	"1.  **[계획 브리핑]:** 가장 먼저, \"알겠습니다. 요청하신 과제에 대해...\"로 시작하며 작업 계획을 간략히 브리핑한다.\n" +
	"2.  **[핵심 과업 수행]:** 그 후에, 위에서 정의된 핵심 과업을 수행한다.\n" +
	"3.  **[다음 스텝 제안]:** 마지막으로, 생성된 결과물에 기반하여 내가 추가로 요청할 수 있는 작업들을 '**[추가 작업 제안]'** 이라는 제목으로 3~4가지 제안한다. " +
	"각 제안은 내가 바로 복사해서 입력할 수 있는 명령어 형식이어야 한다. (예: `/expand [섹션]`, `/critique`, `/rephrase`, `/examples`)"

// Block renders one section for state. An empty string means the section's
// preconditions are not met and it should be left out.
func (c *Composer) Block(kind BlockKind, state *domain.AnswerState) string {
	switch kind {
	case BlockHeader:
		return headerText
	case BlockPersona:
		return personaBlock(state)
	case BlockTaskDefinition:
		return taskDefinitionBlock(state)
	case BlockChainOfThought:
		if chainOfThoughtTypes[state.AssignmentType.Value] {
			return chainOfThoughtText
		}
		return ""
	case BlockCoreInstructions:
		return coreInstructionsBlock(state, c.opts.CoreHeading)
	case BlockSourceHandling:
		return sourceHandlingBlock(state)
	case BlockSelfCorrection:
		return selfCorrectionBlock(state)
	case BlockMetaInstructions:
		return metaInstructionsText
	}
	return ""
}

func personaBlock(state *domain.AnswerState) string {
	major := domain.CoalesceStr(ResolveField(state, domain.FieldMajorField), fallbackMajorField)
	level := domain.CoalesceStr(ResolveField(state, domain.FieldAuthorLevel), fallbackAuthorLevel)
	tone := domain.CoalesceStr(ResolveField(state, domain.FieldTone), fallbackTone)

	var b strings.Builder
	b.WriteString("## 1. AI 페르소나 (AI Persona)\n")
	fmt.Fprintf(&b, "- 너는 '%s' 전공 지식을 갖춘 전문 AI 어시스턴트야. '%s'의 과제를 돕는 것이 너의 임무야.\n", major, level)
	fmt.Fprintf(&b, "- 모든 답변은 '%s' 스타일을 일관되게 유지해야 해.", tone)
	return b.String()
}

func taskDefinitionBlock(state *domain.AnswerState) string {
	assignment := domain.CoalesceStr(ResolveField(state, domain.FieldAssignmentType), PlaceholderAssignmentType)
	topic := state.Topic
	if strings.TrimSpace(topic) == "" {
		topic = PlaceholderTopic
	}

	return "## 2. 핵심 과업 (Primary Task)\n" +
		"- **과제 종류:** " + assignment + "\n" +
		"- **주제:** " + topic
}

// emphasisItems returns the rendered emphasis phrases in selection order,
// followed by the custom requirement when present.
func emphasisItems(e domain.Emphasis) []string {
	items := make([]string, 0, len(e.Tags)+1)
	for _, tag := range e.Tags {
		if tag == domain.EmphasisCustom {
			continue
		}
		items = append(items, EmphasisLabel(tag))
	}
	if custom := strings.TrimSpace(e.Custom); custom != "" {
		items = append(items, custom)
	}
	return items
}

func coreInstructionsBlock(state *domain.AnswerState, policy CoreHeadingPolicy) string {
	var parts []string

	if items := emphasisItems(state.Emphasis); len(items) > 0 {
		lines := make([]string, 0, len(items)+1)
		lines = append(lines, "- **교수님 강조 사항:**")
		for _, item := range items {
			lines = append(lines, "    - "+item)
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	if kw := strings.TrimSpace(state.Keywords); kw != "" {
		parts = append(parts, fmt.Sprintf("- **핵심 키워드:** 다음 키워드를 중심으로 내용을 전개해줘: \"%s\"", kw))
	}

	if len(parts) == 0 {
		if policy == CoreHeadingAlways {
			return coreInstructionsHeading
		}
		return ""
	}
	return coreInstructionsHeading + "\n" + strings.Join(parts, "\n")
}

// referenceLines splits the reference list on newlines, dropping blank lines.
func referenceLines(refs string) []string {
	var out []string
	for _, line := range strings.Split(refs, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func sourceHandlingBlock(state *domain.AnswerState) string {
	lines := referenceLines(state.References)
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("- **참고 문헌 활용:** 아래 문헌들의 핵심 논지를 종합하고, 서로 비교/대조하여 논리를 강화해줘. 단순 요약은 지양해줘.\n")
	b.WriteString("  - 참고 문헌 리스트:")
	for _, line := range lines {
		b.WriteString("\n    - ")
		b.WriteString(line)
	}
	return b.String()
}

func selfCorrectionBlock(state *domain.AnswerState) string {
	level := domain.CoalesceStr(ResolveField(state, domain.FieldAuthorLevel), fallbackAuthorLevel)
	tone := domain.CoalesceStr(ResolveField(state, domain.FieldTone), fallbackTone)

	var b strings.Builder
	b.WriteString("## 5. 자체 검토 체크리스트 (Self-Correction Checklist)\n")
	b.WriteString("결과물을 제출하기 전, 아래 항목을 스스로 검토하고 부족한 부분을 수정한 후 최종 답변을 해줘.\n")
	b.WriteString("- **[ ] 요구사항 충족:** 내가 요청한 모든 지시사항(주제, 키워드, 강조사항)이 정확히 반영되었는가?\n")
	fmt.Fprintf(&b, "- **[ ] 페르소나 유지:** 답변의 전체적인 수준이 '%s'의 눈높이에 맞는가? '%s'이 일관되게 유지되었는가?\n", level, tone)
	b.WriteString("- **[ ] 논리성 및 완결성:** 글의 구조가 체계적이고, 논리적 비약이나 미완성된 부분이 없는가?")
	return b.String()
}
