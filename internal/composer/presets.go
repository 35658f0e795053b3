package composer

import "github.com/alexanderramin/uniprompt/internal/domain"

// Preset is one selectable option and the phrase it renders as.
type Preset struct {
	Key   string
	Label string
}

// Table maps preset keys to their display phrases.
type Table map[string]string

// Ordered preset lists, in the order the wizard offers them.
var (
	AssignmentTypes = []Preset{
		{string(domain.AssignmentReport), "리포트"},
		{string(domain.AssignmentPPT), "PPT 개요"},
		{string(domain.AssignmentSummary), "논문 요약/분석"},
		{string(domain.AssignmentProblemSolving), "연습문제 풀이"},
		{string(domain.AssignmentBrainstorming), "브레인스토밍"},
		{string(domain.AssignmentProofreading), "글 교정"},
		{string(domain.AssignmentLabReport), "실험 보고서"},
		{string(domain.AssignmentCoverLetter), "자기소개서"},
	}

	AuthorLevels = []Preset{
		{string(domain.LevelHighSchool), "고등학생"},
		{string(domain.LevelUndergradFreshman), "1-2학년 학부생"},
		{string(domain.LevelUndergradSenior), "3-4학년 학부생"},
		{string(domain.LevelMaster), "석사 과정생"},
		{string(domain.LevelDoctor), "박사 과정생"},
	}

	Tones = []Preset{
		{string(domain.ToneAcademic), "학술적 스타일"},
		{string(domain.ToneExplanatory), "설명적 스타일"},
		{string(domain.ToneCritical), "비평적 스타일"},
		{string(domain.TonePersuasive), "설득적 스타일"},
		{string(domain.ToneCreative), "창의적 스타일"},
	}

	EmphasisTags = []Preset{
		{string(domain.EmphasisCaseStudy), "사례 위주로 작성"},
		{string(domain.EmphasisPersonalThoughts), "개인적인 생각/느낀점 포함"},
		{string(domain.EmphasisCitationAPA), "출처 표기 필수 (APA 형식)"},
		{string(domain.EmphasisWordCount), "분량 엄수"},
		{string(domain.EmphasisQuantitative), "정량적 데이터 포함"},
		{string(domain.EmphasisCompareContrast), "두 가지 관점 비교/대조"},
		{string(domain.EmphasisLatestResearch), "최신 연구 동향 반영"},
		{string(domain.EmphasisTheoreticalBackground), "이론적 배경 강화"},
		{string(domain.EmphasisDataStatistics), "구체적인 데이터 및 통계 활용"},
	}
)

var (
	assignmentTypeTable = newTable(AssignmentTypes)
	authorLevelTable    = newTable(AuthorLevels)
	toneTable           = newTable(Tones)
	emphasisTable       = newTable(EmphasisTags)
)

func newTable(presets []Preset) Table {
	t := make(Table, len(presets))
	for _, p := range presets {
		t[p.Key] = p.Label
	}
	return t
}

// TableFor returns the lookup table of a preset-or-custom field. MajorField
// has no presets and yields nil.
func TableFor(f domain.ChoiceField) Table {
	switch f {
	case domain.FieldAssignmentType:
		return assignmentTypeTable
	case domain.FieldAuthorLevel:
		return authorLevelTable
	case domain.FieldTone:
		return toneTable
	}
	return nil
}

// EmphasisLabel returns the phrase for an emphasis tag, or the tag itself
// when it has no entry.
func EmphasisLabel(tag domain.EmphasisTag) string {
	if label, ok := emphasisTable[string(tag)]; ok {
		return label
	}
	return string(tag)
}
