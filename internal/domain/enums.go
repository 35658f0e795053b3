package domain

// CustomValue is the choice value that switches a field to its free-text override.
const CustomValue = "custom"

type AssignmentType string

const (
	AssignmentReport         AssignmentType = "report"
	AssignmentPPT            AssignmentType = "ppt"
	AssignmentSummary        AssignmentType = "summary"
	AssignmentProblemSolving AssignmentType = "problem-solving"
	AssignmentBrainstorming  AssignmentType = "brainstorming"
	AssignmentProofreading   AssignmentType = "proofreading"
	AssignmentLabReport      AssignmentType = "lab-report"
	AssignmentCoverLetter    AssignmentType = "cover-letter"
)

type AuthorLevel string

const (
	LevelHighSchool        AuthorLevel = "high-school"
	LevelUndergradFreshman AuthorLevel = "undergrad-freshman"
	LevelUndergradSenior   AuthorLevel = "undergrad-senior"
	LevelMaster            AuthorLevel = "master"
	LevelDoctor            AuthorLevel = "doctor"
)

type Tone string

const (
	ToneAcademic    Tone = "academic"
	ToneExplanatory Tone = "explanatory"
	ToneCritical    Tone = "critical"
	TonePersuasive  Tone = "persuasive"
	ToneCreative    Tone = "creative"
)

type EmphasisTag string

const (
	EmphasisCaseStudy             EmphasisTag = "case-study"
	EmphasisPersonalThoughts      EmphasisTag = "personal-thoughts"
	EmphasisCitationAPA           EmphasisTag = "citation-apa"
	EmphasisWordCount             EmphasisTag = "word-count"
	EmphasisQuantitative          EmphasisTag = "quantitative"
	EmphasisCompareContrast       EmphasisTag = "compare-contrast"
	EmphasisLatestResearch        EmphasisTag = "latest-research"
	EmphasisTheoreticalBackground EmphasisTag = "theoretical-background"
	EmphasisDataStatistics        EmphasisTag = "data-statistics"

	// EmphasisCustom enables the free-text emphasis input. It is never rendered.
	EmphasisCustom EmphasisTag = CustomValue
)

// ChoiceField names a preset-or-custom field of AnswerState.
type ChoiceField string

const (
	FieldAssignmentType ChoiceField = "assignmentType"
	FieldAuthorLevel    ChoiceField = "authorLevel"
	FieldTone           ChoiceField = "tone"
	FieldMajorField     ChoiceField = "majorField"
)

// TextField names a plain free-text field of AnswerState.
type TextField string

const (
	FieldTopic      TextField = "topic"
	FieldKeywords   TextField = "keywords"
	FieldReferences TextField = "references"
)
