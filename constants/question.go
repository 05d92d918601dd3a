package constants

import "strings"

// QuestionType distinguishes multiple-choice questions from grid-in
// (student-produced response) questions.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionGridIn         QuestionType = "student_produced_response"
)

// QuestionTypes holds the allowed values for question type fields.
var QuestionTypes = []string{
	string(QuestionMultipleChoice),
	string(QuestionGridIn),
}

// ParseQuestionType maps a raw model-reported type to the enum.
func ParseQuestionType(s string) QuestionType {
	lower := strings.ToLower(s)
	if strings.Contains(lower, "student") || strings.Contains(lower, "produced") || strings.Contains(lower, "grid") {
		return QuestionGridIn
	}
	return QuestionMultipleChoice
}

// Difficulty is the per-question difficulty tag.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties holds the allowed values for difficulty fields.
var Difficulties = []string{
	string(DifficultyEasy),
	string(DifficultyMedium),
	string(DifficultyHard),
}

// ParseDifficulty maps a raw model-reported difficulty to the enum,
// defaulting to medium.
func ParseDifficulty(s string) Difficulty {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "easy"):
		return DifficultyEasy
	case strings.Contains(lower, "hard"):
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Domain is the exam content domain of a question.
type Domain string

const (
	// Reading & Writing domains.
	DomainCraftAndStructure          Domain = "craft_and_structure"
	DomainInformationAndIdeas        Domain = "information_and_ideas"
	DomainStandardEnglishConventions Domain = "standard_english_conventions"
	DomainExpressionOfIdeas          Domain = "expression_of_ideas"

	// Math domains.
	DomainAlgebra                    Domain = "algebra"
	DomainAdvancedMath               Domain = "advanced_math"
	DomainProblemSolvingDataAnalysis Domain = "problem_solving_data_analysis"
	DomainGeometryTrigonometry       Domain = "geometry_trigonometry"
)

// Domains holds the allowed values for domain fields.
var Domains = []string{
	string(DomainCraftAndStructure),
	string(DomainInformationAndIdeas),
	string(DomainStandardEnglishConventions),
	string(DomainExpressionOfIdeas),
	string(DomainAlgebra),
	string(DomainAdvancedMath),
	string(DomainProblemSolvingDataAnalysis),
	string(DomainGeometryTrigonometry),
}

// domainKeywords maps substrings of model-reported domain labels to the
// canonical enum. Keys are checked in order of specificity.
var domainKeywords = []struct {
	key    string
	domain Domain
}{
	{"advanced", DomainAdvancedMath},
	{"algebra", DomainAlgebra},
	{"geometry", DomainGeometryTrigonometry},
	{"trigonometry", DomainGeometryTrigonometry},
	{"problem solving", DomainProblemSolvingDataAnalysis},
	{"problem_solving", DomainProblemSolvingDataAnalysis},
	{"data analysis", DomainProblemSolvingDataAnalysis},
	{"data_analysis", DomainProblemSolvingDataAnalysis},
	{"craft", DomainCraftAndStructure},
	{"structure", DomainCraftAndStructure},
	{"information", DomainInformationAndIdeas},
	{"ideas", DomainInformationAndIdeas},
	{"expression", DomainExpressionOfIdeas},
	{"convention", DomainStandardEnglishConventions},
	{"english", DomainStandardEnglishConventions},
}

// ParseDomain maps a raw model-reported domain label to the enum.
// Returns ("", false) for unrecognized labels.
func ParseDomain(s string) (Domain, bool) {
	lower := strings.ToLower(s)
	if lower == "" {
		return "", false
	}
	for _, kw := range domainKeywords {
		if strings.Contains(lower, kw.key) {
			return kw.domain, true
		}
	}
	return "", false
}

// ReadingWriting reports whether the domain belongs to the Reading &
// Writing section, whose questions require a passage.
func (d Domain) ReadingWriting() bool {
	switch d {
	case DomainCraftAndStructure, DomainInformationAndIdeas,
		DomainStandardEnglishConventions, DomainExpressionOfIdeas:
		return true
	}
	return false
}

// Section identifies the two exam sections.
type Section string

const (
	SectionReadingWriting Section = "reading_writing"
	SectionMath           Section = "math"
)

// Sections holds the allowed values for section fields.
var Sections = []string{string(SectionReadingWriting), string(SectionMath)}

// ModuleSlot identifies a module position within a section.
type ModuleSlot string

const (
	ModuleOne ModuleSlot = "module_1"
	ModuleTwo ModuleSlot = "module_2"
)

// ModuleSlots holds the allowed values for module slot fields.
var ModuleSlots = []string{string(ModuleOne), string(ModuleTwo)}

// ModuleDifficulty is the adaptive second-module difficulty.
type ModuleDifficulty string

const (
	ModuleStandard ModuleDifficulty = "standard"
	ModuleEasier   ModuleDifficulty = "easier"
	ModuleHarder   ModuleDifficulty = "harder"
)

// ModuleDifficulties holds the allowed values for module difficulty fields.
var ModuleDifficulties = []string{
	string(ModuleStandard),
	string(ModuleEasier),
	string(ModuleHarder),
}

// TestType describes the shape of a created test.
type TestType string

const (
	TestFull    TestType = "full_test"
	TestSection TestType = "section_test"
	TestModule  TestType = "module_test"
)

// TestTypes holds the allowed values for test type fields.
var TestTypes = []string{string(TestFull), string(TestSection), string(TestModule)}

// NeedAnswerSentinel is the marker the structuring model emits when it
// cannot determine the correct answer.
const NeedAnswerSentinel = "[NEED_ANSWER]"

// AnswerMissingPenalty halves a question's overall confidence when the
// model could not determine its answer. Product policy, not derived.
const AnswerMissingPenalty = 0.5
