// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/db/ent/schema"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedpassage"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedquestion"
	"github.com/seyi-ajayi/examscan/gen/ent/extractionjob"
	"github.com/seyi-ajayi/examscan/gen/ent/jobpage"
	"github.com/seyi-ajayi/examscan/gen/ent/passage"
	"github.com/seyi-ajayi/examscan/gen/ent/question"
	"github.com/seyi-ajayi/examscan/gen/ent/test"
	"github.com/seyi-ajayi/examscan/gen/ent/testmodule"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractedpassageFields := schema.ExtractedPassage{}.Fields()
	_ = extractedpassageFields
	// extractedpassageDescContent is the schema descriptor for content field.
	extractedpassageDescContent := extractedpassageFields[7].Descriptor()
	// extractedpassage.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	extractedpassage.ContentValidator = extractedpassageDescContent.Validators[0].(func(string) error)
	// extractedpassageDescExtractionConfidence is the schema descriptor for extraction_confidence field.
	extractedpassageDescExtractionConfidence := extractedpassageFields[9].Descriptor()
	// extractedpassage.DefaultExtractionConfidence holds the default value on creation for the extraction_confidence field.
	extractedpassage.DefaultExtractionConfidence = extractedpassageDescExtractionConfidence.Default.(float32)
	// extractedpassageDescReviewStatus is the schema descriptor for review_status field.
	extractedpassageDescReviewStatus := extractedpassageFields[10].Descriptor()
	// extractedpassage.DefaultReviewStatus holds the default value on creation for the review_status field.
	extractedpassage.DefaultReviewStatus = extractedpassageDescReviewStatus.Default.(string)
	// extractedpassage.ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	extractedpassage.ReviewStatusValidator = extractedpassageDescReviewStatus.Validators[0].(func(string) error)
	// extractedpassageDescCreatedAt is the schema descriptor for created_at field.
	extractedpassageDescCreatedAt := extractedpassageFields[12].Descriptor()
	// extractedpassage.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedpassage.DefaultCreatedAt = extractedpassageDescCreatedAt.Default.(func() time.Time)
	// extractedpassageDescID is the schema descriptor for id field.
	extractedpassageDescID := extractedpassageFields[0].Descriptor()
	// extractedpassage.DefaultID holds the default value on creation for the id field.
	extractedpassage.DefaultID = extractedpassageDescID.Default.(func() uuid.UUID)
	extractedquestionFields := schema.ExtractedQuestion{}.Fields()
	_ = extractedquestionFields
	// extractedquestionDescReviewStatus is the schema descriptor for review_status field.
	extractedquestionDescReviewStatus := extractedquestionFields[4].Descriptor()
	// extractedquestion.DefaultReviewStatus holds the default value on creation for the review_status field.
	extractedquestion.DefaultReviewStatus = extractedquestionDescReviewStatus.Default.(string)
	// extractedquestion.ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	extractedquestion.ReviewStatusValidator = extractedquestionDescReviewStatus.Validators[0].(func(string) error)
	// extractedquestionDescExtractionConfidence is the schema descriptor for extraction_confidence field.
	extractedquestionDescExtractionConfidence := extractedquestionFields[7].Descriptor()
	// extractedquestion.DefaultExtractionConfidence holds the default value on creation for the extraction_confidence field.
	extractedquestion.DefaultExtractionConfidence = extractedquestionDescExtractionConfidence.Default.(float32)
	// extractedquestionDescAnswerConfidence is the schema descriptor for answer_confidence field.
	extractedquestionDescAnswerConfidence := extractedquestionFields[8].Descriptor()
	// extractedquestion.DefaultAnswerConfidence holds the default value on creation for the answer_confidence field.
	extractedquestion.DefaultAnswerConfidence = extractedquestionDescAnswerConfidence.Default.(float32)
	// extractedquestionDescQuestionText is the schema descriptor for question_text field.
	extractedquestionDescQuestionText := extractedquestionFields[9].Descriptor()
	// extractedquestion.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	extractedquestion.QuestionTextValidator = extractedquestionDescQuestionText.Validators[0].(func(string) error)
	// extractedquestionDescQuestionType is the schema descriptor for question_type field.
	extractedquestionDescQuestionType := extractedquestionFields[10].Descriptor()
	// extractedquestion.DefaultQuestionType holds the default value on creation for the question_type field.
	extractedquestion.DefaultQuestionType = extractedquestionDescQuestionType.Default.(string)
	// extractedquestion.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	extractedquestion.QuestionTypeValidator = extractedquestionDescQuestionType.Validators[0].(func(string) error)
	// extractedquestionDescNeedsAnswer is the schema descriptor for needs_answer field.
	extractedquestionDescNeedsAnswer := extractedquestionFields[15].Descriptor()
	// extractedquestion.DefaultNeedsAnswer holds the default value on creation for the needs_answer field.
	extractedquestion.DefaultNeedsAnswer = extractedquestionDescNeedsAnswer.Default.(bool)
	// extractedquestionDescNeedsImage is the schema descriptor for needs_image field.
	extractedquestionDescNeedsImage := extractedquestionFields[20].Descriptor()
	// extractedquestion.DefaultNeedsImage holds the default value on creation for the needs_image field.
	extractedquestion.DefaultNeedsImage = extractedquestionDescNeedsImage.Default.(bool)
	// extractedquestionDescCreatedAt is the schema descriptor for created_at field.
	extractedquestionDescCreatedAt := extractedquestionFields[25].Descriptor()
	// extractedquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedquestion.DefaultCreatedAt = extractedquestionDescCreatedAt.Default.(func() time.Time)
	// extractedquestionDescUpdatedAt is the schema descriptor for updated_at field.
	extractedquestionDescUpdatedAt := extractedquestionFields[26].Descriptor()
	// extractedquestion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractedquestion.DefaultUpdatedAt = extractedquestionDescUpdatedAt.Default.(func() time.Time)
	// extractedquestion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractedquestion.UpdateDefaultUpdatedAt = extractedquestionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractedquestionDescID is the schema descriptor for id field.
	extractedquestionDescID := extractedquestionFields[0].Descriptor()
	// extractedquestion.DefaultID holds the default value on creation for the id field.
	extractedquestion.DefaultID = extractedquestionDescID.Default.(func() uuid.UUID)
	extractionjobFields := schema.ExtractionJob{}.Fields()
	_ = extractionjobFields
	// extractionjobDescStatus is the schema descriptor for status field.
	extractionjobDescStatus := extractionjobFields[3].Descriptor()
	// extractionjob.DefaultStatus holds the default value on creation for the status field.
	extractionjob.DefaultStatus = extractionjobDescStatus.Default.(string)
	// extractionjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionjob.StatusValidator = extractionjobDescStatus.Validators[0].(func(string) error)
	// extractionjobDescPdfFilename is the schema descriptor for pdf_filename field.
	extractionjobDescPdfFilename := extractionjobFields[4].Descriptor()
	// extractionjob.PdfFilenameValidator is a validator for the "pdf_filename" field. It is called by the builders before save.
	extractionjob.PdfFilenameValidator = extractionjobDescPdfFilename.Validators[0].(func(string) error)
	// extractionjobDescPdfPath is the schema descriptor for pdf_path field.
	extractionjobDescPdfPath := extractionjobFields[5].Descriptor()
	// extractionjob.PdfPathValidator is a validator for the "pdf_path" field. It is called by the builders before save.
	extractionjob.PdfPathValidator = extractionjobDescPdfPath.Validators[0].(func(string) error)
	// extractionjobDescPdfHash is the schema descriptor for pdf_hash field.
	extractionjobDescPdfHash := extractionjobFields[6].Descriptor()
	// extractionjob.PdfHashValidator is a validator for the "pdf_hash" field. It is called by the builders before save.
	extractionjob.PdfHashValidator = extractionjobDescPdfHash.Validators[0].(func(string) error)
	// extractionjobDescTotalPages is the schema descriptor for total_pages field.
	extractionjobDescTotalPages := extractionjobFields[7].Descriptor()
	// extractionjob.DefaultTotalPages holds the default value on creation for the total_pages field.
	extractionjob.DefaultTotalPages = extractionjobDescTotalPages.Default.(int)
	// extractionjob.TotalPagesValidator is a validator for the "total_pages" field. It is called by the builders before save.
	extractionjob.TotalPagesValidator = extractionjobDescTotalPages.Validators[0].(func(int) error)
	// extractionjobDescProcessedPages is the schema descriptor for processed_pages field.
	extractionjobDescProcessedPages := extractionjobFields[8].Descriptor()
	// extractionjob.DefaultProcessedPages holds the default value on creation for the processed_pages field.
	extractionjob.DefaultProcessedPages = extractionjobDescProcessedPages.Default.(int)
	// extractionjob.ProcessedPagesValidator is a validator for the "processed_pages" field. It is called by the builders before save.
	extractionjob.ProcessedPagesValidator = extractionjobDescProcessedPages.Validators[0].(func(int) error)
	// extractionjobDescQuestionPages is the schema descriptor for question_pages field.
	extractionjobDescQuestionPages := extractionjobFields[9].Descriptor()
	// extractionjob.DefaultQuestionPages holds the default value on creation for the question_pages field.
	extractionjob.DefaultQuestionPages = extractionjobDescQuestionPages.Default.(int)
	// extractionjob.QuestionPagesValidator is a validator for the "question_pages" field. It is called by the builders before save.
	extractionjob.QuestionPagesValidator = extractionjobDescQuestionPages.Validators[0].(func(int) error)
	// extractionjobDescSkippedPages is the schema descriptor for skipped_pages field.
	extractionjobDescSkippedPages := extractionjobFields[10].Descriptor()
	// extractionjob.DefaultSkippedPages holds the default value on creation for the skipped_pages field.
	extractionjob.DefaultSkippedPages = extractionjobDescSkippedPages.Default.(int)
	// extractionjob.SkippedPagesValidator is a validator for the "skipped_pages" field. It is called by the builders before save.
	extractionjob.SkippedPagesValidator = extractionjobDescSkippedPages.Validators[0].(func(int) error)
	// extractionjobDescFailedPages is the schema descriptor for failed_pages field.
	extractionjobDescFailedPages := extractionjobFields[11].Descriptor()
	// extractionjob.DefaultFailedPages holds the default value on creation for the failed_pages field.
	extractionjob.DefaultFailedPages = extractionjobDescFailedPages.Default.(int)
	// extractionjob.FailedPagesValidator is a validator for the "failed_pages" field. It is called by the builders before save.
	extractionjob.FailedPagesValidator = extractionjobDescFailedPages.Validators[0].(func(int) error)
	// extractionjobDescExtractedQuestions is the schema descriptor for extracted_questions field.
	extractionjobDescExtractedQuestions := extractionjobFields[12].Descriptor()
	// extractionjob.DefaultExtractedQuestions holds the default value on creation for the extracted_questions field.
	extractionjob.DefaultExtractedQuestions = extractionjobDescExtractedQuestions.Default.(int)
	// extractionjob.ExtractedQuestionsValidator is a validator for the "extracted_questions" field. It is called by the builders before save.
	extractionjob.ExtractedQuestionsValidator = extractionjobDescExtractedQuestions.Validators[0].(func(int) error)
	// extractionjobDescApprovedQuestions is the schema descriptor for approved_questions field.
	extractionjobDescApprovedQuestions := extractionjobFields[13].Descriptor()
	// extractionjob.DefaultApprovedQuestions holds the default value on creation for the approved_questions field.
	extractionjob.DefaultApprovedQuestions = extractionjobDescApprovedQuestions.Default.(int)
	// extractionjob.ApprovedQuestionsValidator is a validator for the "approved_questions" field. It is called by the builders before save.
	extractionjob.ApprovedQuestionsValidator = extractionjobDescApprovedQuestions.Validators[0].(func(int) error)
	// extractionjobDescImportedQuestions is the schema descriptor for imported_questions field.
	extractionjobDescImportedQuestions := extractionjobFields[14].Descriptor()
	// extractionjob.DefaultImportedQuestions holds the default value on creation for the imported_questions field.
	extractionjob.DefaultImportedQuestions = extractionjobDescImportedQuestions.Default.(int)
	// extractionjob.ImportedQuestionsValidator is a validator for the "imported_questions" field. It is called by the builders before save.
	extractionjob.ImportedQuestionsValidator = extractionjobDescImportedQuestions.Validators[0].(func(int) error)
	// extractionjobDescProvider is the schema descriptor for provider field.
	extractionjobDescProvider := extractionjobFields[15].Descriptor()
	// extractionjob.DefaultProvider holds the default value on creation for the provider field.
	extractionjob.DefaultProvider = extractionjobDescProvider.Default.(string)
	// extractionjob.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	extractionjob.ProviderValidator = extractionjobDescProvider.Validators[0].(func(string) error)
	// extractionjobDescEstimatedCostCents is the schema descriptor for estimated_cost_cents field.
	extractionjobDescEstimatedCostCents := extractionjobFields[16].Descriptor()
	// extractionjob.DefaultEstimatedCostCents holds the default value on creation for the estimated_cost_cents field.
	extractionjob.DefaultEstimatedCostCents = extractionjobDescEstimatedCostCents.Default.(int)
	// extractionjob.EstimatedCostCentsValidator is a validator for the "estimated_cost_cents" field. It is called by the builders before save.
	extractionjob.EstimatedCostCentsValidator = extractionjobDescEstimatedCostCents.Validators[0].(func(int) error)
	// extractionjobDescActualCostCents is the schema descriptor for actual_cost_cents field.
	extractionjobDescActualCostCents := extractionjobFields[17].Descriptor()
	// extractionjob.DefaultActualCostCents holds the default value on creation for the actual_cost_cents field.
	extractionjob.DefaultActualCostCents = extractionjobDescActualCostCents.Default.(int)
	// extractionjob.ActualCostCentsValidator is a validator for the "actual_cost_cents" field. It is called by the builders before save.
	extractionjob.ActualCostCentsValidator = extractionjobDescActualCostCents.Validators[0].(func(int) error)
	// extractionjobDescRetryCount is the schema descriptor for retry_count field.
	extractionjobDescRetryCount := extractionjobFields[22].Descriptor()
	// extractionjob.DefaultRetryCount holds the default value on creation for the retry_count field.
	extractionjob.DefaultRetryCount = extractionjobDescRetryCount.Default.(int)
	// extractionjob.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	extractionjob.RetryCountValidator = extractionjobDescRetryCount.Validators[0].(func(int) error)
	// extractionjobDescCreatedAt is the schema descriptor for created_at field.
	extractionjobDescCreatedAt := extractionjobFields[26].Descriptor()
	// extractionjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionjob.DefaultCreatedAt = extractionjobDescCreatedAt.Default.(func() time.Time)
	// extractionjobDescUpdatedAt is the schema descriptor for updated_at field.
	extractionjobDescUpdatedAt := extractionjobFields[27].Descriptor()
	// extractionjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractionjob.DefaultUpdatedAt = extractionjobDescUpdatedAt.Default.(func() time.Time)
	// extractionjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractionjob.UpdateDefaultUpdatedAt = extractionjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractionjobDescID is the schema descriptor for id field.
	extractionjobDescID := extractionjobFields[0].Descriptor()
	// extractionjob.DefaultID holds the default value on creation for the id field.
	extractionjob.DefaultID = extractionjobDescID.Default.(func() uuid.UUID)
	jobpageFields := schema.JobPage{}.Fields()
	_ = jobpageFields
	// jobpageDescPageNumber is the schema descriptor for page_number field.
	jobpageDescPageNumber := jobpageFields[2].Descriptor()
	// jobpage.PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	jobpage.PageNumberValidator = jobpageDescPageNumber.Validators[0].(func(int) error)
	// jobpageDescIsQuestionPage is the schema descriptor for is_question_page field.
	jobpageDescIsQuestionPage := jobpageFields[4].Descriptor()
	// jobpage.DefaultIsQuestionPage holds the default value on creation for the is_question_page field.
	jobpage.DefaultIsQuestionPage = jobpageDescIsQuestionPage.Default.(bool)
	// jobpageDescState is the schema descriptor for state field.
	jobpageDescState := jobpageFields[5].Descriptor()
	// jobpage.DefaultState holds the default value on creation for the state field.
	jobpage.DefaultState = jobpageDescState.Default.(string)
	// jobpage.StateValidator is a validator for the "state" field. It is called by the builders before save.
	jobpage.StateValidator = jobpageDescState.Validators[0].(func(string) error)
	// jobpageDescOcrCostCents is the schema descriptor for ocr_cost_cents field.
	jobpageDescOcrCostCents := jobpageFields[7].Descriptor()
	// jobpage.DefaultOcrCostCents holds the default value on creation for the ocr_cost_cents field.
	jobpage.DefaultOcrCostCents = jobpageDescOcrCostCents.Default.(int)
	// jobpage.OcrCostCentsValidator is a validator for the "ocr_cost_cents" field. It is called by the builders before save.
	jobpage.OcrCostCentsValidator = jobpageDescOcrCostCents.Validators[0].(func(int) error)
	// jobpageDescStructuringCostCents is the schema descriptor for structuring_cost_cents field.
	jobpageDescStructuringCostCents := jobpageFields[8].Descriptor()
	// jobpage.DefaultStructuringCostCents holds the default value on creation for the structuring_cost_cents field.
	jobpage.DefaultStructuringCostCents = jobpageDescStructuringCostCents.Default.(int)
	// jobpage.StructuringCostCentsValidator is a validator for the "structuring_cost_cents" field. It is called by the builders before save.
	jobpage.StructuringCostCentsValidator = jobpageDescStructuringCostCents.Validators[0].(func(int) error)
	// jobpageDescRetryCount is the schema descriptor for retry_count field.
	jobpageDescRetryCount := jobpageFields[10].Descriptor()
	// jobpage.DefaultRetryCount holds the default value on creation for the retry_count field.
	jobpage.DefaultRetryCount = jobpageDescRetryCount.Default.(int)
	// jobpage.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	jobpage.RetryCountValidator = jobpageDescRetryCount.Validators[0].(func(int) error)
	// jobpageDescID is the schema descriptor for id field.
	jobpageDescID := jobpageFields[0].Descriptor()
	// jobpage.DefaultID holds the default value on creation for the id field.
	jobpage.DefaultID = jobpageDescID.Default.(func() uuid.UUID)
	passageFields := schema.Passage{}.Fields()
	_ = passageFields
	// passageDescContent is the schema descriptor for content field.
	passageDescContent := passageFields[2].Descriptor()
	// passage.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	passage.ContentValidator = passageDescContent.Validators[0].(func(string) error)
	// passageDescCreatedAt is the schema descriptor for created_at field.
	passageDescCreatedAt := passageFields[3].Descriptor()
	// passage.DefaultCreatedAt holds the default value on creation for the created_at field.
	passage.DefaultCreatedAt = passageDescCreatedAt.Default.(func() time.Time)
	// passageDescID is the schema descriptor for id field.
	passageDescID := passageFields[0].Descriptor()
	// passage.DefaultID holds the default value on creation for the id field.
	passage.DefaultID = passageDescID.Default.(func() uuid.UUID)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionNumber is the schema descriptor for question_number field.
	questionDescQuestionNumber := questionFields[2].Descriptor()
	// question.QuestionNumberValidator is a validator for the "question_number" field. It is called by the builders before save.
	question.QuestionNumberValidator = questionDescQuestionNumber.Validators[0].(func(int) error)
	// questionDescQuestionText is the schema descriptor for question_text field.
	questionDescQuestionText := questionFields[3].Descriptor()
	// question.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	question.QuestionTextValidator = questionDescQuestionText.Validators[0].(func(string) error)
	// questionDescQuestionType is the schema descriptor for question_type field.
	questionDescQuestionType := questionFields[4].Descriptor()
	// question.DefaultQuestionType holds the default value on creation for the question_type field.
	question.DefaultQuestionType = questionDescQuestionType.Default.(string)
	// question.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	question.QuestionTypeValidator = questionDescQuestionType.Validators[0].(func(string) error)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[14].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionFields[15].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	testFields := schema.Test{}.Fields()
	_ = testFields
	// testDescTitle is the schema descriptor for title field.
	testDescTitle := testFields[1].Descriptor()
	// test.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	test.TitleValidator = testDescTitle.Validators[0].(func(string) error)
	// testDescTestType is the schema descriptor for test_type field.
	testDescTestType := testFields[2].Descriptor()
	// test.DefaultTestType holds the default value on creation for the test_type field.
	test.DefaultTestType = testDescTestType.Default.(string)
	// test.TestTypeValidator is a validator for the "test_type" field. It is called by the builders before save.
	test.TestTypeValidator = testDescTestType.Validators[0].(func(string) error)
	// testDescIsPublished is the schema descriptor for is_published field.
	testDescIsPublished := testFields[4].Descriptor()
	// test.DefaultIsPublished holds the default value on creation for the is_published field.
	test.DefaultIsPublished = testDescIsPublished.Default.(bool)
	// testDescCreatedAt is the schema descriptor for created_at field.
	testDescCreatedAt := testFields[6].Descriptor()
	// test.DefaultCreatedAt holds the default value on creation for the created_at field.
	test.DefaultCreatedAt = testDescCreatedAt.Default.(func() time.Time)
	// testDescUpdatedAt is the schema descriptor for updated_at field.
	testDescUpdatedAt := testFields[7].Descriptor()
	// test.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	test.DefaultUpdatedAt = testDescUpdatedAt.Default.(func() time.Time)
	// test.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	test.UpdateDefaultUpdatedAt = testDescUpdatedAt.UpdateDefault.(func() time.Time)
	// testDescID is the schema descriptor for id field.
	testDescID := testFields[0].Descriptor()
	// test.DefaultID holds the default value on creation for the id field.
	test.DefaultID = testDescID.Default.(func() uuid.UUID)
	testmoduleFields := schema.TestModule{}.Fields()
	_ = testmoduleFields
	// testmoduleDescSection is the schema descriptor for section field.
	testmoduleDescSection := testmoduleFields[2].Descriptor()
	// testmodule.SectionValidator is a validator for the "section" field. It is called by the builders before save.
	testmodule.SectionValidator = testmoduleDescSection.Validators[0].(func(string) error)
	// testmoduleDescModuleSlot is the schema descriptor for module_slot field.
	testmoduleDescModuleSlot := testmoduleFields[3].Descriptor()
	// testmodule.ModuleSlotValidator is a validator for the "module_slot" field. It is called by the builders before save.
	testmodule.ModuleSlotValidator = testmoduleDescModuleSlot.Validators[0].(func(string) error)
	// testmoduleDescModuleDifficulty is the schema descriptor for module_difficulty field.
	testmoduleDescModuleDifficulty := testmoduleFields[4].Descriptor()
	// testmodule.ModuleDifficultyValidator is a validator for the "module_difficulty" field. It is called by the builders before save.
	testmodule.ModuleDifficultyValidator = testmoduleDescModuleDifficulty.Validators[0].(func(string) error)
	// testmoduleDescTimeLimitMinutes is the schema descriptor for time_limit_minutes field.
	testmoduleDescTimeLimitMinutes := testmoduleFields[5].Descriptor()
	// testmodule.TimeLimitMinutesValidator is a validator for the "time_limit_minutes" field. It is called by the builders before save.
	testmodule.TimeLimitMinutesValidator = testmoduleDescTimeLimitMinutes.Validators[0].(func(int) error)
	// testmoduleDescOrderIndex is the schema descriptor for order_index field.
	testmoduleDescOrderIndex := testmoduleFields[6].Descriptor()
	// testmodule.DefaultOrderIndex holds the default value on creation for the order_index field.
	testmodule.DefaultOrderIndex = testmoduleDescOrderIndex.Default.(int)
	// testmoduleDescCreatedAt is the schema descriptor for created_at field.
	testmoduleDescCreatedAt := testmoduleFields[7].Descriptor()
	// testmodule.DefaultCreatedAt holds the default value on creation for the created_at field.
	testmodule.DefaultCreatedAt = testmoduleDescCreatedAt.Default.(func() time.Time)
	// testmoduleDescID is the schema descriptor for id field.
	testmoduleDescID := testmoduleFields[0].Descriptor()
	// testmodule.DefaultID holds the default value on creation for the id field.
	testmodule.DefaultID = testmoduleDescID.Default.(func() uuid.UUID)
}
