// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractedPassagesColumns holds the columns for the "extracted_passages" table.
	ExtractedPassagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "temp_ref", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "figures", Type: field.TypeJSON, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "review_status", Type: field.TypeString, Default: "pending"},
		{Name: "imported_passage_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "page_id", Type: field.TypeUUID},
	}
	// ExtractedPassagesTable holds the schema information for the "extracted_passages" table.
	ExtractedPassagesTable = &schema.Table{
		Name:       "extracted_passages",
		Columns:    ExtractedPassagesColumns,
		PrimaryKey: []*schema.Column{ExtractedPassagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_passages_extraction_jobs_passages",
				Columns:    []*schema.Column{ExtractedPassagesColumns[11]},
				RefColumns: []*schema.Column{ExtractionJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "extracted_passages_job_pages_passages",
				Columns:    []*schema.Column{ExtractedPassagesColumns[12]},
				RefColumns: []*schema.Column{JobPagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedpassage_job_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedPassagesColumns[11]},
			},
			{
				Name:    "extractedpassage_page_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedPassagesColumns[12]},
			},
		},
	}
	// ExtractedQuestionsColumns holds the columns for the "extracted_questions" table.
	ExtractedQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "review_status", Type: field.TypeString, Default: "pending"},
		{Name: "reviewed_by", Type: field.TypeUUID, Nullable: true},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "answer_confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "question_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "question_type", Type: field.TypeString, Default: "multiple_choice"},
		{Name: "passage_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "table_data", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_answer", Type: field.TypeJSON, Nullable: true},
		{Name: "needs_answer", Type: field.TypeBool, Default: false},
		{Name: "explanation", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "difficulty", Type: field.TypeString, Nullable: true},
		{Name: "domain", Type: field.TypeString, Nullable: true},
		{Name: "skill_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "needs_image", Type: field.TypeBool, Default: false},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "image_status", Type: field.TypeString, Nullable: true},
		{Name: "validation_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "imported_question_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "passage_id", Type: field.TypeUUID, Nullable: true},
		{Name: "job_id", Type: field.TypeUUID},
		{Name: "page_id", Type: field.TypeUUID},
	}
	// ExtractedQuestionsTable holds the schema information for the "extracted_questions" table.
	ExtractedQuestionsTable = &schema.Table{
		Name:       "extracted_questions",
		Columns:    ExtractedQuestionsColumns,
		PrimaryKey: []*schema.Column{ExtractedQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_questions_extracted_passages_questions",
				Columns:    []*schema.Column{ExtractedQuestionsColumns[24]},
				RefColumns: []*schema.Column{ExtractedPassagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extracted_questions_extraction_jobs_questions",
				Columns:    []*schema.Column{ExtractedQuestionsColumns[25]},
				RefColumns: []*schema.Column{ExtractionJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "extracted_questions_job_pages_questions",
				Columns:    []*schema.Column{ExtractedQuestionsColumns[26]},
				RefColumns: []*schema.Column{JobPagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedquestion_job_id_review_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractedQuestionsColumns[25], ExtractedQuestionsColumns[1]},
			},
			{
				Name:    "extractedquestion_page_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedQuestionsColumns[26]},
			},
			{
				Name:    "extractedquestion_imported_question_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedQuestionsColumns[21]},
			},
		},
	}
	// ExtractionJobsColumns holds the columns for the "extraction_jobs" table.
	ExtractionJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "target_module_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "pdf_filename", Type: field.TypeString},
		{Name: "pdf_path", Type: field.TypeString},
		{Name: "pdf_hash", Type: field.TypeString},
		{Name: "total_pages", Type: field.TypeInt, Default: 0},
		{Name: "processed_pages", Type: field.TypeInt, Default: 0},
		{Name: "question_pages", Type: field.TypeInt, Default: 0},
		{Name: "skipped_pages", Type: field.TypeInt, Default: 0},
		{Name: "failed_pages", Type: field.TypeInt, Default: 0},
		{Name: "extracted_questions", Type: field.TypeInt, Default: 0},
		{Name: "approved_questions", Type: field.TypeInt, Default: 0},
		{Name: "imported_questions", Type: field.TypeInt, Default: 0},
		{Name: "provider", Type: field.TypeString, Default: "hybrid"},
		{Name: "estimated_cost_cents", Type: field.TypeInt, Default: 0},
		{Name: "actual_cost_cents", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "last_error_page", Type: field.TypeInt, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "test_configs", Type: field.TypeJSON, Nullable: true},
		{Name: "created_test_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExtractionJobsTable holds the schema information for the "extraction_jobs" table.
	ExtractionJobsTable = &schema.Table{
		Name:       "extraction_jobs",
		Columns:    ExtractionJobsColumns,
		PrimaryKey: []*schema.Column{ExtractionJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extractionjob_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobsColumns[1], ExtractionJobsColumns[3]},
			},
			{
				Name:    "extractionjob_pdf_hash",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobsColumns[6]},
			},
			{
				Name:    "extractionjob_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobsColumns[1], ExtractionJobsColumns[26]},
			},
		},
	}
	// JobPagesColumns holds the columns for the "job_pages" table.
	JobPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "page_number", Type: field.TypeInt},
		{Name: "markdown", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "is_question_page", Type: field.TypeBool, Default: false},
		{Name: "state", Type: field.TypeString, Default: "unprocessed"},
		{Name: "image_png", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "ocr_cost_cents", Type: field.TypeInt, Default: 0},
		{Name: "structuring_cost_cents", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error_at", Type: field.TypeTime, Nullable: true},
		{Name: "provider_used", Type: field.TypeString, Nullable: true},
		{Name: "detected_figures", Type: field.TypeJSON, Nullable: true},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// JobPagesTable holds the schema information for the "job_pages" table.
	JobPagesTable = &schema.Table{
		Name:       "job_pages",
		Columns:    JobPagesColumns,
		PrimaryKey: []*schema.Column{JobPagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_pages_extraction_jobs_pages",
				Columns:    []*schema.Column{JobPagesColumns[13]},
				RefColumns: []*schema.Column{ExtractionJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobpage_job_id_page_number",
				Unique:  true,
				Columns: []*schema.Column{JobPagesColumns[13], JobPagesColumns[1]},
			},
			{
				Name:    "jobpage_job_id_state",
				Unique:  false,
				Columns: []*schema.Column{JobPagesColumns[13], JobPagesColumns[4]},
			},
		},
	}
	// PassagesColumns holds the columns for the "passages" table.
	PassagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PassagesTable holds the schema information for the "passages" table.
	PassagesTable = &schema.Table{
		Name:       "passages",
		Columns:    PassagesColumns,
		PrimaryKey: []*schema.Column{PassagesColumns[0]},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "question_number", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "question_type", Type: field.TypeString, Default: "multiple_choice"},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "table_data", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_answer", Type: field.TypeJSON, Nullable: true},
		{Name: "explanation", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "difficulty", Type: field.TypeString, Nullable: true},
		{Name: "domain", Type: field.TypeString, Nullable: true},
		{Name: "skill_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "passage_id", Type: field.TypeUUID, Nullable: true},
		{Name: "module_id", Type: field.TypeUUID},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_passages_questions",
				Columns:    []*schema.Column{QuestionsColumns[14]},
				RefColumns: []*schema.Column{PassagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "questions_test_modules_questions",
				Columns:    []*schema.Column{QuestionsColumns[15]},
				RefColumns: []*schema.Column{TestModulesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_module_id_question_number",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[15], QuestionsColumns[1]},
			},
		},
	}
	// TestsColumns holds the columns for the "tests" table.
	TestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "test_type", Type: field.TypeString, Default: "full_test"},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "is_published", Type: field.TypeBool, Default: false},
		{Name: "created_by", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TestsTable holds the schema information for the "tests" table.
	TestsTable = &schema.Table{
		Name:       "tests",
		Columns:    TestsColumns,
		PrimaryKey: []*schema.Column{TestsColumns[0]},
	}
	// TestModulesColumns holds the columns for the "test_modules" table.
	TestModulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "section", Type: field.TypeString},
		{Name: "module_slot", Type: field.TypeString},
		{Name: "module_difficulty", Type: field.TypeString, Nullable: true},
		{Name: "time_limit_minutes", Type: field.TypeInt},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "test_id", Type: field.TypeUUID, Nullable: true},
	}
	// TestModulesTable holds the schema information for the "test_modules" table.
	TestModulesTable = &schema.Table{
		Name:       "test_modules",
		Columns:    TestModulesColumns,
		PrimaryKey: []*schema.Column{TestModulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "test_modules_tests_modules",
				Columns:    []*schema.Column{TestModulesColumns[7]},
				RefColumns: []*schema.Column{TestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "testmodule_test_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{TestModulesColumns[7], TestModulesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractedPassagesTable,
		ExtractedQuestionsTable,
		ExtractionJobsTable,
		JobPagesTable,
		PassagesTable,
		QuestionsTable,
		TestsTable,
		TestModulesTable,
	}
)

func init() {
	ExtractedPassagesTable.ForeignKeys[0].RefTable = ExtractionJobsTable
	ExtractedPassagesTable.ForeignKeys[1].RefTable = JobPagesTable
	ExtractedPassagesTable.Annotation = &entsql.Annotation{
		Table: "extracted_passages",
	}
	ExtractedQuestionsTable.ForeignKeys[0].RefTable = ExtractedPassagesTable
	ExtractedQuestionsTable.ForeignKeys[1].RefTable = ExtractionJobsTable
	ExtractedQuestionsTable.ForeignKeys[2].RefTable = JobPagesTable
	ExtractedQuestionsTable.Annotation = &entsql.Annotation{
		Table: "extracted_questions",
	}
	ExtractionJobsTable.Annotation = &entsql.Annotation{
		Table: "extraction_jobs",
	}
	JobPagesTable.ForeignKeys[0].RefTable = ExtractionJobsTable
	JobPagesTable.Annotation = &entsql.Annotation{
		Table: "job_pages",
	}
	PassagesTable.Annotation = &entsql.Annotation{
		Table: "passages",
	}
	QuestionsTable.ForeignKeys[0].RefTable = PassagesTable
	QuestionsTable.ForeignKeys[1].RefTable = TestModulesTable
	QuestionsTable.Annotation = &entsql.Annotation{
		Table: "questions",
	}
	TestsTable.Annotation = &entsql.Annotation{
		Table: "tests",
	}
	TestModulesTable.ForeignKeys[0].RefTable = TestsTable
	TestModulesTable.Annotation = &entsql.Annotation{
		Table: "test_modules",
	}
}
