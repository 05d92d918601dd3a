package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/db/ent/schema/utils"
)

// ExtractionJob is one PDF-to-questions processing run.
type ExtractionJob struct{ ent.Schema }

func (ExtractionJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_jobs"},
	}
}

func (ExtractionJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("target_module_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("pdf_filename").NotEmpty(),
		field.String("pdf_path").NotEmpty(),
		// sha256 hex of the upload, indexed for dedup
		field.String("pdf_hash").NotEmpty(),
		field.Int("total_pages").Default(0).NonNegative(),
		field.Int("processed_pages").Default(0).NonNegative(),
		field.Int("question_pages").Default(0).NonNegative(),
		field.Int("skipped_pages").Default(0).NonNegative(),
		field.Int("failed_pages").Default(0).NonNegative(),
		field.Int("extracted_questions").Default(0).NonNegative(),
		field.Int("approved_questions").Default(0).NonNegative(),
		field.Int("imported_questions").Default(0).NonNegative(),
		field.String("provider").Default(string(constants.ProviderHybrid)).
			Validate(utils.EnumValidator(constants.Providers...)),
		// costs in USD cents, integers to avoid float drift
		field.Int("estimated_cost_cents").Default(0).NonNegative(),
		field.Int("actual_cost_cents").Default(0).NonNegative(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("last_error_page").Optional().Nillable(),
		field.Int("retry_count").Default(0).NonNegative(),
		// queue message id of the task currently working the job
		field.String("task_id").Optional().Nillable(),
		field.JSON("test_configs", json.RawMessage{}).Optional(),
		field.JSON("created_test_ids", []uuid.UUID{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractionJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("pages", JobPage.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
		edge.To("questions", ExtractedQuestion.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
		edge.To("passages", ExtractedPassage.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

func (ExtractionJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
		index.Fields("pdf_hash"),
		index.Fields("user_id", "created_at"),
	}
}
