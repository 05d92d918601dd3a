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

// ExtractedQuestion is a candidate question awaiting review and import.
// It mirrors the production Question payload plus review/provenance fields.
type ExtractedQuestion struct{ ent.Schema }

func (ExtractedQuestion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_questions"},
	}
}

func (ExtractedQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.UUID("page_id", uuid.UUID{}),
		field.UUID("passage_id", uuid.UUID{}).Optional().Nillable(),
		field.String("review_status").Default(string(constants.ReviewPending)).
			Validate(utils.EnumValidator(constants.ReviewStatuses...)),
		field.UUID("reviewed_by", uuid.UUID{}).Optional().Nillable(),
		field.Time("reviewed_at").Optional().Nillable(),
		field.Float32("extraction_confidence").Default(0),
		field.Float32("answer_confidence").Default(0),
		field.String("question_text").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("question_type").Default(string(constants.QuestionMultipleChoice)).
			Validate(utils.EnumValidator(constants.QuestionTypes...)),
		field.String("passage_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// []provider.Option
		field.JSON("options", json.RawMessage{}).Optional(),
		// provider.Table
		field.JSON("table_data", json.RawMessage{}).Optional(),
		field.JSON("correct_answer", []string{}).Optional(),
		field.Bool("needs_answer").Default(false),
		field.String("explanation").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("difficulty").Optional().Nillable(),
		field.String("domain").Optional().Nillable(),
		field.JSON("skill_tags", []string{}).Optional(),
		field.Bool("needs_image").Default(false),
		field.String("image_url").Optional().Nillable(),
		field.String("image_status").Optional().Nillable(),
		field.JSON("validation_errors", []string{}).Optional(),
		field.UUID("imported_question_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractedQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ExtractionJob.Type).
			Ref("questions").
			Field("job_id").
			Unique().
			Required(),
		edge.From("page", JobPage.Type).
			Ref("questions").
			Field("page_id").
			Unique().
			Required(),
		edge.From("passage", ExtractedPassage.Type).
			Ref("questions").
			Field("passage_id").
			Unique(),
	}
}

func (ExtractedQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "review_status"),
		index.Fields("page_id"),
		index.Fields("imported_question_id"),
	}
}
