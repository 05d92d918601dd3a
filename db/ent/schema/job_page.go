package schema

import (
	"encoding/json"

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

// JobPage is the per-page checkpoint record that makes jobs resumable.
type JobPage struct{ ent.Schema }

func (JobPage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_pages"},
	}
}

func (JobPage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		// 1-based, unique per job
		field.Int("page_number").Positive(),
		field.String("markdown").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("is_question_page").Default(false),
		field.String("state").Default(string(constants.PageStateUnprocessed)).
			Validate(utils.EnumValidator(constants.PageStates...)),
		// 2x raster kept for the manual cropping surface
		field.Bytes("image_png").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int("ocr_cost_cents").Default(0).NonNegative(),
		field.Int("structuring_cost_cents").Default(0).NonNegative(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("retry_count").Default(0).NonNegative(),
		field.Time("last_error_at").Optional().Nillable(),
		field.String("provider_used").Optional().Nillable(),
		field.JSON("detected_figures", json.RawMessage{}).Optional(),
	}
}

func (JobPage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ExtractionJob.Type).
			Ref("pages").
			Field("job_id").
			Unique().
			Required(),
		edge.To("questions", ExtractedQuestion.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
		edge.To("passages", ExtractedPassage.Type),
	}
}

func (JobPage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "page_number").Unique(),
		index.Fields("job_id", "state"),
	}
}
