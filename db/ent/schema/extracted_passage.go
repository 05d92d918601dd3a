package schema

import (
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

// ExtractedPassage is a shared reading passage referenced by one or more
// extracted questions on the same page or spread.
type ExtractedPassage struct{ ent.Schema }

func (ExtractedPassage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_passages"},
	}
}

func (ExtractedPassage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.UUID("page_id", uuid.UUID{}),
		// Provider-assigned key ("passage_1") used to link questions within
		// one structuring response before rows exist.
		field.String("temp_ref").Optional(),
		field.String("title").Optional().Nillable(),
		field.String("source").Optional().Nillable(),
		field.String("author").Optional().Nillable(),
		field.String("content").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("figures", []string{}).Optional(),
		field.Float32("extraction_confidence").Default(0),
		field.String("review_status").Default(string(constants.ReviewPending)).
			Validate(utils.EnumValidator(constants.ReviewStatuses...)),
		field.UUID("imported_passage_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ExtractedPassage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ExtractionJob.Type).
			Ref("passages").
			Field("job_id").
			Unique().
			Required(),
		edge.From("page", JobPage.Type).
			Ref("passages").
			Field("page_id").
			Unique().
			Required(),
		edge.To("questions", ExtractedQuestion.Type),
	}
}

func (ExtractedPassage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("page_id"),
	}
}
