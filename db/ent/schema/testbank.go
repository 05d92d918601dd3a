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

// Test is a full practice test assembled from modules.
type Test struct{ ent.Schema }

func (Test) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "tests"}}
}

func (Test) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("title").NotEmpty(),
		field.String("test_type").Default(string(constants.TestFull)).
			Validate(utils.EnumValidator(constants.TestTypes...)),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("is_published").Default(false),
		field.UUID("created_by", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Test) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("modules", TestModule.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

// TestModule is one timed section module of a test.
type TestModule struct{ ent.Schema }

func (TestModule) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "test_modules"}}
}

func (TestModule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("test_id", uuid.UUID{}).Optional().Nillable(),
		field.String("section").
			Validate(utils.EnumValidator(constants.Sections...)),
		field.String("module_slot").
			Validate(utils.EnumValidator(constants.ModuleSlots...)),
		field.String("module_difficulty").Optional().Nillable().
			Validate(utils.EnumValidator(constants.ModuleDifficulties...)),
		field.Int("time_limit_minutes").Positive(),
		field.Int("order_index").Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (TestModule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("test", Test.Type).
			Ref("modules").
			Field("test_id").
			Unique(),
		edge.To("questions", Question.Type),
	}
}

func (TestModule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("test_id", "order_index"),
	}
}

// Question is a published test-bank question.
type Question struct{ ent.Schema }

func (Question) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "questions"}}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("module_id", uuid.UUID{}),
		field.Int("question_number").Positive(),
		field.String("question_text").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("question_type").Default(string(constants.QuestionMultipleChoice)).
			Validate(utils.EnumValidator(constants.QuestionTypes...)),
		field.UUID("passage_id", uuid.UUID{}).Optional().Nillable(),
		field.JSON("options", json.RawMessage{}).Optional(),
		field.JSON("table_data", json.RawMessage{}).Optional(),
		field.JSON("correct_answer", []string{}).Optional(),
		field.String("explanation").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("difficulty").Optional().Nillable(),
		field.String("domain").Optional().Nillable(),
		field.JSON("skill_tags", []string{}).Optional(),
		field.String("image_url").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("module", TestModule.Type).
			Ref("questions").
			Field("module_id").
			Unique().
			Required(),
		edge.From("passage", Passage.Type).
			Ref("questions").
			Field("passage_id").
			Unique(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("module_id", "question_number").Unique(),
	}
}

// Passage is a published reading passage shared across questions.
type Passage struct{ ent.Schema }

func (Passage) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "passages"}}
}

func (Passage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("title").Optional().Nillable(),
		field.String("content").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Passage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", Question.Type),
	}
}
