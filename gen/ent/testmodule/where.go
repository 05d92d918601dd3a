// Code generated by ent, DO NOT EDIT.

package testmodule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldLTE(FieldID, id))
}

// TestID applies equality check predicate on the "test_id" field. It's identical to TestIDEQ.
func TestID(v uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldTestID, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldSection, v))
}

// ModuleSlot applies equality check predicate on the "module_slot" field. It's identical to ModuleSlotEQ.
func ModuleSlot(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldModuleSlot, v))
}

// ModuleDifficulty applies equality check predicate on the "module_difficulty" field. It's identical to ModuleDifficultyEQ.
func ModuleDifficulty(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldModuleDifficulty, v))
}

// TimeLimitMinutes applies equality check predicate on the "time_limit_minutes" field. It's identical to TimeLimitMinutesEQ.
func TimeLimitMinutes(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldTimeLimitMinutes, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldOrderIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldCreatedAt, v))
}

// TestIDEQ applies the EQ predicate on the "test_id" field.
func TestIDEQ(v uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldTestID, v))
}

// TestIDNEQ applies the NEQ predicate on the "test_id" field.
func TestIDNEQ(v uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldNEQ(FieldTestID, v))
}

// TestIDIn applies the In predicate on the "test_id" field.
func TestIDIn(vs ...uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldIn(FieldTestID, vs...))
}

// TestIDNotIn applies the NotIn predicate on the "test_id" field.
func TestIDNotIn(vs ...uuid.UUID) predicate.TestModule {
	return predicate.TestModule(sql.FieldNotIn(FieldTestID, vs...))
}

// TestIDIsNil applies the IsNil predicate on the "test_id" field.
func TestIDIsNil() predicate.TestModule {
	return predicate.TestModule(sql.FieldIsNull(FieldTestID))
}

// TestIDNotNil applies the NotNil predicate on the "test_id" field.
func TestIDNotNil() predicate.TestModule {
	return predicate.TestModule(sql.FieldNotNull(FieldTestID))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.TestModule {
	return predicate.TestModule(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.TestModule {
	return predicate.TestModule(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldContainsFold(FieldSection, v))
}

// ModuleSlotEQ applies the EQ predicate on the "module_slot" field.
func ModuleSlotEQ(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldModuleSlot, v))
}

// ModuleSlotNEQ applies the NEQ predicate on the "module_slot" field.
func ModuleSlotNEQ(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldNEQ(FieldModuleSlot, v))
}

// ModuleSlotIn applies the In predicate on the "module_slot" field.
func ModuleSlotIn(vs ...string) predicate.TestModule {
	return predicate.TestModule(sql.FieldIn(FieldModuleSlot, vs...))
}

// ModuleSlotNotIn applies the NotIn predicate on the "module_slot" field.
func ModuleSlotNotIn(vs ...string) predicate.TestModule {
	return predicate.TestModule(sql.FieldNotIn(FieldModuleSlot, vs...))
}

// ModuleSlotGT applies the GT predicate on the "module_slot" field.
func ModuleSlotGT(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldGT(FieldModuleSlot, v))
}

// ModuleSlotGTE applies the GTE predicate on the "module_slot" field.
func ModuleSlotGTE(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldGTE(FieldModuleSlot, v))
}

// ModuleSlotLT applies the LT predicate on the "module_slot" field.
func ModuleSlotLT(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldLT(FieldModuleSlot, v))
}

// ModuleSlotLTE applies the LTE predicate on the "module_slot" field.
func ModuleSlotLTE(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldLTE(FieldModuleSlot, v))
}

// ModuleSlotContains applies the Contains predicate on the "module_slot" field.
func ModuleSlotContains(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldContains(FieldModuleSlot, v))
}

// ModuleSlotHasPrefix applies the HasPrefix predicate on the "module_slot" field.
func ModuleSlotHasPrefix(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldHasPrefix(FieldModuleSlot, v))
}

// ModuleSlotHasSuffix applies the HasSuffix predicate on the "module_slot" field.
func ModuleSlotHasSuffix(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldHasSuffix(FieldModuleSlot, v))
}

// ModuleSlotEqualFold applies the EqualFold predicate on the "module_slot" field.
func ModuleSlotEqualFold(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldEqualFold(FieldModuleSlot, v))
}

// ModuleSlotContainsFold applies the ContainsFold predicate on the "module_slot" field.
func ModuleSlotContainsFold(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldContainsFold(FieldModuleSlot, v))
}

// ModuleDifficultyEQ applies the EQ predicate on the "module_difficulty" field.
func ModuleDifficultyEQ(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldModuleDifficulty, v))
}

// ModuleDifficultyNEQ applies the NEQ predicate on the "module_difficulty" field.
func ModuleDifficultyNEQ(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldNEQ(FieldModuleDifficulty, v))
}

// ModuleDifficultyIn applies the In predicate on the "module_difficulty" field.
func ModuleDifficultyIn(vs ...string) predicate.TestModule {
	return predicate.TestModule(sql.FieldIn(FieldModuleDifficulty, vs...))
}

// ModuleDifficultyNotIn applies the NotIn predicate on the "module_difficulty" field.
func ModuleDifficultyNotIn(vs ...string) predicate.TestModule {
	return predicate.TestModule(sql.FieldNotIn(FieldModuleDifficulty, vs...))
}

// ModuleDifficultyGT applies the GT predicate on the "module_difficulty" field.
func ModuleDifficultyGT(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldGT(FieldModuleDifficulty, v))
}

// ModuleDifficultyGTE applies the GTE predicate on the "module_difficulty" field.
func ModuleDifficultyGTE(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldGTE(FieldModuleDifficulty, v))
}

// ModuleDifficultyLT applies the LT predicate on the "module_difficulty" field.
func ModuleDifficultyLT(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldLT(FieldModuleDifficulty, v))
}

// ModuleDifficultyLTE applies the LTE predicate on the "module_difficulty" field.
func ModuleDifficultyLTE(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldLTE(FieldModuleDifficulty, v))
}

// ModuleDifficultyContains applies the Contains predicate on the "module_difficulty" field.
func ModuleDifficultyContains(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldContains(FieldModuleDifficulty, v))
}

// ModuleDifficultyHasPrefix applies the HasPrefix predicate on the "module_difficulty" field.
func ModuleDifficultyHasPrefix(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldHasPrefix(FieldModuleDifficulty, v))
}

// ModuleDifficultyHasSuffix applies the HasSuffix predicate on the "module_difficulty" field.
func ModuleDifficultyHasSuffix(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldHasSuffix(FieldModuleDifficulty, v))
}

// ModuleDifficultyIsNil applies the IsNil predicate on the "module_difficulty" field.
func ModuleDifficultyIsNil() predicate.TestModule {
	return predicate.TestModule(sql.FieldIsNull(FieldModuleDifficulty))
}

// ModuleDifficultyNotNil applies the NotNil predicate on the "module_difficulty" field.
func ModuleDifficultyNotNil() predicate.TestModule {
	return predicate.TestModule(sql.FieldNotNull(FieldModuleDifficulty))
}

// ModuleDifficultyEqualFold applies the EqualFold predicate on the "module_difficulty" field.
func ModuleDifficultyEqualFold(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldEqualFold(FieldModuleDifficulty, v))
}

// ModuleDifficultyContainsFold applies the ContainsFold predicate on the "module_difficulty" field.
func ModuleDifficultyContainsFold(v string) predicate.TestModule {
	return predicate.TestModule(sql.FieldContainsFold(FieldModuleDifficulty, v))
}

// TimeLimitMinutesEQ applies the EQ predicate on the "time_limit_minutes" field.
func TimeLimitMinutesEQ(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesNEQ applies the NEQ predicate on the "time_limit_minutes" field.
func TimeLimitMinutesNEQ(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldNEQ(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesIn applies the In predicate on the "time_limit_minutes" field.
func TimeLimitMinutesIn(vs ...int) predicate.TestModule {
	return predicate.TestModule(sql.FieldIn(FieldTimeLimitMinutes, vs...))
}

// TimeLimitMinutesNotIn applies the NotIn predicate on the "time_limit_minutes" field.
func TimeLimitMinutesNotIn(vs ...int) predicate.TestModule {
	return predicate.TestModule(sql.FieldNotIn(FieldTimeLimitMinutes, vs...))
}

// TimeLimitMinutesGT applies the GT predicate on the "time_limit_minutes" field.
func TimeLimitMinutesGT(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldGT(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesGTE applies the GTE predicate on the "time_limit_minutes" field.
func TimeLimitMinutesGTE(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldGTE(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesLT applies the LT predicate on the "time_limit_minutes" field.
func TimeLimitMinutesLT(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldLT(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesLTE applies the LTE predicate on the "time_limit_minutes" field.
func TimeLimitMinutesLTE(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldLTE(FieldTimeLimitMinutes, v))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.TestModule {
	return predicate.TestModule(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.TestModule {
	return predicate.TestModule(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.TestModule {
	return predicate.TestModule(sql.FieldLTE(FieldOrderIndex, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestModule {
	return predicate.TestModule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestModule {
	return predicate.TestModule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestModule {
	return predicate.TestModule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestModule {
	return predicate.TestModule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestModule {
	return predicate.TestModule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestModule {
	return predicate.TestModule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestModule {
	return predicate.TestModule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestModule {
	return predicate.TestModule(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTest applies the HasEdge predicate on the "test" edge.
func HasTest() predicate.TestModule {
	return predicate.TestModule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TestTable, TestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTestWith applies the HasEdge predicate on the "test" edge with a given conditions (other predicates).
func HasTestWith(preds ...predicate.Test) predicate.TestModule {
	return predicate.TestModule(func(s *sql.Selector) {
		step := newTestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.TestModule {
	return predicate.TestModule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.Question) predicate.TestModule {
	return predicate.TestModule(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestModule) predicate.TestModule {
	return predicate.TestModule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestModule) predicate.TestModule {
	return predicate.TestModule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestModule) predicate.TestModule {
	return predicate.TestModule(sql.NotPredicates(p))
}
