// Code generated by ent, DO NOT EDIT.

package testmodule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the testmodule type in the database.
	Label = "test_module"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTestID holds the string denoting the test_id field in the database.
	FieldTestID = "test_id"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldModuleSlot holds the string denoting the module_slot field in the database.
	FieldModuleSlot = "module_slot"
	// FieldModuleDifficulty holds the string denoting the module_difficulty field in the database.
	FieldModuleDifficulty = "module_difficulty"
	// FieldTimeLimitMinutes holds the string denoting the time_limit_minutes field in the database.
	FieldTimeLimitMinutes = "time_limit_minutes"
	// FieldOrderIndex holds the string denoting the order_index field in the database.
	FieldOrderIndex = "order_index"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTest holds the string denoting the test edge name in mutations.
	EdgeTest = "test"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// Table holds the table name of the testmodule in the database.
	Table = "test_modules"
	// TestTable is the table that holds the test relation/edge.
	TestTable = "test_modules"
	// TestInverseTable is the table name for the Test entity.
	// It exists in this package in order to avoid circular dependency with the "test" package.
	TestInverseTable = "tests"
	// TestColumn is the table column denoting the test relation/edge.
	TestColumn = "test_id"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "questions"
	// QuestionsInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionsInverseTable = "questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "module_id"
)

// Columns holds all SQL columns for testmodule fields.
var Columns = []string{
	FieldID,
	FieldTestID,
	FieldSection,
	FieldModuleSlot,
	FieldModuleDifficulty,
	FieldTimeLimitMinutes,
	FieldOrderIndex,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SectionValidator is a validator for the "section" field. It is called by the builders before save.
	SectionValidator func(string) error
	// ModuleSlotValidator is a validator for the "module_slot" field. It is called by the builders before save.
	ModuleSlotValidator func(string) error
	// ModuleDifficultyValidator is a validator for the "module_difficulty" field. It is called by the builders before save.
	ModuleDifficultyValidator func(string) error
	// TimeLimitMinutesValidator is a validator for the "time_limit_minutes" field. It is called by the builders before save.
	TimeLimitMinutesValidator func(int) error
	// DefaultOrderIndex holds the default value on creation for the "order_index" field.
	DefaultOrderIndex int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TestModule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTestID orders the results by the test_id field.
func ByTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestID, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByModuleSlot orders the results by the module_slot field.
func ByModuleSlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleSlot, opts...).ToFunc()
}

// ByModuleDifficulty orders the results by the module_difficulty field.
func ByModuleDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleDifficulty, opts...).ToFunc()
}

// ByTimeLimitMinutes orders the results by the time_limit_minutes field.
func ByTimeLimitMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeLimitMinutes, opts...).ToFunc()
}

// ByOrderIndex orders the results by the order_index field.
func ByOrderIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderIndex, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTestField orders the results by test field.
func ByTestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TestTable, TestColumn),
	)
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}
