// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/test"
	"github.com/seyi-ajayi/examscan/gen/ent/testmodule"
)

// TestModule is the model entity for the TestModule schema.
type TestModule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TestID holds the value of the "test_id" field.
	TestID *uuid.UUID `json:"test_id,omitempty"`
	// Section holds the value of the "section" field.
	Section string `json:"section,omitempty"`
	// ModuleSlot holds the value of the "module_slot" field.
	ModuleSlot string `json:"module_slot,omitempty"`
	// ModuleDifficulty holds the value of the "module_difficulty" field.
	ModuleDifficulty *string `json:"module_difficulty,omitempty"`
	// TimeLimitMinutes holds the value of the "time_limit_minutes" field.
	TimeLimitMinutes int `json:"time_limit_minutes,omitempty"`
	// OrderIndex holds the value of the "order_index" field.
	OrderIndex int `json:"order_index,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TestModuleQuery when eager-loading is set.
	Edges        TestModuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TestModuleEdges holds the relations/edges for other nodes in the graph.
type TestModuleEdges struct {
	// Test holds the value of the test edge.
	Test *Test `json:"test,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TestOrErr returns the Test value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TestModuleEdges) TestOrErr() (*Test, error) {
	if e.Test != nil {
		return e.Test, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: test.Label}
	}
	return nil, &NotLoadedError{edge: "test"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e TestModuleEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[1] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestModule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testmodule.FieldTestID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case testmodule.FieldTimeLimitMinutes, testmodule.FieldOrderIndex:
			values[i] = new(sql.NullInt64)
		case testmodule.FieldSection, testmodule.FieldModuleSlot, testmodule.FieldModuleDifficulty:
			values[i] = new(sql.NullString)
		case testmodule.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case testmodule.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestModule fields.
func (_m *TestModule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testmodule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case testmodule.FieldTestID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value.Valid {
				_m.TestID = new(uuid.UUID)
				*_m.TestID = *value.S.(*uuid.UUID)
			}
		case testmodule.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = value.String
			}
		case testmodule.FieldModuleSlot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_slot", values[i])
			} else if value.Valid {
				_m.ModuleSlot = value.String
			}
		case testmodule.FieldModuleDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_difficulty", values[i])
			} else if value.Valid {
				_m.ModuleDifficulty = new(string)
				*_m.ModuleDifficulty = value.String
			}
		case testmodule.FieldTimeLimitMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_limit_minutes", values[i])
			} else if value.Valid {
				_m.TimeLimitMinutes = int(value.Int64)
			}
		case testmodule.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		case testmodule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestModule.
// This includes values selected through modifiers, order, etc.
func (_m *TestModule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTest queries the "test" edge of the TestModule entity.
func (_m *TestModule) QueryTest() *TestQuery {
	return NewTestModuleClient(_m.config).QueryTest(_m)
}

// QueryQuestions queries the "questions" edge of the TestModule entity.
func (_m *TestModule) QueryQuestions() *QuestionQuery {
	return NewTestModuleClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this TestModule.
// Note that you need to call TestModule.Unwrap() before calling this method if this TestModule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestModule) Update() *TestModuleUpdateOne {
	return NewTestModuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestModule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestModule) Unwrap() *TestModule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestModule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestModule) String() string {
	var builder strings.Builder
	builder.WriteString("TestModule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.TestID; v != nil {
		builder.WriteString("test_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(_m.Section)
	builder.WriteString(", ")
	builder.WriteString("module_slot=")
	builder.WriteString(_m.ModuleSlot)
	builder.WriteString(", ")
	if v := _m.ModuleDifficulty; v != nil {
		builder.WriteString("module_difficulty=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("time_limit_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeLimitMinutes))
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TestModules is a parsable slice of TestModule.
type TestModules []*TestModule
