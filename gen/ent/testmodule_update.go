// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/predicate"
	"github.com/seyi-ajayi/examscan/gen/ent/question"
	"github.com/seyi-ajayi/examscan/gen/ent/test"
	"github.com/seyi-ajayi/examscan/gen/ent/testmodule"
)

// TestModuleUpdate is the builder for updating TestModule entities.
type TestModuleUpdate struct {
	config
	hooks    []Hook
	mutation *TestModuleMutation
}

// Where appends a list predicates to the TestModuleUpdate builder.
func (_u *TestModuleUpdate) Where(ps ...predicate.TestModule) *TestModuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *TestModuleUpdate) SetTestID(v uuid.UUID) *TestModuleUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestModuleUpdate) SetNillableTestID(v *uuid.UUID) *TestModuleUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// ClearTestID clears the value of the "test_id" field.
func (_u *TestModuleUpdate) ClearTestID() *TestModuleUpdate {
	_u.mutation.ClearTestID()
	return _u
}

// SetSection sets the "section" field.
func (_u *TestModuleUpdate) SetSection(v string) *TestModuleUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *TestModuleUpdate) SetNillableSection(v *string) *TestModuleUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetModuleSlot sets the "module_slot" field.
func (_u *TestModuleUpdate) SetModuleSlot(v string) *TestModuleUpdate {
	_u.mutation.SetModuleSlot(v)
	return _u
}

// SetNillableModuleSlot sets the "module_slot" field if the given value is not nil.
func (_u *TestModuleUpdate) SetNillableModuleSlot(v *string) *TestModuleUpdate {
	if v != nil {
		_u.SetModuleSlot(*v)
	}
	return _u
}

// SetModuleDifficulty sets the "module_difficulty" field.
func (_u *TestModuleUpdate) SetModuleDifficulty(v string) *TestModuleUpdate {
	_u.mutation.SetModuleDifficulty(v)
	return _u
}

// SetNillableModuleDifficulty sets the "module_difficulty" field if the given value is not nil.
func (_u *TestModuleUpdate) SetNillableModuleDifficulty(v *string) *TestModuleUpdate {
	if v != nil {
		_u.SetModuleDifficulty(*v)
	}
	return _u
}

// ClearModuleDifficulty clears the value of the "module_difficulty" field.
func (_u *TestModuleUpdate) ClearModuleDifficulty() *TestModuleUpdate {
	_u.mutation.ClearModuleDifficulty()
	return _u
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (_u *TestModuleUpdate) SetTimeLimitMinutes(v int) *TestModuleUpdate {
	_u.mutation.ResetTimeLimitMinutes()
	_u.mutation.SetTimeLimitMinutes(v)
	return _u
}

// SetNillableTimeLimitMinutes sets the "time_limit_minutes" field if the given value is not nil.
func (_u *TestModuleUpdate) SetNillableTimeLimitMinutes(v *int) *TestModuleUpdate {
	if v != nil {
		_u.SetTimeLimitMinutes(*v)
	}
	return _u
}

// AddTimeLimitMinutes adds value to the "time_limit_minutes" field.
func (_u *TestModuleUpdate) AddTimeLimitMinutes(v int) *TestModuleUpdate {
	_u.mutation.AddTimeLimitMinutes(v)
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *TestModuleUpdate) SetOrderIndex(v int) *TestModuleUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *TestModuleUpdate) SetNillableOrderIndex(v *int) *TestModuleUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *TestModuleUpdate) AddOrderIndex(v int) *TestModuleUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetTest sets the "test" edge to the Test entity.
func (_u *TestModuleUpdate) SetTest(v *Test) *TestModuleUpdate {
	return _u.SetTestID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *TestModuleUpdate) AddQuestionIDs(ids ...uuid.UUID) *TestModuleUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *TestModuleUpdate) AddQuestions(v ...*Question) *TestModuleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the TestModuleMutation object of the builder.
func (_u *TestModuleUpdate) Mutation() *TestModuleMutation {
	return _u.mutation
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *TestModuleUpdate) ClearTest() *TestModuleUpdate {
	_u.mutation.ClearTest()
	return _u
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *TestModuleUpdate) ClearQuestions() *TestModuleUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *TestModuleUpdate) RemoveQuestionIDs(ids ...uuid.UUID) *TestModuleUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *TestModuleUpdate) RemoveQuestions(v ...*Question) *TestModuleUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestModuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestModuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestModuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestModuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestModuleUpdate) check() error {
	if v, ok := _u.mutation.Section(); ok {
		if err := testmodule.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "TestModule.section": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleSlot(); ok {
		if err := testmodule.ModuleSlotValidator(v); err != nil {
			return &ValidationError{Name: "module_slot", err: fmt.Errorf(`ent: validator failed for field "TestModule.module_slot": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleDifficulty(); ok {
		if err := testmodule.ModuleDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "module_difficulty", err: fmt.Errorf(`ent: validator failed for field "TestModule.module_difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeLimitMinutes(); ok {
		if err := testmodule.TimeLimitMinutesValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_minutes", err: fmt.Errorf(`ent: validator failed for field "TestModule.time_limit_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *TestModuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testmodule.Table, testmodule.Columns, sqlgraph.NewFieldSpec(testmodule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(testmodule.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleSlot(); ok {
		_spec.SetField(testmodule.FieldModuleSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleDifficulty(); ok {
		_spec.SetField(testmodule.FieldModuleDifficulty, field.TypeString, value)
	}
	if _u.mutation.ModuleDifficultyCleared() {
		_spec.ClearField(testmodule.FieldModuleDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.TimeLimitMinutes(); ok {
		_spec.SetField(testmodule.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitMinutes(); ok {
		_spec.AddField(testmodule.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(testmodule.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(testmodule.FieldOrderIndex, field.TypeInt, value)
	}
	if _u.mutation.TestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testmodule.TestTable,
			Columns: []string{testmodule.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testmodule.TestTable,
			Columns: []string{testmodule.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testmodule.QuestionsTable,
			Columns: []string{testmodule.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testmodule.QuestionsTable,
			Columns: []string{testmodule.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testmodule.QuestionsTable,
			Columns: []string{testmodule.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testmodule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestModuleUpdateOne is the builder for updating a single TestModule entity.
type TestModuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestModuleMutation
}

// SetTestID sets the "test_id" field.
func (_u *TestModuleUpdateOne) SetTestID(v uuid.UUID) *TestModuleUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *TestModuleUpdateOne) SetNillableTestID(v *uuid.UUID) *TestModuleUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// ClearTestID clears the value of the "test_id" field.
func (_u *TestModuleUpdateOne) ClearTestID() *TestModuleUpdateOne {
	_u.mutation.ClearTestID()
	return _u
}

// SetSection sets the "section" field.
func (_u *TestModuleUpdateOne) SetSection(v string) *TestModuleUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *TestModuleUpdateOne) SetNillableSection(v *string) *TestModuleUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetModuleSlot sets the "module_slot" field.
func (_u *TestModuleUpdateOne) SetModuleSlot(v string) *TestModuleUpdateOne {
	_u.mutation.SetModuleSlot(v)
	return _u
}

// SetNillableModuleSlot sets the "module_slot" field if the given value is not nil.
func (_u *TestModuleUpdateOne) SetNillableModuleSlot(v *string) *TestModuleUpdateOne {
	if v != nil {
		_u.SetModuleSlot(*v)
	}
	return _u
}

// SetModuleDifficulty sets the "module_difficulty" field.
func (_u *TestModuleUpdateOne) SetModuleDifficulty(v string) *TestModuleUpdateOne {
	_u.mutation.SetModuleDifficulty(v)
	return _u
}

// SetNillableModuleDifficulty sets the "module_difficulty" field if the given value is not nil.
func (_u *TestModuleUpdateOne) SetNillableModuleDifficulty(v *string) *TestModuleUpdateOne {
	if v != nil {
		_u.SetModuleDifficulty(*v)
	}
	return _u
}

// ClearModuleDifficulty clears the value of the "module_difficulty" field.
func (_u *TestModuleUpdateOne) ClearModuleDifficulty() *TestModuleUpdateOne {
	_u.mutation.ClearModuleDifficulty()
	return _u
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (_u *TestModuleUpdateOne) SetTimeLimitMinutes(v int) *TestModuleUpdateOne {
	_u.mutation.ResetTimeLimitMinutes()
	_u.mutation.SetTimeLimitMinutes(v)
	return _u
}

// SetNillableTimeLimitMinutes sets the "time_limit_minutes" field if the given value is not nil.
func (_u *TestModuleUpdateOne) SetNillableTimeLimitMinutes(v *int) *TestModuleUpdateOne {
	if v != nil {
		_u.SetTimeLimitMinutes(*v)
	}
	return _u
}

// AddTimeLimitMinutes adds value to the "time_limit_minutes" field.
func (_u *TestModuleUpdateOne) AddTimeLimitMinutes(v int) *TestModuleUpdateOne {
	_u.mutation.AddTimeLimitMinutes(v)
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *TestModuleUpdateOne) SetOrderIndex(v int) *TestModuleUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *TestModuleUpdateOne) SetNillableOrderIndex(v *int) *TestModuleUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *TestModuleUpdateOne) AddOrderIndex(v int) *TestModuleUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetTest sets the "test" edge to the Test entity.
func (_u *TestModuleUpdateOne) SetTest(v *Test) *TestModuleUpdateOne {
	return _u.SetTestID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *TestModuleUpdateOne) AddQuestionIDs(ids ...uuid.UUID) *TestModuleUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *TestModuleUpdateOne) AddQuestions(v ...*Question) *TestModuleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the TestModuleMutation object of the builder.
func (_u *TestModuleUpdateOne) Mutation() *TestModuleMutation {
	return _u.mutation
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *TestModuleUpdateOne) ClearTest() *TestModuleUpdateOne {
	_u.mutation.ClearTest()
	return _u
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *TestModuleUpdateOne) ClearQuestions() *TestModuleUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *TestModuleUpdateOne) RemoveQuestionIDs(ids ...uuid.UUID) *TestModuleUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *TestModuleUpdateOne) RemoveQuestions(v ...*Question) *TestModuleUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the TestModuleUpdate builder.
func (_u *TestModuleUpdateOne) Where(ps ...predicate.TestModule) *TestModuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestModuleUpdateOne) Select(field string, fields ...string) *TestModuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestModule entity.
func (_u *TestModuleUpdateOne) Save(ctx context.Context) (*TestModule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestModuleUpdateOne) SaveX(ctx context.Context) *TestModule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestModuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestModuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestModuleUpdateOne) check() error {
	if v, ok := _u.mutation.Section(); ok {
		if err := testmodule.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "TestModule.section": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleSlot(); ok {
		if err := testmodule.ModuleSlotValidator(v); err != nil {
			return &ValidationError{Name: "module_slot", err: fmt.Errorf(`ent: validator failed for field "TestModule.module_slot": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleDifficulty(); ok {
		if err := testmodule.ModuleDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "module_difficulty", err: fmt.Errorf(`ent: validator failed for field "TestModule.module_difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeLimitMinutes(); ok {
		if err := testmodule.TimeLimitMinutesValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_minutes", err: fmt.Errorf(`ent: validator failed for field "TestModule.time_limit_minutes": %w`, err)}
		}
	}
	return nil
}

func (_u *TestModuleUpdateOne) sqlSave(ctx context.Context) (_node *TestModule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testmodule.Table, testmodule.Columns, sqlgraph.NewFieldSpec(testmodule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestModule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testmodule.FieldID)
		for _, f := range fields {
			if !testmodule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testmodule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(testmodule.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleSlot(); ok {
		_spec.SetField(testmodule.FieldModuleSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleDifficulty(); ok {
		_spec.SetField(testmodule.FieldModuleDifficulty, field.TypeString, value)
	}
	if _u.mutation.ModuleDifficultyCleared() {
		_spec.ClearField(testmodule.FieldModuleDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.TimeLimitMinutes(); ok {
		_spec.SetField(testmodule.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitMinutes(); ok {
		_spec.AddField(testmodule.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(testmodule.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(testmodule.FieldOrderIndex, field.TypeInt, value)
	}
	if _u.mutation.TestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testmodule.TestTable,
			Columns: []string{testmodule.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testmodule.TestTable,
			Columns: []string{testmodule.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testmodule.QuestionsTable,
			Columns: []string{testmodule.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testmodule.QuestionsTable,
			Columns: []string{testmodule.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testmodule.QuestionsTable,
			Columns: []string{testmodule.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TestModule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testmodule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
