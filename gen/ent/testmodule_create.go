// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/question"
	"github.com/seyi-ajayi/examscan/gen/ent/test"
	"github.com/seyi-ajayi/examscan/gen/ent/testmodule"
)

// TestModuleCreate is the builder for creating a TestModule entity.
type TestModuleCreate struct {
	config
	mutation *TestModuleMutation
	hooks    []Hook
}

// SetTestID sets the "test_id" field.
func (_c *TestModuleCreate) SetTestID(v uuid.UUID) *TestModuleCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_c *TestModuleCreate) SetNillableTestID(v *uuid.UUID) *TestModuleCreate {
	if v != nil {
		_c.SetTestID(*v)
	}
	return _c
}

// SetSection sets the "section" field.
func (_c *TestModuleCreate) SetSection(v string) *TestModuleCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetModuleSlot sets the "module_slot" field.
func (_c *TestModuleCreate) SetModuleSlot(v string) *TestModuleCreate {
	_c.mutation.SetModuleSlot(v)
	return _c
}

// SetModuleDifficulty sets the "module_difficulty" field.
func (_c *TestModuleCreate) SetModuleDifficulty(v string) *TestModuleCreate {
	_c.mutation.SetModuleDifficulty(v)
	return _c
}

// SetNillableModuleDifficulty sets the "module_difficulty" field if the given value is not nil.
func (_c *TestModuleCreate) SetNillableModuleDifficulty(v *string) *TestModuleCreate {
	if v != nil {
		_c.SetModuleDifficulty(*v)
	}
	return _c
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (_c *TestModuleCreate) SetTimeLimitMinutes(v int) *TestModuleCreate {
	_c.mutation.SetTimeLimitMinutes(v)
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *TestModuleCreate) SetOrderIndex(v int) *TestModuleCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *TestModuleCreate) SetNillableOrderIndex(v *int) *TestModuleCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestModuleCreate) SetCreatedAt(v time.Time) *TestModuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestModuleCreate) SetNillableCreatedAt(v *time.Time) *TestModuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestModuleCreate) SetID(v uuid.UUID) *TestModuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TestModuleCreate) SetNillableID(v *uuid.UUID) *TestModuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTest sets the "test" edge to the Test entity.
func (_c *TestModuleCreate) SetTest(v *Test) *TestModuleCreate {
	return _c.SetTestID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *TestModuleCreate) AddQuestionIDs(ids ...uuid.UUID) *TestModuleCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *TestModuleCreate) AddQuestions(v ...*Question) *TestModuleCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// Mutation returns the TestModuleMutation object of the builder.
func (_c *TestModuleCreate) Mutation() *TestModuleMutation {
	return _c.mutation
}

// Save creates the TestModule in the database.
func (_c *TestModuleCreate) Save(ctx context.Context) (*TestModule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestModuleCreate) SaveX(ctx context.Context) *TestModule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestModuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestModuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestModuleCreate) defaults() {
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := testmodule.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testmodule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := testmodule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestModuleCreate) check() error {
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "TestModule.section"`)}
	}
	if v, ok := _c.mutation.Section(); ok {
		if err := testmodule.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "TestModule.section": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleSlot(); !ok {
		return &ValidationError{Name: "module_slot", err: errors.New(`ent: missing required field "TestModule.module_slot"`)}
	}
	if v, ok := _c.mutation.ModuleSlot(); ok {
		if err := testmodule.ModuleSlotValidator(v); err != nil {
			return &ValidationError{Name: "module_slot", err: fmt.Errorf(`ent: validator failed for field "TestModule.module_slot": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ModuleDifficulty(); ok {
		if err := testmodule.ModuleDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "module_difficulty", err: fmt.Errorf(`ent: validator failed for field "TestModule.module_difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeLimitMinutes(); !ok {
		return &ValidationError{Name: "time_limit_minutes", err: errors.New(`ent: missing required field "TestModule.time_limit_minutes"`)}
	}
	if v, ok := _c.mutation.TimeLimitMinutes(); ok {
		if err := testmodule.TimeLimitMinutesValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_minutes", err: fmt.Errorf(`ent: validator failed for field "TestModule.time_limit_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "TestModule.order_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestModule.created_at"`)}
	}
	return nil
}

func (_c *TestModuleCreate) sqlSave(ctx context.Context) (*TestModule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestModuleCreate) createSpec() (*TestModule, *sqlgraph.CreateSpec) {
	var (
		_node = &TestModule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testmodule.Table, sqlgraph.NewFieldSpec(testmodule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(testmodule.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.ModuleSlot(); ok {
		_spec.SetField(testmodule.FieldModuleSlot, field.TypeString, value)
		_node.ModuleSlot = value
	}
	if value, ok := _c.mutation.ModuleDifficulty(); ok {
		_spec.SetField(testmodule.FieldModuleDifficulty, field.TypeString, value)
		_node.ModuleDifficulty = &value
	}
	if value, ok := _c.mutation.TimeLimitMinutes(); ok {
		_spec.SetField(testmodule.FieldTimeLimitMinutes, field.TypeInt, value)
		_node.TimeLimitMinutes = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(testmodule.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testmodule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TestIDs(); len(nodes) > 0 {
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
		_node.TestID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TestModuleCreateBulk is the builder for creating many TestModule entities in bulk.
type TestModuleCreateBulk struct {
	config
	err      error
	builders []*TestModuleCreate
}

// Save creates the TestModule entities in the database.
func (_c *TestModuleCreateBulk) Save(ctx context.Context) ([]*TestModule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestModule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestModuleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestModuleCreateBulk) SaveX(ctx context.Context) []*TestModule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestModuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestModuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
