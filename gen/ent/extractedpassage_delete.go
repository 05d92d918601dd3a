// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedpassage"
	"github.com/seyi-ajayi/examscan/gen/ent/predicate"
)

// ExtractedPassageDelete is the builder for deleting a ExtractedPassage entity.
type ExtractedPassageDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedPassageMutation
}

// Where appends a list predicates to the ExtractedPassageDelete builder.
func (_d *ExtractedPassageDelete) Where(ps ...predicate.ExtractedPassage) *ExtractedPassageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedPassageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedPassageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedPassageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractedpassage.Table, sqlgraph.NewFieldSpec(extractedpassage.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtractedPassageDeleteOne is the builder for deleting a single ExtractedPassage entity.
type ExtractedPassageDeleteOne struct {
	_d *ExtractedPassageDelete
}

// Where appends a list predicates to the ExtractedPassageDelete builder.
func (_d *ExtractedPassageDeleteOne) Where(ps ...predicate.ExtractedPassage) *ExtractedPassageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedPassageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractedpassage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedPassageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
