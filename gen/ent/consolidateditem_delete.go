// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/catalogkit/extractor/gen/ent/consolidateditem"
	"github.com/catalogkit/extractor/gen/ent/predicate"
)

// ConsolidatedItemDelete is the builder for deleting a ConsolidatedItem entity.
type ConsolidatedItemDelete struct {
	config
	hooks    []Hook
	mutation *ConsolidatedItemMutation
}

// Where appends a list predicates to the ConsolidatedItemDelete builder.
func (_d *ConsolidatedItemDelete) Where(ps ...predicate.ConsolidatedItem) *ConsolidatedItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConsolidatedItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConsolidatedItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConsolidatedItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(consolidateditem.Table, sqlgraph.NewFieldSpec(consolidateditem.FieldID, field.TypeUUID))
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

// ConsolidatedItemDeleteOne is the builder for deleting a single ConsolidatedItem entity.
type ConsolidatedItemDeleteOne struct {
	_d *ConsolidatedItemDelete
}

// Where appends a list predicates to the ConsolidatedItemDelete builder.
func (_d *ConsolidatedItemDeleteOne) Where(ps ...predicate.ConsolidatedItem) *ConsolidatedItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConsolidatedItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{consolidateditem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConsolidatedItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
