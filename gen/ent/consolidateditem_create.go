// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/catalogkit/extractor/gen/ent/consolidateditem"
	"github.com/catalogkit/extractor/gen/ent/document"
	"github.com/google/uuid"
)

// ConsolidatedItemCreate is the builder for creating a ConsolidatedItem entity.
type ConsolidatedItemCreate struct {
	config
	mutation *ConsolidatedItemMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ConsolidatedItemCreate) SetDocumentID(v uuid.UUID) *ConsolidatedItemCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetBrandCode sets the "brand_code" field.
func (_c *ConsolidatedItemCreate) SetBrandCode(v string) *ConsolidatedItemCreate {
	_c.mutation.SetBrandCode(v)
	return _c
}

// SetNillableBrandCode sets the "brand_code" field if the given value is not nil.
func (_c *ConsolidatedItemCreate) SetNillableBrandCode(v *string) *ConsolidatedItemCreate {
	if v != nil {
		_c.SetBrandCode(*v)
	}
	return _c
}

// SetPartNumber sets the "part_number" field.
func (_c *ConsolidatedItemCreate) SetPartNumber(v string) *ConsolidatedItemCreate {
	_c.mutation.SetPartNumber(v)
	return _c
}

// SetNillablePartNumber sets the "part_number" field if the given value is not nil.
func (_c *ConsolidatedItemCreate) SetNillablePartNumber(v *string) *ConsolidatedItemCreate {
	if v != nil {
		_c.SetPartNumber(*v)
	}
	return _c
}

// SetPriceType sets the "price_type" field.
func (_c *ConsolidatedItemCreate) SetPriceType(v string) *ConsolidatedItemCreate {
	_c.mutation.SetPriceType(v)
	return _c
}

// SetNillablePriceType sets the "price_type" field if the given value is not nil.
func (_c *ConsolidatedItemCreate) SetNillablePriceType(v *string) *ConsolidatedItemCreate {
	if v != nil {
		_c.SetPriceType(*v)
	}
	return _c
}

// SetPriceValue sets the "price_value" field.
func (_c *ConsolidatedItemCreate) SetPriceValue(v float64) *ConsolidatedItemCreate {
	_c.mutation.SetPriceValue(v)
	return _c
}

// SetNillablePriceValue sets the "price_value" field if the given value is not nil.
func (_c *ConsolidatedItemCreate) SetNillablePriceValue(v *float64) *ConsolidatedItemCreate {
	if v != nil {
		_c.SetPriceValue(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ConsolidatedItemCreate) SetCurrency(v string) *ConsolidatedItemCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *ConsolidatedItemCreate) SetNillableCurrency(v *string) *ConsolidatedItemCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetPage sets the "page" field.
func (_c *ConsolidatedItemCreate) SetPage(v int) *ConsolidatedItemCreate {
	_c.mutation.SetPage(v)
	return _c
}

// SetAvgConfidence sets the "avg_confidence" field.
func (_c *ConsolidatedItemCreate) SetAvgConfidence(v float64) *ConsolidatedItemCreate {
	_c.mutation.SetAvgConfidence(v)
	return _c
}

// SetNillableAvgConfidence sets the "avg_confidence" field if the given value is not nil.
func (_c *ConsolidatedItemCreate) SetNillableAvgConfidence(v *float64) *ConsolidatedItemCreate {
	if v != nil {
		_c.SetAvgConfidence(*v)
	}
	return _c
}

// SetSourceCount sets the "source_count" field.
func (_c *ConsolidatedItemCreate) SetSourceCount(v int) *ConsolidatedItemCreate {
	_c.mutation.SetSourceCount(v)
	return _c
}

// SetNillableSourceCount sets the "source_count" field if the given value is not nil.
func (_c *ConsolidatedItemCreate) SetNillableSourceCount(v *int) *ConsolidatedItemCreate {
	if v != nil {
		_c.SetSourceCount(*v)
	}
	return _c
}

// SetContributingItemIds sets the "contributing_item_ids" field.
func (_c *ConsolidatedItemCreate) SetContributingItemIds(v []uuid.UUID) *ConsolidatedItemCreate {
	_c.mutation.SetContributingItemIds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConsolidatedItemCreate) SetCreatedAt(v time.Time) *ConsolidatedItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConsolidatedItemCreate) SetNillableCreatedAt(v *time.Time) *ConsolidatedItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConsolidatedItemCreate) SetID(v uuid.UUID) *ConsolidatedItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ConsolidatedItemCreate) SetNillableID(v *uuid.UUID) *ConsolidatedItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ConsolidatedItemCreate) SetDocument(v *Document) *ConsolidatedItemCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ConsolidatedItemMutation object of the builder.
func (_c *ConsolidatedItemCreate) Mutation() *ConsolidatedItemMutation {
	return _c.mutation
}

// Save creates the ConsolidatedItem in the database.
func (_c *ConsolidatedItemCreate) Save(ctx context.Context) (*ConsolidatedItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConsolidatedItemCreate) SaveX(ctx context.Context) *ConsolidatedItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsolidatedItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsolidatedItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConsolidatedItemCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := consolidateditem.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.AvgConfidence(); !ok {
		v := consolidateditem.DefaultAvgConfidence
		_c.mutation.SetAvgConfidence(v)
	}
	if _, ok := _c.mutation.SourceCount(); !ok {
		v := consolidateditem.DefaultSourceCount
		_c.mutation.SetSourceCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := consolidateditem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := consolidateditem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConsolidatedItemCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ConsolidatedItem.document_id"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "ConsolidatedItem.currency"`)}
	}
	if _, ok := _c.mutation.Page(); !ok {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required field "ConsolidatedItem.page"`)}
	}
	if v, ok := _c.mutation.Page(); ok {
		if err := consolidateditem.PageValidator(v); err != nil {
			return &ValidationError{Name: "page", err: fmt.Errorf(`ent: validator failed for field "ConsolidatedItem.page": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AvgConfidence(); !ok {
		return &ValidationError{Name: "avg_confidence", err: errors.New(`ent: missing required field "ConsolidatedItem.avg_confidence"`)}
	}
	if _, ok := _c.mutation.SourceCount(); !ok {
		return &ValidationError{Name: "source_count", err: errors.New(`ent: missing required field "ConsolidatedItem.source_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConsolidatedItem.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ConsolidatedItem.document"`)}
	}
	return nil
}

func (_c *ConsolidatedItemCreate) sqlSave(ctx context.Context) (*ConsolidatedItem, error) {
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

func (_c *ConsolidatedItemCreate) createSpec() (*ConsolidatedItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ConsolidatedItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(consolidateditem.Table, sqlgraph.NewFieldSpec(consolidateditem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BrandCode(); ok {
		_spec.SetField(consolidateditem.FieldBrandCode, field.TypeString, value)
		_node.BrandCode = value
	}
	if value, ok := _c.mutation.PartNumber(); ok {
		_spec.SetField(consolidateditem.FieldPartNumber, field.TypeString, value)
		_node.PartNumber = value
	}
	if value, ok := _c.mutation.PriceType(); ok {
		_spec.SetField(consolidateditem.FieldPriceType, field.TypeString, value)
		_node.PriceType = value
	}
	if value, ok := _c.mutation.PriceValue(); ok {
		_spec.SetField(consolidateditem.FieldPriceValue, field.TypeFloat64, value)
		_node.PriceValue = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(consolidateditem.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Page(); ok {
		_spec.SetField(consolidateditem.FieldPage, field.TypeInt, value)
		_node.Page = value
	}
	if value, ok := _c.mutation.AvgConfidence(); ok {
		_spec.SetField(consolidateditem.FieldAvgConfidence, field.TypeFloat64, value)
		_node.AvgConfidence = value
	}
	if value, ok := _c.mutation.SourceCount(); ok {
		_spec.SetField(consolidateditem.FieldSourceCount, field.TypeInt, value)
		_node.SourceCount = value
	}
	if value, ok := _c.mutation.ContributingItemIds(); ok {
		_spec.SetField(consolidateditem.FieldContributingItemIds, field.TypeJSON, value)
		_node.ContributingItemIds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(consolidateditem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consolidateditem.DocumentTable,
			Columns: []string{consolidateditem.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConsolidatedItemCreateBulk is the builder for creating many ConsolidatedItem entities in bulk.
type ConsolidatedItemCreateBulk struct {
	config
	err      error
	builders []*ConsolidatedItemCreate
}

// Save creates the ConsolidatedItem entities in the database.
func (_c *ConsolidatedItemCreateBulk) Save(ctx context.Context) ([]*ConsolidatedItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConsolidatedItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConsolidatedItemMutation)
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
func (_c *ConsolidatedItemCreateBulk) SaveX(ctx context.Context) []*ConsolidatedItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsolidatedItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsolidatedItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
