// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/catalogkit/extractor/gen/ent/extracteditem"
	"github.com/catalogkit/extractor/gen/ent/extractionpass"
	"github.com/google/uuid"
)

// ExtractedItemCreate is the builder for creating a ExtractedItem entity.
type ExtractedItemCreate struct {
	config
	mutation *ExtractedItemMutation
	hooks    []Hook
}

// SetPassID sets the "pass_id" field.
func (_c *ExtractedItemCreate) SetPassID(v uuid.UUID) *ExtractedItemCreate {
	_c.mutation.SetPassID(v)
	return _c
}

// SetBrandCode sets the "brand_code" field.
func (_c *ExtractedItemCreate) SetBrandCode(v string) *ExtractedItemCreate {
	_c.mutation.SetBrandCode(v)
	return _c
}

// SetNillableBrandCode sets the "brand_code" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillableBrandCode(v *string) *ExtractedItemCreate {
	if v != nil {
		_c.SetBrandCode(*v)
	}
	return _c
}

// SetPartNumber sets the "part_number" field.
func (_c *ExtractedItemCreate) SetPartNumber(v string) *ExtractedItemCreate {
	_c.mutation.SetPartNumber(v)
	return _c
}

// SetNillablePartNumber sets the "part_number" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillablePartNumber(v *string) *ExtractedItemCreate {
	if v != nil {
		_c.SetPartNumber(*v)
	}
	return _c
}

// SetPriceType sets the "price_type" field.
func (_c *ExtractedItemCreate) SetPriceType(v string) *ExtractedItemCreate {
	_c.mutation.SetPriceType(v)
	return _c
}

// SetNillablePriceType sets the "price_type" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillablePriceType(v *string) *ExtractedItemCreate {
	if v != nil {
		_c.SetPriceType(*v)
	}
	return _c
}

// SetPriceValue sets the "price_value" field.
func (_c *ExtractedItemCreate) SetPriceValue(v float64) *ExtractedItemCreate {
	_c.mutation.SetPriceValue(v)
	return _c
}

// SetNillablePriceValue sets the "price_value" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillablePriceValue(v *float64) *ExtractedItemCreate {
	if v != nil {
		_c.SetPriceValue(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ExtractedItemCreate) SetCurrency(v string) *ExtractedItemCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillableCurrency(v *string) *ExtractedItemCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetPage sets the "page" field.
func (_c *ExtractedItemCreate) SetPage(v int) *ExtractedItemCreate {
	_c.mutation.SetPage(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractedItemCreate) SetConfidence(v float64) *ExtractedItemCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillableConfidence(v *float64) *ExtractedItemCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ExtractedItemCreate) SetRawText(v string) *ExtractedItemCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillableRawText(v *string) *ExtractedItemCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetBboxX sets the "bbox_x" field.
func (_c *ExtractedItemCreate) SetBboxX(v int) *ExtractedItemCreate {
	_c.mutation.SetBboxX(v)
	return _c
}

// SetNillableBboxX sets the "bbox_x" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillableBboxX(v *int) *ExtractedItemCreate {
	if v != nil {
		_c.SetBboxX(*v)
	}
	return _c
}

// SetBboxY sets the "bbox_y" field.
func (_c *ExtractedItemCreate) SetBboxY(v int) *ExtractedItemCreate {
	_c.mutation.SetBboxY(v)
	return _c
}

// SetNillableBboxY sets the "bbox_y" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillableBboxY(v *int) *ExtractedItemCreate {
	if v != nil {
		_c.SetBboxY(*v)
	}
	return _c
}

// SetBboxWidth sets the "bbox_width" field.
func (_c *ExtractedItemCreate) SetBboxWidth(v int) *ExtractedItemCreate {
	_c.mutation.SetBboxWidth(v)
	return _c
}

// SetNillableBboxWidth sets the "bbox_width" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillableBboxWidth(v *int) *ExtractedItemCreate {
	if v != nil {
		_c.SetBboxWidth(*v)
	}
	return _c
}

// SetBboxHeight sets the "bbox_height" field.
func (_c *ExtractedItemCreate) SetBboxHeight(v int) *ExtractedItemCreate {
	_c.mutation.SetBboxHeight(v)
	return _c
}

// SetNillableBboxHeight sets the "bbox_height" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillableBboxHeight(v *int) *ExtractedItemCreate {
	if v != nil {
		_c.SetBboxHeight(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedItemCreate) SetCreatedAt(v time.Time) *ExtractedItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillableCreatedAt(v *time.Time) *ExtractedItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedItemCreate) SetID(v uuid.UUID) *ExtractedItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedItemCreate) SetNillableID(v *uuid.UUID) *ExtractedItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPass sets the "pass" edge to the ExtractionPass entity.
func (_c *ExtractedItemCreate) SetPass(v *ExtractionPass) *ExtractedItemCreate {
	return _c.SetPassID(v.ID)
}

// Mutation returns the ExtractedItemMutation object of the builder.
func (_c *ExtractedItemCreate) Mutation() *ExtractedItemMutation {
	return _c.mutation
}

// Save creates the ExtractedItem in the database.
func (_c *ExtractedItemCreate) Save(ctx context.Context) (*ExtractedItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedItemCreate) SaveX(ctx context.Context) *ExtractedItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedItemCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := extracteditem.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := extracteditem.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extracteditem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extracteditem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedItemCreate) check() error {
	if _, ok := _c.mutation.PassID(); !ok {
		return &ValidationError{Name: "pass_id", err: errors.New(`ent: missing required field "ExtractedItem.pass_id"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "ExtractedItem.currency"`)}
	}
	if _, ok := _c.mutation.Page(); !ok {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required field "ExtractedItem.page"`)}
	}
	if v, ok := _c.mutation.Page(); ok {
		if err := extracteditem.PageValidator(v); err != nil {
			return &ValidationError{Name: "page", err: fmt.Errorf(`ent: validator failed for field "ExtractedItem.page": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ExtractedItem.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedItem.created_at"`)}
	}
	if len(_c.mutation.PassIDs()) == 0 {
		return &ValidationError{Name: "pass", err: errors.New(`ent: missing required edge "ExtractedItem.pass"`)}
	}
	return nil
}

func (_c *ExtractedItemCreate) sqlSave(ctx context.Context) (*ExtractedItem, error) {
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

func (_c *ExtractedItemCreate) createSpec() (*ExtractedItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extracteditem.Table, sqlgraph.NewFieldSpec(extracteditem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BrandCode(); ok {
		_spec.SetField(extracteditem.FieldBrandCode, field.TypeString, value)
		_node.BrandCode = value
	}
	if value, ok := _c.mutation.PartNumber(); ok {
		_spec.SetField(extracteditem.FieldPartNumber, field.TypeString, value)
		_node.PartNumber = value
	}
	if value, ok := _c.mutation.PriceType(); ok {
		_spec.SetField(extracteditem.FieldPriceType, field.TypeString, value)
		_node.PriceType = value
	}
	if value, ok := _c.mutation.PriceValue(); ok {
		_spec.SetField(extracteditem.FieldPriceValue, field.TypeFloat64, value)
		_node.PriceValue = &value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(extracteditem.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Page(); ok {
		_spec.SetField(extracteditem.FieldPage, field.TypeInt, value)
		_node.Page = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extracteditem.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(extracteditem.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.BboxX(); ok {
		_spec.SetField(extracteditem.FieldBboxX, field.TypeInt, value)
		_node.BboxX = &value
	}
	if value, ok := _c.mutation.BboxY(); ok {
		_spec.SetField(extracteditem.FieldBboxY, field.TypeInt, value)
		_node.BboxY = &value
	}
	if value, ok := _c.mutation.BboxWidth(); ok {
		_spec.SetField(extracteditem.FieldBboxWidth, field.TypeInt, value)
		_node.BboxWidth = &value
	}
	if value, ok := _c.mutation.BboxHeight(); ok {
		_spec.SetField(extracteditem.FieldBboxHeight, field.TypeInt, value)
		_node.BboxHeight = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extracteditem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PassIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extracteditem.PassTable,
			Columns: []string{extracteditem.PassColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionpass.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PassID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractedItemCreateBulk is the builder for creating many ExtractedItem entities in bulk.
type ExtractedItemCreateBulk struct {
	config
	err      error
	builders []*ExtractedItemCreate
}

// Save creates the ExtractedItem entities in the database.
func (_c *ExtractedItemCreateBulk) Save(ctx context.Context) ([]*ExtractedItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedItemMutation)
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
func (_c *ExtractedItemCreateBulk) SaveX(ctx context.Context) []*ExtractedItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
