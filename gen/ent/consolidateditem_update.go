// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/catalogkit/extractor/gen/ent/consolidateditem"
	"github.com/catalogkit/extractor/gen/ent/document"
	"github.com/catalogkit/extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ConsolidatedItemUpdate is the builder for updating ConsolidatedItem entities.
type ConsolidatedItemUpdate struct {
	config
	hooks    []Hook
	mutation *ConsolidatedItemMutation
}

// Where appends a list predicates to the ConsolidatedItemUpdate builder.
func (_u *ConsolidatedItemUpdate) Where(ps ...predicate.ConsolidatedItem) *ConsolidatedItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ConsolidatedItemUpdate) SetDocumentID(v uuid.UUID) *ConsolidatedItemUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ConsolidatedItemUpdate) SetNillableDocumentID(v *uuid.UUID) *ConsolidatedItemUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetBrandCode sets the "brand_code" field.
func (_u *ConsolidatedItemUpdate) SetBrandCode(v string) *ConsolidatedItemUpdate {
	_u.mutation.SetBrandCode(v)
	return _u
}

// SetNillableBrandCode sets the "brand_code" field if the given value is not nil.
func (_u *ConsolidatedItemUpdate) SetNillableBrandCode(v *string) *ConsolidatedItemUpdate {
	if v != nil {
		_u.SetBrandCode(*v)
	}
	return _u
}

// ClearBrandCode clears the value of the "brand_code" field.
func (_u *ConsolidatedItemUpdate) ClearBrandCode() *ConsolidatedItemUpdate {
	_u.mutation.ClearBrandCode()
	return _u
}

// SetPartNumber sets the "part_number" field.
func (_u *ConsolidatedItemUpdate) SetPartNumber(v string) *ConsolidatedItemUpdate {
	_u.mutation.SetPartNumber(v)
	return _u
}

// SetNillablePartNumber sets the "part_number" field if the given value is not nil.
func (_u *ConsolidatedItemUpdate) SetNillablePartNumber(v *string) *ConsolidatedItemUpdate {
	if v != nil {
		_u.SetPartNumber(*v)
	}
	return _u
}

// ClearPartNumber clears the value of the "part_number" field.
func (_u *ConsolidatedItemUpdate) ClearPartNumber() *ConsolidatedItemUpdate {
	_u.mutation.ClearPartNumber()
	return _u
}

// SetPriceType sets the "price_type" field.
func (_u *ConsolidatedItemUpdate) SetPriceType(v string) *ConsolidatedItemUpdate {
	_u.mutation.SetPriceType(v)
	return _u
}

// SetNillablePriceType sets the "price_type" field if the given value is not nil.
func (_u *ConsolidatedItemUpdate) SetNillablePriceType(v *string) *ConsolidatedItemUpdate {
	if v != nil {
		_u.SetPriceType(*v)
	}
	return _u
}

// ClearPriceType clears the value of the "price_type" field.
func (_u *ConsolidatedItemUpdate) ClearPriceType() *ConsolidatedItemUpdate {
	_u.mutation.ClearPriceType()
	return _u
}

// SetPriceValue sets the "price_value" field.
func (_u *ConsolidatedItemUpdate) SetPriceValue(v float64) *ConsolidatedItemUpdate {
	_u.mutation.ResetPriceValue()
	_u.mutation.SetPriceValue(v)
	return _u
}

// SetNillablePriceValue sets the "price_value" field if the given value is not nil.
func (_u *ConsolidatedItemUpdate) SetNillablePriceValue(v *float64) *ConsolidatedItemUpdate {
	if v != nil {
		_u.SetPriceValue(*v)
	}
	return _u
}

// AddPriceValue adds value to the "price_value" field.
func (_u *ConsolidatedItemUpdate) AddPriceValue(v float64) *ConsolidatedItemUpdate {
	_u.mutation.AddPriceValue(v)
	return _u
}

// ClearPriceValue clears the value of the "price_value" field.
func (_u *ConsolidatedItemUpdate) ClearPriceValue() *ConsolidatedItemUpdate {
	_u.mutation.ClearPriceValue()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ConsolidatedItemUpdate) SetCurrency(v string) *ConsolidatedItemUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ConsolidatedItemUpdate) SetNillableCurrency(v *string) *ConsolidatedItemUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetPage sets the "page" field.
func (_u *ConsolidatedItemUpdate) SetPage(v int) *ConsolidatedItemUpdate {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *ConsolidatedItemUpdate) SetNillablePage(v *int) *ConsolidatedItemUpdate {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *ConsolidatedItemUpdate) AddPage(v int) *ConsolidatedItemUpdate {
	_u.mutation.AddPage(v)
	return _u
}

// SetAvgConfidence sets the "avg_confidence" field.
func (_u *ConsolidatedItemUpdate) SetAvgConfidence(v float64) *ConsolidatedItemUpdate {
	_u.mutation.ResetAvgConfidence()
	_u.mutation.SetAvgConfidence(v)
	return _u
}

// SetNillableAvgConfidence sets the "avg_confidence" field if the given value is not nil.
func (_u *ConsolidatedItemUpdate) SetNillableAvgConfidence(v *float64) *ConsolidatedItemUpdate {
	if v != nil {
		_u.SetAvgConfidence(*v)
	}
	return _u
}

// AddAvgConfidence adds value to the "avg_confidence" field.
func (_u *ConsolidatedItemUpdate) AddAvgConfidence(v float64) *ConsolidatedItemUpdate {
	_u.mutation.AddAvgConfidence(v)
	return _u
}

// SetSourceCount sets the "source_count" field.
func (_u *ConsolidatedItemUpdate) SetSourceCount(v int) *ConsolidatedItemUpdate {
	_u.mutation.ResetSourceCount()
	_u.mutation.SetSourceCount(v)
	return _u
}

// SetNillableSourceCount sets the "source_count" field if the given value is not nil.
func (_u *ConsolidatedItemUpdate) SetNillableSourceCount(v *int) *ConsolidatedItemUpdate {
	if v != nil {
		_u.SetSourceCount(*v)
	}
	return _u
}

// AddSourceCount adds value to the "source_count" field.
func (_u *ConsolidatedItemUpdate) AddSourceCount(v int) *ConsolidatedItemUpdate {
	_u.mutation.AddSourceCount(v)
	return _u
}

// SetContributingItemIds sets the "contributing_item_ids" field.
func (_u *ConsolidatedItemUpdate) SetContributingItemIds(v []uuid.UUID) *ConsolidatedItemUpdate {
	_u.mutation.SetContributingItemIds(v)
	return _u
}

// AppendContributingItemIds appends value to the "contributing_item_ids" field.
func (_u *ConsolidatedItemUpdate) AppendContributingItemIds(v []uuid.UUID) *ConsolidatedItemUpdate {
	_u.mutation.AppendContributingItemIds(v)
	return _u
}

// ClearContributingItemIds clears the value of the "contributing_item_ids" field.
func (_u *ConsolidatedItemUpdate) ClearContributingItemIds() *ConsolidatedItemUpdate {
	_u.mutation.ClearContributingItemIds()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ConsolidatedItemUpdate) SetCreatedAt(v time.Time) *ConsolidatedItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ConsolidatedItemUpdate) SetNillableCreatedAt(v *time.Time) *ConsolidatedItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ConsolidatedItemUpdate) SetDocument(v *Document) *ConsolidatedItemUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ConsolidatedItemMutation object of the builder.
func (_u *ConsolidatedItemUpdate) Mutation() *ConsolidatedItemMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ConsolidatedItemUpdate) ClearDocument() *ConsolidatedItemUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConsolidatedItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsolidatedItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConsolidatedItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsolidatedItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsolidatedItemUpdate) check() error {
	if v, ok := _u.mutation.Page(); ok {
		if err := consolidateditem.PageValidator(v); err != nil {
			return &ValidationError{Name: "page", err: fmt.Errorf(`ent: validator failed for field "ConsolidatedItem.page": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConsolidatedItem.document"`)
	}
	return nil
}

func (_u *ConsolidatedItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consolidateditem.Table, consolidateditem.Columns, sqlgraph.NewFieldSpec(consolidateditem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BrandCode(); ok {
		_spec.SetField(consolidateditem.FieldBrandCode, field.TypeString, value)
	}
	if _u.mutation.BrandCodeCleared() {
		_spec.ClearField(consolidateditem.FieldBrandCode, field.TypeString)
	}
	if value, ok := _u.mutation.PartNumber(); ok {
		_spec.SetField(consolidateditem.FieldPartNumber, field.TypeString, value)
	}
	if _u.mutation.PartNumberCleared() {
		_spec.ClearField(consolidateditem.FieldPartNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PriceType(); ok {
		_spec.SetField(consolidateditem.FieldPriceType, field.TypeString, value)
	}
	if _u.mutation.PriceTypeCleared() {
		_spec.ClearField(consolidateditem.FieldPriceType, field.TypeString)
	}
	if value, ok := _u.mutation.PriceValue(); ok {
		_spec.SetField(consolidateditem.FieldPriceValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriceValue(); ok {
		_spec.AddField(consolidateditem.FieldPriceValue, field.TypeFloat64, value)
	}
	if _u.mutation.PriceValueCleared() {
		_spec.ClearField(consolidateditem.FieldPriceValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(consolidateditem.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(consolidateditem.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(consolidateditem.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgConfidence(); ok {
		_spec.SetField(consolidateditem.FieldAvgConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgConfidence(); ok {
		_spec.AddField(consolidateditem.FieldAvgConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceCount(); ok {
		_spec.SetField(consolidateditem.FieldSourceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceCount(); ok {
		_spec.AddField(consolidateditem.FieldSourceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContributingItemIds(); ok {
		_spec.SetField(consolidateditem.FieldContributingItemIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContributingItemIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, consolidateditem.FieldContributingItemIds, value)
		})
	}
	if _u.mutation.ContributingItemIdsCleared() {
		_spec.ClearField(consolidateditem.FieldContributingItemIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(consolidateditem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consolidateditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConsolidatedItemUpdateOne is the builder for updating a single ConsolidatedItem entity.
type ConsolidatedItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConsolidatedItemMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ConsolidatedItemUpdateOne) SetDocumentID(v uuid.UUID) *ConsolidatedItemUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ConsolidatedItemUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ConsolidatedItemUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetBrandCode sets the "brand_code" field.
func (_u *ConsolidatedItemUpdateOne) SetBrandCode(v string) *ConsolidatedItemUpdateOne {
	_u.mutation.SetBrandCode(v)
	return _u
}

// SetNillableBrandCode sets the "brand_code" field if the given value is not nil.
func (_u *ConsolidatedItemUpdateOne) SetNillableBrandCode(v *string) *ConsolidatedItemUpdateOne {
	if v != nil {
		_u.SetBrandCode(*v)
	}
	return _u
}

// ClearBrandCode clears the value of the "brand_code" field.
func (_u *ConsolidatedItemUpdateOne) ClearBrandCode() *ConsolidatedItemUpdateOne {
	_u.mutation.ClearBrandCode()
	return _u
}

// SetPartNumber sets the "part_number" field.
func (_u *ConsolidatedItemUpdateOne) SetPartNumber(v string) *ConsolidatedItemUpdateOne {
	_u.mutation.SetPartNumber(v)
	return _u
}

// SetNillablePartNumber sets the "part_number" field if the given value is not nil.
func (_u *ConsolidatedItemUpdateOne) SetNillablePartNumber(v *string) *ConsolidatedItemUpdateOne {
	if v != nil {
		_u.SetPartNumber(*v)
	}
	return _u
}

// ClearPartNumber clears the value of the "part_number" field.
func (_u *ConsolidatedItemUpdateOne) ClearPartNumber() *ConsolidatedItemUpdateOne {
	_u.mutation.ClearPartNumber()
	return _u
}

// SetPriceType sets the "price_type" field.
func (_u *ConsolidatedItemUpdateOne) SetPriceType(v string) *ConsolidatedItemUpdateOne {
	_u.mutation.SetPriceType(v)
	return _u
}

// SetNillablePriceType sets the "price_type" field if the given value is not nil.
func (_u *ConsolidatedItemUpdateOne) SetNillablePriceType(v *string) *ConsolidatedItemUpdateOne {
	if v != nil {
		_u.SetPriceType(*v)
	}
	return _u
}

// ClearPriceType clears the value of the "price_type" field.
func (_u *ConsolidatedItemUpdateOne) ClearPriceType() *ConsolidatedItemUpdateOne {
	_u.mutation.ClearPriceType()
	return _u
}

// SetPriceValue sets the "price_value" field.
func (_u *ConsolidatedItemUpdateOne) SetPriceValue(v float64) *ConsolidatedItemUpdateOne {
	_u.mutation.ResetPriceValue()
	_u.mutation.SetPriceValue(v)
	return _u
}

// SetNillablePriceValue sets the "price_value" field if the given value is not nil.
func (_u *ConsolidatedItemUpdateOne) SetNillablePriceValue(v *float64) *ConsolidatedItemUpdateOne {
	if v != nil {
		_u.SetPriceValue(*v)
	}
	return _u
}

// AddPriceValue adds value to the "price_value" field.
func (_u *ConsolidatedItemUpdateOne) AddPriceValue(v float64) *ConsolidatedItemUpdateOne {
	_u.mutation.AddPriceValue(v)
	return _u
}

// ClearPriceValue clears the value of the "price_value" field.
func (_u *ConsolidatedItemUpdateOne) ClearPriceValue() *ConsolidatedItemUpdateOne {
	_u.mutation.ClearPriceValue()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ConsolidatedItemUpdateOne) SetCurrency(v string) *ConsolidatedItemUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ConsolidatedItemUpdateOne) SetNillableCurrency(v *string) *ConsolidatedItemUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetPage sets the "page" field.
func (_u *ConsolidatedItemUpdateOne) SetPage(v int) *ConsolidatedItemUpdateOne {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *ConsolidatedItemUpdateOne) SetNillablePage(v *int) *ConsolidatedItemUpdateOne {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *ConsolidatedItemUpdateOne) AddPage(v int) *ConsolidatedItemUpdateOne {
	_u.mutation.AddPage(v)
	return _u
}

// SetAvgConfidence sets the "avg_confidence" field.
func (_u *ConsolidatedItemUpdateOne) SetAvgConfidence(v float64) *ConsolidatedItemUpdateOne {
	_u.mutation.ResetAvgConfidence()
	_u.mutation.SetAvgConfidence(v)
	return _u
}

// SetNillableAvgConfidence sets the "avg_confidence" field if the given value is not nil.
func (_u *ConsolidatedItemUpdateOne) SetNillableAvgConfidence(v *float64) *ConsolidatedItemUpdateOne {
	if v != nil {
		_u.SetAvgConfidence(*v)
	}
	return _u
}

// AddAvgConfidence adds value to the "avg_confidence" field.
func (_u *ConsolidatedItemUpdateOne) AddAvgConfidence(v float64) *ConsolidatedItemUpdateOne {
	_u.mutation.AddAvgConfidence(v)
	return _u
}

// SetSourceCount sets the "source_count" field.
func (_u *ConsolidatedItemUpdateOne) SetSourceCount(v int) *ConsolidatedItemUpdateOne {
	_u.mutation.ResetSourceCount()
	_u.mutation.SetSourceCount(v)
	return _u
}

// SetNillableSourceCount sets the "source_count" field if the given value is not nil.
func (_u *ConsolidatedItemUpdateOne) SetNillableSourceCount(v *int) *ConsolidatedItemUpdateOne {
	if v != nil {
		_u.SetSourceCount(*v)
	}
	return _u
}

// AddSourceCount adds value to the "source_count" field.
func (_u *ConsolidatedItemUpdateOne) AddSourceCount(v int) *ConsolidatedItemUpdateOne {
	_u.mutation.AddSourceCount(v)
	return _u
}

// SetContributingItemIds sets the "contributing_item_ids" field.
func (_u *ConsolidatedItemUpdateOne) SetContributingItemIds(v []uuid.UUID) *ConsolidatedItemUpdateOne {
	_u.mutation.SetContributingItemIds(v)
	return _u
}

// AppendContributingItemIds appends value to the "contributing_item_ids" field.
func (_u *ConsolidatedItemUpdateOne) AppendContributingItemIds(v []uuid.UUID) *ConsolidatedItemUpdateOne {
	_u.mutation.AppendContributingItemIds(v)
	return _u
}

// ClearContributingItemIds clears the value of the "contributing_item_ids" field.
func (_u *ConsolidatedItemUpdateOne) ClearContributingItemIds() *ConsolidatedItemUpdateOne {
	_u.mutation.ClearContributingItemIds()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ConsolidatedItemUpdateOne) SetCreatedAt(v time.Time) *ConsolidatedItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ConsolidatedItemUpdateOne) SetNillableCreatedAt(v *time.Time) *ConsolidatedItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ConsolidatedItemUpdateOne) SetDocument(v *Document) *ConsolidatedItemUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ConsolidatedItemMutation object of the builder.
func (_u *ConsolidatedItemUpdateOne) Mutation() *ConsolidatedItemMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ConsolidatedItemUpdateOne) ClearDocument() *ConsolidatedItemUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ConsolidatedItemUpdate builder.
func (_u *ConsolidatedItemUpdateOne) Where(ps ...predicate.ConsolidatedItem) *ConsolidatedItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConsolidatedItemUpdateOne) Select(field string, fields ...string) *ConsolidatedItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConsolidatedItem entity.
func (_u *ConsolidatedItemUpdateOne) Save(ctx context.Context) (*ConsolidatedItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsolidatedItemUpdateOne) SaveX(ctx context.Context) *ConsolidatedItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConsolidatedItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsolidatedItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsolidatedItemUpdateOne) check() error {
	if v, ok := _u.mutation.Page(); ok {
		if err := consolidateditem.PageValidator(v); err != nil {
			return &ValidationError{Name: "page", err: fmt.Errorf(`ent: validator failed for field "ConsolidatedItem.page": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConsolidatedItem.document"`)
	}
	return nil
}

func (_u *ConsolidatedItemUpdateOne) sqlSave(ctx context.Context) (_node *ConsolidatedItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consolidateditem.Table, consolidateditem.Columns, sqlgraph.NewFieldSpec(consolidateditem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConsolidatedItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, consolidateditem.FieldID)
		for _, f := range fields {
			if !consolidateditem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != consolidateditem.FieldID {
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
	if value, ok := _u.mutation.BrandCode(); ok {
		_spec.SetField(consolidateditem.FieldBrandCode, field.TypeString, value)
	}
	if _u.mutation.BrandCodeCleared() {
		_spec.ClearField(consolidateditem.FieldBrandCode, field.TypeString)
	}
	if value, ok := _u.mutation.PartNumber(); ok {
		_spec.SetField(consolidateditem.FieldPartNumber, field.TypeString, value)
	}
	if _u.mutation.PartNumberCleared() {
		_spec.ClearField(consolidateditem.FieldPartNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PriceType(); ok {
		_spec.SetField(consolidateditem.FieldPriceType, field.TypeString, value)
	}
	if _u.mutation.PriceTypeCleared() {
		_spec.ClearField(consolidateditem.FieldPriceType, field.TypeString)
	}
	if value, ok := _u.mutation.PriceValue(); ok {
		_spec.SetField(consolidateditem.FieldPriceValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriceValue(); ok {
		_spec.AddField(consolidateditem.FieldPriceValue, field.TypeFloat64, value)
	}
	if _u.mutation.PriceValueCleared() {
		_spec.ClearField(consolidateditem.FieldPriceValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(consolidateditem.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(consolidateditem.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(consolidateditem.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgConfidence(); ok {
		_spec.SetField(consolidateditem.FieldAvgConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgConfidence(); ok {
		_spec.AddField(consolidateditem.FieldAvgConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceCount(); ok {
		_spec.SetField(consolidateditem.FieldSourceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceCount(); ok {
		_spec.AddField(consolidateditem.FieldSourceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContributingItemIds(); ok {
		_spec.SetField(consolidateditem.FieldContributingItemIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContributingItemIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, consolidateditem.FieldContributingItemIds, value)
		})
	}
	if _u.mutation.ContributingItemIdsCleared() {
		_spec.ClearField(consolidateditem.FieldContributingItemIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(consolidateditem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ConsolidatedItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consolidateditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
