// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/catalogkit/extractor/gen/ent/extracteditem"
	"github.com/catalogkit/extractor/gen/ent/extractionpass"
	"github.com/catalogkit/extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ExtractedItemUpdate is the builder for updating ExtractedItem entities.
type ExtractedItemUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedItemMutation
}

// Where appends a list predicates to the ExtractedItemUpdate builder.
func (_u *ExtractedItemUpdate) Where(ps ...predicate.ExtractedItem) *ExtractedItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPassID sets the "pass_id" field.
func (_u *ExtractedItemUpdate) SetPassID(v uuid.UUID) *ExtractedItemUpdate {
	_u.mutation.SetPassID(v)
	return _u
}

// SetNillablePassID sets the "pass_id" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillablePassID(v *uuid.UUID) *ExtractedItemUpdate {
	if v != nil {
		_u.SetPassID(*v)
	}
	return _u
}

// SetBrandCode sets the "brand_code" field.
func (_u *ExtractedItemUpdate) SetBrandCode(v string) *ExtractedItemUpdate {
	_u.mutation.SetBrandCode(v)
	return _u
}

// SetNillableBrandCode sets the "brand_code" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillableBrandCode(v *string) *ExtractedItemUpdate {
	if v != nil {
		_u.SetBrandCode(*v)
	}
	return _u
}

// ClearBrandCode clears the value of the "brand_code" field.
func (_u *ExtractedItemUpdate) ClearBrandCode() *ExtractedItemUpdate {
	_u.mutation.ClearBrandCode()
	return _u
}

// SetPartNumber sets the "part_number" field.
func (_u *ExtractedItemUpdate) SetPartNumber(v string) *ExtractedItemUpdate {
	_u.mutation.SetPartNumber(v)
	return _u
}

// SetNillablePartNumber sets the "part_number" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillablePartNumber(v *string) *ExtractedItemUpdate {
	if v != nil {
		_u.SetPartNumber(*v)
	}
	return _u
}

// ClearPartNumber clears the value of the "part_number" field.
func (_u *ExtractedItemUpdate) ClearPartNumber() *ExtractedItemUpdate {
	_u.mutation.ClearPartNumber()
	return _u
}

// SetPriceType sets the "price_type" field.
func (_u *ExtractedItemUpdate) SetPriceType(v string) *ExtractedItemUpdate {
	_u.mutation.SetPriceType(v)
	return _u
}

// SetNillablePriceType sets the "price_type" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillablePriceType(v *string) *ExtractedItemUpdate {
	if v != nil {
		_u.SetPriceType(*v)
	}
	return _u
}

// ClearPriceType clears the value of the "price_type" field.
func (_u *ExtractedItemUpdate) ClearPriceType() *ExtractedItemUpdate {
	_u.mutation.ClearPriceType()
	return _u
}

// SetPriceValue sets the "price_value" field.
func (_u *ExtractedItemUpdate) SetPriceValue(v float64) *ExtractedItemUpdate {
	_u.mutation.ResetPriceValue()
	_u.mutation.SetPriceValue(v)
	return _u
}

// SetNillablePriceValue sets the "price_value" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillablePriceValue(v *float64) *ExtractedItemUpdate {
	if v != nil {
		_u.SetPriceValue(*v)
	}
	return _u
}

// AddPriceValue adds value to the "price_value" field.
func (_u *ExtractedItemUpdate) AddPriceValue(v float64) *ExtractedItemUpdate {
	_u.mutation.AddPriceValue(v)
	return _u
}

// ClearPriceValue clears the value of the "price_value" field.
func (_u *ExtractedItemUpdate) ClearPriceValue() *ExtractedItemUpdate {
	_u.mutation.ClearPriceValue()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ExtractedItemUpdate) SetCurrency(v string) *ExtractedItemUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillableCurrency(v *string) *ExtractedItemUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetPage sets the "page" field.
func (_u *ExtractedItemUpdate) SetPage(v int) *ExtractedItemUpdate {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillablePage(v *int) *ExtractedItemUpdate {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *ExtractedItemUpdate) AddPage(v int) *ExtractedItemUpdate {
	_u.mutation.AddPage(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractedItemUpdate) SetConfidence(v float64) *ExtractedItemUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillableConfidence(v *float64) *ExtractedItemUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractedItemUpdate) AddConfidence(v float64) *ExtractedItemUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ExtractedItemUpdate) SetRawText(v string) *ExtractedItemUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillableRawText(v *string) *ExtractedItemUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ExtractedItemUpdate) ClearRawText() *ExtractedItemUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetBboxX sets the "bbox_x" field.
func (_u *ExtractedItemUpdate) SetBboxX(v int) *ExtractedItemUpdate {
	_u.mutation.ResetBboxX()
	_u.mutation.SetBboxX(v)
	return _u
}

// SetNillableBboxX sets the "bbox_x" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillableBboxX(v *int) *ExtractedItemUpdate {
	if v != nil {
		_u.SetBboxX(*v)
	}
	return _u
}

// AddBboxX adds value to the "bbox_x" field.
func (_u *ExtractedItemUpdate) AddBboxX(v int) *ExtractedItemUpdate {
	_u.mutation.AddBboxX(v)
	return _u
}

// ClearBboxX clears the value of the "bbox_x" field.
func (_u *ExtractedItemUpdate) ClearBboxX() *ExtractedItemUpdate {
	_u.mutation.ClearBboxX()
	return _u
}

// SetBboxY sets the "bbox_y" field.
func (_u *ExtractedItemUpdate) SetBboxY(v int) *ExtractedItemUpdate {
	_u.mutation.ResetBboxY()
	_u.mutation.SetBboxY(v)
	return _u
}

// SetNillableBboxY sets the "bbox_y" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillableBboxY(v *int) *ExtractedItemUpdate {
	if v != nil {
		_u.SetBboxY(*v)
	}
	return _u
}

// AddBboxY adds value to the "bbox_y" field.
func (_u *ExtractedItemUpdate) AddBboxY(v int) *ExtractedItemUpdate {
	_u.mutation.AddBboxY(v)
	return _u
}

// ClearBboxY clears the value of the "bbox_y" field.
func (_u *ExtractedItemUpdate) ClearBboxY() *ExtractedItemUpdate {
	_u.mutation.ClearBboxY()
	return _u
}

// SetBboxWidth sets the "bbox_width" field.
func (_u *ExtractedItemUpdate) SetBboxWidth(v int) *ExtractedItemUpdate {
	_u.mutation.ResetBboxWidth()
	_u.mutation.SetBboxWidth(v)
	return _u
}

// SetNillableBboxWidth sets the "bbox_width" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillableBboxWidth(v *int) *ExtractedItemUpdate {
	if v != nil {
		_u.SetBboxWidth(*v)
	}
	return _u
}

// AddBboxWidth adds value to the "bbox_width" field.
func (_u *ExtractedItemUpdate) AddBboxWidth(v int) *ExtractedItemUpdate {
	_u.mutation.AddBboxWidth(v)
	return _u
}

// ClearBboxWidth clears the value of the "bbox_width" field.
func (_u *ExtractedItemUpdate) ClearBboxWidth() *ExtractedItemUpdate {
	_u.mutation.ClearBboxWidth()
	return _u
}

// SetBboxHeight sets the "bbox_height" field.
func (_u *ExtractedItemUpdate) SetBboxHeight(v int) *ExtractedItemUpdate {
	_u.mutation.ResetBboxHeight()
	_u.mutation.SetBboxHeight(v)
	return _u
}

// SetNillableBboxHeight sets the "bbox_height" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillableBboxHeight(v *int) *ExtractedItemUpdate {
	if v != nil {
		_u.SetBboxHeight(*v)
	}
	return _u
}

// AddBboxHeight adds value to the "bbox_height" field.
func (_u *ExtractedItemUpdate) AddBboxHeight(v int) *ExtractedItemUpdate {
	_u.mutation.AddBboxHeight(v)
	return _u
}

// ClearBboxHeight clears the value of the "bbox_height" field.
func (_u *ExtractedItemUpdate) ClearBboxHeight() *ExtractedItemUpdate {
	_u.mutation.ClearBboxHeight()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractedItemUpdate) SetCreatedAt(v time.Time) *ExtractedItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractedItemUpdate) SetNillableCreatedAt(v *time.Time) *ExtractedItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetPass sets the "pass" edge to the ExtractionPass entity.
func (_u *ExtractedItemUpdate) SetPass(v *ExtractionPass) *ExtractedItemUpdate {
	return _u.SetPassID(v.ID)
}

// Mutation returns the ExtractedItemMutation object of the builder.
func (_u *ExtractedItemUpdate) Mutation() *ExtractedItemMutation {
	return _u.mutation
}

// ClearPass clears the "pass" edge to the ExtractionPass entity.
func (_u *ExtractedItemUpdate) ClearPass() *ExtractedItemUpdate {
	_u.mutation.ClearPass()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedItemUpdate) check() error {
	if v, ok := _u.mutation.Page(); ok {
		if err := extracteditem.PageValidator(v); err != nil {
			return &ValidationError{Name: "page", err: fmt.Errorf(`ent: validator failed for field "ExtractedItem.page": %w`, err)}
		}
	}
	if _u.mutation.PassCleared() && len(_u.mutation.PassIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedItem.pass"`)
	}
	return nil
}

func (_u *ExtractedItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extracteditem.Table, extracteditem.Columns, sqlgraph.NewFieldSpec(extracteditem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BrandCode(); ok {
		_spec.SetField(extracteditem.FieldBrandCode, field.TypeString, value)
	}
	if _u.mutation.BrandCodeCleared() {
		_spec.ClearField(extracteditem.FieldBrandCode, field.TypeString)
	}
	if value, ok := _u.mutation.PartNumber(); ok {
		_spec.SetField(extracteditem.FieldPartNumber, field.TypeString, value)
	}
	if _u.mutation.PartNumberCleared() {
		_spec.ClearField(extracteditem.FieldPartNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PriceType(); ok {
		_spec.SetField(extracteditem.FieldPriceType, field.TypeString, value)
	}
	if _u.mutation.PriceTypeCleared() {
		_spec.ClearField(extracteditem.FieldPriceType, field.TypeString)
	}
	if value, ok := _u.mutation.PriceValue(); ok {
		_spec.SetField(extracteditem.FieldPriceValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriceValue(); ok {
		_spec.AddField(extracteditem.FieldPriceValue, field.TypeFloat64, value)
	}
	if _u.mutation.PriceValueCleared() {
		_spec.ClearField(extracteditem.FieldPriceValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(extracteditem.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(extracteditem.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(extracteditem.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extracteditem.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extracteditem.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(extracteditem.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(extracteditem.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.BboxX(); ok {
		_spec.SetField(extracteditem.FieldBboxX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBboxX(); ok {
		_spec.AddField(extracteditem.FieldBboxX, field.TypeInt, value)
	}
	if _u.mutation.BboxXCleared() {
		_spec.ClearField(extracteditem.FieldBboxX, field.TypeInt)
	}
	if value, ok := _u.mutation.BboxY(); ok {
		_spec.SetField(extracteditem.FieldBboxY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBboxY(); ok {
		_spec.AddField(extracteditem.FieldBboxY, field.TypeInt, value)
	}
	if _u.mutation.BboxYCleared() {
		_spec.ClearField(extracteditem.FieldBboxY, field.TypeInt)
	}
	if value, ok := _u.mutation.BboxWidth(); ok {
		_spec.SetField(extracteditem.FieldBboxWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBboxWidth(); ok {
		_spec.AddField(extracteditem.FieldBboxWidth, field.TypeInt, value)
	}
	if _u.mutation.BboxWidthCleared() {
		_spec.ClearField(extracteditem.FieldBboxWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.BboxHeight(); ok {
		_spec.SetField(extracteditem.FieldBboxHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBboxHeight(); ok {
		_spec.AddField(extracteditem.FieldBboxHeight, field.TypeInt, value)
	}
	if _u.mutation.BboxHeightCleared() {
		_spec.ClearField(extracteditem.FieldBboxHeight, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extracteditem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.PassCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PassIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extracteditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedItemUpdateOne is the builder for updating a single ExtractedItem entity.
type ExtractedItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedItemMutation
}

// SetPassID sets the "pass_id" field.
func (_u *ExtractedItemUpdateOne) SetPassID(v uuid.UUID) *ExtractedItemUpdateOne {
	_u.mutation.SetPassID(v)
	return _u
}

// SetNillablePassID sets the "pass_id" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillablePassID(v *uuid.UUID) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetPassID(*v)
	}
	return _u
}

// SetBrandCode sets the "brand_code" field.
func (_u *ExtractedItemUpdateOne) SetBrandCode(v string) *ExtractedItemUpdateOne {
	_u.mutation.SetBrandCode(v)
	return _u
}

// SetNillableBrandCode sets the "brand_code" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillableBrandCode(v *string) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetBrandCode(*v)
	}
	return _u
}

// ClearBrandCode clears the value of the "brand_code" field.
func (_u *ExtractedItemUpdateOne) ClearBrandCode() *ExtractedItemUpdateOne {
	_u.mutation.ClearBrandCode()
	return _u
}

// SetPartNumber sets the "part_number" field.
func (_u *ExtractedItemUpdateOne) SetPartNumber(v string) *ExtractedItemUpdateOne {
	_u.mutation.SetPartNumber(v)
	return _u
}

// SetNillablePartNumber sets the "part_number" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillablePartNumber(v *string) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetPartNumber(*v)
	}
	return _u
}

// ClearPartNumber clears the value of the "part_number" field.
func (_u *ExtractedItemUpdateOne) ClearPartNumber() *ExtractedItemUpdateOne {
	_u.mutation.ClearPartNumber()
	return _u
}

// SetPriceType sets the "price_type" field.
func (_u *ExtractedItemUpdateOne) SetPriceType(v string) *ExtractedItemUpdateOne {
	_u.mutation.SetPriceType(v)
	return _u
}

// SetNillablePriceType sets the "price_type" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillablePriceType(v *string) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetPriceType(*v)
	}
	return _u
}

// ClearPriceType clears the value of the "price_type" field.
func (_u *ExtractedItemUpdateOne) ClearPriceType() *ExtractedItemUpdateOne {
	_u.mutation.ClearPriceType()
	return _u
}

// SetPriceValue sets the "price_value" field.
func (_u *ExtractedItemUpdateOne) SetPriceValue(v float64) *ExtractedItemUpdateOne {
	_u.mutation.ResetPriceValue()
	_u.mutation.SetPriceValue(v)
	return _u
}

// SetNillablePriceValue sets the "price_value" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillablePriceValue(v *float64) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetPriceValue(*v)
	}
	return _u
}

// AddPriceValue adds value to the "price_value" field.
func (_u *ExtractedItemUpdateOne) AddPriceValue(v float64) *ExtractedItemUpdateOne {
	_u.mutation.AddPriceValue(v)
	return _u
}

// ClearPriceValue clears the value of the "price_value" field.
func (_u *ExtractedItemUpdateOne) ClearPriceValue() *ExtractedItemUpdateOne {
	_u.mutation.ClearPriceValue()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ExtractedItemUpdateOne) SetCurrency(v string) *ExtractedItemUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillableCurrency(v *string) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetPage sets the "page" field.
func (_u *ExtractedItemUpdateOne) SetPage(v int) *ExtractedItemUpdateOne {
	_u.mutation.ResetPage()
	_u.mutation.SetPage(v)
	return _u
}

// SetNillablePage sets the "page" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillablePage(v *int) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetPage(*v)
	}
	return _u
}

// AddPage adds value to the "page" field.
func (_u *ExtractedItemUpdateOne) AddPage(v int) *ExtractedItemUpdateOne {
	_u.mutation.AddPage(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractedItemUpdateOne) SetConfidence(v float64) *ExtractedItemUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillableConfidence(v *float64) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractedItemUpdateOne) AddConfidence(v float64) *ExtractedItemUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ExtractedItemUpdateOne) SetRawText(v string) *ExtractedItemUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillableRawText(v *string) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ExtractedItemUpdateOne) ClearRawText() *ExtractedItemUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetBboxX sets the "bbox_x" field.
func (_u *ExtractedItemUpdateOne) SetBboxX(v int) *ExtractedItemUpdateOne {
	_u.mutation.ResetBboxX()
	_u.mutation.SetBboxX(v)
	return _u
}

// SetNillableBboxX sets the "bbox_x" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillableBboxX(v *int) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetBboxX(*v)
	}
	return _u
}

// AddBboxX adds value to the "bbox_x" field.
func (_u *ExtractedItemUpdateOne) AddBboxX(v int) *ExtractedItemUpdateOne {
	_u.mutation.AddBboxX(v)
	return _u
}

// ClearBboxX clears the value of the "bbox_x" field.
func (_u *ExtractedItemUpdateOne) ClearBboxX() *ExtractedItemUpdateOne {
	_u.mutation.ClearBboxX()
	return _u
}

// SetBboxY sets the "bbox_y" field.
func (_u *ExtractedItemUpdateOne) SetBboxY(v int) *ExtractedItemUpdateOne {
	_u.mutation.ResetBboxY()
	_u.mutation.SetBboxY(v)
	return _u
}

// SetNillableBboxY sets the "bbox_y" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillableBboxY(v *int) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetBboxY(*v)
	}
	return _u
}

// AddBboxY adds value to the "bbox_y" field.
func (_u *ExtractedItemUpdateOne) AddBboxY(v int) *ExtractedItemUpdateOne {
	_u.mutation.AddBboxY(v)
	return _u
}

// ClearBboxY clears the value of the "bbox_y" field.
func (_u *ExtractedItemUpdateOne) ClearBboxY() *ExtractedItemUpdateOne {
	_u.mutation.ClearBboxY()
	return _u
}

// SetBboxWidth sets the "bbox_width" field.
func (_u *ExtractedItemUpdateOne) SetBboxWidth(v int) *ExtractedItemUpdateOne {
	_u.mutation.ResetBboxWidth()
	_u.mutation.SetBboxWidth(v)
	return _u
}

// SetNillableBboxWidth sets the "bbox_width" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillableBboxWidth(v *int) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetBboxWidth(*v)
	}
	return _u
}

// AddBboxWidth adds value to the "bbox_width" field.
func (_u *ExtractedItemUpdateOne) AddBboxWidth(v int) *ExtractedItemUpdateOne {
	_u.mutation.AddBboxWidth(v)
	return _u
}

// ClearBboxWidth clears the value of the "bbox_width" field.
func (_u *ExtractedItemUpdateOne) ClearBboxWidth() *ExtractedItemUpdateOne {
	_u.mutation.ClearBboxWidth()
	return _u
}

// SetBboxHeight sets the "bbox_height" field.
func (_u *ExtractedItemUpdateOne) SetBboxHeight(v int) *ExtractedItemUpdateOne {
	_u.mutation.ResetBboxHeight()
	_u.mutation.SetBboxHeight(v)
	return _u
}

// SetNillableBboxHeight sets the "bbox_height" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillableBboxHeight(v *int) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetBboxHeight(*v)
	}
	return _u
}

// AddBboxHeight adds value to the "bbox_height" field.
func (_u *ExtractedItemUpdateOne) AddBboxHeight(v int) *ExtractedItemUpdateOne {
	_u.mutation.AddBboxHeight(v)
	return _u
}

// ClearBboxHeight clears the value of the "bbox_height" field.
func (_u *ExtractedItemUpdateOne) ClearBboxHeight() *ExtractedItemUpdateOne {
	_u.mutation.ClearBboxHeight()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractedItemUpdateOne) SetCreatedAt(v time.Time) *ExtractedItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractedItemUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractedItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetPass sets the "pass" edge to the ExtractionPass entity.
func (_u *ExtractedItemUpdateOne) SetPass(v *ExtractionPass) *ExtractedItemUpdateOne {
	return _u.SetPassID(v.ID)
}

// Mutation returns the ExtractedItemMutation object of the builder.
func (_u *ExtractedItemUpdateOne) Mutation() *ExtractedItemMutation {
	return _u.mutation
}

// ClearPass clears the "pass" edge to the ExtractionPass entity.
func (_u *ExtractedItemUpdateOne) ClearPass() *ExtractedItemUpdateOne {
	_u.mutation.ClearPass()
	return _u
}

// Where appends a list predicates to the ExtractedItemUpdate builder.
func (_u *ExtractedItemUpdateOne) Where(ps ...predicate.ExtractedItem) *ExtractedItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedItemUpdateOne) Select(field string, fields ...string) *ExtractedItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedItem entity.
func (_u *ExtractedItemUpdateOne) Save(ctx context.Context) (*ExtractedItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedItemUpdateOne) SaveX(ctx context.Context) *ExtractedItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedItemUpdateOne) check() error {
	if v, ok := _u.mutation.Page(); ok {
		if err := extracteditem.PageValidator(v); err != nil {
			return &ValidationError{Name: "page", err: fmt.Errorf(`ent: validator failed for field "ExtractedItem.page": %w`, err)}
		}
	}
	if _u.mutation.PassCleared() && len(_u.mutation.PassIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedItem.pass"`)
	}
	return nil
}

func (_u *ExtractedItemUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extracteditem.Table, extracteditem.Columns, sqlgraph.NewFieldSpec(extracteditem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extracteditem.FieldID)
		for _, f := range fields {
			if !extracteditem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extracteditem.FieldID {
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
		_spec.SetField(extracteditem.FieldBrandCode, field.TypeString, value)
	}
	if _u.mutation.BrandCodeCleared() {
		_spec.ClearField(extracteditem.FieldBrandCode, field.TypeString)
	}
	if value, ok := _u.mutation.PartNumber(); ok {
		_spec.SetField(extracteditem.FieldPartNumber, field.TypeString, value)
	}
	if _u.mutation.PartNumberCleared() {
		_spec.ClearField(extracteditem.FieldPartNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PriceType(); ok {
		_spec.SetField(extracteditem.FieldPriceType, field.TypeString, value)
	}
	if _u.mutation.PriceTypeCleared() {
		_spec.ClearField(extracteditem.FieldPriceType, field.TypeString)
	}
	if value, ok := _u.mutation.PriceValue(); ok {
		_spec.SetField(extracteditem.FieldPriceValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriceValue(); ok {
		_spec.AddField(extracteditem.FieldPriceValue, field.TypeFloat64, value)
	}
	if _u.mutation.PriceValueCleared() {
		_spec.ClearField(extracteditem.FieldPriceValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(extracteditem.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Page(); ok {
		_spec.SetField(extracteditem.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPage(); ok {
		_spec.AddField(extracteditem.FieldPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extracteditem.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extracteditem.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(extracteditem.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(extracteditem.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.BboxX(); ok {
		_spec.SetField(extracteditem.FieldBboxX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBboxX(); ok {
		_spec.AddField(extracteditem.FieldBboxX, field.TypeInt, value)
	}
	if _u.mutation.BboxXCleared() {
		_spec.ClearField(extracteditem.FieldBboxX, field.TypeInt)
	}
	if value, ok := _u.mutation.BboxY(); ok {
		_spec.SetField(extracteditem.FieldBboxY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBboxY(); ok {
		_spec.AddField(extracteditem.FieldBboxY, field.TypeInt, value)
	}
	if _u.mutation.BboxYCleared() {
		_spec.ClearField(extracteditem.FieldBboxY, field.TypeInt)
	}
	if value, ok := _u.mutation.BboxWidth(); ok {
		_spec.SetField(extracteditem.FieldBboxWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBboxWidth(); ok {
		_spec.AddField(extracteditem.FieldBboxWidth, field.TypeInt, value)
	}
	if _u.mutation.BboxWidthCleared() {
		_spec.ClearField(extracteditem.FieldBboxWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.BboxHeight(); ok {
		_spec.SetField(extracteditem.FieldBboxHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBboxHeight(); ok {
		_spec.AddField(extracteditem.FieldBboxHeight, field.TypeInt, value)
	}
	if _u.mutation.BboxHeightCleared() {
		_spec.ClearField(extracteditem.FieldBboxHeight, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extracteditem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.PassCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PassIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extracteditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
