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
	"github.com/catalogkit/extractor/gen/ent/document"
	"github.com/catalogkit/extractor/gen/ent/extracteditem"
	"github.com/catalogkit/extractor/gen/ent/extractionpass"
	"github.com/catalogkit/extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ExtractionPassUpdate is the builder for updating ExtractionPass entities.
type ExtractionPassUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionPassMutation
}

// Where appends a list predicates to the ExtractionPassUpdate builder.
func (_u *ExtractionPassUpdate) Where(ps ...predicate.ExtractionPass) *ExtractionPassUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionPassUpdate) SetDocumentID(v uuid.UUID) *ExtractionPassUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractionPassUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPassNumber sets the "pass_number" field.
func (_u *ExtractionPassUpdate) SetPassNumber(v int) *ExtractionPassUpdate {
	_u.mutation.ResetPassNumber()
	_u.mutation.SetPassNumber(v)
	return _u
}

// SetNillablePassNumber sets the "pass_number" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillablePassNumber(v *int) *ExtractionPassUpdate {
	if v != nil {
		_u.SetPassNumber(*v)
	}
	return _u
}

// AddPassNumber adds value to the "pass_number" field.
func (_u *ExtractionPassUpdate) AddPassNumber(v int) *ExtractionPassUpdate {
	_u.mutation.AddPassNumber(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *ExtractionPassUpdate) SetMethod(v string) *ExtractionPassUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableMethod(v *string) *ExtractionPassUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetStartPage sets the "start_page" field.
func (_u *ExtractionPassUpdate) SetStartPage(v int) *ExtractionPassUpdate {
	_u.mutation.ResetStartPage()
	_u.mutation.SetStartPage(v)
	return _u
}

// SetNillableStartPage sets the "start_page" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableStartPage(v *int) *ExtractionPassUpdate {
	if v != nil {
		_u.SetStartPage(*v)
	}
	return _u
}

// AddStartPage adds value to the "start_page" field.
func (_u *ExtractionPassUpdate) AddStartPage(v int) *ExtractionPassUpdate {
	_u.mutation.AddStartPage(v)
	return _u
}

// SetEndPage sets the "end_page" field.
func (_u *ExtractionPassUpdate) SetEndPage(v int) *ExtractionPassUpdate {
	_u.mutation.ResetEndPage()
	_u.mutation.SetEndPage(v)
	return _u
}

// SetNillableEndPage sets the "end_page" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableEndPage(v *int) *ExtractionPassUpdate {
	if v != nil {
		_u.SetEndPage(*v)
	}
	return _u
}

// AddEndPage adds value to the "end_page" field.
func (_u *ExtractionPassUpdate) AddEndPage(v int) *ExtractionPassUpdate {
	_u.mutation.AddEndPage(v)
	return _u
}

// ClearEndPage clears the value of the "end_page" field.
func (_u *ExtractionPassUpdate) ClearEndPage() *ExtractionPassUpdate {
	_u.mutation.ClearEndPage()
	return _u
}

// SetDpi sets the "dpi" field.
func (_u *ExtractionPassUpdate) SetDpi(v int) *ExtractionPassUpdate {
	_u.mutation.ResetDpi()
	_u.mutation.SetDpi(v)
	return _u
}

// SetNillableDpi sets the "dpi" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableDpi(v *int) *ExtractionPassUpdate {
	if v != nil {
		_u.SetDpi(*v)
	}
	return _u
}

// AddDpi adds value to the "dpi" field.
func (_u *ExtractionPassUpdate) AddDpi(v int) *ExtractionPassUpdate {
	_u.mutation.AddDpi(v)
	return _u
}

// SetMinConfidence sets the "min_confidence" field.
func (_u *ExtractionPassUpdate) SetMinConfidence(v float64) *ExtractionPassUpdate {
	_u.mutation.ResetMinConfidence()
	_u.mutation.SetMinConfidence(v)
	return _u
}

// SetNillableMinConfidence sets the "min_confidence" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableMinConfidence(v *float64) *ExtractionPassUpdate {
	if v != nil {
		_u.SetMinConfidence(*v)
	}
	return _u
}

// AddMinConfidence adds value to the "min_confidence" field.
func (_u *ExtractionPassUpdate) AddMinConfidence(v float64) *ExtractionPassUpdate {
	_u.mutation.AddMinConfidence(v)
	return _u
}

// SetForceOcr sets the "force_ocr" field.
func (_u *ExtractionPassUpdate) SetForceOcr(v bool) *ExtractionPassUpdate {
	_u.mutation.SetForceOcr(v)
	return _u
}

// SetNillableForceOcr sets the "force_ocr" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableForceOcr(v *bool) *ExtractionPassUpdate {
	if v != nil {
		_u.SetForceOcr(*v)
	}
	return _u
}

// SetDebug sets the "debug" field.
func (_u *ExtractionPassUpdate) SetDebug(v bool) *ExtractionPassUpdate {
	_u.mutation.SetDebug(v)
	return _u
}

// SetNillableDebug sets the "debug" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableDebug(v *bool) *ExtractionPassUpdate {
	if v != nil {
		_u.SetDebug(*v)
	}
	return _u
}

// SetPages sets the "pages" field.
func (_u *ExtractionPassUpdate) SetPages(v []int) *ExtractionPassUpdate {
	_u.mutation.SetPages(v)
	return _u
}

// AppendPages appends value to the "pages" field.
func (_u *ExtractionPassUpdate) AppendPages(v []int) *ExtractionPassUpdate {
	_u.mutation.AppendPages(v)
	return _u
}

// ClearPages clears the value of the "pages" field.
func (_u *ExtractionPassUpdate) ClearPages() *ExtractionPassUpdate {
	_u.mutation.ClearPages()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionPassUpdate) SetStatus(v string) *ExtractionPassUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableStatus(v *string) *ExtractionPassUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetItemsExtracted sets the "items_extracted" field.
func (_u *ExtractionPassUpdate) SetItemsExtracted(v int) *ExtractionPassUpdate {
	_u.mutation.ResetItemsExtracted()
	_u.mutation.SetItemsExtracted(v)
	return _u
}

// SetNillableItemsExtracted sets the "items_extracted" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableItemsExtracted(v *int) *ExtractionPassUpdate {
	if v != nil {
		_u.SetItemsExtracted(*v)
	}
	return _u
}

// AddItemsExtracted adds value to the "items_extracted" field.
func (_u *ExtractionPassUpdate) AddItemsExtracted(v int) *ExtractionPassUpdate {
	_u.mutation.AddItemsExtracted(v)
	return _u
}

// SetAvgConfidence sets the "avg_confidence" field.
func (_u *ExtractionPassUpdate) SetAvgConfidence(v float64) *ExtractionPassUpdate {
	_u.mutation.ResetAvgConfidence()
	_u.mutation.SetAvgConfidence(v)
	return _u
}

// SetNillableAvgConfidence sets the "avg_confidence" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableAvgConfidence(v *float64) *ExtractionPassUpdate {
	if v != nil {
		_u.SetAvgConfidence(*v)
	}
	return _u
}

// AddAvgConfidence adds value to the "avg_confidence" field.
func (_u *ExtractionPassUpdate) AddAvgConfidence(v float64) *ExtractionPassUpdate {
	_u.mutation.AddAvgConfidence(v)
	return _u
}

// ClearAvgConfidence clears the value of the "avg_confidence" field.
func (_u *ExtractionPassUpdate) ClearAvgConfidence() *ExtractionPassUpdate {
	_u.mutation.ClearAvgConfidence()
	return _u
}

// SetProcessingTime sets the "processing_time" field.
func (_u *ExtractionPassUpdate) SetProcessingTime(v float64) *ExtractionPassUpdate {
	_u.mutation.ResetProcessingTime()
	_u.mutation.SetProcessingTime(v)
	return _u
}

// SetNillableProcessingTime sets the "processing_time" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableProcessingTime(v *float64) *ExtractionPassUpdate {
	if v != nil {
		_u.SetProcessingTime(*v)
	}
	return _u
}

// AddProcessingTime adds value to the "processing_time" field.
func (_u *ExtractionPassUpdate) AddProcessingTime(v float64) *ExtractionPassUpdate {
	_u.mutation.AddProcessingTime(v)
	return _u
}

// ClearProcessingTime clears the value of the "processing_time" field.
func (_u *ExtractionPassUpdate) ClearProcessingTime() *ExtractionPassUpdate {
	_u.mutation.ClearProcessingTime()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionPassUpdate) SetErrorMessage(v string) *ExtractionPassUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableErrorMessage(v *string) *ExtractionPassUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionPassUpdate) ClearErrorMessage() *ExtractionPassUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionPassUpdate) SetCreatedAt(v time.Time) *ExtractionPassUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionPassUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionPassUpdate) SetStartedAt(v time.Time) *ExtractionPassUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableStartedAt(v *time.Time) *ExtractionPassUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExtractionPassUpdate) ClearStartedAt() *ExtractionPassUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionPassUpdate) SetFinishedAt(v time.Time) *ExtractionPassUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionPassUpdate) SetNillableFinishedAt(v *time.Time) *ExtractionPassUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionPassUpdate) ClearFinishedAt() *ExtractionPassUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionPassUpdate) SetDocument(v *Document) *ExtractionPassUpdate {
	return _u.SetDocumentID(v.ID)
}

// AddItemIDs adds the "items" edge to the ExtractedItem entity by IDs.
func (_u *ExtractionPassUpdate) AddItemIDs(ids ...uuid.UUID) *ExtractionPassUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ExtractedItem entity.
func (_u *ExtractionPassUpdate) AddItems(v ...*ExtractedItem) *ExtractionPassUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the ExtractionPassMutation object of the builder.
func (_u *ExtractionPassUpdate) Mutation() *ExtractionPassMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionPassUpdate) ClearDocument() *ExtractionPassUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearItems clears all "items" edges to the ExtractedItem entity.
func (_u *ExtractionPassUpdate) ClearItems() *ExtractionPassUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ExtractedItem entities by IDs.
func (_u *ExtractionPassUpdate) RemoveItemIDs(ids ...uuid.UUID) *ExtractionPassUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ExtractedItem entities.
func (_u *ExtractionPassUpdate) RemoveItems(v ...*ExtractedItem) *ExtractionPassUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionPassUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionPassUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionPassUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionPassUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionPassUpdate) check() error {
	if v, ok := _u.mutation.PassNumber(); ok {
		if err := extractionpass.PassNumberValidator(v); err != nil {
			return &ValidationError{Name: "pass_number", err: fmt.Errorf(`ent: validator failed for field "ExtractionPass.pass_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := extractionpass.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "ExtractionPass.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartPage(); ok {
		if err := extractionpass.StartPageValidator(v); err != nil {
			return &ValidationError{Name: "start_page", err: fmt.Errorf(`ent: validator failed for field "ExtractionPass.start_page": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionpass.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionPass.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionPass.document"`)
	}
	return nil
}

func (_u *ExtractionPassUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionpass.Table, extractionpass.Columns, sqlgraph.NewFieldSpec(extractionpass.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PassNumber(); ok {
		_spec.SetField(extractionpass.FieldPassNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassNumber(); ok {
		_spec.AddField(extractionpass.FieldPassNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(extractionpass.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartPage(); ok {
		_spec.SetField(extractionpass.FieldStartPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartPage(); ok {
		_spec.AddField(extractionpass.FieldStartPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndPage(); ok {
		_spec.SetField(extractionpass.FieldEndPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndPage(); ok {
		_spec.AddField(extractionpass.FieldEndPage, field.TypeInt, value)
	}
	if _u.mutation.EndPageCleared() {
		_spec.ClearField(extractionpass.FieldEndPage, field.TypeInt)
	}
	if value, ok := _u.mutation.Dpi(); ok {
		_spec.SetField(extractionpass.FieldDpi, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDpi(); ok {
		_spec.AddField(extractionpass.FieldDpi, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinConfidence(); ok {
		_spec.SetField(extractionpass.FieldMinConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinConfidence(); ok {
		_spec.AddField(extractionpass.FieldMinConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ForceOcr(); ok {
		_spec.SetField(extractionpass.FieldForceOcr, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Debug(); ok {
		_spec.SetField(extractionpass.FieldDebug, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(extractionpass.FieldPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionpass.FieldPages, value)
		})
	}
	if _u.mutation.PagesCleared() {
		_spec.ClearField(extractionpass.FieldPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionpass.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemsExtracted(); ok {
		_spec.SetField(extractionpass.FieldItemsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsExtracted(); ok {
		_spec.AddField(extractionpass.FieldItemsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgConfidence(); ok {
		_spec.SetField(extractionpass.FieldAvgConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgConfidence(); ok {
		_spec.AddField(extractionpass.FieldAvgConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.AvgConfidenceCleared() {
		_spec.ClearField(extractionpass.FieldAvgConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProcessingTime(); ok {
		_spec.SetField(extractionpass.FieldProcessingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTime(); ok {
		_spec.AddField(extractionpass.FieldProcessingTime, field.TypeFloat64, value)
	}
	if _u.mutation.ProcessingTimeCleared() {
		_spec.ClearField(extractionpass.FieldProcessingTime, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionpass.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionpass.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionpass.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionpass.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(extractionpass.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionpass.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionpass.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionpass.DocumentTable,
			Columns: []string{extractionpass.DocumentColumn},
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
			Table:   extractionpass.DocumentTable,
			Columns: []string{extractionpass.DocumentColumn},
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
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionpass.ItemsTable,
			Columns: []string{extractionpass.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteditem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionpass.ItemsTable,
			Columns: []string{extractionpass.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteditem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionpass.ItemsTable,
			Columns: []string{extractionpass.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteditem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionpass.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionPassUpdateOne is the builder for updating a single ExtractionPass entity.
type ExtractionPassUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionPassMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionPassUpdateOne) SetDocumentID(v uuid.UUID) *ExtractionPassUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPassNumber sets the "pass_number" field.
func (_u *ExtractionPassUpdateOne) SetPassNumber(v int) *ExtractionPassUpdateOne {
	_u.mutation.ResetPassNumber()
	_u.mutation.SetPassNumber(v)
	return _u
}

// SetNillablePassNumber sets the "pass_number" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillablePassNumber(v *int) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetPassNumber(*v)
	}
	return _u
}

// AddPassNumber adds value to the "pass_number" field.
func (_u *ExtractionPassUpdateOne) AddPassNumber(v int) *ExtractionPassUpdateOne {
	_u.mutation.AddPassNumber(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *ExtractionPassUpdateOne) SetMethod(v string) *ExtractionPassUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableMethod(v *string) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetStartPage sets the "start_page" field.
func (_u *ExtractionPassUpdateOne) SetStartPage(v int) *ExtractionPassUpdateOne {
	_u.mutation.ResetStartPage()
	_u.mutation.SetStartPage(v)
	return _u
}

// SetNillableStartPage sets the "start_page" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableStartPage(v *int) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetStartPage(*v)
	}
	return _u
}

// AddStartPage adds value to the "start_page" field.
func (_u *ExtractionPassUpdateOne) AddStartPage(v int) *ExtractionPassUpdateOne {
	_u.mutation.AddStartPage(v)
	return _u
}

// SetEndPage sets the "end_page" field.
func (_u *ExtractionPassUpdateOne) SetEndPage(v int) *ExtractionPassUpdateOne {
	_u.mutation.ResetEndPage()
	_u.mutation.SetEndPage(v)
	return _u
}

// SetNillableEndPage sets the "end_page" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableEndPage(v *int) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetEndPage(*v)
	}
	return _u
}

// AddEndPage adds value to the "end_page" field.
func (_u *ExtractionPassUpdateOne) AddEndPage(v int) *ExtractionPassUpdateOne {
	_u.mutation.AddEndPage(v)
	return _u
}

// ClearEndPage clears the value of the "end_page" field.
func (_u *ExtractionPassUpdateOne) ClearEndPage() *ExtractionPassUpdateOne {
	_u.mutation.ClearEndPage()
	return _u
}

// SetDpi sets the "dpi" field.
func (_u *ExtractionPassUpdateOne) SetDpi(v int) *ExtractionPassUpdateOne {
	_u.mutation.ResetDpi()
	_u.mutation.SetDpi(v)
	return _u
}

// SetNillableDpi sets the "dpi" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableDpi(v *int) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetDpi(*v)
	}
	return _u
}

// AddDpi adds value to the "dpi" field.
func (_u *ExtractionPassUpdateOne) AddDpi(v int) *ExtractionPassUpdateOne {
	_u.mutation.AddDpi(v)
	return _u
}

// SetMinConfidence sets the "min_confidence" field.
func (_u *ExtractionPassUpdateOne) SetMinConfidence(v float64) *ExtractionPassUpdateOne {
	_u.mutation.ResetMinConfidence()
	_u.mutation.SetMinConfidence(v)
	return _u
}

// SetNillableMinConfidence sets the "min_confidence" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableMinConfidence(v *float64) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetMinConfidence(*v)
	}
	return _u
}

// AddMinConfidence adds value to the "min_confidence" field.
func (_u *ExtractionPassUpdateOne) AddMinConfidence(v float64) *ExtractionPassUpdateOne {
	_u.mutation.AddMinConfidence(v)
	return _u
}

// SetForceOcr sets the "force_ocr" field.
func (_u *ExtractionPassUpdateOne) SetForceOcr(v bool) *ExtractionPassUpdateOne {
	_u.mutation.SetForceOcr(v)
	return _u
}

// SetNillableForceOcr sets the "force_ocr" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableForceOcr(v *bool) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetForceOcr(*v)
	}
	return _u
}

// SetDebug sets the "debug" field.
func (_u *ExtractionPassUpdateOne) SetDebug(v bool) *ExtractionPassUpdateOne {
	_u.mutation.SetDebug(v)
	return _u
}

// SetNillableDebug sets the "debug" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableDebug(v *bool) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetDebug(*v)
	}
	return _u
}

// SetPages sets the "pages" field.
func (_u *ExtractionPassUpdateOne) SetPages(v []int) *ExtractionPassUpdateOne {
	_u.mutation.SetPages(v)
	return _u
}

// AppendPages appends value to the "pages" field.
func (_u *ExtractionPassUpdateOne) AppendPages(v []int) *ExtractionPassUpdateOne {
	_u.mutation.AppendPages(v)
	return _u
}

// ClearPages clears the value of the "pages" field.
func (_u *ExtractionPassUpdateOne) ClearPages() *ExtractionPassUpdateOne {
	_u.mutation.ClearPages()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionPassUpdateOne) SetStatus(v string) *ExtractionPassUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableStatus(v *string) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetItemsExtracted sets the "items_extracted" field.
func (_u *ExtractionPassUpdateOne) SetItemsExtracted(v int) *ExtractionPassUpdateOne {
	_u.mutation.ResetItemsExtracted()
	_u.mutation.SetItemsExtracted(v)
	return _u
}

// SetNillableItemsExtracted sets the "items_extracted" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableItemsExtracted(v *int) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetItemsExtracted(*v)
	}
	return _u
}

// AddItemsExtracted adds value to the "items_extracted" field.
func (_u *ExtractionPassUpdateOne) AddItemsExtracted(v int) *ExtractionPassUpdateOne {
	_u.mutation.AddItemsExtracted(v)
	return _u
}

// SetAvgConfidence sets the "avg_confidence" field.
func (_u *ExtractionPassUpdateOne) SetAvgConfidence(v float64) *ExtractionPassUpdateOne {
	_u.mutation.ResetAvgConfidence()
	_u.mutation.SetAvgConfidence(v)
	return _u
}

// SetNillableAvgConfidence sets the "avg_confidence" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableAvgConfidence(v *float64) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetAvgConfidence(*v)
	}
	return _u
}

// AddAvgConfidence adds value to the "avg_confidence" field.
func (_u *ExtractionPassUpdateOne) AddAvgConfidence(v float64) *ExtractionPassUpdateOne {
	_u.mutation.AddAvgConfidence(v)
	return _u
}

// ClearAvgConfidence clears the value of the "avg_confidence" field.
func (_u *ExtractionPassUpdateOne) ClearAvgConfidence() *ExtractionPassUpdateOne {
	_u.mutation.ClearAvgConfidence()
	return _u
}

// SetProcessingTime sets the "processing_time" field.
func (_u *ExtractionPassUpdateOne) SetProcessingTime(v float64) *ExtractionPassUpdateOne {
	_u.mutation.ResetProcessingTime()
	_u.mutation.SetProcessingTime(v)
	return _u
}

// SetNillableProcessingTime sets the "processing_time" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableProcessingTime(v *float64) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetProcessingTime(*v)
	}
	return _u
}

// AddProcessingTime adds value to the "processing_time" field.
func (_u *ExtractionPassUpdateOne) AddProcessingTime(v float64) *ExtractionPassUpdateOne {
	_u.mutation.AddProcessingTime(v)
	return _u
}

// ClearProcessingTime clears the value of the "processing_time" field.
func (_u *ExtractionPassUpdateOne) ClearProcessingTime() *ExtractionPassUpdateOne {
	_u.mutation.ClearProcessingTime()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionPassUpdateOne) SetErrorMessage(v string) *ExtractionPassUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableErrorMessage(v *string) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionPassUpdateOne) ClearErrorMessage() *ExtractionPassUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionPassUpdateOne) SetCreatedAt(v time.Time) *ExtractionPassUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionPassUpdateOne) SetStartedAt(v time.Time) *ExtractionPassUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExtractionPassUpdateOne) ClearStartedAt() *ExtractionPassUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionPassUpdateOne) SetFinishedAt(v time.Time) *ExtractionPassUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionPassUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractionPassUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionPassUpdateOne) ClearFinishedAt() *ExtractionPassUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionPassUpdateOne) SetDocument(v *Document) *ExtractionPassUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// AddItemIDs adds the "items" edge to the ExtractedItem entity by IDs.
func (_u *ExtractionPassUpdateOne) AddItemIDs(ids ...uuid.UUID) *ExtractionPassUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ExtractedItem entity.
func (_u *ExtractionPassUpdateOne) AddItems(v ...*ExtractedItem) *ExtractionPassUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the ExtractionPassMutation object of the builder.
func (_u *ExtractionPassUpdateOne) Mutation() *ExtractionPassMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionPassUpdateOne) ClearDocument() *ExtractionPassUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearItems clears all "items" edges to the ExtractedItem entity.
func (_u *ExtractionPassUpdateOne) ClearItems() *ExtractionPassUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ExtractedItem entities by IDs.
func (_u *ExtractionPassUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *ExtractionPassUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ExtractedItem entities.
func (_u *ExtractionPassUpdateOne) RemoveItems(v ...*ExtractedItem) *ExtractionPassUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the ExtractionPassUpdate builder.
func (_u *ExtractionPassUpdateOne) Where(ps ...predicate.ExtractionPass) *ExtractionPassUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionPassUpdateOne) Select(field string, fields ...string) *ExtractionPassUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionPass entity.
func (_u *ExtractionPassUpdateOne) Save(ctx context.Context) (*ExtractionPass, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionPassUpdateOne) SaveX(ctx context.Context) *ExtractionPass {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionPassUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionPassUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionPassUpdateOne) check() error {
	if v, ok := _u.mutation.PassNumber(); ok {
		if err := extractionpass.PassNumberValidator(v); err != nil {
			return &ValidationError{Name: "pass_number", err: fmt.Errorf(`ent: validator failed for field "ExtractionPass.pass_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Method(); ok {
		if err := extractionpass.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "ExtractionPass.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartPage(); ok {
		if err := extractionpass.StartPageValidator(v); err != nil {
			return &ValidationError{Name: "start_page", err: fmt.Errorf(`ent: validator failed for field "ExtractionPass.start_page": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionpass.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionPass.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionPass.document"`)
	}
	return nil
}

func (_u *ExtractionPassUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionPass, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionpass.Table, extractionpass.Columns, sqlgraph.NewFieldSpec(extractionpass.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionPass.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionpass.FieldID)
		for _, f := range fields {
			if !extractionpass.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionpass.FieldID {
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
	if value, ok := _u.mutation.PassNumber(); ok {
		_spec.SetField(extractionpass.FieldPassNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassNumber(); ok {
		_spec.AddField(extractionpass.FieldPassNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(extractionpass.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartPage(); ok {
		_spec.SetField(extractionpass.FieldStartPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartPage(); ok {
		_spec.AddField(extractionpass.FieldStartPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EndPage(); ok {
		_spec.SetField(extractionpass.FieldEndPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEndPage(); ok {
		_spec.AddField(extractionpass.FieldEndPage, field.TypeInt, value)
	}
	if _u.mutation.EndPageCleared() {
		_spec.ClearField(extractionpass.FieldEndPage, field.TypeInt)
	}
	if value, ok := _u.mutation.Dpi(); ok {
		_spec.SetField(extractionpass.FieldDpi, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDpi(); ok {
		_spec.AddField(extractionpass.FieldDpi, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinConfidence(); ok {
		_spec.SetField(extractionpass.FieldMinConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinConfidence(); ok {
		_spec.AddField(extractionpass.FieldMinConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ForceOcr(); ok {
		_spec.SetField(extractionpass.FieldForceOcr, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Debug(); ok {
		_spec.SetField(extractionpass.FieldDebug, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(extractionpass.FieldPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionpass.FieldPages, value)
		})
	}
	if _u.mutation.PagesCleared() {
		_spec.ClearField(extractionpass.FieldPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionpass.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemsExtracted(); ok {
		_spec.SetField(extractionpass.FieldItemsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsExtracted(); ok {
		_spec.AddField(extractionpass.FieldItemsExtracted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgConfidence(); ok {
		_spec.SetField(extractionpass.FieldAvgConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgConfidence(); ok {
		_spec.AddField(extractionpass.FieldAvgConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.AvgConfidenceCleared() {
		_spec.ClearField(extractionpass.FieldAvgConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProcessingTime(); ok {
		_spec.SetField(extractionpass.FieldProcessingTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTime(); ok {
		_spec.AddField(extractionpass.FieldProcessingTime, field.TypeFloat64, value)
	}
	if _u.mutation.ProcessingTimeCleared() {
		_spec.ClearField(extractionpass.FieldProcessingTime, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionpass.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionpass.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionpass.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionpass.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(extractionpass.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionpass.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionpass.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionpass.DocumentTable,
			Columns: []string{extractionpass.DocumentColumn},
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
			Table:   extractionpass.DocumentTable,
			Columns: []string{extractionpass.DocumentColumn},
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
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionpass.ItemsTable,
			Columns: []string{extractionpass.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteditem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionpass.ItemsTable,
			Columns: []string{extractionpass.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteditem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionpass.ItemsTable,
			Columns: []string{extractionpass.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracteditem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionPass{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionpass.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
