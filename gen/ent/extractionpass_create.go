// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/catalogkit/extractor/gen/ent/document"
	"github.com/catalogkit/extractor/gen/ent/extracteditem"
	"github.com/catalogkit/extractor/gen/ent/extractionpass"
	"github.com/google/uuid"
)

// ExtractionPassCreate is the builder for creating a ExtractionPass entity.
type ExtractionPassCreate struct {
	config
	mutation *ExtractionPassMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionPassCreate) SetDocumentID(v uuid.UUID) *ExtractionPassCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetPassNumber sets the "pass_number" field.
func (_c *ExtractionPassCreate) SetPassNumber(v int) *ExtractionPassCreate {
	_c.mutation.SetPassNumber(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *ExtractionPassCreate) SetMethod(v string) *ExtractionPassCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetStartPage sets the "start_page" field.
func (_c *ExtractionPassCreate) SetStartPage(v int) *ExtractionPassCreate {
	_c.mutation.SetStartPage(v)
	return _c
}

// SetNillableStartPage sets the "start_page" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableStartPage(v *int) *ExtractionPassCreate {
	if v != nil {
		_c.SetStartPage(*v)
	}
	return _c
}

// SetEndPage sets the "end_page" field.
func (_c *ExtractionPassCreate) SetEndPage(v int) *ExtractionPassCreate {
	_c.mutation.SetEndPage(v)
	return _c
}

// SetNillableEndPage sets the "end_page" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableEndPage(v *int) *ExtractionPassCreate {
	if v != nil {
		_c.SetEndPage(*v)
	}
	return _c
}

// SetDpi sets the "dpi" field.
func (_c *ExtractionPassCreate) SetDpi(v int) *ExtractionPassCreate {
	_c.mutation.SetDpi(v)
	return _c
}

// SetNillableDpi sets the "dpi" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableDpi(v *int) *ExtractionPassCreate {
	if v != nil {
		_c.SetDpi(*v)
	}
	return _c
}

// SetMinConfidence sets the "min_confidence" field.
func (_c *ExtractionPassCreate) SetMinConfidence(v float64) *ExtractionPassCreate {
	_c.mutation.SetMinConfidence(v)
	return _c
}

// SetNillableMinConfidence sets the "min_confidence" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableMinConfidence(v *float64) *ExtractionPassCreate {
	if v != nil {
		_c.SetMinConfidence(*v)
	}
	return _c
}

// SetForceOcr sets the "force_ocr" field.
func (_c *ExtractionPassCreate) SetForceOcr(v bool) *ExtractionPassCreate {
	_c.mutation.SetForceOcr(v)
	return _c
}

// SetNillableForceOcr sets the "force_ocr" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableForceOcr(v *bool) *ExtractionPassCreate {
	if v != nil {
		_c.SetForceOcr(*v)
	}
	return _c
}

// SetDebug sets the "debug" field.
func (_c *ExtractionPassCreate) SetDebug(v bool) *ExtractionPassCreate {
	_c.mutation.SetDebug(v)
	return _c
}

// SetNillableDebug sets the "debug" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableDebug(v *bool) *ExtractionPassCreate {
	if v != nil {
		_c.SetDebug(*v)
	}
	return _c
}

// SetPages sets the "pages" field.
func (_c *ExtractionPassCreate) SetPages(v []int) *ExtractionPassCreate {
	_c.mutation.SetPages(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionPassCreate) SetStatus(v string) *ExtractionPassCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableStatus(v *string) *ExtractionPassCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetItemsExtracted sets the "items_extracted" field.
func (_c *ExtractionPassCreate) SetItemsExtracted(v int) *ExtractionPassCreate {
	_c.mutation.SetItemsExtracted(v)
	return _c
}

// SetNillableItemsExtracted sets the "items_extracted" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableItemsExtracted(v *int) *ExtractionPassCreate {
	if v != nil {
		_c.SetItemsExtracted(*v)
	}
	return _c
}

// SetAvgConfidence sets the "avg_confidence" field.
func (_c *ExtractionPassCreate) SetAvgConfidence(v float64) *ExtractionPassCreate {
	_c.mutation.SetAvgConfidence(v)
	return _c
}

// SetNillableAvgConfidence sets the "avg_confidence" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableAvgConfidence(v *float64) *ExtractionPassCreate {
	if v != nil {
		_c.SetAvgConfidence(*v)
	}
	return _c
}

// SetProcessingTime sets the "processing_time" field.
func (_c *ExtractionPassCreate) SetProcessingTime(v float64) *ExtractionPassCreate {
	_c.mutation.SetProcessingTime(v)
	return _c
}

// SetNillableProcessingTime sets the "processing_time" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableProcessingTime(v *float64) *ExtractionPassCreate {
	if v != nil {
		_c.SetProcessingTime(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionPassCreate) SetErrorMessage(v string) *ExtractionPassCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableErrorMessage(v *string) *ExtractionPassCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionPassCreate) SetCreatedAt(v time.Time) *ExtractionPassCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableCreatedAt(v *time.Time) *ExtractionPassCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractionPassCreate) SetStartedAt(v time.Time) *ExtractionPassCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableStartedAt(v *time.Time) *ExtractionPassCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExtractionPassCreate) SetFinishedAt(v time.Time) *ExtractionPassCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableFinishedAt(v *time.Time) *ExtractionPassCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionPassCreate) SetID(v uuid.UUID) *ExtractionPassCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionPassCreate) SetNillableID(v *uuid.UUID) *ExtractionPassCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExtractionPassCreate) SetDocument(v *Document) *ExtractionPassCreate {
	return _c.SetDocumentID(v.ID)
}

// AddItemIDs adds the "items" edge to the ExtractedItem entity by IDs.
func (_c *ExtractionPassCreate) AddItemIDs(ids ...uuid.UUID) *ExtractionPassCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the ExtractedItem entity.
func (_c *ExtractionPassCreate) AddItems(v ...*ExtractedItem) *ExtractionPassCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the ExtractionPassMutation object of the builder.
func (_c *ExtractionPassCreate) Mutation() *ExtractionPassMutation {
	return _c.mutation
}

// Save creates the ExtractionPass in the database.
func (_c *ExtractionPassCreate) Save(ctx context.Context) (*ExtractionPass, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionPassCreate) SaveX(ctx context.Context) *ExtractionPass {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionPassCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionPassCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionPassCreate) defaults() {
	if _, ok := _c.mutation.StartPage(); !ok {
		v := extractionpass.DefaultStartPage
		_c.mutation.SetStartPage(v)
	}
	if _, ok := _c.mutation.Dpi(); !ok {
		v := extractionpass.DefaultDpi
		_c.mutation.SetDpi(v)
	}
	if _, ok := _c.mutation.MinConfidence(); !ok {
		v := extractionpass.DefaultMinConfidence
		_c.mutation.SetMinConfidence(v)
	}
	if _, ok := _c.mutation.ForceOcr(); !ok {
		v := extractionpass.DefaultForceOcr
		_c.mutation.SetForceOcr(v)
	}
	if _, ok := _c.mutation.Debug(); !ok {
		v := extractionpass.DefaultDebug
		_c.mutation.SetDebug(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := extractionpass.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ItemsExtracted(); !ok {
		v := extractionpass.DefaultItemsExtracted
		_c.mutation.SetItemsExtracted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionpass.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionpass.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionPassCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractionPass.document_id"`)}
	}
	if _, ok := _c.mutation.PassNumber(); !ok {
		return &ValidationError{Name: "pass_number", err: errors.New(`ent: missing required field "ExtractionPass.pass_number"`)}
	}
	if v, ok := _c.mutation.PassNumber(); ok {
		if err := extractionpass.PassNumberValidator(v); err != nil {
			return &ValidationError{Name: "pass_number", err: fmt.Errorf(`ent: validator failed for field "ExtractionPass.pass_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "ExtractionPass.method"`)}
	}
	if v, ok := _c.mutation.Method(); ok {
		if err := extractionpass.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "ExtractionPass.method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartPage(); !ok {
		return &ValidationError{Name: "start_page", err: errors.New(`ent: missing required field "ExtractionPass.start_page"`)}
	}
	if v, ok := _c.mutation.StartPage(); ok {
		if err := extractionpass.StartPageValidator(v); err != nil {
			return &ValidationError{Name: "start_page", err: fmt.Errorf(`ent: validator failed for field "ExtractionPass.start_page": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Dpi(); !ok {
		return &ValidationError{Name: "dpi", err: errors.New(`ent: missing required field "ExtractionPass.dpi"`)}
	}
	if _, ok := _c.mutation.MinConfidence(); !ok {
		return &ValidationError{Name: "min_confidence", err: errors.New(`ent: missing required field "ExtractionPass.min_confidence"`)}
	}
	if _, ok := _c.mutation.ForceOcr(); !ok {
		return &ValidationError{Name: "force_ocr", err: errors.New(`ent: missing required field "ExtractionPass.force_ocr"`)}
	}
	if _, ok := _c.mutation.Debug(); !ok {
		return &ValidationError{Name: "debug", err: errors.New(`ent: missing required field "ExtractionPass.debug"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionPass.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionpass.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionPass.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemsExtracted(); !ok {
		return &ValidationError{Name: "items_extracted", err: errors.New(`ent: missing required field "ExtractionPass.items_extracted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionPass.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExtractionPass.document"`)}
	}
	return nil
}

func (_c *ExtractionPassCreate) sqlSave(ctx context.Context) (*ExtractionPass, error) {
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

func (_c *ExtractionPassCreate) createSpec() (*ExtractionPass, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionPass{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionpass.Table, sqlgraph.NewFieldSpec(extractionpass.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PassNumber(); ok {
		_spec.SetField(extractionpass.FieldPassNumber, field.TypeInt, value)
		_node.PassNumber = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(extractionpass.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.StartPage(); ok {
		_spec.SetField(extractionpass.FieldStartPage, field.TypeInt, value)
		_node.StartPage = value
	}
	if value, ok := _c.mutation.EndPage(); ok {
		_spec.SetField(extractionpass.FieldEndPage, field.TypeInt, value)
		_node.EndPage = &value
	}
	if value, ok := _c.mutation.Dpi(); ok {
		_spec.SetField(extractionpass.FieldDpi, field.TypeInt, value)
		_node.Dpi = value
	}
	if value, ok := _c.mutation.MinConfidence(); ok {
		_spec.SetField(extractionpass.FieldMinConfidence, field.TypeFloat64, value)
		_node.MinConfidence = value
	}
	if value, ok := _c.mutation.ForceOcr(); ok {
		_spec.SetField(extractionpass.FieldForceOcr, field.TypeBool, value)
		_node.ForceOcr = value
	}
	if value, ok := _c.mutation.Debug(); ok {
		_spec.SetField(extractionpass.FieldDebug, field.TypeBool, value)
		_node.Debug = value
	}
	if value, ok := _c.mutation.Pages(); ok {
		_spec.SetField(extractionpass.FieldPages, field.TypeJSON, value)
		_node.Pages = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionpass.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ItemsExtracted(); ok {
		_spec.SetField(extractionpass.FieldItemsExtracted, field.TypeInt, value)
		_node.ItemsExtracted = value
	}
	if value, ok := _c.mutation.AvgConfidence(); ok {
		_spec.SetField(extractionpass.FieldAvgConfidence, field.TypeFloat64, value)
		_node.AvgConfidence = &value
	}
	if value, ok := _c.mutation.ProcessingTime(); ok {
		_spec.SetField(extractionpass.FieldProcessingTime, field.TypeFloat64, value)
		_node.ProcessingTime = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionpass.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionpass.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extractionpass.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(extractionpass.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionPassCreateBulk is the builder for creating many ExtractionPass entities in bulk.
type ExtractionPassCreateBulk struct {
	config
	err      error
	builders []*ExtractionPassCreate
}

// Save creates the ExtractionPass entities in the database.
func (_c *ExtractionPassCreateBulk) Save(ctx context.Context) ([]*ExtractionPass, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionPass, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionPassMutation)
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
func (_c *ExtractionPassCreateBulk) SaveX(ctx context.Context) []*ExtractionPass {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionPassCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionPassCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
