// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/catalogkit/extractor/gen/ent/consolidateditem"
	"github.com/catalogkit/extractor/gen/ent/document"
	"github.com/catalogkit/extractor/gen/ent/extracteditem"
	"github.com/catalogkit/extractor/gen/ent/extractionpass"
	"github.com/catalogkit/extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConsolidatedItem = "ConsolidatedItem"
	TypeDocument         = "Document"
	TypeExtractedItem    = "ExtractedItem"
	TypeExtractionPass   = "ExtractionPass"
)

// ConsolidatedItemMutation represents an operation that mutates the ConsolidatedItem nodes in the graph.
type ConsolidatedItemMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	brand_code                  *string
	part_number                 *string
	price_type                  *string
	price_value                 *float64
	addprice_value              *float64
	currency                    *string
	page                        *int
	addpage                     *int
	avg_confidence              *float64
	addavg_confidence           *float64
	source_count                *int
	addsource_count             *int
	contributing_item_ids       *[]uuid.UUID
	appendcontributing_item_ids []uuid.UUID
	created_at                  *time.Time
	clearedFields               map[string]struct{}
	document                    *uuid.UUID
	cleareddocument             bool
	done                        bool
	oldValue                    func(context.Context) (*ConsolidatedItem, error)
	predicates                  []predicate.ConsolidatedItem
}

var _ ent.Mutation = (*ConsolidatedItemMutation)(nil)

// consolidateditemOption allows management of the mutation configuration using functional options.
type consolidateditemOption func(*ConsolidatedItemMutation)

// newConsolidatedItemMutation creates new mutation for the ConsolidatedItem entity.
func newConsolidatedItemMutation(c config, op Op, opts ...consolidateditemOption) *ConsolidatedItemMutation {
	m := &ConsolidatedItemMutation{
		config:        c,
		op:            op,
		typ:           TypeConsolidatedItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConsolidatedItemID sets the ID field of the mutation.
func withConsolidatedItemID(id uuid.UUID) consolidateditemOption {
	return func(m *ConsolidatedItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ConsolidatedItem
		)
		m.oldValue = func(ctx context.Context) (*ConsolidatedItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConsolidatedItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConsolidatedItem sets the old ConsolidatedItem of the mutation.
func withConsolidatedItem(node *ConsolidatedItem) consolidateditemOption {
	return func(m *ConsolidatedItemMutation) {
		m.oldValue = func(context.Context) (*ConsolidatedItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConsolidatedItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConsolidatedItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConsolidatedItem entities.
func (m *ConsolidatedItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConsolidatedItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConsolidatedItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConsolidatedItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ConsolidatedItemMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ConsolidatedItemMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ConsolidatedItem entity.
// If the ConsolidatedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsolidatedItemMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ConsolidatedItemMutation) ResetDocumentID() {
	m.document = nil
}

// SetBrandCode sets the "brand_code" field.
func (m *ConsolidatedItemMutation) SetBrandCode(s string) {
	m.brand_code = &s
}

// BrandCode returns the value of the "brand_code" field in the mutation.
func (m *ConsolidatedItemMutation) BrandCode() (r string, exists bool) {
	v := m.brand_code
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandCode returns the old "brand_code" field's value of the ConsolidatedItem entity.
// If the ConsolidatedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsolidatedItemMutation) OldBrandCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandCode: %w", err)
	}
	return oldValue.BrandCode, nil
}

// ClearBrandCode clears the value of the "brand_code" field.
func (m *ConsolidatedItemMutation) ClearBrandCode() {
	m.brand_code = nil
	m.clearedFields[consolidateditem.FieldBrandCode] = struct{}{}
}

// BrandCodeCleared returns if the "brand_code" field was cleared in this mutation.
func (m *ConsolidatedItemMutation) BrandCodeCleared() bool {
	_, ok := m.clearedFields[consolidateditem.FieldBrandCode]
	return ok
}

// ResetBrandCode resets all changes to the "brand_code" field.
func (m *ConsolidatedItemMutation) ResetBrandCode() {
	m.brand_code = nil
	delete(m.clearedFields, consolidateditem.FieldBrandCode)
}

// SetPartNumber sets the "part_number" field.
func (m *ConsolidatedItemMutation) SetPartNumber(s string) {
	m.part_number = &s
}

// PartNumber returns the value of the "part_number" field in the mutation.
func (m *ConsolidatedItemMutation) PartNumber() (r string, exists bool) {
	v := m.part_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPartNumber returns the old "part_number" field's value of the ConsolidatedItem entity.
// If the ConsolidatedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsolidatedItemMutation) OldPartNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartNumber: %w", err)
	}
	return oldValue.PartNumber, nil
}

// ClearPartNumber clears the value of the "part_number" field.
func (m *ConsolidatedItemMutation) ClearPartNumber() {
	m.part_number = nil
	m.clearedFields[consolidateditem.FieldPartNumber] = struct{}{}
}

// PartNumberCleared returns if the "part_number" field was cleared in this mutation.
func (m *ConsolidatedItemMutation) PartNumberCleared() bool {
	_, ok := m.clearedFields[consolidateditem.FieldPartNumber]
	return ok
}

// ResetPartNumber resets all changes to the "part_number" field.
func (m *ConsolidatedItemMutation) ResetPartNumber() {
	m.part_number = nil
	delete(m.clearedFields, consolidateditem.FieldPartNumber)
}

// SetPriceType sets the "price_type" field.
func (m *ConsolidatedItemMutation) SetPriceType(s string) {
	m.price_type = &s
}

// PriceType returns the value of the "price_type" field in the mutation.
func (m *ConsolidatedItemMutation) PriceType() (r string, exists bool) {
	v := m.price_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceType returns the old "price_type" field's value of the ConsolidatedItem entity.
// If the ConsolidatedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsolidatedItemMutation) OldPriceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceType: %w", err)
	}
	return oldValue.PriceType, nil
}

// ClearPriceType clears the value of the "price_type" field.
func (m *ConsolidatedItemMutation) ClearPriceType() {
	m.price_type = nil
	m.clearedFields[consolidateditem.FieldPriceType] = struct{}{}
}

// PriceTypeCleared returns if the "price_type" field was cleared in this mutation.
func (m *ConsolidatedItemMutation) PriceTypeCleared() bool {
	_, ok := m.clearedFields[consolidateditem.FieldPriceType]
	return ok
}

// ResetPriceType resets all changes to the "price_type" field.
func (m *ConsolidatedItemMutation) ResetPriceType() {
	m.price_type = nil
	delete(m.clearedFields, consolidateditem.FieldPriceType)
}

// SetPriceValue sets the "price_value" field.
func (m *ConsolidatedItemMutation) SetPriceValue(f float64) {
	m.price_value = &f
	m.addprice_value = nil
}

// PriceValue returns the value of the "price_value" field in the mutation.
func (m *ConsolidatedItemMutation) PriceValue() (r float64, exists bool) {
	v := m.price_value
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceValue returns the old "price_value" field's value of the ConsolidatedItem entity.
// If the ConsolidatedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsolidatedItemMutation) OldPriceValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceValue: %w", err)
	}
	return oldValue.PriceValue, nil
}

// AddPriceValue adds f to the "price_value" field.
func (m *ConsolidatedItemMutation) AddPriceValue(f float64) {
	if m.addprice_value != nil {
		*m.addprice_value += f
	} else {
		m.addprice_value = &f
	}
}

// AddedPriceValue returns the value that was added to the "price_value" field in this mutation.
func (m *ConsolidatedItemMutation) AddedPriceValue() (r float64, exists bool) {
	v := m.addprice_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearPriceValue clears the value of the "price_value" field.
func (m *ConsolidatedItemMutation) ClearPriceValue() {
	m.price_value = nil
	m.addprice_value = nil
	m.clearedFields[consolidateditem.FieldPriceValue] = struct{}{}
}

// PriceValueCleared returns if the "price_value" field was cleared in this mutation.
func (m *ConsolidatedItemMutation) PriceValueCleared() bool {
	_, ok := m.clearedFields[consolidateditem.FieldPriceValue]
	return ok
}

// ResetPriceValue resets all changes to the "price_value" field.
func (m *ConsolidatedItemMutation) ResetPriceValue() {
	m.price_value = nil
	m.addprice_value = nil
	delete(m.clearedFields, consolidateditem.FieldPriceValue)
}

// SetCurrency sets the "currency" field.
func (m *ConsolidatedItemMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *ConsolidatedItemMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the ConsolidatedItem entity.
// If the ConsolidatedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsolidatedItemMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *ConsolidatedItemMutation) ResetCurrency() {
	m.currency = nil
}

// SetPage sets the "page" field.
func (m *ConsolidatedItemMutation) SetPage(i int) {
	m.page = &i
	m.addpage = nil
}

// Page returns the value of the "page" field in the mutation.
func (m *ConsolidatedItemMutation) Page() (r int, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPage returns the old "page" field's value of the ConsolidatedItem entity.
// If the ConsolidatedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsolidatedItemMutation) OldPage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPage: %w", err)
	}
	return oldValue.Page, nil
}

// AddPage adds i to the "page" field.
func (m *ConsolidatedItemMutation) AddPage(i int) {
	if m.addpage != nil {
		*m.addpage += i
	} else {
		m.addpage = &i
	}
}

// AddedPage returns the value that was added to the "page" field in this mutation.
func (m *ConsolidatedItemMutation) AddedPage() (r int, exists bool) {
	v := m.addpage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPage resets all changes to the "page" field.
func (m *ConsolidatedItemMutation) ResetPage() {
	m.page = nil
	m.addpage = nil
}

// SetAvgConfidence sets the "avg_confidence" field.
func (m *ConsolidatedItemMutation) SetAvgConfidence(f float64) {
	m.avg_confidence = &f
	m.addavg_confidence = nil
}

// AvgConfidence returns the value of the "avg_confidence" field in the mutation.
func (m *ConsolidatedItemMutation) AvgConfidence() (r float64, exists bool) {
	v := m.avg_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgConfidence returns the old "avg_confidence" field's value of the ConsolidatedItem entity.
// If the ConsolidatedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsolidatedItemMutation) OldAvgConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgConfidence: %w", err)
	}
	return oldValue.AvgConfidence, nil
}

// AddAvgConfidence adds f to the "avg_confidence" field.
func (m *ConsolidatedItemMutation) AddAvgConfidence(f float64) {
	if m.addavg_confidence != nil {
		*m.addavg_confidence += f
	} else {
		m.addavg_confidence = &f
	}
}

// AddedAvgConfidence returns the value that was added to the "avg_confidence" field in this mutation.
func (m *ConsolidatedItemMutation) AddedAvgConfidence() (r float64, exists bool) {
	v := m.addavg_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgConfidence resets all changes to the "avg_confidence" field.
func (m *ConsolidatedItemMutation) ResetAvgConfidence() {
	m.avg_confidence = nil
	m.addavg_confidence = nil
}

// SetSourceCount sets the "source_count" field.
func (m *ConsolidatedItemMutation) SetSourceCount(i int) {
	m.source_count = &i
	m.addsource_count = nil
}

// SourceCount returns the value of the "source_count" field in the mutation.
func (m *ConsolidatedItemMutation) SourceCount() (r int, exists bool) {
	v := m.source_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceCount returns the old "source_count" field's value of the ConsolidatedItem entity.
// If the ConsolidatedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsolidatedItemMutation) OldSourceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceCount: %w", err)
	}
	return oldValue.SourceCount, nil
}

// AddSourceCount adds i to the "source_count" field.
func (m *ConsolidatedItemMutation) AddSourceCount(i int) {
	if m.addsource_count != nil {
		*m.addsource_count += i
	} else {
		m.addsource_count = &i
	}
}

// AddedSourceCount returns the value that was added to the "source_count" field in this mutation.
func (m *ConsolidatedItemMutation) AddedSourceCount() (r int, exists bool) {
	v := m.addsource_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceCount resets all changes to the "source_count" field.
func (m *ConsolidatedItemMutation) ResetSourceCount() {
	m.source_count = nil
	m.addsource_count = nil
}

// SetContributingItemIds sets the "contributing_item_ids" field.
func (m *ConsolidatedItemMutation) SetContributingItemIds(u []uuid.UUID) {
	m.contributing_item_ids = &u
	m.appendcontributing_item_ids = nil
}

// ContributingItemIds returns the value of the "contributing_item_ids" field in the mutation.
func (m *ConsolidatedItemMutation) ContributingItemIds() (r []uuid.UUID, exists bool) {
	v := m.contributing_item_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldContributingItemIds returns the old "contributing_item_ids" field's value of the ConsolidatedItem entity.
// If the ConsolidatedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsolidatedItemMutation) OldContributingItemIds(ctx context.Context) (v []uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributingItemIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributingItemIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributingItemIds: %w", err)
	}
	return oldValue.ContributingItemIds, nil
}

// AppendContributingItemIds adds u to the "contributing_item_ids" field.
func (m *ConsolidatedItemMutation) AppendContributingItemIds(u []uuid.UUID) {
	m.appendcontributing_item_ids = append(m.appendcontributing_item_ids, u...)
}

// AppendedContributingItemIds returns the list of values that were appended to the "contributing_item_ids" field in this mutation.
func (m *ConsolidatedItemMutation) AppendedContributingItemIds() ([]uuid.UUID, bool) {
	if len(m.appendcontributing_item_ids) == 0 {
		return nil, false
	}
	return m.appendcontributing_item_ids, true
}

// ClearContributingItemIds clears the value of the "contributing_item_ids" field.
func (m *ConsolidatedItemMutation) ClearContributingItemIds() {
	m.contributing_item_ids = nil
	m.appendcontributing_item_ids = nil
	m.clearedFields[consolidateditem.FieldContributingItemIds] = struct{}{}
}

// ContributingItemIdsCleared returns if the "contributing_item_ids" field was cleared in this mutation.
func (m *ConsolidatedItemMutation) ContributingItemIdsCleared() bool {
	_, ok := m.clearedFields[consolidateditem.FieldContributingItemIds]
	return ok
}

// ResetContributingItemIds resets all changes to the "contributing_item_ids" field.
func (m *ConsolidatedItemMutation) ResetContributingItemIds() {
	m.contributing_item_ids = nil
	m.appendcontributing_item_ids = nil
	delete(m.clearedFields, consolidateditem.FieldContributingItemIds)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConsolidatedItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConsolidatedItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConsolidatedItem entity.
// If the ConsolidatedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsolidatedItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConsolidatedItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ConsolidatedItemMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[consolidateditem.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ConsolidatedItemMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ConsolidatedItemMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ConsolidatedItemMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ConsolidatedItemMutation builder.
func (m *ConsolidatedItemMutation) Where(ps ...predicate.ConsolidatedItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConsolidatedItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConsolidatedItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConsolidatedItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConsolidatedItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConsolidatedItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConsolidatedItem).
func (m *ConsolidatedItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConsolidatedItemMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.document != nil {
		fields = append(fields, consolidateditem.FieldDocumentID)
	}
	if m.brand_code != nil {
		fields = append(fields, consolidateditem.FieldBrandCode)
	}
	if m.part_number != nil {
		fields = append(fields, consolidateditem.FieldPartNumber)
	}
	if m.price_type != nil {
		fields = append(fields, consolidateditem.FieldPriceType)
	}
	if m.price_value != nil {
		fields = append(fields, consolidateditem.FieldPriceValue)
	}
	if m.currency != nil {
		fields = append(fields, consolidateditem.FieldCurrency)
	}
	if m.page != nil {
		fields = append(fields, consolidateditem.FieldPage)
	}
	if m.avg_confidence != nil {
		fields = append(fields, consolidateditem.FieldAvgConfidence)
	}
	if m.source_count != nil {
		fields = append(fields, consolidateditem.FieldSourceCount)
	}
	if m.contributing_item_ids != nil {
		fields = append(fields, consolidateditem.FieldContributingItemIds)
	}
	if m.created_at != nil {
		fields = append(fields, consolidateditem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConsolidatedItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case consolidateditem.FieldDocumentID:
		return m.DocumentID()
	case consolidateditem.FieldBrandCode:
		return m.BrandCode()
	case consolidateditem.FieldPartNumber:
		return m.PartNumber()
	case consolidateditem.FieldPriceType:
		return m.PriceType()
	case consolidateditem.FieldPriceValue:
		return m.PriceValue()
	case consolidateditem.FieldCurrency:
		return m.Currency()
	case consolidateditem.FieldPage:
		return m.Page()
	case consolidateditem.FieldAvgConfidence:
		return m.AvgConfidence()
	case consolidateditem.FieldSourceCount:
		return m.SourceCount()
	case consolidateditem.FieldContributingItemIds:
		return m.ContributingItemIds()
	case consolidateditem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConsolidatedItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case consolidateditem.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case consolidateditem.FieldBrandCode:
		return m.OldBrandCode(ctx)
	case consolidateditem.FieldPartNumber:
		return m.OldPartNumber(ctx)
	case consolidateditem.FieldPriceType:
		return m.OldPriceType(ctx)
	case consolidateditem.FieldPriceValue:
		return m.OldPriceValue(ctx)
	case consolidateditem.FieldCurrency:
		return m.OldCurrency(ctx)
	case consolidateditem.FieldPage:
		return m.OldPage(ctx)
	case consolidateditem.FieldAvgConfidence:
		return m.OldAvgConfidence(ctx)
	case consolidateditem.FieldSourceCount:
		return m.OldSourceCount(ctx)
	case consolidateditem.FieldContributingItemIds:
		return m.OldContributingItemIds(ctx)
	case consolidateditem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConsolidatedItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConsolidatedItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case consolidateditem.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case consolidateditem.FieldBrandCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandCode(v)
		return nil
	case consolidateditem.FieldPartNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartNumber(v)
		return nil
	case consolidateditem.FieldPriceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceType(v)
		return nil
	case consolidateditem.FieldPriceValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceValue(v)
		return nil
	case consolidateditem.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case consolidateditem.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPage(v)
		return nil
	case consolidateditem.FieldAvgConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgConfidence(v)
		return nil
	case consolidateditem.FieldSourceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceCount(v)
		return nil
	case consolidateditem.FieldContributingItemIds:
		v, ok := value.([]uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributingItemIds(v)
		return nil
	case consolidateditem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConsolidatedItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConsolidatedItemMutation) AddedFields() []string {
	var fields []string
	if m.addprice_value != nil {
		fields = append(fields, consolidateditem.FieldPriceValue)
	}
	if m.addpage != nil {
		fields = append(fields, consolidateditem.FieldPage)
	}
	if m.addavg_confidence != nil {
		fields = append(fields, consolidateditem.FieldAvgConfidence)
	}
	if m.addsource_count != nil {
		fields = append(fields, consolidateditem.FieldSourceCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConsolidatedItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case consolidateditem.FieldPriceValue:
		return m.AddedPriceValue()
	case consolidateditem.FieldPage:
		return m.AddedPage()
	case consolidateditem.FieldAvgConfidence:
		return m.AddedAvgConfidence()
	case consolidateditem.FieldSourceCount:
		return m.AddedSourceCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConsolidatedItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case consolidateditem.FieldPriceValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriceValue(v)
		return nil
	case consolidateditem.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPage(v)
		return nil
	case consolidateditem.FieldAvgConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgConfidence(v)
		return nil
	case consolidateditem.FieldSourceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceCount(v)
		return nil
	}
	return fmt.Errorf("unknown ConsolidatedItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConsolidatedItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(consolidateditem.FieldBrandCode) {
		fields = append(fields, consolidateditem.FieldBrandCode)
	}
	if m.FieldCleared(consolidateditem.FieldPartNumber) {
		fields = append(fields, consolidateditem.FieldPartNumber)
	}
	if m.FieldCleared(consolidateditem.FieldPriceType) {
		fields = append(fields, consolidateditem.FieldPriceType)
	}
	if m.FieldCleared(consolidateditem.FieldPriceValue) {
		fields = append(fields, consolidateditem.FieldPriceValue)
	}
	if m.FieldCleared(consolidateditem.FieldContributingItemIds) {
		fields = append(fields, consolidateditem.FieldContributingItemIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConsolidatedItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConsolidatedItemMutation) ClearField(name string) error {
	switch name {
	case consolidateditem.FieldBrandCode:
		m.ClearBrandCode()
		return nil
	case consolidateditem.FieldPartNumber:
		m.ClearPartNumber()
		return nil
	case consolidateditem.FieldPriceType:
		m.ClearPriceType()
		return nil
	case consolidateditem.FieldPriceValue:
		m.ClearPriceValue()
		return nil
	case consolidateditem.FieldContributingItemIds:
		m.ClearContributingItemIds()
		return nil
	}
	return fmt.Errorf("unknown ConsolidatedItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConsolidatedItemMutation) ResetField(name string) error {
	switch name {
	case consolidateditem.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case consolidateditem.FieldBrandCode:
		m.ResetBrandCode()
		return nil
	case consolidateditem.FieldPartNumber:
		m.ResetPartNumber()
		return nil
	case consolidateditem.FieldPriceType:
		m.ResetPriceType()
		return nil
	case consolidateditem.FieldPriceValue:
		m.ResetPriceValue()
		return nil
	case consolidateditem.FieldCurrency:
		m.ResetCurrency()
		return nil
	case consolidateditem.FieldPage:
		m.ResetPage()
		return nil
	case consolidateditem.FieldAvgConfidence:
		m.ResetAvgConfidence()
		return nil
	case consolidateditem.FieldSourceCount:
		m.ResetSourceCount()
		return nil
	case consolidateditem.FieldContributingItemIds:
		m.ResetContributingItemIds()
		return nil
	case consolidateditem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConsolidatedItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConsolidatedItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, consolidateditem.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConsolidatedItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case consolidateditem.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConsolidatedItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConsolidatedItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConsolidatedItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, consolidateditem.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConsolidatedItemMutation) EdgeCleared(name string) bool {
	switch name {
	case consolidateditem.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConsolidatedItemMutation) ClearEdge(name string) error {
	switch name {
	case consolidateditem.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ConsolidatedItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConsolidatedItemMutation) ResetEdge(name string) error {
	switch name {
	case consolidateditem.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ConsolidatedItem edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	filename                  *string
	content_hash              *[]byte
	source_path               *string
	page_count                *int
	addpage_count             *int
	pass_seq                  *int
	addpass_seq               *int
	uploaded_at               *time.Time
	clearedFields             map[string]struct{}
	passes                    map[uuid.UUID]struct{}
	removedpasses             map[uuid.UUID]struct{}
	clearedpasses             bool
	consolidated_items        map[uuid.UUID]struct{}
	removedconsolidated_items map[uuid.UUID]struct{}
	clearedconsolidated_items bool
	done                      bool
	oldValue                  func(context.Context) (*Document, error)
	predicates                []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetPageCount sets the "page_count" field.
func (m *DocumentMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *DocumentMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *DocumentMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *DocumentMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *DocumentMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetPassSeq sets the "pass_seq" field.
func (m *DocumentMutation) SetPassSeq(i int) {
	m.pass_seq = &i
	m.addpass_seq = nil
}

// PassSeq returns the value of the "pass_seq" field in the mutation.
func (m *DocumentMutation) PassSeq() (r int, exists bool) {
	v := m.pass_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldPassSeq returns the old "pass_seq" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPassSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassSeq: %w", err)
	}
	return oldValue.PassSeq, nil
}

// AddPassSeq adds i to the "pass_seq" field.
func (m *DocumentMutation) AddPassSeq(i int) {
	if m.addpass_seq != nil {
		*m.addpass_seq += i
	} else {
		m.addpass_seq = &i
	}
}

// AddedPassSeq returns the value that was added to the "pass_seq" field in this mutation.
func (m *DocumentMutation) AddedPassSeq() (r int, exists bool) {
	v := m.addpass_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassSeq resets all changes to the "pass_seq" field.
func (m *DocumentMutation) ResetPassSeq() {
	m.pass_seq = nil
	m.addpass_seq = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddPassIDs adds the "passes" edge to the ExtractionPass entity by ids.
func (m *DocumentMutation) AddPassIDs(ids ...uuid.UUID) {
	if m.passes == nil {
		m.passes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.passes[ids[i]] = struct{}{}
	}
}

// ClearPasses clears the "passes" edge to the ExtractionPass entity.
func (m *DocumentMutation) ClearPasses() {
	m.clearedpasses = true
}

// PassesCleared reports if the "passes" edge to the ExtractionPass entity was cleared.
func (m *DocumentMutation) PassesCleared() bool {
	return m.clearedpasses
}

// RemovePassIDs removes the "passes" edge to the ExtractionPass entity by IDs.
func (m *DocumentMutation) RemovePassIDs(ids ...uuid.UUID) {
	if m.removedpasses == nil {
		m.removedpasses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.passes, ids[i])
		m.removedpasses[ids[i]] = struct{}{}
	}
}

// RemovedPasses returns the removed IDs of the "passes" edge to the ExtractionPass entity.
func (m *DocumentMutation) RemovedPassesIDs() (ids []uuid.UUID) {
	for id := range m.removedpasses {
		ids = append(ids, id)
	}
	return
}

// PassesIDs returns the "passes" edge IDs in the mutation.
func (m *DocumentMutation) PassesIDs() (ids []uuid.UUID) {
	for id := range m.passes {
		ids = append(ids, id)
	}
	return
}

// ResetPasses resets all changes to the "passes" edge.
func (m *DocumentMutation) ResetPasses() {
	m.passes = nil
	m.clearedpasses = false
	m.removedpasses = nil
}

// AddConsolidatedItemIDs adds the "consolidated_items" edge to the ConsolidatedItem entity by ids.
func (m *DocumentMutation) AddConsolidatedItemIDs(ids ...uuid.UUID) {
	if m.consolidated_items == nil {
		m.consolidated_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.consolidated_items[ids[i]] = struct{}{}
	}
}

// ClearConsolidatedItems clears the "consolidated_items" edge to the ConsolidatedItem entity.
func (m *DocumentMutation) ClearConsolidatedItems() {
	m.clearedconsolidated_items = true
}

// ConsolidatedItemsCleared reports if the "consolidated_items" edge to the ConsolidatedItem entity was cleared.
func (m *DocumentMutation) ConsolidatedItemsCleared() bool {
	return m.clearedconsolidated_items
}

// RemoveConsolidatedItemIDs removes the "consolidated_items" edge to the ConsolidatedItem entity by IDs.
func (m *DocumentMutation) RemoveConsolidatedItemIDs(ids ...uuid.UUID) {
	if m.removedconsolidated_items == nil {
		m.removedconsolidated_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.consolidated_items, ids[i])
		m.removedconsolidated_items[ids[i]] = struct{}{}
	}
}

// RemovedConsolidatedItems returns the removed IDs of the "consolidated_items" edge to the ConsolidatedItem entity.
func (m *DocumentMutation) RemovedConsolidatedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedconsolidated_items {
		ids = append(ids, id)
	}
	return
}

// ConsolidatedItemsIDs returns the "consolidated_items" edge IDs in the mutation.
func (m *DocumentMutation) ConsolidatedItemsIDs() (ids []uuid.UUID) {
	for id := range m.consolidated_items {
		ids = append(ids, id)
	}
	return
}

// ResetConsolidatedItems resets all changes to the "consolidated_items" edge.
func (m *DocumentMutation) ResetConsolidatedItems() {
	m.consolidated_items = nil
	m.clearedconsolidated_items = false
	m.removedconsolidated_items = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.page_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.pass_seq != nil {
		fields = append(fields, document.FieldPassSeq)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFilename:
		return m.Filename()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldPageCount:
		return m.PageCount()
	case document.FieldPassSeq:
		return m.PassSeq()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldPageCount:
		return m.OldPageCount(ctx)
	case document.FieldPassSeq:
		return m.OldPassSeq(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case document.FieldPassSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassSeq(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.addpass_seq != nil {
		fields = append(fields, document.FieldPassSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldPageCount:
		return m.AddedPageCount()
	case document.FieldPassSeq:
		return m.AddedPassSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case document.FieldPassSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldPageCount:
		m.ResetPageCount()
		return nil
	case document.FieldPassSeq:
		m.ResetPassSeq()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.passes != nil {
		edges = append(edges, document.EdgePasses)
	}
	if m.consolidated_items != nil {
		edges = append(edges, document.EdgeConsolidatedItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgePasses:
		ids := make([]ent.Value, 0, len(m.passes))
		for id := range m.passes {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeConsolidatedItems:
		ids := make([]ent.Value, 0, len(m.consolidated_items))
		for id := range m.consolidated_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpasses != nil {
		edges = append(edges, document.EdgePasses)
	}
	if m.removedconsolidated_items != nil {
		edges = append(edges, document.EdgeConsolidatedItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgePasses:
		ids := make([]ent.Value, 0, len(m.removedpasses))
		for id := range m.removedpasses {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeConsolidatedItems:
		ids := make([]ent.Value, 0, len(m.removedconsolidated_items))
		for id := range m.removedconsolidated_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpasses {
		edges = append(edges, document.EdgePasses)
	}
	if m.clearedconsolidated_items {
		edges = append(edges, document.EdgeConsolidatedItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgePasses:
		return m.clearedpasses
	case document.EdgeConsolidatedItems:
		return m.clearedconsolidated_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgePasses:
		m.ResetPasses()
		return nil
	case document.EdgeConsolidatedItems:
		m.ResetConsolidatedItems()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractedItemMutation represents an operation that mutates the ExtractedItem nodes in the graph.
type ExtractedItemMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	brand_code     *string
	part_number    *string
	price_type     *string
	price_value    *float64
	addprice_value *float64
	currency       *string
	page           *int
	addpage        *int
	confidence     *float64
	addconfidence  *float64
	raw_text       *string
	bbox_x         *int
	addbbox_x      *int
	bbox_y         *int
	addbbox_y      *int
	bbox_width     *int
	addbbox_width  *int
	bbox_height    *int
	addbbox_height *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	pass           *uuid.UUID
	clearedpass    bool
	done           bool
	oldValue       func(context.Context) (*ExtractedItem, error)
	predicates     []predicate.ExtractedItem
}

var _ ent.Mutation = (*ExtractedItemMutation)(nil)

// extracteditemOption allows management of the mutation configuration using functional options.
type extracteditemOption func(*ExtractedItemMutation)

// newExtractedItemMutation creates new mutation for the ExtractedItem entity.
func newExtractedItemMutation(c config, op Op, opts ...extracteditemOption) *ExtractedItemMutation {
	m := &ExtractedItemMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedItemID sets the ID field of the mutation.
func withExtractedItemID(id uuid.UUID) extracteditemOption {
	return func(m *ExtractedItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedItem
		)
		m.oldValue = func(ctx context.Context) (*ExtractedItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedItem sets the old ExtractedItem of the mutation.
func withExtractedItem(node *ExtractedItem) extracteditemOption {
	return func(m *ExtractedItemMutation) {
		m.oldValue = func(context.Context) (*ExtractedItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedItem entities.
func (m *ExtractedItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPassID sets the "pass_id" field.
func (m *ExtractedItemMutation) SetPassID(u uuid.UUID) {
	m.pass = &u
}

// PassID returns the value of the "pass_id" field in the mutation.
func (m *ExtractedItemMutation) PassID() (r uuid.UUID, exists bool) {
	v := m.pass
	if v == nil {
		return
	}
	return *v, true
}

// OldPassID returns the old "pass_id" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldPassID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassID: %w", err)
	}
	return oldValue.PassID, nil
}

// ResetPassID resets all changes to the "pass_id" field.
func (m *ExtractedItemMutation) ResetPassID() {
	m.pass = nil
}

// SetBrandCode sets the "brand_code" field.
func (m *ExtractedItemMutation) SetBrandCode(s string) {
	m.brand_code = &s
}

// BrandCode returns the value of the "brand_code" field in the mutation.
func (m *ExtractedItemMutation) BrandCode() (r string, exists bool) {
	v := m.brand_code
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandCode returns the old "brand_code" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldBrandCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandCode: %w", err)
	}
	return oldValue.BrandCode, nil
}

// ClearBrandCode clears the value of the "brand_code" field.
func (m *ExtractedItemMutation) ClearBrandCode() {
	m.brand_code = nil
	m.clearedFields[extracteditem.FieldBrandCode] = struct{}{}
}

// BrandCodeCleared returns if the "brand_code" field was cleared in this mutation.
func (m *ExtractedItemMutation) BrandCodeCleared() bool {
	_, ok := m.clearedFields[extracteditem.FieldBrandCode]
	return ok
}

// ResetBrandCode resets all changes to the "brand_code" field.
func (m *ExtractedItemMutation) ResetBrandCode() {
	m.brand_code = nil
	delete(m.clearedFields, extracteditem.FieldBrandCode)
}

// SetPartNumber sets the "part_number" field.
func (m *ExtractedItemMutation) SetPartNumber(s string) {
	m.part_number = &s
}

// PartNumber returns the value of the "part_number" field in the mutation.
func (m *ExtractedItemMutation) PartNumber() (r string, exists bool) {
	v := m.part_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPartNumber returns the old "part_number" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldPartNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartNumber: %w", err)
	}
	return oldValue.PartNumber, nil
}

// ClearPartNumber clears the value of the "part_number" field.
func (m *ExtractedItemMutation) ClearPartNumber() {
	m.part_number = nil
	m.clearedFields[extracteditem.FieldPartNumber] = struct{}{}
}

// PartNumberCleared returns if the "part_number" field was cleared in this mutation.
func (m *ExtractedItemMutation) PartNumberCleared() bool {
	_, ok := m.clearedFields[extracteditem.FieldPartNumber]
	return ok
}

// ResetPartNumber resets all changes to the "part_number" field.
func (m *ExtractedItemMutation) ResetPartNumber() {
	m.part_number = nil
	delete(m.clearedFields, extracteditem.FieldPartNumber)
}

// SetPriceType sets the "price_type" field.
func (m *ExtractedItemMutation) SetPriceType(s string) {
	m.price_type = &s
}

// PriceType returns the value of the "price_type" field in the mutation.
func (m *ExtractedItemMutation) PriceType() (r string, exists bool) {
	v := m.price_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceType returns the old "price_type" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldPriceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceType: %w", err)
	}
	return oldValue.PriceType, nil
}

// ClearPriceType clears the value of the "price_type" field.
func (m *ExtractedItemMutation) ClearPriceType() {
	m.price_type = nil
	m.clearedFields[extracteditem.FieldPriceType] = struct{}{}
}

// PriceTypeCleared returns if the "price_type" field was cleared in this mutation.
func (m *ExtractedItemMutation) PriceTypeCleared() bool {
	_, ok := m.clearedFields[extracteditem.FieldPriceType]
	return ok
}

// ResetPriceType resets all changes to the "price_type" field.
func (m *ExtractedItemMutation) ResetPriceType() {
	m.price_type = nil
	delete(m.clearedFields, extracteditem.FieldPriceType)
}

// SetPriceValue sets the "price_value" field.
func (m *ExtractedItemMutation) SetPriceValue(f float64) {
	m.price_value = &f
	m.addprice_value = nil
}

// PriceValue returns the value of the "price_value" field in the mutation.
func (m *ExtractedItemMutation) PriceValue() (r float64, exists bool) {
	v := m.price_value
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceValue returns the old "price_value" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldPriceValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceValue: %w", err)
	}
	return oldValue.PriceValue, nil
}

// AddPriceValue adds f to the "price_value" field.
func (m *ExtractedItemMutation) AddPriceValue(f float64) {
	if m.addprice_value != nil {
		*m.addprice_value += f
	} else {
		m.addprice_value = &f
	}
}

// AddedPriceValue returns the value that was added to the "price_value" field in this mutation.
func (m *ExtractedItemMutation) AddedPriceValue() (r float64, exists bool) {
	v := m.addprice_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearPriceValue clears the value of the "price_value" field.
func (m *ExtractedItemMutation) ClearPriceValue() {
	m.price_value = nil
	m.addprice_value = nil
	m.clearedFields[extracteditem.FieldPriceValue] = struct{}{}
}

// PriceValueCleared returns if the "price_value" field was cleared in this mutation.
func (m *ExtractedItemMutation) PriceValueCleared() bool {
	_, ok := m.clearedFields[extracteditem.FieldPriceValue]
	return ok
}

// ResetPriceValue resets all changes to the "price_value" field.
func (m *ExtractedItemMutation) ResetPriceValue() {
	m.price_value = nil
	m.addprice_value = nil
	delete(m.clearedFields, extracteditem.FieldPriceValue)
}

// SetCurrency sets the "currency" field.
func (m *ExtractedItemMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *ExtractedItemMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *ExtractedItemMutation) ResetCurrency() {
	m.currency = nil
}

// SetPage sets the "page" field.
func (m *ExtractedItemMutation) SetPage(i int) {
	m.page = &i
	m.addpage = nil
}

// Page returns the value of the "page" field in the mutation.
func (m *ExtractedItemMutation) Page() (r int, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPage returns the old "page" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldPage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPage: %w", err)
	}
	return oldValue.Page, nil
}

// AddPage adds i to the "page" field.
func (m *ExtractedItemMutation) AddPage(i int) {
	if m.addpage != nil {
		*m.addpage += i
	} else {
		m.addpage = &i
	}
}

// AddedPage returns the value that was added to the "page" field in this mutation.
func (m *ExtractedItemMutation) AddedPage() (r int, exists bool) {
	v := m.addpage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPage resets all changes to the "page" field.
func (m *ExtractedItemMutation) ResetPage() {
	m.page = nil
	m.addpage = nil
}

// SetConfidence sets the "confidence" field.
func (m *ExtractedItemMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractedItemMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractedItemMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractedItemMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractedItemMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetRawText sets the "raw_text" field.
func (m *ExtractedItemMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ExtractedItemMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ExtractedItemMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[extracteditem.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ExtractedItemMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[extracteditem.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ExtractedItemMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, extracteditem.FieldRawText)
}

// SetBboxX sets the "bbox_x" field.
func (m *ExtractedItemMutation) SetBboxX(i int) {
	m.bbox_x = &i
	m.addbbox_x = nil
}

// BboxX returns the value of the "bbox_x" field in the mutation.
func (m *ExtractedItemMutation) BboxX() (r int, exists bool) {
	v := m.bbox_x
	if v == nil {
		return
	}
	return *v, true
}

// OldBboxX returns the old "bbox_x" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldBboxX(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBboxX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBboxX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBboxX: %w", err)
	}
	return oldValue.BboxX, nil
}

// AddBboxX adds i to the "bbox_x" field.
func (m *ExtractedItemMutation) AddBboxX(i int) {
	if m.addbbox_x != nil {
		*m.addbbox_x += i
	} else {
		m.addbbox_x = &i
	}
}

// AddedBboxX returns the value that was added to the "bbox_x" field in this mutation.
func (m *ExtractedItemMutation) AddedBboxX() (r int, exists bool) {
	v := m.addbbox_x
	if v == nil {
		return
	}
	return *v, true
}

// ClearBboxX clears the value of the "bbox_x" field.
func (m *ExtractedItemMutation) ClearBboxX() {
	m.bbox_x = nil
	m.addbbox_x = nil
	m.clearedFields[extracteditem.FieldBboxX] = struct{}{}
}

// BboxXCleared returns if the "bbox_x" field was cleared in this mutation.
func (m *ExtractedItemMutation) BboxXCleared() bool {
	_, ok := m.clearedFields[extracteditem.FieldBboxX]
	return ok
}

// ResetBboxX resets all changes to the "bbox_x" field.
func (m *ExtractedItemMutation) ResetBboxX() {
	m.bbox_x = nil
	m.addbbox_x = nil
	delete(m.clearedFields, extracteditem.FieldBboxX)
}

// SetBboxY sets the "bbox_y" field.
func (m *ExtractedItemMutation) SetBboxY(i int) {
	m.bbox_y = &i
	m.addbbox_y = nil
}

// BboxY returns the value of the "bbox_y" field in the mutation.
func (m *ExtractedItemMutation) BboxY() (r int, exists bool) {
	v := m.bbox_y
	if v == nil {
		return
	}
	return *v, true
}

// OldBboxY returns the old "bbox_y" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldBboxY(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBboxY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBboxY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBboxY: %w", err)
	}
	return oldValue.BboxY, nil
}

// AddBboxY adds i to the "bbox_y" field.
func (m *ExtractedItemMutation) AddBboxY(i int) {
	if m.addbbox_y != nil {
		*m.addbbox_y += i
	} else {
		m.addbbox_y = &i
	}
}

// AddedBboxY returns the value that was added to the "bbox_y" field in this mutation.
func (m *ExtractedItemMutation) AddedBboxY() (r int, exists bool) {
	v := m.addbbox_y
	if v == nil {
		return
	}
	return *v, true
}

// ClearBboxY clears the value of the "bbox_y" field.
func (m *ExtractedItemMutation) ClearBboxY() {
	m.bbox_y = nil
	m.addbbox_y = nil
	m.clearedFields[extracteditem.FieldBboxY] = struct{}{}
}

// BboxYCleared returns if the "bbox_y" field was cleared in this mutation.
func (m *ExtractedItemMutation) BboxYCleared() bool {
	_, ok := m.clearedFields[extracteditem.FieldBboxY]
	return ok
}

// ResetBboxY resets all changes to the "bbox_y" field.
func (m *ExtractedItemMutation) ResetBboxY() {
	m.bbox_y = nil
	m.addbbox_y = nil
	delete(m.clearedFields, extracteditem.FieldBboxY)
}

// SetBboxWidth sets the "bbox_width" field.
func (m *ExtractedItemMutation) SetBboxWidth(i int) {
	m.bbox_width = &i
	m.addbbox_width = nil
}

// BboxWidth returns the value of the "bbox_width" field in the mutation.
func (m *ExtractedItemMutation) BboxWidth() (r int, exists bool) {
	v := m.bbox_width
	if v == nil {
		return
	}
	return *v, true
}

// OldBboxWidth returns the old "bbox_width" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldBboxWidth(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBboxWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBboxWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBboxWidth: %w", err)
	}
	return oldValue.BboxWidth, nil
}

// AddBboxWidth adds i to the "bbox_width" field.
func (m *ExtractedItemMutation) AddBboxWidth(i int) {
	if m.addbbox_width != nil {
		*m.addbbox_width += i
	} else {
		m.addbbox_width = &i
	}
}

// AddedBboxWidth returns the value that was added to the "bbox_width" field in this mutation.
func (m *ExtractedItemMutation) AddedBboxWidth() (r int, exists bool) {
	v := m.addbbox_width
	if v == nil {
		return
	}
	return *v, true
}

// ClearBboxWidth clears the value of the "bbox_width" field.
func (m *ExtractedItemMutation) ClearBboxWidth() {
	m.bbox_width = nil
	m.addbbox_width = nil
	m.clearedFields[extracteditem.FieldBboxWidth] = struct{}{}
}

// BboxWidthCleared returns if the "bbox_width" field was cleared in this mutation.
func (m *ExtractedItemMutation) BboxWidthCleared() bool {
	_, ok := m.clearedFields[extracteditem.FieldBboxWidth]
	return ok
}

// ResetBboxWidth resets all changes to the "bbox_width" field.
func (m *ExtractedItemMutation) ResetBboxWidth() {
	m.bbox_width = nil
	m.addbbox_width = nil
	delete(m.clearedFields, extracteditem.FieldBboxWidth)
}

// SetBboxHeight sets the "bbox_height" field.
func (m *ExtractedItemMutation) SetBboxHeight(i int) {
	m.bbox_height = &i
	m.addbbox_height = nil
}

// BboxHeight returns the value of the "bbox_height" field in the mutation.
func (m *ExtractedItemMutation) BboxHeight() (r int, exists bool) {
	v := m.bbox_height
	if v == nil {
		return
	}
	return *v, true
}

// OldBboxHeight returns the old "bbox_height" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldBboxHeight(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBboxHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBboxHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBboxHeight: %w", err)
	}
	return oldValue.BboxHeight, nil
}

// AddBboxHeight adds i to the "bbox_height" field.
func (m *ExtractedItemMutation) AddBboxHeight(i int) {
	if m.addbbox_height != nil {
		*m.addbbox_height += i
	} else {
		m.addbbox_height = &i
	}
}

// AddedBboxHeight returns the value that was added to the "bbox_height" field in this mutation.
func (m *ExtractedItemMutation) AddedBboxHeight() (r int, exists bool) {
	v := m.addbbox_height
	if v == nil {
		return
	}
	return *v, true
}

// ClearBboxHeight clears the value of the "bbox_height" field.
func (m *ExtractedItemMutation) ClearBboxHeight() {
	m.bbox_height = nil
	m.addbbox_height = nil
	m.clearedFields[extracteditem.FieldBboxHeight] = struct{}{}
}

// BboxHeightCleared returns if the "bbox_height" field was cleared in this mutation.
func (m *ExtractedItemMutation) BboxHeightCleared() bool {
	_, ok := m.clearedFields[extracteditem.FieldBboxHeight]
	return ok
}

// ResetBboxHeight resets all changes to the "bbox_height" field.
func (m *ExtractedItemMutation) ResetBboxHeight() {
	m.bbox_height = nil
	m.addbbox_height = nil
	delete(m.clearedFields, extracteditem.FieldBboxHeight)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedItem entity.
// If the ExtractedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPass clears the "pass" edge to the ExtractionPass entity.
func (m *ExtractedItemMutation) ClearPass() {
	m.clearedpass = true
	m.clearedFields[extracteditem.FieldPassID] = struct{}{}
}

// PassCleared reports if the "pass" edge to the ExtractionPass entity was cleared.
func (m *ExtractedItemMutation) PassCleared() bool {
	return m.clearedpass
}

// PassIDs returns the "pass" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PassID instead. It exists only for internal usage by the builders.
func (m *ExtractedItemMutation) PassIDs() (ids []uuid.UUID) {
	if id := m.pass; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPass resets all changes to the "pass" edge.
func (m *ExtractedItemMutation) ResetPass() {
	m.pass = nil
	m.clearedpass = false
}

// Where appends a list predicates to the ExtractedItemMutation builder.
func (m *ExtractedItemMutation) Where(ps ...predicate.ExtractedItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedItem).
func (m *ExtractedItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedItemMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.pass != nil {
		fields = append(fields, extracteditem.FieldPassID)
	}
	if m.brand_code != nil {
		fields = append(fields, extracteditem.FieldBrandCode)
	}
	if m.part_number != nil {
		fields = append(fields, extracteditem.FieldPartNumber)
	}
	if m.price_type != nil {
		fields = append(fields, extracteditem.FieldPriceType)
	}
	if m.price_value != nil {
		fields = append(fields, extracteditem.FieldPriceValue)
	}
	if m.currency != nil {
		fields = append(fields, extracteditem.FieldCurrency)
	}
	if m.page != nil {
		fields = append(fields, extracteditem.FieldPage)
	}
	if m.confidence != nil {
		fields = append(fields, extracteditem.FieldConfidence)
	}
	if m.raw_text != nil {
		fields = append(fields, extracteditem.FieldRawText)
	}
	if m.bbox_x != nil {
		fields = append(fields, extracteditem.FieldBboxX)
	}
	if m.bbox_y != nil {
		fields = append(fields, extracteditem.FieldBboxY)
	}
	if m.bbox_width != nil {
		fields = append(fields, extracteditem.FieldBboxWidth)
	}
	if m.bbox_height != nil {
		fields = append(fields, extracteditem.FieldBboxHeight)
	}
	if m.created_at != nil {
		fields = append(fields, extracteditem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extracteditem.FieldPassID:
		return m.PassID()
	case extracteditem.FieldBrandCode:
		return m.BrandCode()
	case extracteditem.FieldPartNumber:
		return m.PartNumber()
	case extracteditem.FieldPriceType:
		return m.PriceType()
	case extracteditem.FieldPriceValue:
		return m.PriceValue()
	case extracteditem.FieldCurrency:
		return m.Currency()
	case extracteditem.FieldPage:
		return m.Page()
	case extracteditem.FieldConfidence:
		return m.Confidence()
	case extracteditem.FieldRawText:
		return m.RawText()
	case extracteditem.FieldBboxX:
		return m.BboxX()
	case extracteditem.FieldBboxY:
		return m.BboxY()
	case extracteditem.FieldBboxWidth:
		return m.BboxWidth()
	case extracteditem.FieldBboxHeight:
		return m.BboxHeight()
	case extracteditem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extracteditem.FieldPassID:
		return m.OldPassID(ctx)
	case extracteditem.FieldBrandCode:
		return m.OldBrandCode(ctx)
	case extracteditem.FieldPartNumber:
		return m.OldPartNumber(ctx)
	case extracteditem.FieldPriceType:
		return m.OldPriceType(ctx)
	case extracteditem.FieldPriceValue:
		return m.OldPriceValue(ctx)
	case extracteditem.FieldCurrency:
		return m.OldCurrency(ctx)
	case extracteditem.FieldPage:
		return m.OldPage(ctx)
	case extracteditem.FieldConfidence:
		return m.OldConfidence(ctx)
	case extracteditem.FieldRawText:
		return m.OldRawText(ctx)
	case extracteditem.FieldBboxX:
		return m.OldBboxX(ctx)
	case extracteditem.FieldBboxY:
		return m.OldBboxY(ctx)
	case extracteditem.FieldBboxWidth:
		return m.OldBboxWidth(ctx)
	case extracteditem.FieldBboxHeight:
		return m.OldBboxHeight(ctx)
	case extracteditem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extracteditem.FieldPassID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassID(v)
		return nil
	case extracteditem.FieldBrandCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandCode(v)
		return nil
	case extracteditem.FieldPartNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartNumber(v)
		return nil
	case extracteditem.FieldPriceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceType(v)
		return nil
	case extracteditem.FieldPriceValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceValue(v)
		return nil
	case extracteditem.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case extracteditem.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPage(v)
		return nil
	case extracteditem.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extracteditem.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case extracteditem.FieldBboxX:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBboxX(v)
		return nil
	case extracteditem.FieldBboxY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBboxY(v)
		return nil
	case extracteditem.FieldBboxWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBboxWidth(v)
		return nil
	case extracteditem.FieldBboxHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBboxHeight(v)
		return nil
	case extracteditem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedItemMutation) AddedFields() []string {
	var fields []string
	if m.addprice_value != nil {
		fields = append(fields, extracteditem.FieldPriceValue)
	}
	if m.addpage != nil {
		fields = append(fields, extracteditem.FieldPage)
	}
	if m.addconfidence != nil {
		fields = append(fields, extracteditem.FieldConfidence)
	}
	if m.addbbox_x != nil {
		fields = append(fields, extracteditem.FieldBboxX)
	}
	if m.addbbox_y != nil {
		fields = append(fields, extracteditem.FieldBboxY)
	}
	if m.addbbox_width != nil {
		fields = append(fields, extracteditem.FieldBboxWidth)
	}
	if m.addbbox_height != nil {
		fields = append(fields, extracteditem.FieldBboxHeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extracteditem.FieldPriceValue:
		return m.AddedPriceValue()
	case extracteditem.FieldPage:
		return m.AddedPage()
	case extracteditem.FieldConfidence:
		return m.AddedConfidence()
	case extracteditem.FieldBboxX:
		return m.AddedBboxX()
	case extracteditem.FieldBboxY:
		return m.AddedBboxY()
	case extracteditem.FieldBboxWidth:
		return m.AddedBboxWidth()
	case extracteditem.FieldBboxHeight:
		return m.AddedBboxHeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extracteditem.FieldPriceValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriceValue(v)
		return nil
	case extracteditem.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPage(v)
		return nil
	case extracteditem.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case extracteditem.FieldBboxX:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBboxX(v)
		return nil
	case extracteditem.FieldBboxY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBboxY(v)
		return nil
	case extracteditem.FieldBboxWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBboxWidth(v)
		return nil
	case extracteditem.FieldBboxHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBboxHeight(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extracteditem.FieldBrandCode) {
		fields = append(fields, extracteditem.FieldBrandCode)
	}
	if m.FieldCleared(extracteditem.FieldPartNumber) {
		fields = append(fields, extracteditem.FieldPartNumber)
	}
	if m.FieldCleared(extracteditem.FieldPriceType) {
		fields = append(fields, extracteditem.FieldPriceType)
	}
	if m.FieldCleared(extracteditem.FieldPriceValue) {
		fields = append(fields, extracteditem.FieldPriceValue)
	}
	if m.FieldCleared(extracteditem.FieldRawText) {
		fields = append(fields, extracteditem.FieldRawText)
	}
	if m.FieldCleared(extracteditem.FieldBboxX) {
		fields = append(fields, extracteditem.FieldBboxX)
	}
	if m.FieldCleared(extracteditem.FieldBboxY) {
		fields = append(fields, extracteditem.FieldBboxY)
	}
	if m.FieldCleared(extracteditem.FieldBboxWidth) {
		fields = append(fields, extracteditem.FieldBboxWidth)
	}
	if m.FieldCleared(extracteditem.FieldBboxHeight) {
		fields = append(fields, extracteditem.FieldBboxHeight)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedItemMutation) ClearField(name string) error {
	switch name {
	case extracteditem.FieldBrandCode:
		m.ClearBrandCode()
		return nil
	case extracteditem.FieldPartNumber:
		m.ClearPartNumber()
		return nil
	case extracteditem.FieldPriceType:
		m.ClearPriceType()
		return nil
	case extracteditem.FieldPriceValue:
		m.ClearPriceValue()
		return nil
	case extracteditem.FieldRawText:
		m.ClearRawText()
		return nil
	case extracteditem.FieldBboxX:
		m.ClearBboxX()
		return nil
	case extracteditem.FieldBboxY:
		m.ClearBboxY()
		return nil
	case extracteditem.FieldBboxWidth:
		m.ClearBboxWidth()
		return nil
	case extracteditem.FieldBboxHeight:
		m.ClearBboxHeight()
		return nil
	}
	return fmt.Errorf("unknown ExtractedItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedItemMutation) ResetField(name string) error {
	switch name {
	case extracteditem.FieldPassID:
		m.ResetPassID()
		return nil
	case extracteditem.FieldBrandCode:
		m.ResetBrandCode()
		return nil
	case extracteditem.FieldPartNumber:
		m.ResetPartNumber()
		return nil
	case extracteditem.FieldPriceType:
		m.ResetPriceType()
		return nil
	case extracteditem.FieldPriceValue:
		m.ResetPriceValue()
		return nil
	case extracteditem.FieldCurrency:
		m.ResetCurrency()
		return nil
	case extracteditem.FieldPage:
		m.ResetPage()
		return nil
	case extracteditem.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extracteditem.FieldRawText:
		m.ResetRawText()
		return nil
	case extracteditem.FieldBboxX:
		m.ResetBboxX()
		return nil
	case extracteditem.FieldBboxY:
		m.ResetBboxY()
		return nil
	case extracteditem.FieldBboxWidth:
		m.ResetBboxWidth()
		return nil
	case extracteditem.FieldBboxHeight:
		m.ResetBboxHeight()
		return nil
	case extracteditem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pass != nil {
		edges = append(edges, extracteditem.EdgePass)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extracteditem.EdgePass:
		if id := m.pass; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpass {
		edges = append(edges, extracteditem.EdgePass)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedItemMutation) EdgeCleared(name string) bool {
	switch name {
	case extracteditem.EdgePass:
		return m.clearedpass
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedItemMutation) ClearEdge(name string) error {
	switch name {
	case extracteditem.EdgePass:
		m.ClearPass()
		return nil
	}
	return fmt.Errorf("unknown ExtractedItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedItemMutation) ResetEdge(name string) error {
	switch name {
	case extracteditem.EdgePass:
		m.ResetPass()
		return nil
	}
	return fmt.Errorf("unknown ExtractedItem edge %s", name)
}

// ExtractionPassMutation represents an operation that mutates the ExtractionPass nodes in the graph.
type ExtractionPassMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	pass_number        *int
	addpass_number     *int
	method             *string
	start_page         *int
	addstart_page      *int
	end_page           *int
	addend_page        *int
	dpi                *int
	adddpi             *int
	min_confidence     *float64
	addmin_confidence  *float64
	force_ocr          *bool
	debug              *bool
	pages              *[]int
	appendpages        []int
	status             *string
	items_extracted    *int
	additems_extracted *int
	avg_confidence     *float64
	addavg_confidence  *float64
	processing_time    *float64
	addprocessing_time *float64
	error_message      *string
	created_at         *time.Time
	started_at         *time.Time
	finished_at        *time.Time
	clearedFields      map[string]struct{}
	document           *uuid.UUID
	cleareddocument    bool
	items              map[uuid.UUID]struct{}
	removeditems       map[uuid.UUID]struct{}
	cleareditems       bool
	done               bool
	oldValue           func(context.Context) (*ExtractionPass, error)
	predicates         []predicate.ExtractionPass
}

var _ ent.Mutation = (*ExtractionPassMutation)(nil)

// extractionpassOption allows management of the mutation configuration using functional options.
type extractionpassOption func(*ExtractionPassMutation)

// newExtractionPassMutation creates new mutation for the ExtractionPass entity.
func newExtractionPassMutation(c config, op Op, opts ...extractionpassOption) *ExtractionPassMutation {
	m := &ExtractionPassMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionPass,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionPassID sets the ID field of the mutation.
func withExtractionPassID(id uuid.UUID) extractionpassOption {
	return func(m *ExtractionPassMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionPass
		)
		m.oldValue = func(ctx context.Context) (*ExtractionPass, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionPass.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionPass sets the old ExtractionPass of the mutation.
func withExtractionPass(node *ExtractionPass) extractionpassOption {
	return func(m *ExtractionPassMutation) {
		m.oldValue = func(context.Context) (*ExtractionPass, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionPassMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionPassMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionPass entities.
func (m *ExtractionPassMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionPassMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionPassMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionPass.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionPassMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionPassMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionPassMutation) ResetDocumentID() {
	m.document = nil
}

// SetPassNumber sets the "pass_number" field.
func (m *ExtractionPassMutation) SetPassNumber(i int) {
	m.pass_number = &i
	m.addpass_number = nil
}

// PassNumber returns the value of the "pass_number" field in the mutation.
func (m *ExtractionPassMutation) PassNumber() (r int, exists bool) {
	v := m.pass_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPassNumber returns the old "pass_number" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldPassNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassNumber: %w", err)
	}
	return oldValue.PassNumber, nil
}

// AddPassNumber adds i to the "pass_number" field.
func (m *ExtractionPassMutation) AddPassNumber(i int) {
	if m.addpass_number != nil {
		*m.addpass_number += i
	} else {
		m.addpass_number = &i
	}
}

// AddedPassNumber returns the value that was added to the "pass_number" field in this mutation.
func (m *ExtractionPassMutation) AddedPassNumber() (r int, exists bool) {
	v := m.addpass_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassNumber resets all changes to the "pass_number" field.
func (m *ExtractionPassMutation) ResetPassNumber() {
	m.pass_number = nil
	m.addpass_number = nil
}

// SetMethod sets the "method" field.
func (m *ExtractionPassMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *ExtractionPassMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *ExtractionPassMutation) ResetMethod() {
	m.method = nil
}

// SetStartPage sets the "start_page" field.
func (m *ExtractionPassMutation) SetStartPage(i int) {
	m.start_page = &i
	m.addstart_page = nil
}

// StartPage returns the value of the "start_page" field in the mutation.
func (m *ExtractionPassMutation) StartPage() (r int, exists bool) {
	v := m.start_page
	if v == nil {
		return
	}
	return *v, true
}

// OldStartPage returns the old "start_page" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldStartPage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartPage: %w", err)
	}
	return oldValue.StartPage, nil
}

// AddStartPage adds i to the "start_page" field.
func (m *ExtractionPassMutation) AddStartPage(i int) {
	if m.addstart_page != nil {
		*m.addstart_page += i
	} else {
		m.addstart_page = &i
	}
}

// AddedStartPage returns the value that was added to the "start_page" field in this mutation.
func (m *ExtractionPassMutation) AddedStartPage() (r int, exists bool) {
	v := m.addstart_page
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartPage resets all changes to the "start_page" field.
func (m *ExtractionPassMutation) ResetStartPage() {
	m.start_page = nil
	m.addstart_page = nil
}

// SetEndPage sets the "end_page" field.
func (m *ExtractionPassMutation) SetEndPage(i int) {
	m.end_page = &i
	m.addend_page = nil
}

// EndPage returns the value of the "end_page" field in the mutation.
func (m *ExtractionPassMutation) EndPage() (r int, exists bool) {
	v := m.end_page
	if v == nil {
		return
	}
	return *v, true
}

// OldEndPage returns the old "end_page" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldEndPage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndPage: %w", err)
	}
	return oldValue.EndPage, nil
}

// AddEndPage adds i to the "end_page" field.
func (m *ExtractionPassMutation) AddEndPage(i int) {
	if m.addend_page != nil {
		*m.addend_page += i
	} else {
		m.addend_page = &i
	}
}

// AddedEndPage returns the value that was added to the "end_page" field in this mutation.
func (m *ExtractionPassMutation) AddedEndPage() (r int, exists bool) {
	v := m.addend_page
	if v == nil {
		return
	}
	return *v, true
}

// ClearEndPage clears the value of the "end_page" field.
func (m *ExtractionPassMutation) ClearEndPage() {
	m.end_page = nil
	m.addend_page = nil
	m.clearedFields[extractionpass.FieldEndPage] = struct{}{}
}

// EndPageCleared returns if the "end_page" field was cleared in this mutation.
func (m *ExtractionPassMutation) EndPageCleared() bool {
	_, ok := m.clearedFields[extractionpass.FieldEndPage]
	return ok
}

// ResetEndPage resets all changes to the "end_page" field.
func (m *ExtractionPassMutation) ResetEndPage() {
	m.end_page = nil
	m.addend_page = nil
	delete(m.clearedFields, extractionpass.FieldEndPage)
}

// SetDpi sets the "dpi" field.
func (m *ExtractionPassMutation) SetDpi(i int) {
	m.dpi = &i
	m.adddpi = nil
}

// Dpi returns the value of the "dpi" field in the mutation.
func (m *ExtractionPassMutation) Dpi() (r int, exists bool) {
	v := m.dpi
	if v == nil {
		return
	}
	return *v, true
}

// OldDpi returns the old "dpi" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldDpi(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDpi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDpi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDpi: %w", err)
	}
	return oldValue.Dpi, nil
}

// AddDpi adds i to the "dpi" field.
func (m *ExtractionPassMutation) AddDpi(i int) {
	if m.adddpi != nil {
		*m.adddpi += i
	} else {
		m.adddpi = &i
	}
}

// AddedDpi returns the value that was added to the "dpi" field in this mutation.
func (m *ExtractionPassMutation) AddedDpi() (r int, exists bool) {
	v := m.adddpi
	if v == nil {
		return
	}
	return *v, true
}

// ResetDpi resets all changes to the "dpi" field.
func (m *ExtractionPassMutation) ResetDpi() {
	m.dpi = nil
	m.adddpi = nil
}

// SetMinConfidence sets the "min_confidence" field.
func (m *ExtractionPassMutation) SetMinConfidence(f float64) {
	m.min_confidence = &f
	m.addmin_confidence = nil
}

// MinConfidence returns the value of the "min_confidence" field in the mutation.
func (m *ExtractionPassMutation) MinConfidence() (r float64, exists bool) {
	v := m.min_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldMinConfidence returns the old "min_confidence" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldMinConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinConfidence: %w", err)
	}
	return oldValue.MinConfidence, nil
}

// AddMinConfidence adds f to the "min_confidence" field.
func (m *ExtractionPassMutation) AddMinConfidence(f float64) {
	if m.addmin_confidence != nil {
		*m.addmin_confidence += f
	} else {
		m.addmin_confidence = &f
	}
}

// AddedMinConfidence returns the value that was added to the "min_confidence" field in this mutation.
func (m *ExtractionPassMutation) AddedMinConfidence() (r float64, exists bool) {
	v := m.addmin_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinConfidence resets all changes to the "min_confidence" field.
func (m *ExtractionPassMutation) ResetMinConfidence() {
	m.min_confidence = nil
	m.addmin_confidence = nil
}

// SetForceOcr sets the "force_ocr" field.
func (m *ExtractionPassMutation) SetForceOcr(b bool) {
	m.force_ocr = &b
}

// ForceOcr returns the value of the "force_ocr" field in the mutation.
func (m *ExtractionPassMutation) ForceOcr() (r bool, exists bool) {
	v := m.force_ocr
	if v == nil {
		return
	}
	return *v, true
}

// OldForceOcr returns the old "force_ocr" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldForceOcr(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForceOcr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForceOcr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForceOcr: %w", err)
	}
	return oldValue.ForceOcr, nil
}

// ResetForceOcr resets all changes to the "force_ocr" field.
func (m *ExtractionPassMutation) ResetForceOcr() {
	m.force_ocr = nil
}

// SetDebug sets the "debug" field.
func (m *ExtractionPassMutation) SetDebug(b bool) {
	m.debug = &b
}

// Debug returns the value of the "debug" field in the mutation.
func (m *ExtractionPassMutation) Debug() (r bool, exists bool) {
	v := m.debug
	if v == nil {
		return
	}
	return *v, true
}

// OldDebug returns the old "debug" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldDebug(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebug: %w", err)
	}
	return oldValue.Debug, nil
}

// ResetDebug resets all changes to the "debug" field.
func (m *ExtractionPassMutation) ResetDebug() {
	m.debug = nil
}

// SetPages sets the "pages" field.
func (m *ExtractionPassMutation) SetPages(i []int) {
	m.pages = &i
	m.appendpages = nil
}

// Pages returns the value of the "pages" field in the mutation.
func (m *ExtractionPassMutation) Pages() (r []int, exists bool) {
	v := m.pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPages returns the old "pages" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldPages(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPages: %w", err)
	}
	return oldValue.Pages, nil
}

// AppendPages adds i to the "pages" field.
func (m *ExtractionPassMutation) AppendPages(i []int) {
	m.appendpages = append(m.appendpages, i...)
}

// AppendedPages returns the list of values that were appended to the "pages" field in this mutation.
func (m *ExtractionPassMutation) AppendedPages() ([]int, bool) {
	if len(m.appendpages) == 0 {
		return nil, false
	}
	return m.appendpages, true
}

// ClearPages clears the value of the "pages" field.
func (m *ExtractionPassMutation) ClearPages() {
	m.pages = nil
	m.appendpages = nil
	m.clearedFields[extractionpass.FieldPages] = struct{}{}
}

// PagesCleared returns if the "pages" field was cleared in this mutation.
func (m *ExtractionPassMutation) PagesCleared() bool {
	_, ok := m.clearedFields[extractionpass.FieldPages]
	return ok
}

// ResetPages resets all changes to the "pages" field.
func (m *ExtractionPassMutation) ResetPages() {
	m.pages = nil
	m.appendpages = nil
	delete(m.clearedFields, extractionpass.FieldPages)
}

// SetStatus sets the "status" field.
func (m *ExtractionPassMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionPassMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionPassMutation) ResetStatus() {
	m.status = nil
}

// SetItemsExtracted sets the "items_extracted" field.
func (m *ExtractionPassMutation) SetItemsExtracted(i int) {
	m.items_extracted = &i
	m.additems_extracted = nil
}

// ItemsExtracted returns the value of the "items_extracted" field in the mutation.
func (m *ExtractionPassMutation) ItemsExtracted() (r int, exists bool) {
	v := m.items_extracted
	if v == nil {
		return
	}
	return *v, true
}

// OldItemsExtracted returns the old "items_extracted" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldItemsExtracted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemsExtracted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemsExtracted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemsExtracted: %w", err)
	}
	return oldValue.ItemsExtracted, nil
}

// AddItemsExtracted adds i to the "items_extracted" field.
func (m *ExtractionPassMutation) AddItemsExtracted(i int) {
	if m.additems_extracted != nil {
		*m.additems_extracted += i
	} else {
		m.additems_extracted = &i
	}
}

// AddedItemsExtracted returns the value that was added to the "items_extracted" field in this mutation.
func (m *ExtractionPassMutation) AddedItemsExtracted() (r int, exists bool) {
	v := m.additems_extracted
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemsExtracted resets all changes to the "items_extracted" field.
func (m *ExtractionPassMutation) ResetItemsExtracted() {
	m.items_extracted = nil
	m.additems_extracted = nil
}

// SetAvgConfidence sets the "avg_confidence" field.
func (m *ExtractionPassMutation) SetAvgConfidence(f float64) {
	m.avg_confidence = &f
	m.addavg_confidence = nil
}

// AvgConfidence returns the value of the "avg_confidence" field in the mutation.
func (m *ExtractionPassMutation) AvgConfidence() (r float64, exists bool) {
	v := m.avg_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgConfidence returns the old "avg_confidence" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldAvgConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgConfidence: %w", err)
	}
	return oldValue.AvgConfidence, nil
}

// AddAvgConfidence adds f to the "avg_confidence" field.
func (m *ExtractionPassMutation) AddAvgConfidence(f float64) {
	if m.addavg_confidence != nil {
		*m.addavg_confidence += f
	} else {
		m.addavg_confidence = &f
	}
}

// AddedAvgConfidence returns the value that was added to the "avg_confidence" field in this mutation.
func (m *ExtractionPassMutation) AddedAvgConfidence() (r float64, exists bool) {
	v := m.addavg_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearAvgConfidence clears the value of the "avg_confidence" field.
func (m *ExtractionPassMutation) ClearAvgConfidence() {
	m.avg_confidence = nil
	m.addavg_confidence = nil
	m.clearedFields[extractionpass.FieldAvgConfidence] = struct{}{}
}

// AvgConfidenceCleared returns if the "avg_confidence" field was cleared in this mutation.
func (m *ExtractionPassMutation) AvgConfidenceCleared() bool {
	_, ok := m.clearedFields[extractionpass.FieldAvgConfidence]
	return ok
}

// ResetAvgConfidence resets all changes to the "avg_confidence" field.
func (m *ExtractionPassMutation) ResetAvgConfidence() {
	m.avg_confidence = nil
	m.addavg_confidence = nil
	delete(m.clearedFields, extractionpass.FieldAvgConfidence)
}

// SetProcessingTime sets the "processing_time" field.
func (m *ExtractionPassMutation) SetProcessingTime(f float64) {
	m.processing_time = &f
	m.addprocessing_time = nil
}

// ProcessingTime returns the value of the "processing_time" field in the mutation.
func (m *ExtractionPassMutation) ProcessingTime() (r float64, exists bool) {
	v := m.processing_time
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTime returns the old "processing_time" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldProcessingTime(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTime: %w", err)
	}
	return oldValue.ProcessingTime, nil
}

// AddProcessingTime adds f to the "processing_time" field.
func (m *ExtractionPassMutation) AddProcessingTime(f float64) {
	if m.addprocessing_time != nil {
		*m.addprocessing_time += f
	} else {
		m.addprocessing_time = &f
	}
}

// AddedProcessingTime returns the value that was added to the "processing_time" field in this mutation.
func (m *ExtractionPassMutation) AddedProcessingTime() (r float64, exists bool) {
	v := m.addprocessing_time
	if v == nil {
		return
	}
	return *v, true
}

// ClearProcessingTime clears the value of the "processing_time" field.
func (m *ExtractionPassMutation) ClearProcessingTime() {
	m.processing_time = nil
	m.addprocessing_time = nil
	m.clearedFields[extractionpass.FieldProcessingTime] = struct{}{}
}

// ProcessingTimeCleared returns if the "processing_time" field was cleared in this mutation.
func (m *ExtractionPassMutation) ProcessingTimeCleared() bool {
	_, ok := m.clearedFields[extractionpass.FieldProcessingTime]
	return ok
}

// ResetProcessingTime resets all changes to the "processing_time" field.
func (m *ExtractionPassMutation) ResetProcessingTime() {
	m.processing_time = nil
	m.addprocessing_time = nil
	delete(m.clearedFields, extractionpass.FieldProcessingTime)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionPassMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionPassMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionPassMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionpass.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionPassMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionpass.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionPassMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionpass.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionPassMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionPassMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionPassMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionPassMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionPassMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExtractionPassMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[extractionpass.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExtractionPassMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[extractionpass.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionPassMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, extractionpass.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractionPassMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractionPassMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractionPass entity.
// If the ExtractionPass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionPassMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractionPassMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractionpass.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractionPassMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractionpass.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractionPassMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractionpass.FieldFinishedAt)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractionPassMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractionpass.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractionPassMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractionPassMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractionPassMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddItemIDs adds the "items" edge to the ExtractedItem entity by ids.
func (m *ExtractionPassMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the ExtractedItem entity.
func (m *ExtractionPassMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the ExtractedItem entity was cleared.
func (m *ExtractionPassMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the ExtractedItem entity by IDs.
func (m *ExtractionPassMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the ExtractedItem entity.
func (m *ExtractionPassMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *ExtractionPassMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *ExtractionPassMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the ExtractionPassMutation builder.
func (m *ExtractionPassMutation) Where(ps ...predicate.ExtractionPass) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionPassMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionPassMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionPass, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionPassMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionPassMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionPass).
func (m *ExtractionPassMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionPassMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.document != nil {
		fields = append(fields, extractionpass.FieldDocumentID)
	}
	if m.pass_number != nil {
		fields = append(fields, extractionpass.FieldPassNumber)
	}
	if m.method != nil {
		fields = append(fields, extractionpass.FieldMethod)
	}
	if m.start_page != nil {
		fields = append(fields, extractionpass.FieldStartPage)
	}
	if m.end_page != nil {
		fields = append(fields, extractionpass.FieldEndPage)
	}
	if m.dpi != nil {
		fields = append(fields, extractionpass.FieldDpi)
	}
	if m.min_confidence != nil {
		fields = append(fields, extractionpass.FieldMinConfidence)
	}
	if m.force_ocr != nil {
		fields = append(fields, extractionpass.FieldForceOcr)
	}
	if m.debug != nil {
		fields = append(fields, extractionpass.FieldDebug)
	}
	if m.pages != nil {
		fields = append(fields, extractionpass.FieldPages)
	}
	if m.status != nil {
		fields = append(fields, extractionpass.FieldStatus)
	}
	if m.items_extracted != nil {
		fields = append(fields, extractionpass.FieldItemsExtracted)
	}
	if m.avg_confidence != nil {
		fields = append(fields, extractionpass.FieldAvgConfidence)
	}
	if m.processing_time != nil {
		fields = append(fields, extractionpass.FieldProcessingTime)
	}
	if m.error_message != nil {
		fields = append(fields, extractionpass.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, extractionpass.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, extractionpass.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractionpass.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionPassMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionpass.FieldDocumentID:
		return m.DocumentID()
	case extractionpass.FieldPassNumber:
		return m.PassNumber()
	case extractionpass.FieldMethod:
		return m.Method()
	case extractionpass.FieldStartPage:
		return m.StartPage()
	case extractionpass.FieldEndPage:
		return m.EndPage()
	case extractionpass.FieldDpi:
		return m.Dpi()
	case extractionpass.FieldMinConfidence:
		return m.MinConfidence()
	case extractionpass.FieldForceOcr:
		return m.ForceOcr()
	case extractionpass.FieldDebug:
		return m.Debug()
	case extractionpass.FieldPages:
		return m.Pages()
	case extractionpass.FieldStatus:
		return m.Status()
	case extractionpass.FieldItemsExtracted:
		return m.ItemsExtracted()
	case extractionpass.FieldAvgConfidence:
		return m.AvgConfidence()
	case extractionpass.FieldProcessingTime:
		return m.ProcessingTime()
	case extractionpass.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionpass.FieldCreatedAt:
		return m.CreatedAt()
	case extractionpass.FieldStartedAt:
		return m.StartedAt()
	case extractionpass.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionPassMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionpass.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractionpass.FieldPassNumber:
		return m.OldPassNumber(ctx)
	case extractionpass.FieldMethod:
		return m.OldMethod(ctx)
	case extractionpass.FieldStartPage:
		return m.OldStartPage(ctx)
	case extractionpass.FieldEndPage:
		return m.OldEndPage(ctx)
	case extractionpass.FieldDpi:
		return m.OldDpi(ctx)
	case extractionpass.FieldMinConfidence:
		return m.OldMinConfidence(ctx)
	case extractionpass.FieldForceOcr:
		return m.OldForceOcr(ctx)
	case extractionpass.FieldDebug:
		return m.OldDebug(ctx)
	case extractionpass.FieldPages:
		return m.OldPages(ctx)
	case extractionpass.FieldStatus:
		return m.OldStatus(ctx)
	case extractionpass.FieldItemsExtracted:
		return m.OldItemsExtracted(ctx)
	case extractionpass.FieldAvgConfidence:
		return m.OldAvgConfidence(ctx)
	case extractionpass.FieldProcessingTime:
		return m.OldProcessingTime(ctx)
	case extractionpass.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionpass.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractionpass.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractionpass.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionPass field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionPassMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionpass.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractionpass.FieldPassNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassNumber(v)
		return nil
	case extractionpass.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case extractionpass.FieldStartPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartPage(v)
		return nil
	case extractionpass.FieldEndPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndPage(v)
		return nil
	case extractionpass.FieldDpi:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDpi(v)
		return nil
	case extractionpass.FieldMinConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinConfidence(v)
		return nil
	case extractionpass.FieldForceOcr:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForceOcr(v)
		return nil
	case extractionpass.FieldDebug:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebug(v)
		return nil
	case extractionpass.FieldPages:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPages(v)
		return nil
	case extractionpass.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionpass.FieldItemsExtracted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemsExtracted(v)
		return nil
	case extractionpass.FieldAvgConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgConfidence(v)
		return nil
	case extractionpass.FieldProcessingTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTime(v)
		return nil
	case extractionpass.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionpass.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractionpass.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractionpass.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionPass field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionPassMutation) AddedFields() []string {
	var fields []string
	if m.addpass_number != nil {
		fields = append(fields, extractionpass.FieldPassNumber)
	}
	if m.addstart_page != nil {
		fields = append(fields, extractionpass.FieldStartPage)
	}
	if m.addend_page != nil {
		fields = append(fields, extractionpass.FieldEndPage)
	}
	if m.adddpi != nil {
		fields = append(fields, extractionpass.FieldDpi)
	}
	if m.addmin_confidence != nil {
		fields = append(fields, extractionpass.FieldMinConfidence)
	}
	if m.additems_extracted != nil {
		fields = append(fields, extractionpass.FieldItemsExtracted)
	}
	if m.addavg_confidence != nil {
		fields = append(fields, extractionpass.FieldAvgConfidence)
	}
	if m.addprocessing_time != nil {
		fields = append(fields, extractionpass.FieldProcessingTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionPassMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionpass.FieldPassNumber:
		return m.AddedPassNumber()
	case extractionpass.FieldStartPage:
		return m.AddedStartPage()
	case extractionpass.FieldEndPage:
		return m.AddedEndPage()
	case extractionpass.FieldDpi:
		return m.AddedDpi()
	case extractionpass.FieldMinConfidence:
		return m.AddedMinConfidence()
	case extractionpass.FieldItemsExtracted:
		return m.AddedItemsExtracted()
	case extractionpass.FieldAvgConfidence:
		return m.AddedAvgConfidence()
	case extractionpass.FieldProcessingTime:
		return m.AddedProcessingTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionPassMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionpass.FieldPassNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassNumber(v)
		return nil
	case extractionpass.FieldStartPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartPage(v)
		return nil
	case extractionpass.FieldEndPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndPage(v)
		return nil
	case extractionpass.FieldDpi:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDpi(v)
		return nil
	case extractionpass.FieldMinConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinConfidence(v)
		return nil
	case extractionpass.FieldItemsExtracted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemsExtracted(v)
		return nil
	case extractionpass.FieldAvgConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgConfidence(v)
		return nil
	case extractionpass.FieldProcessingTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTime(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionPass numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionPassMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionpass.FieldEndPage) {
		fields = append(fields, extractionpass.FieldEndPage)
	}
	if m.FieldCleared(extractionpass.FieldPages) {
		fields = append(fields, extractionpass.FieldPages)
	}
	if m.FieldCleared(extractionpass.FieldAvgConfidence) {
		fields = append(fields, extractionpass.FieldAvgConfidence)
	}
	if m.FieldCleared(extractionpass.FieldProcessingTime) {
		fields = append(fields, extractionpass.FieldProcessingTime)
	}
	if m.FieldCleared(extractionpass.FieldErrorMessage) {
		fields = append(fields, extractionpass.FieldErrorMessage)
	}
	if m.FieldCleared(extractionpass.FieldStartedAt) {
		fields = append(fields, extractionpass.FieldStartedAt)
	}
	if m.FieldCleared(extractionpass.FieldFinishedAt) {
		fields = append(fields, extractionpass.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionPassMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionPassMutation) ClearField(name string) error {
	switch name {
	case extractionpass.FieldEndPage:
		m.ClearEndPage()
		return nil
	case extractionpass.FieldPages:
		m.ClearPages()
		return nil
	case extractionpass.FieldAvgConfidence:
		m.ClearAvgConfidence()
		return nil
	case extractionpass.FieldProcessingTime:
		m.ClearProcessingTime()
		return nil
	case extractionpass.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractionpass.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case extractionpass.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionPass nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionPassMutation) ResetField(name string) error {
	switch name {
	case extractionpass.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractionpass.FieldPassNumber:
		m.ResetPassNumber()
		return nil
	case extractionpass.FieldMethod:
		m.ResetMethod()
		return nil
	case extractionpass.FieldStartPage:
		m.ResetStartPage()
		return nil
	case extractionpass.FieldEndPage:
		m.ResetEndPage()
		return nil
	case extractionpass.FieldDpi:
		m.ResetDpi()
		return nil
	case extractionpass.FieldMinConfidence:
		m.ResetMinConfidence()
		return nil
	case extractionpass.FieldForceOcr:
		m.ResetForceOcr()
		return nil
	case extractionpass.FieldDebug:
		m.ResetDebug()
		return nil
	case extractionpass.FieldPages:
		m.ResetPages()
		return nil
	case extractionpass.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionpass.FieldItemsExtracted:
		m.ResetItemsExtracted()
		return nil
	case extractionpass.FieldAvgConfidence:
		m.ResetAvgConfidence()
		return nil
	case extractionpass.FieldProcessingTime:
		m.ResetProcessingTime()
		return nil
	case extractionpass.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionpass.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractionpass.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractionpass.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionPass field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionPassMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, extractionpass.EdgeDocument)
	}
	if m.items != nil {
		edges = append(edges, extractionpass.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionPassMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionpass.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case extractionpass.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionPassMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeditems != nil {
		edges = append(edges, extractionpass.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionPassMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractionpass.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionPassMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, extractionpass.EdgeDocument)
	}
	if m.cleareditems {
		edges = append(edges, extractionpass.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionPassMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionpass.EdgeDocument:
		return m.cleareddocument
	case extractionpass.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionPassMutation) ClearEdge(name string) error {
	switch name {
	case extractionpass.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractionPass unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionPassMutation) ResetEdge(name string) error {
	switch name {
	case extractionpass.EdgeDocument:
		m.ResetDocument()
		return nil
	case extractionpass.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown ExtractionPass edge %s", name)
}
