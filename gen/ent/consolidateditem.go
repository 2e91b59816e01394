// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/catalogkit/extractor/gen/ent/consolidateditem"
	"github.com/catalogkit/extractor/gen/ent/document"
	"github.com/google/uuid"
)

// ConsolidatedItem is the model entity for the ConsolidatedItem schema.
type ConsolidatedItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// BrandCode holds the value of the "brand_code" field.
	BrandCode string `json:"brand_code,omitempty"`
	// PartNumber holds the value of the "part_number" field.
	PartNumber string `json:"part_number,omitempty"`
	// PriceType holds the value of the "price_type" field.
	PriceType string `json:"price_type,omitempty"`
	// PriceValue holds the value of the "price_value" field.
	PriceValue *float64 `json:"price_value,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// Page holds the value of the "page" field.
	Page int `json:"page,omitempty"`
	// AvgConfidence holds the value of the "avg_confidence" field.
	AvgConfidence float64 `json:"avg_confidence,omitempty"`
	// SourceCount holds the value of the "source_count" field.
	SourceCount int `json:"source_count,omitempty"`
	// ContributingItemIds holds the value of the "contributing_item_ids" field.
	ContributingItemIds []uuid.UUID `json:"contributing_item_ids,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConsolidatedItemQuery when eager-loading is set.
	Edges        ConsolidatedItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConsolidatedItemEdges holds the relations/edges for other nodes in the graph.
type ConsolidatedItemEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConsolidatedItemEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConsolidatedItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case consolidateditem.FieldContributingItemIds:
			values[i] = new([]byte)
		case consolidateditem.FieldPriceValue, consolidateditem.FieldAvgConfidence:
			values[i] = new(sql.NullFloat64)
		case consolidateditem.FieldPage, consolidateditem.FieldSourceCount:
			values[i] = new(sql.NullInt64)
		case consolidateditem.FieldBrandCode, consolidateditem.FieldPartNumber, consolidateditem.FieldPriceType, consolidateditem.FieldCurrency:
			values[i] = new(sql.NullString)
		case consolidateditem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case consolidateditem.FieldID, consolidateditem.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConsolidatedItem fields.
func (_m *ConsolidatedItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case consolidateditem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case consolidateditem.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case consolidateditem.FieldBrandCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand_code", values[i])
			} else if value.Valid {
				_m.BrandCode = value.String
			}
		case consolidateditem.FieldPartNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field part_number", values[i])
			} else if value.Valid {
				_m.PartNumber = value.String
			}
		case consolidateditem.FieldPriceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field price_type", values[i])
			} else if value.Valid {
				_m.PriceType = value.String
			}
		case consolidateditem.FieldPriceValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price_value", values[i])
			} else if value.Valid {
				_m.PriceValue = new(float64)
				*_m.PriceValue = value.Float64
			}
		case consolidateditem.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case consolidateditem.FieldPage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page", values[i])
			} else if value.Valid {
				_m.Page = int(value.Int64)
			}
		case consolidateditem.FieldAvgConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_confidence", values[i])
			} else if value.Valid {
				_m.AvgConfidence = value.Float64
			}
		case consolidateditem.FieldSourceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_count", values[i])
			} else if value.Valid {
				_m.SourceCount = int(value.Int64)
			}
		case consolidateditem.FieldContributingItemIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field contributing_item_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContributingItemIds); err != nil {
					return fmt.Errorf("unmarshal field contributing_item_ids: %w", err)
				}
			}
		case consolidateditem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConsolidatedItem.
// This includes values selected through modifiers, order, etc.
func (_m *ConsolidatedItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ConsolidatedItem entity.
func (_m *ConsolidatedItem) QueryDocument() *DocumentQuery {
	return NewConsolidatedItemClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this ConsolidatedItem.
// Note that you need to call ConsolidatedItem.Unwrap() before calling this method if this ConsolidatedItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConsolidatedItem) Update() *ConsolidatedItemUpdateOne {
	return NewConsolidatedItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConsolidatedItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConsolidatedItem) Unwrap() *ConsolidatedItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConsolidatedItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConsolidatedItem) String() string {
	var builder strings.Builder
	builder.WriteString("ConsolidatedItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("brand_code=")
	builder.WriteString(_m.BrandCode)
	builder.WriteString(", ")
	builder.WriteString("part_number=")
	builder.WriteString(_m.PartNumber)
	builder.WriteString(", ")
	builder.WriteString("price_type=")
	builder.WriteString(_m.PriceType)
	builder.WriteString(", ")
	if v := _m.PriceValue; v != nil {
		builder.WriteString("price_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("page=")
	builder.WriteString(fmt.Sprintf("%v", _m.Page))
	builder.WriteString(", ")
	builder.WriteString("avg_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgConfidence))
	builder.WriteString(", ")
	builder.WriteString("source_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceCount))
	builder.WriteString(", ")
	builder.WriteString("contributing_item_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContributingItemIds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConsolidatedItems is a parsable slice of ConsolidatedItem.
type ConsolidatedItems []*ConsolidatedItem
