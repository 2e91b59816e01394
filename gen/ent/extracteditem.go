// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/catalogkit/extractor/gen/ent/extracteditem"
	"github.com/catalogkit/extractor/gen/ent/extractionpass"
	"github.com/google/uuid"
)

// ExtractedItem is the model entity for the ExtractedItem schema.
type ExtractedItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PassID holds the value of the "pass_id" field.
	PassID uuid.UUID `json:"pass_id,omitempty"`
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
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// BboxX holds the value of the "bbox_x" field.
	BboxX *int `json:"bbox_x,omitempty"`
	// BboxY holds the value of the "bbox_y" field.
	BboxY *int `json:"bbox_y,omitempty"`
	// BboxWidth holds the value of the "bbox_width" field.
	BboxWidth *int `json:"bbox_width,omitempty"`
	// BboxHeight holds the value of the "bbox_height" field.
	BboxHeight *int `json:"bbox_height,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedItemQuery when eager-loading is set.
	Edges        ExtractedItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedItemEdges holds the relations/edges for other nodes in the graph.
type ExtractedItemEdges struct {
	// Pass holds the value of the pass edge.
	Pass *ExtractionPass `json:"pass,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PassOrErr returns the Pass value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedItemEdges) PassOrErr() (*ExtractionPass, error) {
	if e.Pass != nil {
		return e.Pass, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extractionpass.Label}
	}
	return nil, &NotLoadedError{edge: "pass"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extracteditem.FieldPriceValue, extracteditem.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case extracteditem.FieldPage, extracteditem.FieldBboxX, extracteditem.FieldBboxY, extracteditem.FieldBboxWidth, extracteditem.FieldBboxHeight:
			values[i] = new(sql.NullInt64)
		case extracteditem.FieldBrandCode, extracteditem.FieldPartNumber, extracteditem.FieldPriceType, extracteditem.FieldCurrency, extracteditem.FieldRawText:
			values[i] = new(sql.NullString)
		case extracteditem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case extracteditem.FieldID, extracteditem.FieldPassID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedItem fields.
func (_m *ExtractedItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extracteditem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extracteditem.FieldPassID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field pass_id", values[i])
			} else if value != nil {
				_m.PassID = *value
			}
		case extracteditem.FieldBrandCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand_code", values[i])
			} else if value.Valid {
				_m.BrandCode = value.String
			}
		case extracteditem.FieldPartNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field part_number", values[i])
			} else if value.Valid {
				_m.PartNumber = value.String
			}
		case extracteditem.FieldPriceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field price_type", values[i])
			} else if value.Valid {
				_m.PriceType = value.String
			}
		case extracteditem.FieldPriceValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price_value", values[i])
			} else if value.Valid {
				_m.PriceValue = new(float64)
				*_m.PriceValue = value.Float64
			}
		case extracteditem.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case extracteditem.FieldPage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page", values[i])
			} else if value.Valid {
				_m.Page = int(value.Int64)
			}
		case extracteditem.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case extracteditem.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case extracteditem.FieldBboxX:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bbox_x", values[i])
			} else if value.Valid {
				_m.BboxX = new(int)
				*_m.BboxX = int(value.Int64)
			}
		case extracteditem.FieldBboxY:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bbox_y", values[i])
			} else if value.Valid {
				_m.BboxY = new(int)
				*_m.BboxY = int(value.Int64)
			}
		case extracteditem.FieldBboxWidth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bbox_width", values[i])
			} else if value.Valid {
				_m.BboxWidth = new(int)
				*_m.BboxWidth = int(value.Int64)
			}
		case extracteditem.FieldBboxHeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bbox_height", values[i])
			} else if value.Valid {
				_m.BboxHeight = new(int)
				*_m.BboxHeight = int(value.Int64)
			}
		case extracteditem.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedItem.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPass queries the "pass" edge of the ExtractedItem entity.
func (_m *ExtractedItem) QueryPass() *ExtractionPassQuery {
	return NewExtractedItemClient(_m.config).QueryPass(_m)
}

// Update returns a builder for updating this ExtractedItem.
// Note that you need to call ExtractedItem.Unwrap() before calling this method if this ExtractedItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedItem) Update() *ExtractedItemUpdateOne {
	return NewExtractedItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedItem) Unwrap() *ExtractedItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedItem) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pass_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassID))
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
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	if v := _m.BboxX; v != nil {
		builder.WriteString("bbox_x=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BboxY; v != nil {
		builder.WriteString("bbox_y=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BboxWidth; v != nil {
		builder.WriteString("bbox_width=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BboxHeight; v != nil {
		builder.WriteString("bbox_height=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedItems is a parsable slice of ExtractedItem.
type ExtractedItems []*ExtractedItem
