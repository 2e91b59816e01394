// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/catalogkit/extractor/gen/ent/document"
	"github.com/catalogkit/extractor/gen/ent/extractionpass"
	"github.com/google/uuid"
)

// ExtractionPass is the model entity for the ExtractionPass schema.
type ExtractionPass struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// PassNumber holds the value of the "pass_number" field.
	PassNumber int `json:"pass_number,omitempty"`
	// Method holds the value of the "method" field.
	Method string `json:"method,omitempty"`
	// StartPage holds the value of the "start_page" field.
	StartPage int `json:"start_page,omitempty"`
	// EndPage holds the value of the "end_page" field.
	EndPage *int `json:"end_page,omitempty"`
	// Dpi holds the value of the "dpi" field.
	Dpi int `json:"dpi,omitempty"`
	// MinConfidence holds the value of the "min_confidence" field.
	MinConfidence float64 `json:"min_confidence,omitempty"`
	// ForceOcr holds the value of the "force_ocr" field.
	ForceOcr bool `json:"force_ocr,omitempty"`
	// Debug holds the value of the "debug" field.
	Debug bool `json:"debug,omitempty"`
	// Pages holds the value of the "pages" field.
	Pages []int `json:"pages,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ItemsExtracted holds the value of the "items_extracted" field.
	ItemsExtracted int `json:"items_extracted,omitempty"`
	// AvgConfidence holds the value of the "avg_confidence" field.
	AvgConfidence *float64 `json:"avg_confidence,omitempty"`
	// ProcessingTime holds the value of the "processing_time" field.
	ProcessingTime *float64 `json:"processing_time,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionPassQuery when eager-loading is set.
	Edges        ExtractionPassEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionPassEdges holds the relations/edges for other nodes in the graph.
type ExtractionPassEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// Items holds the value of the items edge.
	Items []*ExtractedItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionPassEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractionPassEdges) ItemsOrErr() ([]*ExtractedItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionPass) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionpass.FieldPages:
			values[i] = new([]byte)
		case extractionpass.FieldForceOcr, extractionpass.FieldDebug:
			values[i] = new(sql.NullBool)
		case extractionpass.FieldMinConfidence, extractionpass.FieldAvgConfidence, extractionpass.FieldProcessingTime:
			values[i] = new(sql.NullFloat64)
		case extractionpass.FieldPassNumber, extractionpass.FieldStartPage, extractionpass.FieldEndPage, extractionpass.FieldDpi, extractionpass.FieldItemsExtracted:
			values[i] = new(sql.NullInt64)
		case extractionpass.FieldMethod, extractionpass.FieldStatus, extractionpass.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case extractionpass.FieldCreatedAt, extractionpass.FieldStartedAt, extractionpass.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case extractionpass.FieldID, extractionpass.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionPass fields.
func (_m *ExtractionPass) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionpass.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionpass.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case extractionpass.FieldPassNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pass_number", values[i])
			} else if value.Valid {
				_m.PassNumber = int(value.Int64)
			}
		case extractionpass.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = value.String
			}
		case extractionpass.FieldStartPage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_page", values[i])
			} else if value.Valid {
				_m.StartPage = int(value.Int64)
			}
		case extractionpass.FieldEndPage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_page", values[i])
			} else if value.Valid {
				_m.EndPage = new(int)
				*_m.EndPage = int(value.Int64)
			}
		case extractionpass.FieldDpi:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dpi", values[i])
			} else if value.Valid {
				_m.Dpi = int(value.Int64)
			}
		case extractionpass.FieldMinConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_confidence", values[i])
			} else if value.Valid {
				_m.MinConfidence = value.Float64
			}
		case extractionpass.FieldForceOcr:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field force_ocr", values[i])
			} else if value.Valid {
				_m.ForceOcr = value.Bool
			}
		case extractionpass.FieldDebug:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field debug", values[i])
			} else if value.Valid {
				_m.Debug = value.Bool
			}
		case extractionpass.FieldPages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Pages); err != nil {
					return fmt.Errorf("unmarshal field pages: %w", err)
				}
			}
		case extractionpass.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extractionpass.FieldItemsExtracted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field items_extracted", values[i])
			} else if value.Valid {
				_m.ItemsExtracted = int(value.Int64)
			}
		case extractionpass.FieldAvgConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_confidence", values[i])
			} else if value.Valid {
				_m.AvgConfidence = new(float64)
				*_m.AvgConfidence = value.Float64
			}
		case extractionpass.FieldProcessingTime:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time", values[i])
			} else if value.Valid {
				_m.ProcessingTime = new(float64)
				*_m.ProcessingTime = value.Float64
			}
		case extractionpass.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case extractionpass.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extractionpass.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case extractionpass.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionPass.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionPass) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ExtractionPass entity.
func (_m *ExtractionPass) QueryDocument() *DocumentQuery {
	return NewExtractionPassClient(_m.config).QueryDocument(_m)
}

// QueryItems queries the "items" edge of the ExtractionPass entity.
func (_m *ExtractionPass) QueryItems() *ExtractedItemQuery {
	return NewExtractionPassClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this ExtractionPass.
// Note that you need to call ExtractionPass.Unwrap() before calling this method if this ExtractionPass
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionPass) Update() *ExtractionPassUpdateOne {
	return NewExtractionPassClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionPass entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionPass) Unwrap() *ExtractionPass {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionPass is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionPass) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionPass(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("pass_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassNumber))
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(_m.Method)
	builder.WriteString(", ")
	builder.WriteString("start_page=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartPage))
	builder.WriteString(", ")
	if v := _m.EndPage; v != nil {
		builder.WriteString("end_page=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("dpi=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dpi))
	builder.WriteString(", ")
	builder.WriteString("min_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinConfidence))
	builder.WriteString(", ")
	builder.WriteString("force_ocr=")
	builder.WriteString(fmt.Sprintf("%v", _m.ForceOcr))
	builder.WriteString(", ")
	builder.WriteString("debug=")
	builder.WriteString(fmt.Sprintf("%v", _m.Debug))
	builder.WriteString(", ")
	builder.WriteString("pages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pages))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("items_extracted=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemsExtracted))
	builder.WriteString(", ")
	if v := _m.AvgConfidence; v != nil {
		builder.WriteString("avg_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProcessingTime; v != nil {
		builder.WriteString("processing_time=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionPasses is a parsable slice of ExtractionPass.
type ExtractionPasses []*ExtractionPass
