// Code generated by ent, DO NOT EDIT.

package extractionpass

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionpass type in the database.
	Label = "extraction_pass"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldPassNumber holds the string denoting the pass_number field in the database.
	FieldPassNumber = "pass_number"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldStartPage holds the string denoting the start_page field in the database.
	FieldStartPage = "start_page"
	// FieldEndPage holds the string denoting the end_page field in the database.
	FieldEndPage = "end_page"
	// FieldDpi holds the string denoting the dpi field in the database.
	FieldDpi = "dpi"
	// FieldMinConfidence holds the string denoting the min_confidence field in the database.
	FieldMinConfidence = "min_confidence"
	// FieldForceOcr holds the string denoting the force_ocr field in the database.
	FieldForceOcr = "force_ocr"
	// FieldDebug holds the string denoting the debug field in the database.
	FieldDebug = "debug"
	// FieldPages holds the string denoting the pages field in the database.
	FieldPages = "pages"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldItemsExtracted holds the string denoting the items_extracted field in the database.
	FieldItemsExtracted = "items_extracted"
	// FieldAvgConfidence holds the string denoting the avg_confidence field in the database.
	FieldAvgConfidence = "avg_confidence"
	// FieldProcessingTime holds the string denoting the processing_time field in the database.
	FieldProcessingTime = "processing_time"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// Table holds the table name of the extractionpass in the database.
	Table = "extraction_passes"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "extraction_passes"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "extracted_items"
	// ItemsInverseTable is the table name for the ExtractedItem entity.
	// It exists in this package in order to avoid circular dependency with the "extracteditem" package.
	ItemsInverseTable = "extracted_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "pass_id"
)

// Columns holds all SQL columns for extractionpass fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldPassNumber,
	FieldMethod,
	FieldStartPage,
	FieldEndPage,
	FieldDpi,
	FieldMinConfidence,
	FieldForceOcr,
	FieldDebug,
	FieldPages,
	FieldStatus,
	FieldItemsExtracted,
	FieldAvgConfidence,
	FieldProcessingTime,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PassNumberValidator is a validator for the "pass_number" field. It is called by the builders before save.
	PassNumberValidator func(int) error
	// MethodValidator is a validator for the "method" field. It is called by the builders before save.
	MethodValidator func(string) error
	// DefaultStartPage holds the default value on creation for the "start_page" field.
	DefaultStartPage int
	// StartPageValidator is a validator for the "start_page" field. It is called by the builders before save.
	StartPageValidator func(int) error
	// DefaultDpi holds the default value on creation for the "dpi" field.
	DefaultDpi int
	// DefaultMinConfidence holds the default value on creation for the "min_confidence" field.
	DefaultMinConfidence float64
	// DefaultForceOcr holds the default value on creation for the "force_ocr" field.
	DefaultForceOcr bool
	// DefaultDebug holds the default value on creation for the "debug" field.
	DefaultDebug bool
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultItemsExtracted holds the default value on creation for the "items_extracted" field.
	DefaultItemsExtracted int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionPass queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByPassNumber orders the results by the pass_number field.
func ByPassNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassNumber, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByStartPage orders the results by the start_page field.
func ByStartPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartPage, opts...).ToFunc()
}

// ByEndPage orders the results by the end_page field.
func ByEndPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndPage, opts...).ToFunc()
}

// ByDpi orders the results by the dpi field.
func ByDpi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDpi, opts...).ToFunc()
}

// ByMinConfidence orders the results by the min_confidence field.
func ByMinConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinConfidence, opts...).ToFunc()
}

// ByForceOcr orders the results by the force_ocr field.
func ByForceOcr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForceOcr, opts...).ToFunc()
}

// ByDebug orders the results by the debug field.
func ByDebug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDebug, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByItemsExtracted orders the results by the items_extracted field.
func ByItemsExtracted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsExtracted, opts...).ToFunc()
}

// ByAvgConfidence orders the results by the avg_confidence field.
func ByAvgConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgConfidence, opts...).ToFunc()
}

// ByProcessingTime orders the results by the processing_time field.
func ByProcessingTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTime, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
