// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldSourcePath holds the string denoting the source_path field in the database.
	FieldSourcePath = "source_path"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldPassSeq holds the string denoting the pass_seq field in the database.
	FieldPassSeq = "pass_seq"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// EdgePasses holds the string denoting the passes edge name in mutations.
	EdgePasses = "passes"
	// EdgeConsolidatedItems holds the string denoting the consolidated_items edge name in mutations.
	EdgeConsolidatedItems = "consolidated_items"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// PassesTable is the table that holds the passes relation/edge.
	PassesTable = "extraction_passes"
	// PassesInverseTable is the table name for the ExtractionPass entity.
	// It exists in this package in order to avoid circular dependency with the "extractionpass" package.
	PassesInverseTable = "extraction_passes"
	// PassesColumn is the table column denoting the passes relation/edge.
	PassesColumn = "document_id"
	// ConsolidatedItemsTable is the table that holds the consolidated_items relation/edge.
	ConsolidatedItemsTable = "consolidated_items"
	// ConsolidatedItemsInverseTable is the table name for the ConsolidatedItem entity.
	// It exists in this package in order to avoid circular dependency with the "consolidateditem" package.
	ConsolidatedItemsInverseTable = "consolidated_items"
	// ConsolidatedItemsColumn is the table column denoting the consolidated_items relation/edge.
	ConsolidatedItemsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldContentHash,
	FieldSourcePath,
	FieldPageCount,
	FieldPassSeq,
	FieldUploadedAt,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func([]byte) error
	// SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	SourcePathValidator func(string) error
	// PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	PageCountValidator func(int) error
	// DefaultPassSeq holds the default value on creation for the "pass_seq" field.
	DefaultPassSeq int
	// PassSeqValidator is a validator for the "pass_seq" field. It is called by the builders before save.
	PassSeqValidator func(int) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// BySourcePath orders the results by the source_path field.
func BySourcePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePath, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByPassSeq orders the results by the pass_seq field.
func ByPassSeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassSeq, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByPassesCount orders the results by passes count.
func ByPassesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPassesStep(), opts...)
	}
}

// ByPasses orders the results by passes terms.
func ByPasses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPassesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByConsolidatedItemsCount orders the results by consolidated_items count.
func ByConsolidatedItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConsolidatedItemsStep(), opts...)
	}
}

// ByConsolidatedItems orders the results by consolidated_items terms.
func ByConsolidatedItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConsolidatedItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPassesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PassesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PassesTable, PassesColumn),
	)
}
func newConsolidatedItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConsolidatedItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConsolidatedItemsTable, ConsolidatedItemsColumn),
	)
}
