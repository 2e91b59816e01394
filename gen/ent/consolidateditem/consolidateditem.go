// Code generated by ent, DO NOT EDIT.

package consolidateditem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the consolidateditem type in the database.
	Label = "consolidated_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldBrandCode holds the string denoting the brand_code field in the database.
	FieldBrandCode = "brand_code"
	// FieldPartNumber holds the string denoting the part_number field in the database.
	FieldPartNumber = "part_number"
	// FieldPriceType holds the string denoting the price_type field in the database.
	FieldPriceType = "price_type"
	// FieldPriceValue holds the string denoting the price_value field in the database.
	FieldPriceValue = "price_value"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldPage holds the string denoting the page field in the database.
	FieldPage = "page"
	// FieldAvgConfidence holds the string denoting the avg_confidence field in the database.
	FieldAvgConfidence = "avg_confidence"
	// FieldSourceCount holds the string denoting the source_count field in the database.
	FieldSourceCount = "source_count"
	// FieldContributingItemIds holds the string denoting the contributing_item_ids field in the database.
	FieldContributingItemIds = "contributing_item_ids"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the consolidateditem in the database.
	Table = "consolidated_items"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "consolidated_items"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for consolidateditem fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldBrandCode,
	FieldPartNumber,
	FieldPriceType,
	FieldPriceValue,
	FieldCurrency,
	FieldPage,
	FieldAvgConfidence,
	FieldSourceCount,
	FieldContributingItemIds,
	FieldCreatedAt,
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
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// PageValidator is a validator for the "page" field. It is called by the builders before save.
	PageValidator func(int) error
	// DefaultAvgConfidence holds the default value on creation for the "avg_confidence" field.
	DefaultAvgConfidence float64
	// DefaultSourceCount holds the default value on creation for the "source_count" field.
	DefaultSourceCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ConsolidatedItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByBrandCode orders the results by the brand_code field.
func ByBrandCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandCode, opts...).ToFunc()
}

// ByPartNumber orders the results by the part_number field.
func ByPartNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartNumber, opts...).ToFunc()
}

// ByPriceType orders the results by the price_type field.
func ByPriceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceType, opts...).ToFunc()
}

// ByPriceValue orders the results by the price_value field.
func ByPriceValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceValue, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByPage orders the results by the page field.
func ByPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPage, opts...).ToFunc()
}

// ByAvgConfidence orders the results by the avg_confidence field.
func ByAvgConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgConfidence, opts...).ToFunc()
}

// BySourceCount orders the results by the source_count field.
func BySourceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
