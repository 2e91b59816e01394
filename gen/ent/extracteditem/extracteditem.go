// Code generated by ent, DO NOT EDIT.

package extracteditem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extracteditem type in the database.
	Label = "extracted_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPassID holds the string denoting the pass_id field in the database.
	FieldPassID = "pass_id"
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
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldBboxX holds the string denoting the bbox_x field in the database.
	FieldBboxX = "bbox_x"
	// FieldBboxY holds the string denoting the bbox_y field in the database.
	FieldBboxY = "bbox_y"
	// FieldBboxWidth holds the string denoting the bbox_width field in the database.
	FieldBboxWidth = "bbox_width"
	// FieldBboxHeight holds the string denoting the bbox_height field in the database.
	FieldBboxHeight = "bbox_height"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePass holds the string denoting the pass edge name in mutations.
	EdgePass = "pass"
	// Table holds the table name of the extracteditem in the database.
	Table = "extracted_items"
	// PassTable is the table that holds the pass relation/edge.
	PassTable = "extracted_items"
	// PassInverseTable is the table name for the ExtractionPass entity.
	// It exists in this package in order to avoid circular dependency with the "extractionpass" package.
	PassInverseTable = "extraction_passes"
	// PassColumn is the table column denoting the pass relation/edge.
	PassColumn = "pass_id"
)

// Columns holds all SQL columns for extracteditem fields.
var Columns = []string{
	FieldID,
	FieldPassID,
	FieldBrandCode,
	FieldPartNumber,
	FieldPriceType,
	FieldPriceValue,
	FieldCurrency,
	FieldPage,
	FieldConfidence,
	FieldRawText,
	FieldBboxX,
	FieldBboxY,
	FieldBboxWidth,
	FieldBboxHeight,
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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractedItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPassID orders the results by the pass_id field.
func ByPassID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassID, opts...).ToFunc()
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

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByBboxX orders the results by the bbox_x field.
func ByBboxX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBboxX, opts...).ToFunc()
}

// ByBboxY orders the results by the bbox_y field.
func ByBboxY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBboxY, opts...).ToFunc()
}

// ByBboxWidth orders the results by the bbox_width field.
func ByBboxWidth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBboxWidth, opts...).ToFunc()
}

// ByBboxHeight orders the results by the bbox_height field.
func ByBboxHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBboxHeight, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPassField orders the results by pass field.
func ByPassField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPassStep(), sql.OrderByField(field, opts...))
	}
}
func newPassStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PassInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PassTable, PassColumn),
	)
}
