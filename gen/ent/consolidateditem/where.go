// Code generated by ent, DO NOT EDIT.

package consolidateditem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/catalogkit/extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldDocumentID, v))
}

// BrandCode applies equality check predicate on the "brand_code" field. It's identical to BrandCodeEQ.
func BrandCode(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldBrandCode, v))
}

// PartNumber applies equality check predicate on the "part_number" field. It's identical to PartNumberEQ.
func PartNumber(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldPartNumber, v))
}

// PriceType applies equality check predicate on the "price_type" field. It's identical to PriceTypeEQ.
func PriceType(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldPriceType, v))
}

// PriceValue applies equality check predicate on the "price_value" field. It's identical to PriceValueEQ.
func PriceValue(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldPriceValue, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldCurrency, v))
}

// Page applies equality check predicate on the "page" field. It's identical to PageEQ.
func Page(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldPage, v))
}

// AvgConfidence applies equality check predicate on the "avg_confidence" field. It's identical to AvgConfidenceEQ.
func AvgConfidence(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldAvgConfidence, v))
}

// SourceCount applies equality check predicate on the "source_count" field. It's identical to SourceCountEQ.
func SourceCount(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldSourceCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotIn(FieldDocumentID, vs...))
}

// BrandCodeEQ applies the EQ predicate on the "brand_code" field.
func BrandCodeEQ(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldBrandCode, v))
}

// BrandCodeNEQ applies the NEQ predicate on the "brand_code" field.
func BrandCodeNEQ(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNEQ(FieldBrandCode, v))
}

// BrandCodeIn applies the In predicate on the "brand_code" field.
func BrandCodeIn(vs ...string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIn(FieldBrandCode, vs...))
}

// BrandCodeNotIn applies the NotIn predicate on the "brand_code" field.
func BrandCodeNotIn(vs ...string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotIn(FieldBrandCode, vs...))
}

// BrandCodeGT applies the GT predicate on the "brand_code" field.
func BrandCodeGT(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGT(FieldBrandCode, v))
}

// BrandCodeGTE applies the GTE predicate on the "brand_code" field.
func BrandCodeGTE(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGTE(FieldBrandCode, v))
}

// BrandCodeLT applies the LT predicate on the "brand_code" field.
func BrandCodeLT(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLT(FieldBrandCode, v))
}

// BrandCodeLTE applies the LTE predicate on the "brand_code" field.
func BrandCodeLTE(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLTE(FieldBrandCode, v))
}

// BrandCodeContains applies the Contains predicate on the "brand_code" field.
func BrandCodeContains(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldContains(FieldBrandCode, v))
}

// BrandCodeHasPrefix applies the HasPrefix predicate on the "brand_code" field.
func BrandCodeHasPrefix(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldHasPrefix(FieldBrandCode, v))
}

// BrandCodeHasSuffix applies the HasSuffix predicate on the "brand_code" field.
func BrandCodeHasSuffix(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldHasSuffix(FieldBrandCode, v))
}

// BrandCodeIsNil applies the IsNil predicate on the "brand_code" field.
func BrandCodeIsNil() predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIsNull(FieldBrandCode))
}

// BrandCodeNotNil applies the NotNil predicate on the "brand_code" field.
func BrandCodeNotNil() predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotNull(FieldBrandCode))
}

// BrandCodeEqualFold applies the EqualFold predicate on the "brand_code" field.
func BrandCodeEqualFold(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEqualFold(FieldBrandCode, v))
}

// BrandCodeContainsFold applies the ContainsFold predicate on the "brand_code" field.
func BrandCodeContainsFold(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldContainsFold(FieldBrandCode, v))
}

// PartNumberEQ applies the EQ predicate on the "part_number" field.
func PartNumberEQ(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldPartNumber, v))
}

// PartNumberNEQ applies the NEQ predicate on the "part_number" field.
func PartNumberNEQ(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNEQ(FieldPartNumber, v))
}

// PartNumberIn applies the In predicate on the "part_number" field.
func PartNumberIn(vs ...string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIn(FieldPartNumber, vs...))
}

// PartNumberNotIn applies the NotIn predicate on the "part_number" field.
func PartNumberNotIn(vs ...string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotIn(FieldPartNumber, vs...))
}

// PartNumberGT applies the GT predicate on the "part_number" field.
func PartNumberGT(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGT(FieldPartNumber, v))
}

// PartNumberGTE applies the GTE predicate on the "part_number" field.
func PartNumberGTE(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGTE(FieldPartNumber, v))
}

// PartNumberLT applies the LT predicate on the "part_number" field.
func PartNumberLT(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLT(FieldPartNumber, v))
}

// PartNumberLTE applies the LTE predicate on the "part_number" field.
func PartNumberLTE(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLTE(FieldPartNumber, v))
}

// PartNumberContains applies the Contains predicate on the "part_number" field.
func PartNumberContains(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldContains(FieldPartNumber, v))
}

// PartNumberHasPrefix applies the HasPrefix predicate on the "part_number" field.
func PartNumberHasPrefix(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldHasPrefix(FieldPartNumber, v))
}

// PartNumberHasSuffix applies the HasSuffix predicate on the "part_number" field.
func PartNumberHasSuffix(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldHasSuffix(FieldPartNumber, v))
}

// PartNumberIsNil applies the IsNil predicate on the "part_number" field.
func PartNumberIsNil() predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIsNull(FieldPartNumber))
}

// PartNumberNotNil applies the NotNil predicate on the "part_number" field.
func PartNumberNotNil() predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotNull(FieldPartNumber))
}

// PartNumberEqualFold applies the EqualFold predicate on the "part_number" field.
func PartNumberEqualFold(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEqualFold(FieldPartNumber, v))
}

// PartNumberContainsFold applies the ContainsFold predicate on the "part_number" field.
func PartNumberContainsFold(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldContainsFold(FieldPartNumber, v))
}

// PriceTypeEQ applies the EQ predicate on the "price_type" field.
func PriceTypeEQ(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldPriceType, v))
}

// PriceTypeNEQ applies the NEQ predicate on the "price_type" field.
func PriceTypeNEQ(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNEQ(FieldPriceType, v))
}

// PriceTypeIn applies the In predicate on the "price_type" field.
func PriceTypeIn(vs ...string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIn(FieldPriceType, vs...))
}

// PriceTypeNotIn applies the NotIn predicate on the "price_type" field.
func PriceTypeNotIn(vs ...string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotIn(FieldPriceType, vs...))
}

// PriceTypeGT applies the GT predicate on the "price_type" field.
func PriceTypeGT(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGT(FieldPriceType, v))
}

// PriceTypeGTE applies the GTE predicate on the "price_type" field.
func PriceTypeGTE(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGTE(FieldPriceType, v))
}

// PriceTypeLT applies the LT predicate on the "price_type" field.
func PriceTypeLT(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLT(FieldPriceType, v))
}

// PriceTypeLTE applies the LTE predicate on the "price_type" field.
func PriceTypeLTE(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLTE(FieldPriceType, v))
}

// PriceTypeContains applies the Contains predicate on the "price_type" field.
func PriceTypeContains(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldContains(FieldPriceType, v))
}

// PriceTypeHasPrefix applies the HasPrefix predicate on the "price_type" field.
func PriceTypeHasPrefix(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldHasPrefix(FieldPriceType, v))
}

// PriceTypeHasSuffix applies the HasSuffix predicate on the "price_type" field.
func PriceTypeHasSuffix(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldHasSuffix(FieldPriceType, v))
}

// PriceTypeIsNil applies the IsNil predicate on the "price_type" field.
func PriceTypeIsNil() predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIsNull(FieldPriceType))
}

// PriceTypeNotNil applies the NotNil predicate on the "price_type" field.
func PriceTypeNotNil() predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotNull(FieldPriceType))
}

// PriceTypeEqualFold applies the EqualFold predicate on the "price_type" field.
func PriceTypeEqualFold(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEqualFold(FieldPriceType, v))
}

// PriceTypeContainsFold applies the ContainsFold predicate on the "price_type" field.
func PriceTypeContainsFold(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldContainsFold(FieldPriceType, v))
}

// PriceValueEQ applies the EQ predicate on the "price_value" field.
func PriceValueEQ(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldPriceValue, v))
}

// PriceValueNEQ applies the NEQ predicate on the "price_value" field.
func PriceValueNEQ(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNEQ(FieldPriceValue, v))
}

// PriceValueIn applies the In predicate on the "price_value" field.
func PriceValueIn(vs ...float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIn(FieldPriceValue, vs...))
}

// PriceValueNotIn applies the NotIn predicate on the "price_value" field.
func PriceValueNotIn(vs ...float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotIn(FieldPriceValue, vs...))
}

// PriceValueGT applies the GT predicate on the "price_value" field.
func PriceValueGT(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGT(FieldPriceValue, v))
}

// PriceValueGTE applies the GTE predicate on the "price_value" field.
func PriceValueGTE(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGTE(FieldPriceValue, v))
}

// PriceValueLT applies the LT predicate on the "price_value" field.
func PriceValueLT(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLT(FieldPriceValue, v))
}

// PriceValueLTE applies the LTE predicate on the "price_value" field.
func PriceValueLTE(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLTE(FieldPriceValue, v))
}

// PriceValueIsNil applies the IsNil predicate on the "price_value" field.
func PriceValueIsNil() predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIsNull(FieldPriceValue))
}

// PriceValueNotNil applies the NotNil predicate on the "price_value" field.
func PriceValueNotNil() predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotNull(FieldPriceValue))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldContainsFold(FieldCurrency, v))
}

// PageEQ applies the EQ predicate on the "page" field.
func PageEQ(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldPage, v))
}

// PageNEQ applies the NEQ predicate on the "page" field.
func PageNEQ(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNEQ(FieldPage, v))
}

// PageIn applies the In predicate on the "page" field.
func PageIn(vs ...int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIn(FieldPage, vs...))
}

// PageNotIn applies the NotIn predicate on the "page" field.
func PageNotIn(vs ...int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotIn(FieldPage, vs...))
}

// PageGT applies the GT predicate on the "page" field.
func PageGT(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGT(FieldPage, v))
}

// PageGTE applies the GTE predicate on the "page" field.
func PageGTE(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGTE(FieldPage, v))
}

// PageLT applies the LT predicate on the "page" field.
func PageLT(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLT(FieldPage, v))
}

// PageLTE applies the LTE predicate on the "page" field.
func PageLTE(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLTE(FieldPage, v))
}

// AvgConfidenceEQ applies the EQ predicate on the "avg_confidence" field.
func AvgConfidenceEQ(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldAvgConfidence, v))
}

// AvgConfidenceNEQ applies the NEQ predicate on the "avg_confidence" field.
func AvgConfidenceNEQ(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNEQ(FieldAvgConfidence, v))
}

// AvgConfidenceIn applies the In predicate on the "avg_confidence" field.
func AvgConfidenceIn(vs ...float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIn(FieldAvgConfidence, vs...))
}

// AvgConfidenceNotIn applies the NotIn predicate on the "avg_confidence" field.
func AvgConfidenceNotIn(vs ...float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotIn(FieldAvgConfidence, vs...))
}

// AvgConfidenceGT applies the GT predicate on the "avg_confidence" field.
func AvgConfidenceGT(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGT(FieldAvgConfidence, v))
}

// AvgConfidenceGTE applies the GTE predicate on the "avg_confidence" field.
func AvgConfidenceGTE(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGTE(FieldAvgConfidence, v))
}

// AvgConfidenceLT applies the LT predicate on the "avg_confidence" field.
func AvgConfidenceLT(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLT(FieldAvgConfidence, v))
}

// AvgConfidenceLTE applies the LTE predicate on the "avg_confidence" field.
func AvgConfidenceLTE(v float64) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLTE(FieldAvgConfidence, v))
}

// SourceCountEQ applies the EQ predicate on the "source_count" field.
func SourceCountEQ(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldSourceCount, v))
}

// SourceCountNEQ applies the NEQ predicate on the "source_count" field.
func SourceCountNEQ(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNEQ(FieldSourceCount, v))
}

// SourceCountIn applies the In predicate on the "source_count" field.
func SourceCountIn(vs ...int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIn(FieldSourceCount, vs...))
}

// SourceCountNotIn applies the NotIn predicate on the "source_count" field.
func SourceCountNotIn(vs ...int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotIn(FieldSourceCount, vs...))
}

// SourceCountGT applies the GT predicate on the "source_count" field.
func SourceCountGT(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGT(FieldSourceCount, v))
}

// SourceCountGTE applies the GTE predicate on the "source_count" field.
func SourceCountGTE(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGTE(FieldSourceCount, v))
}

// SourceCountLT applies the LT predicate on the "source_count" field.
func SourceCountLT(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLT(FieldSourceCount, v))
}

// SourceCountLTE applies the LTE predicate on the "source_count" field.
func SourceCountLTE(v int) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLTE(FieldSourceCount, v))
}

// ContributingItemIdsIsNil applies the IsNil predicate on the "contributing_item_ids" field.
func ContributingItemIdsIsNil() predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIsNull(FieldContributingItemIds))
}

// ContributingItemIdsNotNil applies the NotNil predicate on the "contributing_item_ids" field.
func ContributingItemIdsNotNil() predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotNull(FieldContributingItemIds))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConsolidatedItem) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConsolidatedItem) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConsolidatedItem) predicate.ConsolidatedItem {
	return predicate.ConsolidatedItem(sql.NotPredicates(p))
}
