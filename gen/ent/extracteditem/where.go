// Code generated by ent, DO NOT EDIT.

package extracteditem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/catalogkit/extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldID, id))
}

// PassID applies equality check predicate on the "pass_id" field. It's identical to PassIDEQ.
func PassID(v uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldPassID, v))
}

// BrandCode applies equality check predicate on the "brand_code" field. It's identical to BrandCodeEQ.
func BrandCode(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldBrandCode, v))
}

// PartNumber applies equality check predicate on the "part_number" field. It's identical to PartNumberEQ.
func PartNumber(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldPartNumber, v))
}

// PriceType applies equality check predicate on the "price_type" field. It's identical to PriceTypeEQ.
func PriceType(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldPriceType, v))
}

// PriceValue applies equality check predicate on the "price_value" field. It's identical to PriceValueEQ.
func PriceValue(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldPriceValue, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldCurrency, v))
}

// Page applies equality check predicate on the "page" field. It's identical to PageEQ.
func Page(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldPage, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldConfidence, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldRawText, v))
}

// BboxX applies equality check predicate on the "bbox_x" field. It's identical to BboxXEQ.
func BboxX(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldBboxX, v))
}

// BboxY applies equality check predicate on the "bbox_y" field. It's identical to BboxYEQ.
func BboxY(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldBboxY, v))
}

// BboxWidth applies equality check predicate on the "bbox_width" field. It's identical to BboxWidthEQ.
func BboxWidth(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldBboxWidth, v))
}

// BboxHeight applies equality check predicate on the "bbox_height" field. It's identical to BboxHeightEQ.
func BboxHeight(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldBboxHeight, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldCreatedAt, v))
}

// PassIDEQ applies the EQ predicate on the "pass_id" field.
func PassIDEQ(v uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldPassID, v))
}

// PassIDNEQ applies the NEQ predicate on the "pass_id" field.
func PassIDNEQ(v uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldPassID, v))
}

// PassIDIn applies the In predicate on the "pass_id" field.
func PassIDIn(vs ...uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldPassID, vs...))
}

// PassIDNotIn applies the NotIn predicate on the "pass_id" field.
func PassIDNotIn(vs ...uuid.UUID) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldPassID, vs...))
}

// BrandCodeEQ applies the EQ predicate on the "brand_code" field.
func BrandCodeEQ(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldBrandCode, v))
}

// BrandCodeNEQ applies the NEQ predicate on the "brand_code" field.
func BrandCodeNEQ(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldBrandCode, v))
}

// BrandCodeIn applies the In predicate on the "brand_code" field.
func BrandCodeIn(vs ...string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldBrandCode, vs...))
}

// BrandCodeNotIn applies the NotIn predicate on the "brand_code" field.
func BrandCodeNotIn(vs ...string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldBrandCode, vs...))
}

// BrandCodeGT applies the GT predicate on the "brand_code" field.
func BrandCodeGT(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldBrandCode, v))
}

// BrandCodeGTE applies the GTE predicate on the "brand_code" field.
func BrandCodeGTE(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldBrandCode, v))
}

// BrandCodeLT applies the LT predicate on the "brand_code" field.
func BrandCodeLT(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldBrandCode, v))
}

// BrandCodeLTE applies the LTE predicate on the "brand_code" field.
func BrandCodeLTE(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldBrandCode, v))
}

// BrandCodeContains applies the Contains predicate on the "brand_code" field.
func BrandCodeContains(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldContains(FieldBrandCode, v))
}

// BrandCodeHasPrefix applies the HasPrefix predicate on the "brand_code" field.
func BrandCodeHasPrefix(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldHasPrefix(FieldBrandCode, v))
}

// BrandCodeHasSuffix applies the HasSuffix predicate on the "brand_code" field.
func BrandCodeHasSuffix(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldHasSuffix(FieldBrandCode, v))
}

// BrandCodeIsNil applies the IsNil predicate on the "brand_code" field.
func BrandCodeIsNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIsNull(FieldBrandCode))
}

// BrandCodeNotNil applies the NotNil predicate on the "brand_code" field.
func BrandCodeNotNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotNull(FieldBrandCode))
}

// BrandCodeEqualFold applies the EqualFold predicate on the "brand_code" field.
func BrandCodeEqualFold(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEqualFold(FieldBrandCode, v))
}

// BrandCodeContainsFold applies the ContainsFold predicate on the "brand_code" field.
func BrandCodeContainsFold(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldContainsFold(FieldBrandCode, v))
}

// PartNumberEQ applies the EQ predicate on the "part_number" field.
func PartNumberEQ(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldPartNumber, v))
}

// PartNumberNEQ applies the NEQ predicate on the "part_number" field.
func PartNumberNEQ(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldPartNumber, v))
}

// PartNumberIn applies the In predicate on the "part_number" field.
func PartNumberIn(vs ...string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldPartNumber, vs...))
}

// PartNumberNotIn applies the NotIn predicate on the "part_number" field.
func PartNumberNotIn(vs ...string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldPartNumber, vs...))
}

// PartNumberGT applies the GT predicate on the "part_number" field.
func PartNumberGT(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldPartNumber, v))
}

// PartNumberGTE applies the GTE predicate on the "part_number" field.
func PartNumberGTE(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldPartNumber, v))
}

// PartNumberLT applies the LT predicate on the "part_number" field.
func PartNumberLT(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldPartNumber, v))
}

// PartNumberLTE applies the LTE predicate on the "part_number" field.
func PartNumberLTE(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldPartNumber, v))
}

// PartNumberContains applies the Contains predicate on the "part_number" field.
func PartNumberContains(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldContains(FieldPartNumber, v))
}

// PartNumberHasPrefix applies the HasPrefix predicate on the "part_number" field.
func PartNumberHasPrefix(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldHasPrefix(FieldPartNumber, v))
}

// PartNumberHasSuffix applies the HasSuffix predicate on the "part_number" field.
func PartNumberHasSuffix(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldHasSuffix(FieldPartNumber, v))
}

// PartNumberIsNil applies the IsNil predicate on the "part_number" field.
func PartNumberIsNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIsNull(FieldPartNumber))
}

// PartNumberNotNil applies the NotNil predicate on the "part_number" field.
func PartNumberNotNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotNull(FieldPartNumber))
}

// PartNumberEqualFold applies the EqualFold predicate on the "part_number" field.
func PartNumberEqualFold(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEqualFold(FieldPartNumber, v))
}

// PartNumberContainsFold applies the ContainsFold predicate on the "part_number" field.
func PartNumberContainsFold(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldContainsFold(FieldPartNumber, v))
}

// PriceTypeEQ applies the EQ predicate on the "price_type" field.
func PriceTypeEQ(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldPriceType, v))
}

// PriceTypeNEQ applies the NEQ predicate on the "price_type" field.
func PriceTypeNEQ(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldPriceType, v))
}

// PriceTypeIn applies the In predicate on the "price_type" field.
func PriceTypeIn(vs ...string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldPriceType, vs...))
}

// PriceTypeNotIn applies the NotIn predicate on the "price_type" field.
func PriceTypeNotIn(vs ...string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldPriceType, vs...))
}

// PriceTypeGT applies the GT predicate on the "price_type" field.
func PriceTypeGT(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldPriceType, v))
}

// PriceTypeGTE applies the GTE predicate on the "price_type" field.
func PriceTypeGTE(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldPriceType, v))
}

// PriceTypeLT applies the LT predicate on the "price_type" field.
func PriceTypeLT(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldPriceType, v))
}

// PriceTypeLTE applies the LTE predicate on the "price_type" field.
func PriceTypeLTE(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldPriceType, v))
}

// PriceTypeContains applies the Contains predicate on the "price_type" field.
func PriceTypeContains(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldContains(FieldPriceType, v))
}

// PriceTypeHasPrefix applies the HasPrefix predicate on the "price_type" field.
func PriceTypeHasPrefix(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldHasPrefix(FieldPriceType, v))
}

// PriceTypeHasSuffix applies the HasSuffix predicate on the "price_type" field.
func PriceTypeHasSuffix(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldHasSuffix(FieldPriceType, v))
}

// PriceTypeIsNil applies the IsNil predicate on the "price_type" field.
func PriceTypeIsNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIsNull(FieldPriceType))
}

// PriceTypeNotNil applies the NotNil predicate on the "price_type" field.
func PriceTypeNotNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotNull(FieldPriceType))
}

// PriceTypeEqualFold applies the EqualFold predicate on the "price_type" field.
func PriceTypeEqualFold(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEqualFold(FieldPriceType, v))
}

// PriceTypeContainsFold applies the ContainsFold predicate on the "price_type" field.
func PriceTypeContainsFold(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldContainsFold(FieldPriceType, v))
}

// PriceValueEQ applies the EQ predicate on the "price_value" field.
func PriceValueEQ(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldPriceValue, v))
}

// PriceValueNEQ applies the NEQ predicate on the "price_value" field.
func PriceValueNEQ(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldPriceValue, v))
}

// PriceValueIn applies the In predicate on the "price_value" field.
func PriceValueIn(vs ...float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldPriceValue, vs...))
}

// PriceValueNotIn applies the NotIn predicate on the "price_value" field.
func PriceValueNotIn(vs ...float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldPriceValue, vs...))
}

// PriceValueGT applies the GT predicate on the "price_value" field.
func PriceValueGT(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldPriceValue, v))
}

// PriceValueGTE applies the GTE predicate on the "price_value" field.
func PriceValueGTE(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldPriceValue, v))
}

// PriceValueLT applies the LT predicate on the "price_value" field.
func PriceValueLT(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldPriceValue, v))
}

// PriceValueLTE applies the LTE predicate on the "price_value" field.
func PriceValueLTE(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldPriceValue, v))
}

// PriceValueIsNil applies the IsNil predicate on the "price_value" field.
func PriceValueIsNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIsNull(FieldPriceValue))
}

// PriceValueNotNil applies the NotNil predicate on the "price_value" field.
func PriceValueNotNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotNull(FieldPriceValue))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldContainsFold(FieldCurrency, v))
}

// PageEQ applies the EQ predicate on the "page" field.
func PageEQ(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldPage, v))
}

// PageNEQ applies the NEQ predicate on the "page" field.
func PageNEQ(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldPage, v))
}

// PageIn applies the In predicate on the "page" field.
func PageIn(vs ...int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldPage, vs...))
}

// PageNotIn applies the NotIn predicate on the "page" field.
func PageNotIn(vs ...int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldPage, vs...))
}

// PageGT applies the GT predicate on the "page" field.
func PageGT(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldPage, v))
}

// PageGTE applies the GTE predicate on the "page" field.
func PageGTE(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldPage, v))
}

// PageLT applies the LT predicate on the "page" field.
func PageLT(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldPage, v))
}

// PageLTE applies the LTE predicate on the "page" field.
func PageLTE(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldPage, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldConfidence, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldContainsFold(FieldRawText, v))
}

// BboxXEQ applies the EQ predicate on the "bbox_x" field.
func BboxXEQ(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldBboxX, v))
}

// BboxXNEQ applies the NEQ predicate on the "bbox_x" field.
func BboxXNEQ(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldBboxX, v))
}

// BboxXIn applies the In predicate on the "bbox_x" field.
func BboxXIn(vs ...int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldBboxX, vs...))
}

// BboxXNotIn applies the NotIn predicate on the "bbox_x" field.
func BboxXNotIn(vs ...int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldBboxX, vs...))
}

// BboxXGT applies the GT predicate on the "bbox_x" field.
func BboxXGT(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldBboxX, v))
}

// BboxXGTE applies the GTE predicate on the "bbox_x" field.
func BboxXGTE(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldBboxX, v))
}

// BboxXLT applies the LT predicate on the "bbox_x" field.
func BboxXLT(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldBboxX, v))
}

// BboxXLTE applies the LTE predicate on the "bbox_x" field.
func BboxXLTE(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldBboxX, v))
}

// BboxXIsNil applies the IsNil predicate on the "bbox_x" field.
func BboxXIsNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIsNull(FieldBboxX))
}

// BboxXNotNil applies the NotNil predicate on the "bbox_x" field.
func BboxXNotNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotNull(FieldBboxX))
}

// BboxYEQ applies the EQ predicate on the "bbox_y" field.
func BboxYEQ(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldBboxY, v))
}

// BboxYNEQ applies the NEQ predicate on the "bbox_y" field.
func BboxYNEQ(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldBboxY, v))
}

// BboxYIn applies the In predicate on the "bbox_y" field.
func BboxYIn(vs ...int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldBboxY, vs...))
}

// BboxYNotIn applies the NotIn predicate on the "bbox_y" field.
func BboxYNotIn(vs ...int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldBboxY, vs...))
}

// BboxYGT applies the GT predicate on the "bbox_y" field.
func BboxYGT(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldBboxY, v))
}

// BboxYGTE applies the GTE predicate on the "bbox_y" field.
func BboxYGTE(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldBboxY, v))
}

// BboxYLT applies the LT predicate on the "bbox_y" field.
func BboxYLT(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldBboxY, v))
}

// BboxYLTE applies the LTE predicate on the "bbox_y" field.
func BboxYLTE(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldBboxY, v))
}

// BboxYIsNil applies the IsNil predicate on the "bbox_y" field.
func BboxYIsNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIsNull(FieldBboxY))
}

// BboxYNotNil applies the NotNil predicate on the "bbox_y" field.
func BboxYNotNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotNull(FieldBboxY))
}

// BboxWidthEQ applies the EQ predicate on the "bbox_width" field.
func BboxWidthEQ(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldBboxWidth, v))
}

// BboxWidthNEQ applies the NEQ predicate on the "bbox_width" field.
func BboxWidthNEQ(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldBboxWidth, v))
}

// BboxWidthIn applies the In predicate on the "bbox_width" field.
func BboxWidthIn(vs ...int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldBboxWidth, vs...))
}

// BboxWidthNotIn applies the NotIn predicate on the "bbox_width" field.
func BboxWidthNotIn(vs ...int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldBboxWidth, vs...))
}

// BboxWidthGT applies the GT predicate on the "bbox_width" field.
func BboxWidthGT(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldBboxWidth, v))
}

// BboxWidthGTE applies the GTE predicate on the "bbox_width" field.
func BboxWidthGTE(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldBboxWidth, v))
}

// BboxWidthLT applies the LT predicate on the "bbox_width" field.
func BboxWidthLT(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldBboxWidth, v))
}

// BboxWidthLTE applies the LTE predicate on the "bbox_width" field.
func BboxWidthLTE(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldBboxWidth, v))
}

// BboxWidthIsNil applies the IsNil predicate on the "bbox_width" field.
func BboxWidthIsNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIsNull(FieldBboxWidth))
}

// BboxWidthNotNil applies the NotNil predicate on the "bbox_width" field.
func BboxWidthNotNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotNull(FieldBboxWidth))
}

// BboxHeightEQ applies the EQ predicate on the "bbox_height" field.
func BboxHeightEQ(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldBboxHeight, v))
}

// BboxHeightNEQ applies the NEQ predicate on the "bbox_height" field.
func BboxHeightNEQ(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldBboxHeight, v))
}

// BboxHeightIn applies the In predicate on the "bbox_height" field.
func BboxHeightIn(vs ...int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldBboxHeight, vs...))
}

// BboxHeightNotIn applies the NotIn predicate on the "bbox_height" field.
func BboxHeightNotIn(vs ...int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldBboxHeight, vs...))
}

// BboxHeightGT applies the GT predicate on the "bbox_height" field.
func BboxHeightGT(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldBboxHeight, v))
}

// BboxHeightGTE applies the GTE predicate on the "bbox_height" field.
func BboxHeightGTE(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldBboxHeight, v))
}

// BboxHeightLT applies the LT predicate on the "bbox_height" field.
func BboxHeightLT(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldBboxHeight, v))
}

// BboxHeightLTE applies the LTE predicate on the "bbox_height" field.
func BboxHeightLTE(v int) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldBboxHeight, v))
}

// BboxHeightIsNil applies the IsNil predicate on the "bbox_height" field.
func BboxHeightIsNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIsNull(FieldBboxHeight))
}

// BboxHeightNotNil applies the NotNil predicate on the "bbox_height" field.
func BboxHeightNotNil() predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotNull(FieldBboxHeight))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPass applies the HasEdge predicate on the "pass" edge.
func HasPass() predicate.ExtractedItem {
	return predicate.ExtractedItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PassTable, PassColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPassWith applies the HasEdge predicate on the "pass" edge with a given conditions (other predicates).
func HasPassWith(preds ...predicate.ExtractionPass) predicate.ExtractedItem {
	return predicate.ExtractedItem(func(s *sql.Selector) {
		step := newPassStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedItem) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedItem) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedItem) predicate.ExtractedItem {
	return predicate.ExtractedItem(sql.NotPredicates(p))
}
