// Code generated by ent, DO NOT EDIT.

package extractionpass

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/catalogkit/extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldDocumentID, v))
}

// PassNumber applies equality check predicate on the "pass_number" field. It's identical to PassNumberEQ.
func PassNumber(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldPassNumber, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldMethod, v))
}

// StartPage applies equality check predicate on the "start_page" field. It's identical to StartPageEQ.
func StartPage(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldStartPage, v))
}

// EndPage applies equality check predicate on the "end_page" field. It's identical to EndPageEQ.
func EndPage(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldEndPage, v))
}

// Dpi applies equality check predicate on the "dpi" field. It's identical to DpiEQ.
func Dpi(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldDpi, v))
}

// MinConfidence applies equality check predicate on the "min_confidence" field. It's identical to MinConfidenceEQ.
func MinConfidence(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldMinConfidence, v))
}

// ForceOcr applies equality check predicate on the "force_ocr" field. It's identical to ForceOcrEQ.
func ForceOcr(v bool) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldForceOcr, v))
}

// Debug applies equality check predicate on the "debug" field. It's identical to DebugEQ.
func Debug(v bool) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldDebug, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldStatus, v))
}

// ItemsExtracted applies equality check predicate on the "items_extracted" field. It's identical to ItemsExtractedEQ.
func ItemsExtracted(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldItemsExtracted, v))
}

// AvgConfidence applies equality check predicate on the "avg_confidence" field. It's identical to AvgConfidenceEQ.
func AvgConfidence(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldAvgConfidence, v))
}

// ProcessingTime applies equality check predicate on the "processing_time" field. It's identical to ProcessingTimeEQ.
func ProcessingTime(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldProcessingTime, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldFinishedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldDocumentID, vs...))
}

// PassNumberEQ applies the EQ predicate on the "pass_number" field.
func PassNumberEQ(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldPassNumber, v))
}

// PassNumberNEQ applies the NEQ predicate on the "pass_number" field.
func PassNumberNEQ(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldPassNumber, v))
}

// PassNumberIn applies the In predicate on the "pass_number" field.
func PassNumberIn(vs ...int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldPassNumber, vs...))
}

// PassNumberNotIn applies the NotIn predicate on the "pass_number" field.
func PassNumberNotIn(vs ...int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldPassNumber, vs...))
}

// PassNumberGT applies the GT predicate on the "pass_number" field.
func PassNumberGT(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldPassNumber, v))
}

// PassNumberGTE applies the GTE predicate on the "pass_number" field.
func PassNumberGTE(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldPassNumber, v))
}

// PassNumberLT applies the LT predicate on the "pass_number" field.
func PassNumberLT(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldPassNumber, v))
}

// PassNumberLTE applies the LTE predicate on the "pass_number" field.
func PassNumberLTE(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldPassNumber, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldContainsFold(FieldMethod, v))
}

// StartPageEQ applies the EQ predicate on the "start_page" field.
func StartPageEQ(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldStartPage, v))
}

// StartPageNEQ applies the NEQ predicate on the "start_page" field.
func StartPageNEQ(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldStartPage, v))
}

// StartPageIn applies the In predicate on the "start_page" field.
func StartPageIn(vs ...int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldStartPage, vs...))
}

// StartPageNotIn applies the NotIn predicate on the "start_page" field.
func StartPageNotIn(vs ...int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldStartPage, vs...))
}

// StartPageGT applies the GT predicate on the "start_page" field.
func StartPageGT(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldStartPage, v))
}

// StartPageGTE applies the GTE predicate on the "start_page" field.
func StartPageGTE(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldStartPage, v))
}

// StartPageLT applies the LT predicate on the "start_page" field.
func StartPageLT(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldStartPage, v))
}

// StartPageLTE applies the LTE predicate on the "start_page" field.
func StartPageLTE(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldStartPage, v))
}

// EndPageEQ applies the EQ predicate on the "end_page" field.
func EndPageEQ(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldEndPage, v))
}

// EndPageNEQ applies the NEQ predicate on the "end_page" field.
func EndPageNEQ(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldEndPage, v))
}

// EndPageIn applies the In predicate on the "end_page" field.
func EndPageIn(vs ...int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldEndPage, vs...))
}

// EndPageNotIn applies the NotIn predicate on the "end_page" field.
func EndPageNotIn(vs ...int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldEndPage, vs...))
}

// EndPageGT applies the GT predicate on the "end_page" field.
func EndPageGT(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldEndPage, v))
}

// EndPageGTE applies the GTE predicate on the "end_page" field.
func EndPageGTE(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldEndPage, v))
}

// EndPageLT applies the LT predicate on the "end_page" field.
func EndPageLT(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldEndPage, v))
}

// EndPageLTE applies the LTE predicate on the "end_page" field.
func EndPageLTE(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldEndPage, v))
}

// EndPageIsNil applies the IsNil predicate on the "end_page" field.
func EndPageIsNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIsNull(FieldEndPage))
}

// EndPageNotNil applies the NotNil predicate on the "end_page" field.
func EndPageNotNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotNull(FieldEndPage))
}

// DpiEQ applies the EQ predicate on the "dpi" field.
func DpiEQ(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldDpi, v))
}

// DpiNEQ applies the NEQ predicate on the "dpi" field.
func DpiNEQ(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldDpi, v))
}

// DpiIn applies the In predicate on the "dpi" field.
func DpiIn(vs ...int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldDpi, vs...))
}

// DpiNotIn applies the NotIn predicate on the "dpi" field.
func DpiNotIn(vs ...int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldDpi, vs...))
}

// DpiGT applies the GT predicate on the "dpi" field.
func DpiGT(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldDpi, v))
}

// DpiGTE applies the GTE predicate on the "dpi" field.
func DpiGTE(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldDpi, v))
}

// DpiLT applies the LT predicate on the "dpi" field.
func DpiLT(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldDpi, v))
}

// DpiLTE applies the LTE predicate on the "dpi" field.
func DpiLTE(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldDpi, v))
}

// MinConfidenceEQ applies the EQ predicate on the "min_confidence" field.
func MinConfidenceEQ(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldMinConfidence, v))
}

// MinConfidenceNEQ applies the NEQ predicate on the "min_confidence" field.
func MinConfidenceNEQ(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldMinConfidence, v))
}

// MinConfidenceIn applies the In predicate on the "min_confidence" field.
func MinConfidenceIn(vs ...float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldMinConfidence, vs...))
}

// MinConfidenceNotIn applies the NotIn predicate on the "min_confidence" field.
func MinConfidenceNotIn(vs ...float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldMinConfidence, vs...))
}

// MinConfidenceGT applies the GT predicate on the "min_confidence" field.
func MinConfidenceGT(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldMinConfidence, v))
}

// MinConfidenceGTE applies the GTE predicate on the "min_confidence" field.
func MinConfidenceGTE(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldMinConfidence, v))
}

// MinConfidenceLT applies the LT predicate on the "min_confidence" field.
func MinConfidenceLT(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldMinConfidence, v))
}

// MinConfidenceLTE applies the LTE predicate on the "min_confidence" field.
func MinConfidenceLTE(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldMinConfidence, v))
}

// ForceOcrEQ applies the EQ predicate on the "force_ocr" field.
func ForceOcrEQ(v bool) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldForceOcr, v))
}

// ForceOcrNEQ applies the NEQ predicate on the "force_ocr" field.
func ForceOcrNEQ(v bool) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldForceOcr, v))
}

// DebugEQ applies the EQ predicate on the "debug" field.
func DebugEQ(v bool) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldDebug, v))
}

// DebugNEQ applies the NEQ predicate on the "debug" field.
func DebugNEQ(v bool) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldDebug, v))
}

// PagesIsNil applies the IsNil predicate on the "pages" field.
func PagesIsNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIsNull(FieldPages))
}

// PagesNotNil applies the NotNil predicate on the "pages" field.
func PagesNotNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotNull(FieldPages))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldContainsFold(FieldStatus, v))
}

// ItemsExtractedEQ applies the EQ predicate on the "items_extracted" field.
func ItemsExtractedEQ(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldItemsExtracted, v))
}

// ItemsExtractedNEQ applies the NEQ predicate on the "items_extracted" field.
func ItemsExtractedNEQ(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldItemsExtracted, v))
}

// ItemsExtractedIn applies the In predicate on the "items_extracted" field.
func ItemsExtractedIn(vs ...int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldItemsExtracted, vs...))
}

// ItemsExtractedNotIn applies the NotIn predicate on the "items_extracted" field.
func ItemsExtractedNotIn(vs ...int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldItemsExtracted, vs...))
}

// ItemsExtractedGT applies the GT predicate on the "items_extracted" field.
func ItemsExtractedGT(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldItemsExtracted, v))
}

// ItemsExtractedGTE applies the GTE predicate on the "items_extracted" field.
func ItemsExtractedGTE(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldItemsExtracted, v))
}

// ItemsExtractedLT applies the LT predicate on the "items_extracted" field.
func ItemsExtractedLT(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldItemsExtracted, v))
}

// ItemsExtractedLTE applies the LTE predicate on the "items_extracted" field.
func ItemsExtractedLTE(v int) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldItemsExtracted, v))
}

// AvgConfidenceEQ applies the EQ predicate on the "avg_confidence" field.
func AvgConfidenceEQ(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldAvgConfidence, v))
}

// AvgConfidenceNEQ applies the NEQ predicate on the "avg_confidence" field.
func AvgConfidenceNEQ(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldAvgConfidence, v))
}

// AvgConfidenceIn applies the In predicate on the "avg_confidence" field.
func AvgConfidenceIn(vs ...float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldAvgConfidence, vs...))
}

// AvgConfidenceNotIn applies the NotIn predicate on the "avg_confidence" field.
func AvgConfidenceNotIn(vs ...float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldAvgConfidence, vs...))
}

// AvgConfidenceGT applies the GT predicate on the "avg_confidence" field.
func AvgConfidenceGT(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldAvgConfidence, v))
}

// AvgConfidenceGTE applies the GTE predicate on the "avg_confidence" field.
func AvgConfidenceGTE(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldAvgConfidence, v))
}

// AvgConfidenceLT applies the LT predicate on the "avg_confidence" field.
func AvgConfidenceLT(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldAvgConfidence, v))
}

// AvgConfidenceLTE applies the LTE predicate on the "avg_confidence" field.
func AvgConfidenceLTE(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldAvgConfidence, v))
}

// AvgConfidenceIsNil applies the IsNil predicate on the "avg_confidence" field.
func AvgConfidenceIsNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIsNull(FieldAvgConfidence))
}

// AvgConfidenceNotNil applies the NotNil predicate on the "avg_confidence" field.
func AvgConfidenceNotNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotNull(FieldAvgConfidence))
}

// ProcessingTimeEQ applies the EQ predicate on the "processing_time" field.
func ProcessingTimeEQ(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldProcessingTime, v))
}

// ProcessingTimeNEQ applies the NEQ predicate on the "processing_time" field.
func ProcessingTimeNEQ(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldProcessingTime, v))
}

// ProcessingTimeIn applies the In predicate on the "processing_time" field.
func ProcessingTimeIn(vs ...float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldProcessingTime, vs...))
}

// ProcessingTimeNotIn applies the NotIn predicate on the "processing_time" field.
func ProcessingTimeNotIn(vs ...float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldProcessingTime, vs...))
}

// ProcessingTimeGT applies the GT predicate on the "processing_time" field.
func ProcessingTimeGT(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldProcessingTime, v))
}

// ProcessingTimeGTE applies the GTE predicate on the "processing_time" field.
func ProcessingTimeGTE(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldProcessingTime, v))
}

// ProcessingTimeLT applies the LT predicate on the "processing_time" field.
func ProcessingTimeLT(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldProcessingTime, v))
}

// ProcessingTimeLTE applies the LTE predicate on the "processing_time" field.
func ProcessingTimeLTE(v float64) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldProcessingTime, v))
}

// ProcessingTimeIsNil applies the IsNil predicate on the "processing_time" field.
func ProcessingTimeIsNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIsNull(FieldProcessingTime))
}

// ProcessingTimeNotNil applies the NotNil predicate on the "processing_time" field.
func ProcessingTimeNotNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotNull(FieldProcessingTime))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.FieldNotNull(FieldFinishedAt))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ExtractionPass {
	return predicate.ExtractionPass(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ExtractionPass {
	return predicate.ExtractionPass(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.ExtractionPass {
	return predicate.ExtractionPass(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.ExtractedItem) predicate.ExtractionPass {
	return predicate.ExtractionPass(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionPass) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionPass) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionPass) predicate.ExtractionPass {
	return predicate.ExtractionPass(sql.NotPredicates(p))
}
