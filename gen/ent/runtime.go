// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/catalogkit/extractor/db/ent/schema"
	"github.com/catalogkit/extractor/gen/ent/consolidateditem"
	"github.com/catalogkit/extractor/gen/ent/document"
	"github.com/catalogkit/extractor/gen/ent/extracteditem"
	"github.com/catalogkit/extractor/gen/ent/extractionpass"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	consolidateditemFields := schema.ConsolidatedItem{}.Fields()
	_ = consolidateditemFields
	// consolidateditemDescCurrency is the schema descriptor for currency field.
	consolidateditemDescCurrency := consolidateditemFields[6].Descriptor()
	// consolidateditem.DefaultCurrency holds the default value on creation for the currency field.
	consolidateditem.DefaultCurrency = consolidateditemDescCurrency.Default.(string)
	// consolidateditemDescPage is the schema descriptor for page field.
	consolidateditemDescPage := consolidateditemFields[7].Descriptor()
	// consolidateditem.PageValidator is a validator for the "page" field. It is called by the builders before save.
	consolidateditem.PageValidator = consolidateditemDescPage.Validators[0].(func(int) error)
	// consolidateditemDescAvgConfidence is the schema descriptor for avg_confidence field.
	consolidateditemDescAvgConfidence := consolidateditemFields[8].Descriptor()
	// consolidateditem.DefaultAvgConfidence holds the default value on creation for the avg_confidence field.
	consolidateditem.DefaultAvgConfidence = consolidateditemDescAvgConfidence.Default.(float64)
	// consolidateditemDescSourceCount is the schema descriptor for source_count field.
	consolidateditemDescSourceCount := consolidateditemFields[9].Descriptor()
	// consolidateditem.DefaultSourceCount holds the default value on creation for the source_count field.
	consolidateditem.DefaultSourceCount = consolidateditemDescSourceCount.Default.(int)
	// consolidateditemDescCreatedAt is the schema descriptor for created_at field.
	consolidateditemDescCreatedAt := consolidateditemFields[11].Descriptor()
	// consolidateditem.DefaultCreatedAt holds the default value on creation for the created_at field.
	consolidateditem.DefaultCreatedAt = consolidateditemDescCreatedAt.Default.(func() time.Time)
	// consolidateditemDescID is the schema descriptor for id field.
	consolidateditemDescID := consolidateditemFields[0].Descriptor()
	// consolidateditem.DefaultID holds the default value on creation for the id field.
	consolidateditem.DefaultID = consolidateditemDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[2].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[3].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescPageCount is the schema descriptor for page_count field.
	documentDescPageCount := documentFields[4].Descriptor()
	// document.PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	document.PageCountValidator = documentDescPageCount.Validators[0].(func(int) error)
	// documentDescPassSeq is the schema descriptor for pass_seq field.
	documentDescPassSeq := documentFields[5].Descriptor()
	// document.DefaultPassSeq holds the default value on creation for the pass_seq field.
	document.DefaultPassSeq = documentDescPassSeq.Default.(int)
	// document.PassSeqValidator is a validator for the "pass_seq" field. It is called by the builders before save.
	document.PassSeqValidator = documentDescPassSeq.Validators[0].(func(int) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[6].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extracteditemFields := schema.ExtractedItem{}.Fields()
	_ = extracteditemFields
	// extracteditemDescCurrency is the schema descriptor for currency field.
	extracteditemDescCurrency := extracteditemFields[6].Descriptor()
	// extracteditem.DefaultCurrency holds the default value on creation for the currency field.
	extracteditem.DefaultCurrency = extracteditemDescCurrency.Default.(string)
	// extracteditemDescPage is the schema descriptor for page field.
	extracteditemDescPage := extracteditemFields[7].Descriptor()
	// extracteditem.PageValidator is a validator for the "page" field. It is called by the builders before save.
	extracteditem.PageValidator = extracteditemDescPage.Validators[0].(func(int) error)
	// extracteditemDescConfidence is the schema descriptor for confidence field.
	extracteditemDescConfidence := extracteditemFields[8].Descriptor()
	// extracteditem.DefaultConfidence holds the default value on creation for the confidence field.
	extracteditem.DefaultConfidence = extracteditemDescConfidence.Default.(float64)
	// extracteditemDescCreatedAt is the schema descriptor for created_at field.
	extracteditemDescCreatedAt := extracteditemFields[14].Descriptor()
	// extracteditem.DefaultCreatedAt holds the default value on creation for the created_at field.
	extracteditem.DefaultCreatedAt = extracteditemDescCreatedAt.Default.(func() time.Time)
	// extracteditemDescID is the schema descriptor for id field.
	extracteditemDescID := extracteditemFields[0].Descriptor()
	// extracteditem.DefaultID holds the default value on creation for the id field.
	extracteditem.DefaultID = extracteditemDescID.Default.(func() uuid.UUID)
	extractionpassFields := schema.ExtractionPass{}.Fields()
	_ = extractionpassFields
	// extractionpassDescPassNumber is the schema descriptor for pass_number field.
	extractionpassDescPassNumber := extractionpassFields[2].Descriptor()
	// extractionpass.PassNumberValidator is a validator for the "pass_number" field. It is called by the builders before save.
	extractionpass.PassNumberValidator = extractionpassDescPassNumber.Validators[0].(func(int) error)
	// extractionpassDescMethod is the schema descriptor for method field.
	extractionpassDescMethod := extractionpassFields[3].Descriptor()
	// extractionpass.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	extractionpass.MethodValidator = func() func(string) error {
		validators := extractionpassDescMethod.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(method string) error {
			for _, fn := range fns {
				if err := fn(method); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionpassDescStartPage is the schema descriptor for start_page field.
	extractionpassDescStartPage := extractionpassFields[4].Descriptor()
	// extractionpass.DefaultStartPage holds the default value on creation for the start_page field.
	extractionpass.DefaultStartPage = extractionpassDescStartPage.Default.(int)
	// extractionpass.StartPageValidator is a validator for the "start_page" field. It is called by the builders before save.
	extractionpass.StartPageValidator = extractionpassDescStartPage.Validators[0].(func(int) error)
	// extractionpassDescDpi is the schema descriptor for dpi field.
	extractionpassDescDpi := extractionpassFields[6].Descriptor()
	// extractionpass.DefaultDpi holds the default value on creation for the dpi field.
	extractionpass.DefaultDpi = extractionpassDescDpi.Default.(int)
	// extractionpassDescMinConfidence is the schema descriptor for min_confidence field.
	extractionpassDescMinConfidence := extractionpassFields[7].Descriptor()
	// extractionpass.DefaultMinConfidence holds the default value on creation for the min_confidence field.
	extractionpass.DefaultMinConfidence = extractionpassDescMinConfidence.Default.(float64)
	// extractionpassDescForceOcr is the schema descriptor for force_ocr field.
	extractionpassDescForceOcr := extractionpassFields[8].Descriptor()
	// extractionpass.DefaultForceOcr holds the default value on creation for the force_ocr field.
	extractionpass.DefaultForceOcr = extractionpassDescForceOcr.Default.(bool)
	// extractionpassDescDebug is the schema descriptor for debug field.
	extractionpassDescDebug := extractionpassFields[9].Descriptor()
	// extractionpass.DefaultDebug holds the default value on creation for the debug field.
	extractionpass.DefaultDebug = extractionpassDescDebug.Default.(bool)
	// extractionpassDescStatus is the schema descriptor for status field.
	extractionpassDescStatus := extractionpassFields[11].Descriptor()
	// extractionpass.DefaultStatus holds the default value on creation for the status field.
	extractionpass.DefaultStatus = extractionpassDescStatus.Default.(string)
	// extractionpass.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionpass.StatusValidator = extractionpassDescStatus.Validators[0].(func(string) error)
	// extractionpassDescItemsExtracted is the schema descriptor for items_extracted field.
	extractionpassDescItemsExtracted := extractionpassFields[12].Descriptor()
	// extractionpass.DefaultItemsExtracted holds the default value on creation for the items_extracted field.
	extractionpass.DefaultItemsExtracted = extractionpassDescItemsExtracted.Default.(int)
	// extractionpassDescCreatedAt is the schema descriptor for created_at field.
	extractionpassDescCreatedAt := extractionpassFields[16].Descriptor()
	// extractionpass.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionpass.DefaultCreatedAt = extractionpassDescCreatedAt.Default.(func() time.Time)
	// extractionpassDescID is the schema descriptor for id field.
	extractionpassDescID := extractionpassFields[0].Descriptor()
	// extractionpass.DefaultID holds the default value on creation for the id field.
	extractionpass.DefaultID = extractionpassDescID.Default.(func() uuid.UUID)
}
