// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ConsolidatedItem is the predicate function for consolidateditem builders.
type ConsolidatedItem func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractedItem is the predicate function for extracteditem builders.
type ExtractedItem func(*sql.Selector)

// ExtractionPass is the predicate function for extractionpass builders.
type ExtractionPass func(*sql.Selector)
