package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsolidatedItem is the derived best-answer record for one catalog entry,
// merged across all completed passes of a document. The set for a document
// is a pure function of its raw items and is replaced wholesale on every
// recomputation.
type ConsolidatedItem struct {
	ID                  uuid.UUID   `json:"id"`
	DocumentID          uuid.UUID   `json:"document_id"`
	BrandCode           string      `json:"brand_code,omitempty"`
	PartNumber          string      `json:"part_number,omitempty"`
	PriceType           string      `json:"price_type,omitempty"`
	PriceValue          *float64    `json:"price_value,omitempty"`
	Currency            string      `json:"currency"`
	Page                int         `json:"page"`
	AvgConfidence       float64     `json:"avg_confidence"`
	SourceCount         int         `json:"source_count"`
	ContributingItemIDs []uuid.UUID `json:"contributing_item_ids,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
}
