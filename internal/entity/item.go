package entity

import (
	"time"

	"github.com/google/uuid"
)

// BBox is the pixel region a candidate was read from, kept for traceability.
type BBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Candidate is one raw record as yielded by an extraction adapter, before
// it is persisted.
type Candidate struct {
	Page       int      `json:"page"`
	BrandCode  string   `json:"brand_code,omitempty"`
	PartNumber string   `json:"part_number,omitempty"`
	PriceType  string   `json:"price_type,omitempty"`
	PriceValue *float64 `json:"price_value,omitempty"`
	Currency   string   `json:"currency"`
	Confidence float64  `json:"confidence"`
	RawText    string   `json:"raw_text"`
	BBox       *BBox    `json:"bbox,omitempty"`
}

// ExtractedItem is a persisted raw candidate. Rows are append-only: they are
// never edited and only removed by cascading deletion of the owning pass or
// document. PassNumber is populated on reads that join the owning pass; it
// is not a column of the raw item itself.
type ExtractedItem struct {
	ID         uuid.UUID `json:"id"`
	PassID     uuid.UUID `json:"pass_id"`
	PassNumber int       `json:"pass_number,omitempty"`
	Page       int       `json:"page"`
	BrandCode  string    `json:"brand_code,omitempty"`
	PartNumber string    `json:"part_number,omitempty"`
	PriceType  string    `json:"price_type,omitempty"`
	PriceValue *float64  `json:"price_value,omitempty"`
	Currency   string    `json:"currency"`
	Confidence float64   `json:"confidence"`
	RawText    string    `json:"raw_text"`
	BBox       *BBox     `json:"bbox,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
