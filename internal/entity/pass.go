package entity

import (
	"time"

	"github.com/google/uuid"
)

// PassConfig is the configuration one extraction pass runs with.
// Pages, when set, overrides the StartPage/EndPage range with an explicit
// page list (used by retry passes targeting low-confidence pages).
type PassConfig struct {
	StartPage     int     `json:"start_page"`
	EndPage       int     `json:"end_page,omitempty"`
	DPI           int     `json:"dpi,omitempty"`
	MinConfidence float64 `json:"min_confidence,omitempty"`
	ForceOCR      bool    `json:"force_ocr,omitempty"`
	Debug         bool    `json:"debug,omitempty"`
	Pages         []int   `json:"pages,omitempty"`
}

// ExtractionPass represents one extraction attempt for data transfer
// between layers. A pass is immutable after it reaches a terminal status.
type ExtractionPass struct {
	ID             uuid.UUID  `json:"id"`
	DocumentID     uuid.UUID  `json:"document_id"`
	PassNumber     int        `json:"pass_number"`
	Method         string     `json:"method"`
	Config         PassConfig `json:"config"`
	Status         string     `json:"status"`
	ItemsExtracted int        `json:"items_extracted"`
	AvgConfidence  *float64   `json:"avg_confidence,omitempty"`
	ProcessingTime *float64   `json:"processing_time,omitempty"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
}

// PassStats summarizes the raw items one pass produced.
type PassStats struct {
	PassID         uuid.UUID `json:"pass_id"`
	TotalItems     int       `json:"total_items"`
	AvgConfidence  float64   `json:"avg_confidence"`
	PagesWithItems int       `json:"pages_with_items"`
	ItemsPerPage   float64   `json:"items_per_page"`
}
