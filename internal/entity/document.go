package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a registered source PDF for data transfer between layers.
type Document struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentHash []byte    `json:"content_hash"`
	SourcePath  string    `json:"source_path"`
	PageCount   int       `json:"page_count"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// DocumentStatus is the aggregate consumers poll: the document plus every
// pass run against it.
type DocumentStatus struct {
	Document *Document         `json:"document"`
	Passes   []*ExtractionPass `json:"passes"`
}
