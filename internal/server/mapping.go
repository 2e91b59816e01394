package server

import (
	"encoding/hex"
	"time"

	v1 "github.com/catalogkit/extractor/gen/proto/catalog/v1"
	"github.com/catalogkit/extractor/internal/entity"
)

func toPBDocument(d *entity.Document) *v1.Document {
	return &v1.Document{
		Id:             d.ID.String(),
		Filename:       d.Filename,
		ContentHashHex: hex.EncodeToString(d.ContentHash),
		SourcePath:     d.SourcePath,
		PageCount:      int32(d.PageCount),
		UploadedAt:     d.UploadedAt.UTC().Format(time.RFC3339),
	}
}

func toPBConfig(c entity.PassConfig) *v1.PassConfig {
	pages := make([]int32, len(c.Pages))
	for i, p := range c.Pages {
		pages[i] = int32(p)
	}
	return &v1.PassConfig{
		StartPage:     int32(c.StartPage),
		EndPage:       int32(c.EndPage),
		Dpi:           int32(c.DPI),
		MinConfidence: c.MinConfidence,
		ForceOcr:      c.ForceOCR,
		Debug:         c.Debug,
		Pages:         pages,
	}
}

func fromPBConfig(c *v1.PassConfig) entity.PassConfig {
	if c == nil {
		return entity.PassConfig{}
	}
	pages := make([]int, 0, len(c.GetPages()))
	for _, p := range c.GetPages() {
		pages = append(pages, int(p))
	}
	if len(pages) == 0 {
		pages = nil
	}
	return entity.PassConfig{
		StartPage:     int(c.GetStartPage()),
		EndPage:       int(c.GetEndPage()),
		DPI:           int(c.GetDpi()),
		MinConfidence: c.GetMinConfidence(),
		ForceOCR:      c.GetForceOcr(),
		Debug:         c.GetDebug(),
		Pages:         pages,
	}
}

func toPBPass(p *entity.ExtractionPass) *v1.ExtractionPass {
	out := &v1.ExtractionPass{
		Id:             p.ID.String(),
		DocumentId:     p.DocumentID.String(),
		PassNumber:     int32(p.PassNumber),
		Method:         p.Method,
		Config:         toPBConfig(p.Config),
		Status:         p.Status,
		ItemsExtracted: int32(p.ItemsExtracted),
		AvgConfidence:  p.AvgConfidence,
		ProcessingTime: p.ProcessingTime,
		ErrorMessage:   p.ErrorMessage,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.StartedAt != nil {
		s := p.StartedAt.UTC().Format(time.RFC3339Nano)
		out.StartedAt = &s
	}
	if p.FinishedAt != nil {
		f := p.FinishedAt.UTC().Format(time.RFC3339Nano)
		out.FinishedAt = &f
	}
	return out
}

func toPBConsolidated(it *entity.ConsolidatedItem) *v1.ConsolidatedItem {
	ids := make([]string, len(it.ContributingItemIDs))
	for i, id := range it.ContributingItemIDs {
		ids[i] = id.String()
	}
	return &v1.ConsolidatedItem{
		Id:                  it.ID.String(),
		DocumentId:          it.DocumentID.String(),
		BrandCode:           it.BrandCode,
		PartNumber:          it.PartNumber,
		PriceType:           it.PriceType,
		PriceValue:          it.PriceValue,
		Currency:            it.Currency,
		Page:                int32(it.Page),
		AvgConfidence:       it.AvgConfidence,
		SourceCount:         int32(it.SourceCount),
		ContributingItemIds: ids,
	}
}
