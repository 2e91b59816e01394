package passes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/constants"
	"github.com/catalogkit/extractor/internal/entity"
)

// AutoMultiPass schedules the standard pass ladder for a document: a table
// OCR pass at the requested DPI, then an aggressive OCR pass at 400 DPI.
// Once both reach a terminal status, a third plain OCR pass at 450 DPI is
// created over whatever pages still read below the confidence threshold.
// The returned passes are the first two; the follow-up pass, if any,
// appears in the document's pass list like any other.
func (m *Manager) AutoMultiPass(ctx context.Context, documentID uuid.UUID, base entity.PassConfig) ([]*entity.ExtractionPass, error) {
	cfg1 := base
	cfg1.ForceOCR = true
	p1, err := m.CreatePass(ctx, documentID, string(constants.MethodOCRTable), cfg1)
	if err != nil {
		return nil, err
	}

	cfg2 := base
	cfg2.ForceOCR = true
	cfg2.DPI = 400
	p2, err := m.CreatePass(ctx, documentID, string(constants.MethodOCRAggressive), cfg2)
	if err != nil {
		return []*entity.ExtractionPass{p1}, err
	}

	go m.scheduleFollowUp(context.WithoutCancel(ctx), documentID, base, p1.ID, p2.ID)

	return []*entity.ExtractionPass{p1, p2}, nil
}

// scheduleFollowUp waits for the first two passes to settle, then targets
// the remaining low-confidence pages. Best-effort: if the wait times out or
// no weak pages remain, no third pass is created.
func (m *Manager) scheduleFollowUp(ctx context.Context, documentID uuid.UUID, base entity.PassConfig, passIDs ...uuid.UUID) {
	deadline := time.Now().Add(30 * time.Minute)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		if time.Now().After(deadline) {
			m.logger.Warn("auto_multi_pass.follow_up.timeout", "document_id", documentID)
			return
		}
		settled := true
		for _, id := range passIDs {
			p, err := m.passes.GetByID(ctx, id)
			if err != nil || !constants.PassStatus(p.Status).IsTerminal() {
				settled = false
				break
			}
		}
		if settled {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}

	pages, err := m.LowConfidencePages(ctx, documentID)
	if err != nil {
		m.logger.Error("auto_multi_pass.follow_up.pages", "document_id", documentID, "error", err)
		return
	}
	if len(pages) == 0 {
		m.logger.Info("auto_multi_pass.no_low_confidence_pages", "document_id", documentID)
		return
	}

	cfg := base
	cfg.ForceOCR = true
	cfg.DPI = 450
	cfg.Pages = pages
	if _, err := m.CreatePass(ctx, documentID, string(constants.MethodOCRPlain), cfg); err != nil {
		m.logger.Error("auto_multi_pass.follow_up.create", "document_id", documentID, "error", err)
		return
	}
	m.logger.Info("auto_multi_pass.follow_up.created", "document_id", documentID, "pages", len(pages))
}
