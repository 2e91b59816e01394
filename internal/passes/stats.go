package passes

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/internal/entity"
)

// lowConfidenceThreshold marks pages whose mean item confidence is weak
// enough to justify a targeted retry pass.
const lowConfidenceThreshold = 60.0

// PassStats summarizes what one pass produced.
func (m *Manager) PassStats(ctx context.Context, passID uuid.UUID) (*entity.PassStats, error) {
	if _, err := m.passes.GetByID(ctx, passID); err != nil {
		return nil, err
	}
	items, err := m.items.ListByPass(ctx, passID)
	if err != nil {
		return nil, err
	}

	stats := &entity.PassStats{PassID: passID, TotalItems: len(items)}
	if len(items) == 0 {
		return stats, nil
	}

	pages := make(map[int]struct{})
	sum := 0.0
	for _, it := range items {
		sum += it.Confidence
		pages[it.Page] = struct{}{}
	}
	stats.AvgConfidence = sum / float64(len(items))
	stats.PagesWithItems = len(pages)
	stats.ItemsPerPage = float64(len(items)) / float64(len(pages))
	return stats, nil
}

// LowConfidencePages lists pages whose mean confidence across all completed
// passes falls below the threshold, sorted ascending. These are the pages a
// targeted retry pass should revisit.
func (m *Manager) LowConfidencePages(ctx context.Context, documentID uuid.UUID) ([]int, error) {
	if _, err := m.docs.GetByID(ctx, documentID); err != nil {
		return nil, err
	}
	items, err := m.items.ListCompletedItems(ctx, documentID)
	if err != nil {
		return nil, err
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, it := range items {
		sums[it.Page] += it.Confidence
		counts[it.Page]++
	}

	var pages []int
	for page, n := range counts {
		if sums[page]/float64(n) < lowConfidenceThreshold {
			pages = append(pages, page)
		}
	}
	sort.Ints(pages)
	return pages, nil
}
