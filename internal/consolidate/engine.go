package consolidate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/internal/entity"
)

// ItemSource reads the raw items eligible for consolidation: every item of
// every completed pass, with the owning pass number attached.
type ItemSource interface {
	ListCompletedItems(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractedItem, error)
}

// ConsolidatedStore persists derived records. ReplaceForDocument must swap
// the document's full set in one transaction so readers never observe a
// half-updated document.
type ConsolidatedStore interface {
	ReplaceForDocument(ctx context.Context, documentID uuid.UUID, items []*entity.ConsolidatedItem) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ConsolidatedItem, error)
}

// Engine recomputes a document's consolidated set from scratch on demand.
type Engine struct {
	items  ItemSource
	store  ConsolidatedStore
	locks  *keyedMutex
	logger *slog.Logger
}

func NewEngine(items ItemSource, store ConsolidatedStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		items:  items,
		store:  store,
		locks:  newKeyedMutex(),
		logger: logger,
	}
}

// Recompute rebuilds the consolidated set for a document. The per-document
// lock covers read, cluster, and replace: two passes finishing together
// serialize here instead of interleaving their replaces.
func (e *Engine) Recompute(ctx context.Context, documentID uuid.UUID) (int, error) {
	start := time.Now()
	unlock := e.locks.Lock(documentID)
	defer unlock()

	raw, err := e.items.ListCompletedItems(ctx, documentID)
	if err != nil {
		return 0, fmt.Errorf("read raw items: %w", err)
	}

	merged := Consolidate(documentID, raw)

	if err := e.store.ReplaceForDocument(ctx, documentID, merged); err != nil {
		return 0, fmt.Errorf("replace consolidated items: %w", err)
	}

	e.logger.Info("consolidate.ok",
		"document_id", documentID,
		"raw_items", len(raw),
		"consolidated", len(merged),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return len(merged), nil
}

// Items returns the current consolidated view of a document.
func (e *Engine) Items(ctx context.Context, documentID uuid.UUID) ([]*entity.ConsolidatedItem, error) {
	return e.store.ListByDocument(ctx, documentID)
}
