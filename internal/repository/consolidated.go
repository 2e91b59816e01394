package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/gen/ent"
	entcons "github.com/catalogkit/extractor/gen/ent/consolidateditem"
	"github.com/catalogkit/extractor/internal/entity"
)

type ConsolidatedItemRepository interface {
	ReplaceForDocument(ctx context.Context, documentID uuid.UUID, items []*entity.ConsolidatedItem) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ConsolidatedItem, error)
}

type consolidatedRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewConsolidatedItemRepository(client *ent.Client, logger *slog.Logger) ConsolidatedItemRepository {
	return &consolidatedRepo{client: client, logger: logger}
}

// ReplaceForDocument swaps the document's consolidated set in one
// transaction: readers see either the previous set or the new one, never a
// mix.
func (r *consolidatedRepo) ReplaceForDocument(ctx context.Context, documentID uuid.UUID, items []*entity.ConsolidatedItem) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.ConsolidatedItem.Delete().
		Where(entcons.DocumentID(documentID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to clear consolidated items", "document_id", documentID, "error", err)
		return err
	}

	if len(items) > 0 {
		builders := make([]*ent.ConsolidatedItemCreate, len(items))
		for i, it := range items {
			builders[i] = tx.ConsolidatedItem.Create().
				SetDocumentID(documentID).
				SetBrandCode(it.BrandCode).
				SetPartNumber(it.PartNumber).
				SetPriceType(it.PriceType).
				SetNillablePriceValue(it.PriceValue).
				SetCurrency(it.Currency).
				SetPage(it.Page).
				SetAvgConfidence(it.AvgConfidence).
				SetSourceCount(it.SourceCount).
				SetContributingItemIds(it.ContributingItemIDs)
		}
		if _, err := tx.ConsolidatedItem.CreateBulk(builders...).Save(ctx); err != nil {
			_ = tx.Rollback()
			r.logger.Error("failed to insert consolidated items", "document_id", documentID, "count", len(items), "error", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	r.logger.Debug("consolidated items replaced", "document_id", documentID, "count", len(items))
	return nil
}

func (r *consolidatedRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ConsolidatedItem, error) {
	rows, err := r.client.ConsolidatedItem.Query().
		Where(entcons.DocumentID(documentID)).
		Order(entcons.ByPage(), entcons.ByPartNumber(), entcons.ByBrandCode()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list consolidated items", "document_id", documentID, "error", err)
		return nil, err
	}
	out := make([]*entity.ConsolidatedItem, len(rows))
	for i, row := range rows {
		out[i] = toConsolidated(row)
	}
	return out, nil
}

func toConsolidated(row *ent.ConsolidatedItem) *entity.ConsolidatedItem {
	return &entity.ConsolidatedItem{
		ID:                  row.ID,
		DocumentID:          row.DocumentID,
		BrandCode:           row.BrandCode,
		PartNumber:          row.PartNumber,
		PriceType:           row.PriceType,
		PriceValue:          row.PriceValue,
		Currency:            row.Currency,
		Page:                row.Page,
		AvgConfidence:       row.AvgConfidence,
		SourceCount:         row.SourceCount,
		ContributingItemIDs: row.ContributingItemIds,
		CreatedAt:           row.CreatedAt,
	}
}
