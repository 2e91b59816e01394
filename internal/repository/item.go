package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/constants"
	"github.com/catalogkit/extractor/gen/ent"
	entitem "github.com/catalogkit/extractor/gen/ent/extracteditem"
	entpass "github.com/catalogkit/extractor/gen/ent/extractionpass"
	"github.com/catalogkit/extractor/internal/entity"
)

// ItemRepository is the append-only raw item record. There is no update or
// single-row delete on purpose: raw items only disappear through cascading
// deletion of their pass or document.
type ItemRepository interface {
	Append(ctx context.Context, passID uuid.UUID, c *entity.Candidate) (*entity.ExtractedItem, error)
	ListByPass(ctx context.Context, passID uuid.UUID) ([]*entity.ExtractedItem, error)
	CountByPass(ctx context.Context, passID uuid.UUID) (int, error)
	ListCompletedItems(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractedItem, error)
}

type itemRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewItemRepository(client *ent.Client, logger *slog.Logger) ItemRepository {
	return &itemRepo{client: client, logger: logger}
}

func (r *itemRepo) Append(ctx context.Context, passID uuid.UUID, c *entity.Candidate) (*entity.ExtractedItem, error) {
	currency := c.Currency
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	create := r.client.ExtractedItem.Create().
		SetPassID(passID).
		SetBrandCode(c.BrandCode).
		SetPartNumber(c.PartNumber).
		SetPriceType(c.PriceType).
		SetCurrency(currency).
		SetPage(c.Page).
		SetConfidence(c.Confidence).
		SetRawText(c.RawText).
		SetNillablePriceValue(c.PriceValue)
	if c.BBox != nil {
		create = create.
			SetBboxX(c.BBox.X).
			SetBboxY(c.BBox.Y).
			SetBboxWidth(c.BBox.Width).
			SetBboxHeight(c.BBox.Height)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to append raw item", "pass_id", passID, "page", c.Page, "error", err)
		return nil, err
	}
	return toItem(row, 0), nil
}

func (r *itemRepo) ListByPass(ctx context.Context, passID uuid.UUID) ([]*entity.ExtractedItem, error) {
	rows, err := r.client.ExtractedItem.Query().
		Where(entitem.PassID(passID)).
		Order(entitem.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list raw items", "pass_id", passID, "error", err)
		return nil, err
	}
	out := make([]*entity.ExtractedItem, len(rows))
	for i, row := range rows {
		out[i] = toItem(row, 0)
	}
	return out, nil
}

func (r *itemRepo) CountByPass(ctx context.Context, passID uuid.UUID) (int, error) {
	return r.client.ExtractedItem.Query().
		Where(entitem.PassID(passID)).
		Count(ctx)
}

// ListCompletedItems returns every raw item belonging to a COMPLETED pass
// of the document, with the owning pass number attached for consolidation
// tie-breaks. Items from queued, processing, and failed passes are
// excluded: they may be incomplete.
func (r *itemRepo) ListCompletedItems(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractedItem, error) {
	passRows, err := r.client.ExtractionPass.Query().
		Where(
			entpass.DocumentID(documentID),
			entpass.Status(string(constants.PassStatusCompleted)),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(passRows) == 0 {
		return nil, nil
	}

	passNumbers := make(map[uuid.UUID]int, len(passRows))
	passIDs := make([]uuid.UUID, 0, len(passRows))
	for _, p := range passRows {
		passNumbers[p.ID] = p.PassNumber
		passIDs = append(passIDs, p.ID)
	}

	rows, err := r.client.ExtractedItem.Query().
		Where(entitem.PassIDIn(passIDs...)).
		Order(entitem.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list items for consolidation", "document_id", documentID, "error", err)
		return nil, err
	}

	out := make([]*entity.ExtractedItem, len(rows))
	for i, row := range rows {
		out[i] = toItem(row, passNumbers[row.PassID])
	}
	return out, nil
}

func toItem(row *ent.ExtractedItem, passNumber int) *entity.ExtractedItem {
	it := &entity.ExtractedItem{
		ID:         row.ID,
		PassID:     row.PassID,
		PassNumber: passNumber,
		Page:       row.Page,
		BrandCode:  row.BrandCode,
		PartNumber: row.PartNumber,
		PriceType:  row.PriceType,
		PriceValue: row.PriceValue,
		Currency:   row.Currency,
		Confidence: row.Confidence,
		RawText:    row.RawText,
		CreatedAt:  row.CreatedAt,
	}
	if row.BboxX != nil && row.BboxY != nil && row.BboxWidth != nil && row.BboxHeight != nil {
		it.BBox = &entity.BBox{
			X:      *row.BboxX,
			Y:      *row.BboxY,
			Width:  *row.BboxWidth,
			Height: *row.BboxHeight,
		}
	}
	return it
}
