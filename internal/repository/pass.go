package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/constants"
	"github.com/catalogkit/extractor/gen/ent"
	entpass "github.com/catalogkit/extractor/gen/ent/extractionpass"
	"github.com/catalogkit/extractor/internal/common"
	"github.com/catalogkit/extractor/internal/entity"
)

type PassRepository interface {
	CreateQueued(ctx context.Context, documentID uuid.UUID, method string, cfg entity.PassConfig) (*entity.ExtractionPass, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionPass, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractionPass, error)
	MarkProcessing(ctx context.Context, id uuid.UUID, startedAt time.Time) error
	MarkCompleted(ctx context.Context, id uuid.UUID, itemsExtracted int, avgConfidence float64, elapsed time.Duration) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string, elapsed time.Duration) error
}

type passRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPassRepository(client *ent.Client, logger *slog.Logger) PassRepository {
	return &passRepo{client: client, logger: logger}
}

// CreateQueued allocates the next pass_number and inserts the pass row in
// one transaction. The sequence bump is a single UPDATE on the document
// row: the row lock it takes serializes concurrent creators, so numbers
// come out contiguous with no duplicates, and a failed insert rolls the
// bump back rather than leaving a gap.
func (r *passRepo) CreateQueued(ctx context.Context, documentID uuid.UUID, method string, cfg entity.PassConfig) (*entity.ExtractionPass, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := tx.Document.UpdateOneID(documentID).
		AddPassSeq(1).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", documentID, common.ErrNotFound)
		}
		r.logger.Error("failed to allocate pass number", "document_id", documentID, "error", err)
		return nil, err
	}

	create := tx.ExtractionPass.Create().
		SetDocumentID(documentID).
		SetPassNumber(doc.PassSeq).
		SetMethod(method).
		SetStartPage(cfg.StartPage).
		SetDpi(cfg.DPI).
		SetMinConfidence(cfg.MinConfidence).
		SetForceOcr(cfg.ForceOCR).
		SetDebug(cfg.Debug).
		SetStatus(string(constants.PassStatusQueued))
	if cfg.EndPage > 0 {
		create = create.SetEndPage(cfg.EndPage)
	}
	if len(cfg.Pages) > 0 {
		create = create.SetPages(cfg.Pages)
	}

	row, err := create.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create pass", "document_id", documentID, "method", method, "error", err)
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	r.logger.Info("pass created", "pass_id", row.ID, "document_id", documentID, "pass_number", row.PassNumber, "method", method)
	return toPass(row), nil
}

func (r *passRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionPass, error) {
	row, err := r.client.ExtractionPass.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("pass %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return toPass(row), nil
}

func (r *passRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractionPass, error) {
	rows, err := r.client.ExtractionPass.Query().
		Where(entpass.DocumentID(documentID)).
		Order(entpass.ByPassNumber()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list passes", "document_id", documentID, "error", err)
		return nil, err
	}
	out := make([]*entity.ExtractionPass, len(rows))
	for i, row := range rows {
		out[i] = toPass(row)
	}
	return out, nil
}

func (r *passRepo) MarkProcessing(ctx context.Context, id uuid.UUID, startedAt time.Time) error {
	_, err := r.client.ExtractionPass.UpdateOneID(id).
		SetStatus(string(constants.PassStatusProcessing)).
		SetStartedAt(startedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark pass processing", "pass_id", id, "error", err)
	}
	return err
}

func (r *passRepo) MarkCompleted(ctx context.Context, id uuid.UUID, itemsExtracted int, avgConfidence float64, elapsed time.Duration) error {
	_, err := r.client.ExtractionPass.UpdateOneID(id).
		SetStatus(string(constants.PassStatusCompleted)).
		SetItemsExtracted(itemsExtracted).
		SetAvgConfidence(avgConfidence).
		SetProcessingTime(elapsed.Seconds()).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark pass completed", "pass_id", id, "error", err)
	}
	return err
}

func (r *passRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string, elapsed time.Duration) error {
	_, err := r.client.ExtractionPass.UpdateOneID(id).
		SetStatus(string(constants.PassStatusFailed)).
		SetErrorMessage(message).
		SetProcessingTime(elapsed.Seconds()).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark pass failed", "pass_id", id, "error", err)
	}
	return err
}

func toPass(row *ent.ExtractionPass) *entity.ExtractionPass {
	p := &entity.ExtractionPass{
		ID:         row.ID,
		DocumentID: row.DocumentID,
		PassNumber: row.PassNumber,
		Method:     row.Method,
		Config: entity.PassConfig{
			StartPage:     row.StartPage,
			DPI:           row.Dpi,
			MinConfidence: row.MinConfidence,
			ForceOCR:      row.ForceOcr,
			Debug:         row.Debug,
			Pages:         row.Pages,
		},
		Status:         row.Status,
		ItemsExtracted: row.ItemsExtracted,
		AvgConfidence:  row.AvgConfidence,
		ProcessingTime: row.ProcessingTime,
		ErrorMessage:   row.ErrorMessage,
		CreatedAt:      row.CreatedAt,
		StartedAt:      row.StartedAt,
		FinishedAt:     row.FinishedAt,
	}
	if row.EndPage != nil {
		p.Config.EndPage = *row.EndPage
	}
	return p
}
