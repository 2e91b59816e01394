package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/gen/ent"
	entdoc "github.com/catalogkit/extractor/gen/ent/document"
	"github.com/catalogkit/extractor/internal/common"
	"github.com/catalogkit/extractor/internal/entity"
)

type DocumentRepository interface {
	Create(ctx context.Context, filename, sourcePath string, hash []byte, pageCount int) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	GetByHash(ctx context.Context, hash []byte) (*entity.Document, error)
	List(ctx context.Context) ([]*entity.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{client: client, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, filename, sourcePath string, hash []byte, pageCount int) (*entity.Document, error) {
	row, err := r.client.Document.Create().
		SetFilename(filename).
		SetSourcePath(sourcePath).
		SetContentHash(hash).
		SetPageCount(pageCount).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "filename", filename, "error", err)
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) GetByHash(ctx context.Context, hash []byte) (*entity.Document, error) {
	row, err := r.client.Document.Query().
		Where(entdoc.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document by hash: %w", common.ErrNotFound)
		}
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) List(ctx context.Context) ([]*entity.Document, error) {
	rows, err := r.client.Document.Query().
		Order(entdoc.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, err
	}
	out := make([]*entity.Document, len(rows))
	for i, row := range rows {
		out[i] = toDocument(row)
	}
	return out, nil
}

// Delete removes the document row; passes, raw items, and consolidated
// items go with it through ON DELETE CASCADE.
func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Document.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to delete document", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document deleted", "document_id", id)
	return nil
}

func toDocument(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:          row.ID,
		Filename:    row.Filename,
		ContentHash: row.ContentHash,
		SourcePath:  row.SourcePath,
		PageCount:   row.PageCount,
		UploadedAt:  row.UploadedAt,
	}
}
