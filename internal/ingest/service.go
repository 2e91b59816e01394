package ingest

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/catalogkit/extractor/constants"
	"github.com/catalogkit/extractor/internal/common"
	"github.com/catalogkit/extractor/internal/entity"
	"github.com/catalogkit/extractor/internal/repository"
)

// Service registers source documents: it validates the file, hashes it for
// deduplication, counts pages, copies the file into managed storage, and
// inserts the document row.
type Service struct {
	docs      repository.DocumentRepository
	uploadDir string
	logger    *slog.Logger
}

func NewService(docs repository.DocumentRepository, uploadDir string, logger *slog.Logger) *Service {
	return &Service{docs: docs, uploadDir: uploadDir, logger: logger}
}

// RegisterResult reports whether the document was newly created or matched
// an existing registration by content hash.
type RegisterResult struct {
	Document  *entity.Document
	Duplicate bool
}

// Register registers the PDF at path. Re-registering a byte-identical file
// returns the existing document instead of creating a second one.
func (s *Service) Register(ctx context.Context, path string) (*RegisterResult, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.NewAppError("UNSUPPORTED_FILE", fmt.Sprintf("unsupported file type %q", ext), common.ErrInvalidInput)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, common.NewAppError("FILE_ACCESS", fmt.Sprintf("cannot access %s", path), err)
	}
	if info.IsDir() {
		return nil, common.NewAppError("FILE_ACCESS", fmt.Sprintf("%s is a directory", path), common.ErrInvalidInput)
	}

	hash, err := hashFile(path)
	if err != nil {
		return nil, common.NewAppError("FILE_ACCESS", fmt.Sprintf("cannot hash %s", path), err)
	}

	if existing, err := s.docs.GetByHash(ctx, hash); err == nil {
		s.logger.Info("document already registered", "document_id", existing.ID, "filename", existing.Filename)
		return &RegisterResult{Document: existing, Duplicate: true}, nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	pageCount, err := pageCount(path)
	if err != nil {
		return nil, common.NewAppError("INVALID_PDF", fmt.Sprintf("cannot read %s", path), err)
	}

	stored, err := s.store(path, hash)
	if err != nil {
		return nil, err
	}

	doc, err := s.docs.Create(ctx, filepath.Base(path), stored, hash, pageCount)
	if err != nil {
		// best effort: don't leave an orphaned copy behind
		_ = os.Remove(stored)
		return nil, err
	}

	s.logger.Info("document registered", "document_id", doc.ID, "filename", doc.Filename, "pages", pageCount)
	return &RegisterResult{Document: doc}, nil
}

// store copies the source file into the upload directory under a
// hash-derived name, so repeated filenames never collide.
func (s *Service) store(path string, hash []byte) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", common.NewAppError("STORAGE", "cannot create upload directory", err)
	}
	dst := filepath.Join(s.uploadDir, fmt.Sprintf("%x%s", hash[:8], filepath.Ext(path)))

	src, err := os.Open(path)
	if err != nil {
		return "", common.NewAppError("STORAGE", fmt.Sprintf("cannot open %s", path), err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", common.NewAppError("STORAGE", fmt.Sprintf("cannot create %s", dst), err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return "", common.NewAppError("STORAGE", "copy failed", err)
	}
	if err := out.Close(); err != nil {
		return "", common.NewAppError("STORAGE", "copy failed", err)
	}
	return dst, nil
}

func hashFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

func pageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("pdf reports %d pages", n)
	}
	return n, nil
}
