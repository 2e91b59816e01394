package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/internal/common"
	"github.com/catalogkit/extractor/internal/entity"
)

type fakeDocRepo struct {
	byHash  map[string]*entity.Document
	created int
}

func (f *fakeDocRepo) Create(_ context.Context, filename, sourcePath string, hash []byte, pageCount int) (*entity.Document, error) {
	f.created++
	return &entity.Document{ID: uuid.New(), Filename: filename, SourcePath: sourcePath, ContentHash: hash, PageCount: pageCount}, nil
}

func (f *fakeDocRepo) GetByID(context.Context, uuid.UUID) (*entity.Document, error) {
	return nil, common.ErrNotFound
}

func (f *fakeDocRepo) GetByHash(_ context.Context, hash []byte) (*entity.Document, error) {
	if d, ok := f.byHash[string(hash)]; ok {
		return d, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeDocRepo) List(context.Context) ([]*entity.Document, error) { return nil, nil }
func (f *fakeDocRepo) Delete(context.Context, uuid.UUID) error          { return nil }

func newTestService(t *testing.T, repo *fakeDocRepo) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, t.TempDir(), logger)
}

func TestRegisterRejectsUnsupportedExtension(t *testing.T) {
	s := newTestService(t, &fakeDocRepo{})
	for _, path := range []string{"catalog.txt", "catalog.png", "catalog"} {
		_, err := s.Register(context.Background(), path)
		if !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("Register(%q) err = %v, want ErrInvalidInput", path, err)
		}
	}
}

func TestRegisterMissingFile(t *testing.T) {
	s := newTestService(t, &fakeDocRepo{})
	_, err := s.Register(context.Background(), filepath.Join(t.TempDir(), "gone.pdf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var app *common.AppError
	if !errors.As(err, &app) || app.Code != "FILE_ACCESS" {
		t.Fatalf("err = %v, want FILE_ACCESS app error", err)
	}
}

func TestRegisterDirectory(t *testing.T) {
	s := newTestService(t, &fakeDocRepo{})
	dir := filepath.Join(t.TempDir(), "sub.pdf")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Register(context.Background(), dir); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRegisterDeduplicatesByContentHash(t *testing.T) {
	content := []byte("not a real pdf, dedupe happens before parsing")
	path := filepath.Join(t.TempDir(), "catalog.pdf")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	sum := sha256.Sum256(content)
	existing := &entity.Document{ID: uuid.New(), Filename: "catalog.pdf", ContentHash: sum[:], PageCount: 12}
	repo := &fakeDocRepo{byHash: map[string]*entity.Document{string(sum[:]): existing}}
	s := newTestService(t, repo)

	res, err := s.Register(context.Background(), path)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !res.Duplicate {
		t.Error("duplicate not detected")
	}
	if res.Document.ID != existing.ID {
		t.Errorf("document id = %s, want existing %s", res.Document.ID, existing.ID)
	}
	if repo.created != 0 {
		t.Errorf("Create called %d times for a duplicate", repo.created)
	}
}

func TestHashFile(t *testing.T) {
	content := []byte("stable bytes")
	path := filepath.Join(t.TempDir(), "f.pdf")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := hashFile(path)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	want := sha256.Sum256(content)
	if !bytes.Equal(got, want[:]) {
		t.Fatalf("hash = %x, want %x", got, want)
	}
}
