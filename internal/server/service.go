package server

import (
	"log/slog"

	v1 "github.com/catalogkit/extractor/gen/proto/catalog/v1"
	"github.com/catalogkit/extractor/internal/consolidate"
	"github.com/catalogkit/extractor/internal/export"
	"github.com/catalogkit/extractor/internal/ingest"
	"github.com/catalogkit/extractor/internal/passes"
	"github.com/catalogkit/extractor/internal/repository"
)

// CatalogService implements v1.CatalogServiceServer. Handlers are split
// across documents.go, passes.go, and items.go by concern.
type CatalogService struct {
	v1.UnimplementedCatalogServiceServer
	ingestor *ingest.Service
	docs     repository.DocumentRepository
	manager  *passes.Manager
	engine   *consolidate.Engine
	exporter *export.Service
	logger   *slog.Logger
}

func NewCatalogService(
	ingestor *ingest.Service,
	docs repository.DocumentRepository,
	manager *passes.Manager,
	engine *consolidate.Engine,
	exporter *export.Service,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		ingestor: ingestor,
		docs:     docs,
		manager:  manager,
		engine:   engine,
		exporter: exporter,
		logger:   logger,
	}
}
