package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/catalogkit/extractor/gen/proto/catalog/v1"
	"github.com/catalogkit/extractor/internal/common"
	"github.com/catalogkit/extractor/internal/export"
)

func (s *CatalogService) ListConsolidatedItems(ctx context.Context, req *v1.ListConsolidatedItemsRequest) (*v1.ListConsolidatedItemsResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.docs.GetByID(ctx, id); err != nil {
		return nil, common.GRPCStatus(err)
	}

	items, err := s.engine.Items(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := &v1.ListConsolidatedItemsResponse{Items: make([]*v1.ConsolidatedItem, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, toPBConsolidated(it))
	}
	return out, nil
}

func (s *CatalogService) ExportConsolidated(ctx context.Context, req *v1.ExportConsolidatedRequest) (*v1.ExportConsolidatedResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.docs.GetByID(ctx, id); err != nil {
		return nil, common.GRPCStatus(err)
	}

	format := export.Format(strings.ToLower(strings.TrimSpace(req.GetFormat())))
	switch format {
	case "", export.FormatCSV, export.FormatXLSX:
	default:
		return nil, status.Errorf(codes.InvalidArgument, "format must be csv or xlsx, got %q", req.GetFormat())
	}

	data, rows, err := s.exporter.Export(ctx, id, format)
	if err != nil {
		s.logger.Error("export failed", "document_id", id, "format", format, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.ExportConsolidatedResponse{Data: data, Rows: int32(rows)}, nil
}
