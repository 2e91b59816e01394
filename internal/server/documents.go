package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/catalogkit/extractor/gen/proto/catalog/v1"
	"github.com/catalogkit/extractor/internal/common"
)

func parseID(raw, field string) (uuid.UUID, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func (s *CatalogService) RegisterDocument(ctx context.Context, req *v1.RegisterDocumentRequest) (*v1.RegisterDocumentResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("register document requested", "path", path)
	res, err := s.ingestor.Register(ctx, path)
	if err != nil {
		s.logger.Warn("register document failed", "path", path, "error", err)
		return nil, common.GRPCStatus(err)
	}

	return &v1.RegisterDocumentResponse{
		Document:     toPBDocument(res.Document),
		Deduplicated: res.Duplicate,
	}, nil
}

func (s *CatalogService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	st, err := s.manager.DocumentStatus(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}

	out := &v1.GetDocumentResponse{Document: toPBDocument(st.Document)}
	for _, p := range st.Passes {
		out.Passes = append(out.Passes, toPBPass(p))
	}
	return out, nil
}

func (s *CatalogService) ListDocuments(ctx context.Context, _ *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	docs, err := s.docs.List(ctx)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := &v1.ListDocumentsResponse{Documents: make([]*v1.Document, 0, len(docs))}
	for _, d := range docs {
		out.Documents = append(out.Documents, toPBDocument(d))
	}
	return out, nil
}

func (s *CatalogService) DeleteDocument(ctx context.Context, req *v1.DeleteDocumentRequest) (*v1.DeleteDocumentResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if err := s.docs.Delete(ctx, id); err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.DeleteDocumentResponse{}, nil
}
