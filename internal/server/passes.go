package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/catalogkit/extractor/constants"
	v1 "github.com/catalogkit/extractor/gen/proto/catalog/v1"
	"github.com/catalogkit/extractor/internal/common"
)

func (s *CatalogService) CreatePass(ctx context.Context, req *v1.CreatePassRequest) (*v1.CreatePassResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	method := strings.TrimSpace(req.GetMethod())
	if method == "" {
		return nil, status.Error(codes.InvalidArgument, "method is required")
	}

	p, err := s.manager.CreatePass(ctx, id, method, fromPBConfig(req.GetConfig()))
	if err != nil {
		s.logger.Warn("create pass failed", "document_id", id, "method", method, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.CreatePassResponse{Pass: toPBPass(p)}, nil
}

func (s *CatalogService) AutoMultiPass(ctx context.Context, req *v1.AutoMultiPassRequest) (*v1.AutoMultiPassResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	created, err := s.manager.AutoMultiPass(ctx, id, fromPBConfig(req.GetConfig()))
	if err != nil {
		s.logger.Warn("auto multi pass failed", "document_id", id, "error", err)
		return nil, common.GRPCStatus(err)
	}

	out := &v1.AutoMultiPassResponse{Passes: make([]*v1.ExtractionPass, 0, len(created))}
	for _, p := range created {
		out.Passes = append(out.Passes, toPBPass(p))
	}
	return out, nil
}

func (s *CatalogService) GetPass(ctx context.Context, req *v1.GetPassRequest) (*v1.GetPassResponse, error) {
	id, err := parseID(req.GetPassId(), "pass_id")
	if err != nil {
		return nil, err
	}
	p, err := s.manager.GetPass(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.GetPassResponse{Pass: toPBPass(p)}, nil
}

func (s *CatalogService) ListPasses(ctx context.Context, req *v1.ListPassesRequest) (*v1.ListPassesResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	list, err := s.manager.ListPasses(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := &v1.ListPassesResponse{Passes: make([]*v1.ExtractionPass, 0, len(list))}
	for _, p := range list {
		out.Passes = append(out.Passes, toPBPass(p))
	}
	return out, nil
}

func (s *CatalogService) GetPassStats(ctx context.Context, req *v1.GetPassStatsRequest) (*v1.GetPassStatsResponse, error) {
	id, err := parseID(req.GetPassId(), "pass_id")
	if err != nil {
		return nil, err
	}
	st, err := s.manager.PassStats(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.GetPassStatsResponse{
		TotalItems:     int32(st.TotalItems),
		AvgConfidence:  st.AvgConfidence,
		PagesWithItems: int32(st.PagesWithItems),
		ItemsPerPage:   st.ItemsPerPage,
	}, nil
}

func (s *CatalogService) GetDocumentStats(ctx context.Context, req *v1.GetDocumentStatsRequest) (*v1.GetDocumentStatsResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	list, err := s.manager.ListPasses(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	completed := 0
	for _, p := range list {
		if p.Status == string(constants.PassStatusCompleted) {
			completed++
		}
	}

	items, err := s.engine.Items(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	pages, err := s.manager.LowConfidencePages(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}

	out := &v1.GetDocumentStatsResponse{
		PassCount:         int32(len(list)),
		CompletedPasses:   int32(completed),
		ConsolidatedItems: int32(len(items)),
	}
	for _, p := range pages {
		out.LowConfidencePages = append(out.LowConfidencePages, int32(p))
	}
	return out, nil
}
