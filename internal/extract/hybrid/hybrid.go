// Package hybrid implements the hybrid extraction method: direct text
// extraction first, with a full OCR fallback when the text layer yields
// nothing. Scanned PDFs with no text layer take the fallback path without
// the caller having to know in advance.
package hybrid

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/catalogkit/extractor/internal/entity"
	"github.com/catalogkit/extractor/internal/extract"
)

type Extractor struct {
	text   extract.Extractor
	ocr    extract.Extractor
	logger *slog.Logger
}

func New(text, ocr extract.Extractor, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{text: text, ocr: ocr, logger: logger}
}

func (e *Extractor) Extract(ctx context.Context, src extract.Source, cfg entity.PassConfig) (extract.Stream, error) {
	if cfg.ForceOCR {
		return e.ocr.Extract(ctx, src, cfg)
	}
	primary, err := e.text.Extract(ctx, src, cfg)
	if err != nil {
		e.logger.Warn("hybrid.text.unavailable", "path", src.Path, "error", err)
		return e.ocr.Extract(ctx, src, cfg)
	}
	return &stream{ex: e, src: src, cfg: cfg, cur: primary}, nil
}

type stream struct {
	ex       *Extractor
	src      extract.Source
	cfg      entity.PassConfig
	cur      extract.Stream
	yielded  int
	fellBack bool
}

func (s *stream) Next(ctx context.Context) (*entity.Candidate, error) {
	c, err := s.cur.Next(ctx)
	if err == nil {
		s.yielded++
		return c, nil
	}
	if !errors.Is(err, io.EOF) || s.fellBack || s.yielded > 0 {
		return nil, err
	}

	// Text layer produced nothing; the document is likely scanned.
	s.ex.logger.Info("hybrid.fallback.ocr", "path", s.src.Path)
	s.fellBack = true
	fallback, ferr := s.ex.ocr.Extract(ctx, s.src, s.cfg)
	if ferr != nil {
		return nil, ferr
	}
	s.cur = fallback
	c, err = s.cur.Next(ctx)
	if err == nil {
		s.yielded++
	}
	return c, err
}
