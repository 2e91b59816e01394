package vision

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/catalogkit/extractor/internal/entity"
	"github.com/catalogkit/extractor/internal/extract"
)

// Extractor adapts the vision client to the pass adapter contract.
type Extractor struct {
	client   *Client
	pdftoppm string
	runner   extract.Runner
	logger   *slog.Logger
}

func New(client *Client, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		client:   client,
		pdftoppm: "pdftoppm",
		runner:   extract.ExecRunner(),
		logger:   logger,
	}
}

func (e *Extractor) Extract(ctx context.Context, src extract.Source, cfg entity.PassConfig) (extract.Stream, error) {
	dpi := cfg.DPI
	if dpi <= 0 {
		dpi = 300
	}
	tmpDir, err := os.MkdirTemp("", "vision-*")
	if err != nil {
		return nil, fmt.Errorf("temp dir: %w", err)
	}

	pages := extract.PageList(cfg, src.PageCount)
	e.logger.Debug("vision.extract.start", "path", src.Path, "pages", len(pages), "dpi", dpi)
	return &stream{
		ex:      e,
		path:    src.Path,
		tmpDir:  tmpDir,
		dpi:     dpi,
		pages:   pages,
		minConf: cfg.MinConfidence,
	}, nil
}

type stream struct {
	ex      *Extractor
	path    string
	tmpDir  string
	dpi     int
	pages   []int
	minConf float64
	pageIdx int
	pending []entity.Candidate
	closed  bool
}

func (s *stream) Next(ctx context.Context) (*entity.Candidate, error) {
	for len(s.pending) == 0 {
		if err := ctx.Err(); err != nil {
			s.cleanup()
			return nil, err
		}
		if s.pageIdx >= len(s.pages) {
			s.cleanup()
			return nil, io.EOF
		}
		page := s.pages[s.pageIdx]
		s.pageIdx++

		png, err := s.ex.rasterize(ctx, s.path, s.tmpDir, page, s.dpi)
		if err != nil {
			s.cleanup()
			return nil, fmt.Errorf("rasterize page %d: %w", page, err)
		}
		items, err := s.ex.client.ExtractPage(ctx, png, page)
		if err != nil {
			s.cleanup()
			return nil, fmt.Errorf("vision page %d: %w", page, err)
		}
		s.pending = extract.FilterConfidence(items, s.minConf)
	}
	c := s.pending[0]
	s.pending = s.pending[1:]
	return &c, nil
}

func (s *stream) cleanup() {
	if s.closed {
		return
	}
	s.closed = true
	if err := os.RemoveAll(s.tmpDir); err != nil {
		s.ex.logger.Warn("vision.cleanup.failed", "dir", s.tmpDir, "error", err)
	}
}

func (e *Extractor) rasterize(ctx context.Context, path, tmpDir string, page, dpi int) ([]byte, error) {
	prefix := filepath.Join(tmpDir, "page")
	p := strconv.Itoa(page)
	if _, errb, err := e.runner.Run(ctx, e.pdftoppm, "-f", p, "-l", p, "-r", strconv.Itoa(dpi), "-png", path, prefix); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w (%s)", err, errb)
	}
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no image for page %d", page)
	}
	img := matches[len(matches)-1]
	defer os.Remove(img)
	return os.ReadFile(img)
}
