// Package ocrtext implements the OCR extraction methods: pages are
// rasterized with pdftoppm and read with tesseract, then the recovered text
// goes through the shared line parser. The three registered variants differ
// only in page segmentation mode and confidence floor.
package ocrtext

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/catalogkit/extractor/internal/entity"
	"github.com/catalogkit/extractor/internal/extract"
	"github.com/catalogkit/extractor/internal/extract/parse"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Lang        string // default "eng"
	TessdataDir string

	PSM int // page segmentation mode; 6 suits tabular catalog pages
	OEM int // 1 = LSTM; leave 0 to use default

	// BaseConfidence is the floor for a bare parsed match when tesseract
	// reports no word confidences for the page.
	BaseConfidence float64
}

type Extractor struct {
	cfg    Config
	runner extract.Runner
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	if cfg.BaseConfidence <= 0 {
		cfg.BaseConfidence = 55
	}
	return &Extractor{cfg: cfg, runner: extract.ExecRunner(), logger: logger}
}

// Extract returns a lazy stream: each page is rasterized and read only as
// the caller consumes candidates.
func (e *Extractor) Extract(ctx context.Context, src extract.Source, cfg entity.PassConfig) (extract.Stream, error) {
	dpi := cfg.DPI
	if dpi <= 0 {
		dpi = 300
	}

	tmpDir, err := os.MkdirTemp("", "ocrtext-*")
	if err != nil {
		return nil, fmt.Errorf("temp dir: %w", err)
	}

	pages := extract.PageList(cfg, src.PageCount)
	e.logger.Debug("ocrtext.extract.start", "path", src.Path, "pages", len(pages), "dpi", dpi)
	return &stream{
		ex:      e,
		path:    src.Path,
		tmpDir:  tmpDir,
		dpi:     dpi,
		keep:    cfg.Debug,
		pages:   pages,
		minConf: cfg.MinConfidence,
	}, nil
}

type stream struct {
	ex      *Extractor
	path    string
	tmpDir  string
	dpi     int
	keep    bool
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

		text, conf, err := s.ex.pageOCR(ctx, s.path, s.tmpDir, page, s.dpi)
		if err != nil {
			s.cleanup()
			return nil, fmt.Errorf("ocr page %d: %w", page, err)
		}
		s.pending = extract.FilterConfidence(parse.Page(text, page, conf), s.minConf)
	}
	c := s.pending[0]
	s.pending = s.pending[1:]
	return &c, nil
}

func (s *stream) cleanup() {
	if s.closed || s.keep {
		s.closed = true
		return
	}
	s.closed = true
	if err := os.RemoveAll(s.tmpDir); err != nil {
		s.ex.logger.Warn("ocrtext.cleanup.failed", "dir", s.tmpDir, "error", err)
	}
}

// pageOCR rasterizes one page and reads it with tesseract. The returned
// confidence is the mean tesseract word confidence for the page, or the
// configured floor when tesseract reports none.
func (e *Extractor) pageOCR(ctx context.Context, path, tmpDir string, page, dpi int) (string, float64, error) {
	prefix := filepath.Join(tmpDir, "page")
	p := strconv.Itoa(page)
	// pdftoppm -f N -l N -r <dpi> -png <in.pdf> <tmp/page>
	if _, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-f", p, "-l", p, "-r", strconv.Itoa(dpi), "-png", path, prefix); err != nil {
		return "", 0, fmt.Errorf("pdftoppm: %w (%s)", err, clip(string(errb), 512))
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", 0, fmt.Errorf("pdftoppm produced no image for page %d", page)
	}
	img := matches[len(matches)-1]
	defer os.Remove(img)

	text, err := e.tesseractOCR(ctx, img)
	if err != nil {
		return "", 0, err
	}

	conf := e.cfg.BaseConfidence
	if c, err := e.tesseractTSVConfidence(ctx, img); err == nil && c > 0 {
		conf = c
	}
	return text, conf, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, img string) (string, error) {
	args := e.tessArgs(img)
	// tesseract <img> stdout -l <lang> --psm <psm>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (%s)", err, clip(string(errb), 512))
	}
	return string(out), nil
}

// tesseractTSVConfidence runs tesseract in TSV mode and returns the mean
// word confidence in 0..100.
func (e *Extractor) tesseractTSVConfidence(ctx context.Context, img string) (float64, error) {
	args := append(e.tessArgs(img), "tsv")
	out, _, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return 0, err
	}

	var sum, n float64
	for i, ln := range strings.Split(string(out), "\n") {
		if i == 0 || len(ln) == 0 {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		confStr := cols[len(cols)-2]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return sum / n, nil
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}

func (e *Extractor) tessArgs(img string) []string {
	args := []string{img, "stdout", "-l", e.cfg.Lang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	return args
}
