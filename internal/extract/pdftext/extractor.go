// Package pdftext implements the text_direct extraction method: it reads
// page content streams with pdfcpu and applies regex field extraction to
// the decoded text. It only works for PDFs with a text layer; scanned
// documents need one of the OCR methods.
package pdftext

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/catalogkit/extractor/internal/entity"
	"github.com/catalogkit/extractor/internal/extract"
	"github.com/catalogkit/extractor/internal/extract/parse"
)

// Direct text needs no OCR, so candidates start from a high floor.
const baseConfidence = 75.0

type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract returns a lazy stream: page content is pulled and parsed only as
// the caller consumes candidates, so large documents never sit in memory.
func (e *Extractor) Extract(ctx context.Context, src extract.Source, cfg entity.PassConfig) (extract.Stream, error) {
	pages := extract.PageList(cfg, src.PageCount)

	tmpDir, err := os.MkdirTemp("", "pdftext-*")
	if err != nil {
		return nil, fmt.Errorf("temp dir: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	e.logger.Debug("pdftext.extract.start", "path", src.Path, "pages", len(pages))
	return &stream{
		logger:  e.logger,
		path:    src.Path,
		conf:    conf,
		tmpDir:  tmpDir,
		pages:   pages,
		minConf: cfg.MinConfidence,
	}, nil
}

type stream struct {
	logger  *slog.Logger
	path    string
	conf    *model.Configuration
	tmpDir  string
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

		text, err := s.pageText(page)
		if err != nil {
			s.cleanup()
			return nil, fmt.Errorf("extract page %d: %w", page, err)
		}
		s.pending = extract.FilterConfidence(parse.Page(text, page, baseConfidence), s.minConf)
	}
	c := s.pending[0]
	s.pending = s.pending[1:]
	return &c, nil
}

// pageText extracts the raw content stream for one page and decodes its
// text-showing operators.
func (s *stream) pageText(page int) (string, error) {
	outDir := filepath.Join(s.tmpDir, "p"+strconv.Itoa(page))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	if err := api.ExtractContentFile(s.path, outDir, []string{strconv.Itoa(page)}, s.conf); err != nil {
		return "", err
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(outDir, entry.Name()))
		if err != nil {
			return "", err
		}
		sb.WriteString(decodeContentText(raw))
	}
	return sb.String(), nil
}

func (s *stream) cleanup() {
	if s.closed {
		return
	}
	s.closed = true
	if err := os.RemoveAll(s.tmpDir); err != nil {
		s.logger.Warn("pdftext.cleanup.failed", "dir", s.tmpDir, "error", err)
	}
}

var literalString = regexp.MustCompile(`\((?:\\.|[^\\()])*\)`)

// decodeContentText pulls text out of a PDF content stream: literal strings
// shown with Tj/TJ joined in order, with a line break whenever the text
// cursor moves (Td/TD/T*).
func decodeContentText(raw []byte) string {
	var sb strings.Builder
	for _, opLine := range strings.Split(string(raw), "\n") {
		for _, lit := range literalString.FindAllString(opLine, -1) {
			sb.WriteString(unescapeLiteral(lit))
			sb.WriteByte(' ')
		}
		trimmed := strings.TrimSpace(opLine)
		if strings.HasSuffix(trimmed, "Td") || strings.HasSuffix(trimmed, "TD") || trimmed == "T*" {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func unescapeLiteral(lit string) string {
	lit = strings.TrimSuffix(strings.TrimPrefix(lit, "("), ")")
	var sb strings.Builder
	for i := 0; i < len(lit); i++ {
		if lit[i] == '\\' && i+1 < len(lit) {
			i++
			switch lit[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(lit[i])
			}
			continue
		}
		sb.WriteByte(lit[i])
	}
	return sb.String()
}
