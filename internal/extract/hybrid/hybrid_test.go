package hybrid

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/catalogkit/extractor/internal/entity"
	"github.com/catalogkit/extractor/internal/extract"
)

type stubExtractor struct {
	items []entity.Candidate
	err   error
	calls int
}

func (s *stubExtractor) Extract(context.Context, extract.Source, entity.PassConfig) (extract.Stream, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return extract.SliceStream(s.items), nil
}

func drain(t *testing.T, s extract.Stream) []*entity.Candidate {
	t.Helper()
	var out []*entity.Candidate
	for {
		c, err := s.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		out = append(out, c)
	}
}

func TestHybridPrefersTextLayer(t *testing.T) {
	text := &stubExtractor{items: []entity.Candidate{{PartNumber: "AB-123"}, {PartNumber: "CD-456"}}}
	ocr := &stubExtractor{items: []entity.Candidate{{PartNumber: "OCR-ONLY"}}}
	e := New(text, ocr, nil)

	s, err := e.Extract(context.Background(), extract.Source{Path: "x.pdf", PageCount: 1}, entity.PassConfig{})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	got := drain(t, s)
	if len(got) != 2 || got[0].PartNumber != "AB-123" {
		t.Fatalf("got %d items, want the text layer's 2", len(got))
	}
	if ocr.calls != 0 {
		t.Errorf("ocr invoked %d times despite text yields", ocr.calls)
	}
}

func TestHybridFallsBackWhenTextYieldsNothing(t *testing.T) {
	text := &stubExtractor{} // empty stream, likely a scanned document
	ocr := &stubExtractor{items: []entity.Candidate{{PartNumber: "41-3525"}}}
	e := New(text, ocr, nil)

	s, err := e.Extract(context.Background(), extract.Source{Path: "scan.pdf", PageCount: 1}, entity.PassConfig{})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	got := drain(t, s)
	if len(got) != 1 || got[0].PartNumber != "41-3525" {
		t.Fatalf("fallback items = %v", got)
	}
	if ocr.calls != 1 {
		t.Errorf("ocr calls = %d, want 1", ocr.calls)
	}
}

func TestHybridFallsBackOnlyOnce(t *testing.T) {
	text := &stubExtractor{}
	ocr := &stubExtractor{} // fallback is empty too
	e := New(text, ocr, nil)

	s, _ := e.Extract(context.Background(), extract.Source{}, entity.PassConfig{})
	if got := drain(t, s); len(got) != 0 {
		t.Fatalf("items = %d, want 0", len(got))
	}
	// further Next calls stay EOF, no second fallback
	if _, err := s.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatal("stream did not stay exhausted")
	}
	if ocr.calls != 1 {
		t.Errorf("ocr calls = %d, want 1", ocr.calls)
	}
}

func TestHybridForceOCRSkipsTextLayer(t *testing.T) {
	text := &stubExtractor{items: []entity.Candidate{{PartNumber: "TEXT"}}}
	ocr := &stubExtractor{items: []entity.Candidate{{PartNumber: "OCR"}}}
	e := New(text, ocr, nil)

	s, err := e.Extract(context.Background(), extract.Source{}, entity.PassConfig{ForceOCR: true})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	got := drain(t, s)
	if len(got) != 1 || got[0].PartNumber != "OCR" {
		t.Fatalf("items = %v, want the OCR stream", got)
	}
	if text.calls != 0 {
		t.Errorf("text layer invoked %d times under force_ocr", text.calls)
	}
}

func TestHybridTextExtractErrorFallsBack(t *testing.T) {
	text := &stubExtractor{err: errors.New("no text layer")}
	ocr := &stubExtractor{items: []entity.Candidate{{PartNumber: "OCR"}}}
	e := New(text, ocr, nil)

	s, err := e.Extract(context.Background(), extract.Source{}, entity.PassConfig{})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	got := drain(t, s)
	if len(got) != 1 || got[0].PartNumber != "OCR" {
		t.Fatalf("items = %v, want the OCR stream", got)
	}
}

func TestHybridPartialTextThenEOFDoesNotFallBack(t *testing.T) {
	text := &stubExtractor{items: []entity.Candidate{{PartNumber: "AB-123"}}}
	ocr := &stubExtractor{items: []entity.Candidate{{PartNumber: "OCR"}}}
	e := New(text, ocr, nil)

	s, _ := e.Extract(context.Background(), extract.Source{}, entity.PassConfig{})
	if got := drain(t, s); len(got) != 1 || got[0].PartNumber != "AB-123" {
		t.Fatalf("items = %v", got)
	}
	if ocr.calls != 0 {
		t.Errorf("ocr invoked after a productive text pass")
	}
}
