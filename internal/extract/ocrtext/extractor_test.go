package ocrtext

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/catalogkit/extractor/internal/entity"
	"github.com/catalogkit/extractor/internal/extract"
)

// fakeRunner answers pdftoppm by dropping an image file where the glob
// expects it, and tesseract with canned text / TSV output.
type fakeRunner struct {
	text  string
	tsv   string
	calls [][]string

	pdftoppmErr error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	switch {
	case strings.Contains(name, "pdftoppm"):
		if f.pdftoppmErr != nil {
			return nil, []byte("boom"), f.pdftoppmErr
		}
		prefix := args[len(args)-1]
		if err := os.WriteFile(prefix+"-1.png", []byte("png"), 0o644); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil
	case args[len(args)-1] == "tsv":
		return []byte(f.tsv), nil, nil
	default:
		return []byte(f.text), nil, nil
	}
}

func tsvLine(conf, word string) string {
	return strings.Join([]string{"5", "1", "1", "1", "1", "1", "0", "0", "10", "10", conf, word}, "\t")
}

func tsvDoc(lines ...string) string {
	header := strings.Join([]string{"level", "page_num", "block_num", "par_num", "line_num", "word_num", "left", "top", "width", "height", "conf", "text"}, "\t")
	return header + "\n" + strings.Join(lines, "\n") + "\n"
}

func newTestExtractor(cfg Config, r extract.Runner) *Extractor {
	e := New(cfg, nil)
	e.runner = r
	return e
}

func TestExtractStreamsParsedCandidates(t *testing.T) {
	runner := &fakeRunner{
		text: "41-3525 bracket $9.99\nEXG1181 tip USD 55.00\n",
		tsv:  tsvDoc(tsvLine("80", "41-3525"), tsvLine("90", "$9.99")),
	}
	e := newTestExtractor(Config{PSM: 6, BaseConfidence: 60}, runner)

	s, err := e.Extract(context.Background(), extract.Source{Path: "/tmp/catalog.pdf", PageCount: 1}, entity.PassConfig{DPI: 200})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	var got []*entity.Candidate
	for {
		c, err := s.Next(context.Background())
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		got = append(got, c)
	}
	if len(got) != 2 {
		t.Fatalf("candidates = %d, want 2", len(got))
	}
	if got[0].PartNumber != "41-3525" || got[1].PartNumber != "EXG1181" {
		t.Errorf("parts = %q, %q", got[0].PartNumber, got[1].PartNumber)
	}
	// mean TSV confidence 85 + 15 for part and price
	if got[0].Confidence != 100 {
		t.Errorf("confidence = %v, want 100", got[0].Confidence)
	}

	// pdftoppm invoked with the pass DPI
	first := runner.calls[0]
	if !strings.Contains(first[0], "pdftoppm") {
		t.Fatalf("first call = %v, want pdftoppm", first)
	}
	found := false
	for i, a := range first {
		if a == "-r" && i+1 < len(first) && first[i+1] == "200" {
			found = true
		}
	}
	if !found {
		t.Errorf("dpi not passed to pdftoppm: %v", first)
	}
}

func TestExtractFallsBackToBaseConfidence(t *testing.T) {
	runner := &fakeRunner{
		text: "41-3525 bracket\n",
		tsv:  tsvDoc(), // header only, no word confidences
	}
	e := newTestExtractor(Config{BaseConfidence: 55}, runner)

	s, err := e.Extract(context.Background(), extract.Source{Path: "x.pdf", PageCount: 1}, entity.PassConfig{})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	c, err := s.Next(context.Background())
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if c.Confidence != 55 {
		t.Errorf("confidence = %v, want floor 55", c.Confidence)
	}
}

func TestExtractDropsCandidatesBelowMinConfidence(t *testing.T) {
	// page reads at TSV mean 70; a part-and-price line scores 85, a bare
	// part line 70, so min_confidence 80 keeps only the first
	runner := &fakeRunner{
		text: "41-3525 bracket $9.99\n28-9313PT gasket\n",
		tsv:  tsvDoc(tsvLine("70", "41-3525")),
	}
	e := newTestExtractor(Config{}, runner)

	s, err := e.Extract(context.Background(), extract.Source{Path: "x.pdf", PageCount: 1}, entity.PassConfig{MinConfidence: 80})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	c, err := s.Next(context.Background())
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if c.PartNumber != "41-3525" {
		t.Fatalf("part = %q, want the part-and-price line", c.PartNumber)
	}
	if _, err := s.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF after the weak line is dropped", err)
	}
}

func TestTSVConfidenceSkipsNonWords(t *testing.T) {
	runner := &fakeRunner{
		tsv: tsvDoc(tsvLine("-1", ""), tsvLine("70", "a"), tsvLine("90", "b")),
	}
	e := newTestExtractor(Config{}, runner)

	conf, err := e.tesseractTSVConfidence(context.Background(), "img.png")
	if err != nil {
		t.Fatalf("tsv: %v", err)
	}
	if conf != 80 {
		t.Errorf("conf = %v, want 80 (mean of real words)", conf)
	}
}

func TestExtractStreamFailureCleansUp(t *testing.T) {
	runner := &fakeRunner{pdftoppmErr: errors.New("no such file")}
	e := newTestExtractor(Config{}, runner)

	raw, err := e.Extract(context.Background(), extract.Source{Path: "gone.pdf", PageCount: 1}, entity.PassConfig{})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	s := raw.(*stream)

	if _, err := s.Next(context.Background()); err == nil {
		t.Fatal("expected page failure")
	}
	if _, err := os.Stat(s.tmpDir); !os.IsNotExist(err) {
		t.Errorf("temp dir %s not removed", s.tmpDir)
	}
}

func TestExtractDebugKeepsTempDir(t *testing.T) {
	runner := &fakeRunner{text: "", tsv: tsvDoc()}
	e := newTestExtractor(Config{}, runner)

	raw, err := e.Extract(context.Background(), extract.Source{Path: "x.pdf", PageCount: 1}, entity.PassConfig{Debug: true})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	s := raw.(*stream)
	defer os.RemoveAll(s.tmpDir)

	if _, err := s.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
	if _, err := os.Stat(s.tmpDir); err != nil {
		t.Errorf("debug run removed temp dir: %v", err)
	}
}

func TestTessArgs(t *testing.T) {
	e := New(Config{PSM: 11, OEM: 1, TessdataDir: "/opt/tessdata", Lang: "deu"}, nil)
	args := e.tessArgs("page.png")
	want := []string{"page.png", "stdout", "-l", "deu", "--psm", "11", "--oem", "1", "--tessdata-dir", "/opt/tessdata"}
	if strings.Join(args, " ") != strings.Join(want, " ") {
		t.Fatalf("args = %v, want %v", args, want)
	}

	e = New(Config{}, nil)
	args = e.tessArgs(filepath.Join("a", "b.png"))
	if len(args) != 4 || args[2] != "-l" || args[3] != "eng" {
		t.Fatalf("default args = %v", args)
	}
}
