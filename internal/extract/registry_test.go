package extract

import (
	"context"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/catalogkit/extractor/internal/common"
	"github.com/catalogkit/extractor/internal/entity"
)

type nopExtractor struct{}

func (nopExtractor) Extract(context.Context, Source, entity.PassConfig) (Stream, error) {
	return SliceStream(nil), nil
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("text_direct", nopExtractor{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := r.Lookup("text_direct"); err != nil {
		t.Fatalf("lookup: %v", err)
	}
}

func TestRegistryRejectsUnknownMethodName(t *testing.T) {
	r := NewRegistry()
	err := r.Register("made_up_method", nopExtractor{})
	if !errors.Is(err, common.ErrInvalidConfiguration) {
		t.Fatalf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestRegistryRejectsDuplicateRegistration(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("ocr_table", nopExtractor{}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := r.Register("ocr_table", nopExtractor{}); err == nil {
		t.Fatal("duplicate registration accepted")
	}
}

func TestRegistryLookupErrors(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("ocr_table", nopExtractor{}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// unknown name and known-but-unregistered method look the same to callers
	for _, name := range []string{"made_up_method", "claude_vision"} {
		if _, err := r.Lookup(name); !errors.Is(err, common.ErrInvalidConfiguration) {
			t.Errorf("Lookup(%q) err = %v, want ErrInvalidConfiguration", name, err)
		}
	}
}

func TestRegistryMethodsSorted(t *testing.T) {
	r := NewRegistry()
	for _, m := range []string{"ocr_table", "hybrid", "text_direct"} {
		if err := r.Register(m, nopExtractor{}); err != nil {
			t.Fatalf("register %s: %v", m, err)
		}
	}
	want := []string{"hybrid", "ocr_table", "text_direct"}
	if got := r.Methods(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Methods() = %v, want %v", got, want)
	}
}

func TestPageList(t *testing.T) {
	cases := []struct {
		name string
		cfg  entity.PassConfig
		n    int
		want []int
	}{
		{"whole document", entity.PassConfig{}, 3, []int{1, 2, 3}},
		{"range", entity.PassConfig{StartPage: 1, EndPage: 3}, 5, []int{2, 3}},
		{"end clamped", entity.PassConfig{EndPage: 10}, 2, []int{1, 2}},
		{"explicit pages win", entity.PassConfig{StartPage: 1, Pages: []int{4, 1}}, 5, []int{4, 1}},
		{"empty document", entity.PassConfig{}, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PageList(tc.cfg, tc.n); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("PageList = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterConfidence(t *testing.T) {
	items := []entity.Candidate{
		{PartNumber: "AB-123", Confidence: 95},
		{PartNumber: "CD-456", Confidence: 60},
		{PartNumber: "EF-789", Confidence: 59.9},
	}

	got := FilterConfidence(items, 60)
	if len(got) != 2 || got[0].PartNumber != "AB-123" || got[1].PartNumber != "CD-456" {
		t.Fatalf("filtered = %v", got)
	}

	// zero threshold keeps everything
	if got := FilterConfidence(items, 0); len(got) != 3 {
		t.Fatalf("zero threshold dropped items: %d of 3", len(got))
	}
}

func TestSliceStream(t *testing.T) {
	s := SliceStream([]entity.Candidate{{PartNumber: "AB-123"}, {PartNumber: "CD-456"}})

	first, err := s.Next(context.Background())
	if err != nil || first.PartNumber != "AB-123" {
		t.Fatalf("first = %v, %v", first, err)
	}
	if _, err := s.Next(context.Background()); err != nil {
		t.Fatalf("second: %v", err)
	}
	if _, err := s.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := SliceStream([]entity.Candidate{{}}).Next(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
