package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/internal/entity"
)

func sample() []*entity.ConsolidatedItem {
	price := 1234.5
	return []*entity.ConsolidatedItem{
		{
			ID:            uuid.New(),
			DocumentID:    uuid.New(),
			BrandCode:     "EXG",
			PartNumber:    "41-3525",
			PriceType:     "retail",
			PriceValue:    &price,
			Currency:      "USD",
			Page:          3,
			AvgConfidence: 87.25,
			SourceCount:   2,
		},
		{
			ID:            uuid.New(),
			DocumentID:    uuid.New(),
			PartNumber:    "CD-456",
			Currency:      "USD",
			Page:          4,
			AvgConfidence: 55,
			SourceCount:   1,
		},
	}
}

func TestEncodeCSV(t *testing.T) {
	data, err := EncodeCSV(sample())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(records))
	}
	if !reflect.DeepEqual(records[0], Columns) {
		t.Fatalf("header = %v, want %v", records[0], Columns)
	}

	want := []string{"EXG", "41-3525", "retail", "1234.50", "USD", "3", "87.2", "2"}
	if !reflect.DeepEqual(records[1], want) {
		t.Fatalf("row 1 = %v, want %v", records[1], want)
	}
	// no price -> empty cell, not a zero
	if records[2][3] != "" {
		t.Errorf("missing price rendered as %q", records[2][3])
	}
	if records[2][6] != "55.0" {
		t.Errorf("confidence = %q, want 55.0", records[2][6])
	}
}

func TestEncodeCSVEmpty(t *testing.T) {
	data, err := EncodeCSV(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("empty export must still carry the header, got %d rows", len(records))
	}
}

func TestEncodeXLSXRoundTrips(t *testing.T) {
	data, err := EncodeXLSX(sample())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// xlsx files are zip archives
	if len(data) < 4 || data[0] != 'P' || data[1] != 'K' {
		t.Fatal("output is not a zip container")
	}
}

func TestFormatPrice(t *testing.T) {
	if got := formatPrice(nil); got != "" {
		t.Errorf("formatPrice(nil) = %q", got)
	}
	v := 9.9
	if got := formatPrice(&v); got != "9.90" {
		t.Errorf("formatPrice(9.9) = %q, want 9.90", got)
	}
}
