package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/catalogkit/extractor/internal/entity"
	"github.com/catalogkit/extractor/internal/repository"
)

// Format selects the export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Columns is the export column order, shared by both encodings.
var Columns = []string{
	"brand_code",
	"part_number",
	"price_type",
	"price_value",
	"currency",
	"page",
	"confidence",
	"source_count",
}

// Service produces CSV or XLSX bytes from a document's consolidated items.
type Service struct {
	consolidated repository.ConsolidatedItemRepository
	logger       *slog.Logger
}

func NewService(consolidated repository.ConsolidatedItemRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{consolidated: consolidated, logger: logger}
}

// Export returns the consolidated items of a document encoded in the given
// format, plus the row count.
func (s *Service) Export(ctx context.Context, documentID uuid.UUID, format Format) ([]byte, int, error) {
	start := time.Now()

	items, err := s.consolidated.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, 0, fmt.Errorf("query consolidated items: %w", err)
	}

	var out []byte
	switch format {
	case FormatCSV, "":
		out, err = EncodeCSV(items)
	case FormatXLSX:
		out, err = EncodeXLSX(items)
	default:
		return nil, 0, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, 0, err
	}

	s.logger.Info("export.ok",
		"document_id", documentID.String(),
		"format", string(format),
		"rows", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, len(items), nil
}

// EncodeCSV writes the items as CSV with a header row. Prices are rendered
// with two decimals; a missing price is an empty cell.
func EncodeCSV(items []*entity.ConsolidatedItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return nil, err
	}
	for _, it := range items {
		rec := []string{
			it.BrandCode,
			it.PartNumber,
			it.PriceType,
			formatPrice(it.PriceValue),
			it.Currency,
			strconv.Itoa(it.Page),
			strconv.FormatFloat(it.AvgConfidence, 'f', 1, 64),
			strconv.Itoa(it.SourceCount),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeXLSX writes the items to a single-sheet workbook.
func EncodeXLSX(items []*entity.ConsolidatedItem) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Items"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, it := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, it.BrandCode)
		write(2, it.PartNumber)
		write(3, it.PriceType)
		if it.PriceValue != nil {
			write(4, *it.PriceValue)
		}
		write(5, it.Currency)
		write(6, it.Page)
		write(7, it.AvgConfidence)
		write(8, it.SourceCount)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 24)
	_ = f.SetColWidth(sheet, "C", "E", 12)
	_ = f.SetColWidth(sheet, "F", "H", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func formatPrice(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
