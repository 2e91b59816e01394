package consolidate

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/internal/entity"
)

func ptr(v float64) *float64 { return &v }

func rawItem(part, brand string, page int, conf float64, price *float64, pass int) *entity.ExtractedItem {
	return &entity.ExtractedItem{
		ID:         uuid.New(),
		PassID:     uuid.New(),
		PassNumber: pass,
		Page:       page,
		BrandCode:  brand,
		PartNumber: part,
		PriceValue: price,
		Currency:   "USD",
		Confidence: conf,
	}
}

func TestConsolidateMergesSamePartAcrossPasses(t *testing.T) {
	docID := uuid.New()
	a := rawItem("AB-123", "SUM", 4, 40, nil, 1)
	b := rawItem("AB-123", "SUM", 4, 60, ptr(19.99), 2)

	out := Consolidate(docID, []*entity.ExtractedItem{a, b})
	if len(out) != 1 {
		t.Fatalf("expected 1 consolidated item, got %d", len(out))
	}
	got := out[0]
	if got.SourceCount != 2 {
		t.Errorf("source_count = %d, want 2", got.SourceCount)
	}
	if got.AvgConfidence != 50 {
		t.Errorf("avg_confidence = %v, want 50", got.AvgConfidence)
	}
	if got.PriceValue == nil || *got.PriceValue != 19.99 {
		t.Errorf("price_value = %v, want 19.99 from higher-confidence item", got.PriceValue)
	}
	if len(got.ContributingItemIDs) != 2 {
		t.Fatalf("contributing ids = %d, want 2", len(got.ContributingItemIDs))
	}
	if got.ContributingItemIDs[0].String() > got.ContributingItemIDs[1].String() {
		t.Error("contributing ids not sorted")
	}
	if got.DocumentID != docID {
		t.Errorf("document id = %s, want %s", got.DocumentID, docID)
	}
}

func TestConsolidateBackfillsPriceFromWeakerMember(t *testing.T) {
	// the representative (higher confidence) missed the price; the merged
	// record must carry the price the weaker read caught
	docID := uuid.New()
	a := rawItem("AB-123", "SUM", 4, 60, nil, 1)
	b := rawItem("AB-123", "SUM", 4, 40, ptr(19.99), 2)

	out := Consolidate(docID, []*entity.ExtractedItem{a, b})
	if len(out) != 1 {
		t.Fatalf("expected 1 consolidated item, got %d", len(out))
	}
	got := out[0]
	if got.AvgConfidence != 50 {
		t.Errorf("avg_confidence = %v, want 50", got.AvgConfidence)
	}
	if got.PriceValue == nil || *got.PriceValue != 19.99 {
		t.Errorf("price_value = %v, want 19.99 backfilled from the weaker member", got.PriceValue)
	}
	if got.SourceCount != 2 {
		t.Errorf("source_count = %d, want 2", got.SourceCount)
	}
}

func TestConsolidateBackfillPrefersBetterMember(t *testing.T) {
	// rep has no price; of the two priced members the higher-confidence one
	// supplies the backfill, along with its price type
	a := rawItem("AB-123", "", 1, 90, nil, 1)
	b := rawItem("AB-123", "", 1, 70, ptr(5.00), 2)
	b.PriceType = "sale"
	c := rawItem("AB-123", "", 1, 80, ptr(6.00), 2)
	c.PriceType = "retail"

	out := Consolidate(uuid.New(), []*entity.ExtractedItem{a, b, c})
	if len(out) != 1 {
		t.Fatalf("clusters = %d, want 1", len(out))
	}
	if out[0].PriceValue == nil || *out[0].PriceValue != 6.00 {
		t.Errorf("price_value = %v, want 6.00 from the stronger priced member", out[0].PriceValue)
	}
	if out[0].PriceType != "retail" {
		t.Errorf("price_type = %q, want retail", out[0].PriceType)
	}
}

func TestConsolidateNormalizesPartNumbers(t *testing.T) {
	a := rawItem("AB-123", "", 1, 70, nil, 1)
	b := rawItem("ab 123", "", 1, 80, nil, 2)

	out := Consolidate(uuid.New(), []*entity.ExtractedItem{a, b})
	if len(out) != 1 {
		t.Fatalf("normalized variants should merge, got %d clusters", len(out))
	}
	// representative keeps its own spelling
	if out[0].PartNumber != "ab 123" {
		t.Errorf("part_number = %q, want representative's %q", out[0].PartNumber, "ab 123")
	}
}

func TestConsolidateSamePartDifferentPagesStaysSeparate(t *testing.T) {
	a := rawItem("AB-123", "SUM", 1, 70, nil, 1)
	b := rawItem("AB-123", "SUM", 2, 70, nil, 1)

	out := Consolidate(uuid.New(), []*entity.ExtractedItem{a, b})
	if len(out) != 2 {
		t.Fatalf("same part on different pages must not merge, got %d", len(out))
	}
}

func TestConsolidateEmptyPartNumbersAreSingletons(t *testing.T) {
	a := rawItem("", "SUM", 3, 50, ptr(5.00), 1)
	b := rawItem("", "SUM", 3, 60, ptr(6.00), 1)

	out := Consolidate(uuid.New(), []*entity.ExtractedItem{a, b})
	if len(out) != 2 {
		t.Fatalf("items without part numbers must never merge, got %d", len(out))
	}
	for _, c := range out {
		if c.SourceCount != 1 {
			t.Errorf("singleton source_count = %d, want 1", c.SourceCount)
		}
	}
}

func TestConsolidateRepresentativeTieBreaks(t *testing.T) {
	docID := uuid.New()

	// equal confidence: non-nil price wins
	a := rawItem("XY-900", "", 1, 70, nil, 1)
	b := rawItem("XY-900", "", 1, 70, ptr(12.50), 2)
	out := Consolidate(docID, []*entity.ExtractedItem{a, b})
	if out[0].PriceValue == nil {
		t.Error("priced item should represent the cluster on a confidence tie")
	}

	// equal confidence and both priced: earlier pass wins
	c := rawItem("XY-901", "", 1, 70, ptr(1.00), 2)
	d := rawItem("XY-901", "", 1, 70, ptr(2.00), 1)
	out = Consolidate(docID, []*entity.ExtractedItem{c, d})
	if *out[0].PriceValue != 2.00 {
		t.Errorf("pass 1 item should win tie, got price %v", *out[0].PriceValue)
	}
}

func TestConsolidateDeterministicUnderShuffle(t *testing.T) {
	docID := uuid.New()
	var items []*entity.ExtractedItem
	for page := 1; page <= 3; page++ {
		items = append(items,
			rawItem("AB-123", "SUM", page, 60, ptr(10), 1),
			rawItem("AB123", "SUM", page, 70, ptr(11), 2),
			rawItem("CD-456", "EXG", page, 50, nil, 1),
			rawItem("", "", page, 40, ptr(1), 1),
		)
	}

	want := Consolidate(docID, items)
	for trial := 0; trial < 5; trial++ {
		shuffled := make([]*entity.ExtractedItem, len(items))
		copy(shuffled, items)
		rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := Consolidate(docID, shuffled)
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("trial %d: consolidation is input-order dependent", trial)
		}
	}
}

func TestConsolidateOutputOrder(t *testing.T) {
	docID := uuid.New()
	items := []*entity.ExtractedItem{
		rawItem("ZZ-999", "B", 2, 50, nil, 1),
		rawItem("AA-111", "A", 2, 50, nil, 1),
		rawItem("MM-555", "A", 1, 50, nil, 1),
	}
	out := Consolidate(docID, items)
	if out[0].Page != 1 {
		t.Errorf("first item page = %d, want 1", out[0].Page)
	}
	if out[1].PartNumber != "AA-111" || out[2].PartNumber != "ZZ-999" {
		t.Error("items on the same page should sort by part number")
	}
}

func TestNormalizePartNumber(t *testing.T) {
	cases := map[string]string{
		"AB-123":    "AB123",
		"ab 123":    "AB123",
		" ab\t123 ": "AB123",
		"":          "",
	}
	for in, want := range cases {
		if got := normalizePartNumber(in); got != want {
			t.Errorf("normalizePartNumber(%q) = %q, want %q", in, got, want)
		}
	}
}
