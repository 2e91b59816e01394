package consolidate

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/catalogkit/extractor/internal/entity"
)

// clusterKey identifies one real-world catalog entry. Items with an empty
// part number never merge with each other: itemID makes each its own
// singleton cluster, so a missing identity key means "no match" rather than
// "matches everything empty".
type clusterKey struct {
	brand  string
	part   string
	page   int
	itemID uuid.UUID
}

func keyFor(it *entity.ExtractedItem) clusterKey {
	k := clusterKey{
		brand: strings.ToUpper(strings.TrimSpace(it.BrandCode)),
		part:  normalizePartNumber(it.PartNumber),
		page:  it.Page,
	}
	if k.part == "" {
		k.itemID = it.ID
	}
	return k
}

// normalizePartNumber strips whitespace and hyphens and uppercases, so
// "ab 123" and "AB-123" land in the same cluster.
func normalizePartNumber(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '-':
			continue
		}
		sb.WriteRune(r)
	}
	return strings.ToUpper(sb.String())
}

// betterRepresentative reports whether a should represent a cluster over b.
// Highest confidence wins; ties prefer a non-null price, then the earlier
// pass (cheaper methods run first), then the smaller item id so the choice
// is total.
func betterRepresentative(a, b *entity.ExtractedItem) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	aPrice, bPrice := a.PriceValue != nil, b.PriceValue != nil
	if aPrice != bPrice {
		return aPrice
	}
	if a.PassNumber != b.PassNumber {
		return a.PassNumber < b.PassNumber
	}
	return a.ID.String() < b.ID.String()
}

// Consolidate derives the consolidated set for a document from the raw
// items of its completed passes. The result is a pure function of the
// input: the same items always produce the same set, in the same order.
func Consolidate(documentID uuid.UUID, items []*entity.ExtractedItem) []*entity.ConsolidatedItem {
	clusters := make(map[clusterKey][]*entity.ExtractedItem)
	order := make([]clusterKey, 0, len(items))
	for _, it := range items {
		k := keyFor(it)
		if _, seen := clusters[k]; !seen {
			order = append(order, k)
		}
		clusters[k] = append(clusters[k], it)
	}

	out := make([]*entity.ConsolidatedItem, 0, len(order))
	for _, k := range order {
		out = append(out, merge(documentID, clusters[k]))
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.PartNumber != b.PartNumber {
			return a.PartNumber < b.PartNumber
		}
		if a.BrandCode != b.BrandCode {
			return a.BrandCode < b.BrandCode
		}
		return uuidsLess(a.ContributingItemIDs, b.ContributingItemIDs)
	})
	return out
}

// merge folds one cluster into a single consolidated record: the
// representative's field values, the mean confidence of all members, and
// full provenance. Fields the representative missed are filled from the
// next-best member that caught them, so a high-confidence read without a
// price still yields the price a lower-confidence read found.
func merge(documentID uuid.UUID, members []*entity.ExtractedItem) *entity.ConsolidatedItem {
	ranked := make([]*entity.ExtractedItem, len(members))
	copy(ranked, members)
	sort.Slice(ranked, func(i, j int) bool { return betterRepresentative(ranked[i], ranked[j]) })
	rep := ranked[0]

	sum := 0.0
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		sum += m.Confidence
		ids = append(ids, m.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	out := &entity.ConsolidatedItem{
		DocumentID:          documentID,
		BrandCode:           rep.BrandCode,
		PartNumber:          rep.PartNumber,
		PriceType:           rep.PriceType,
		PriceValue:          rep.PriceValue,
		Currency:            rep.Currency,
		Page:                rep.Page,
		AvgConfidence:       sum / float64(len(members)),
		SourceCount:         len(members),
		ContributingItemIDs: ids,
	}
	for _, m := range ranked[1:] {
		if out.PriceValue == nil && m.PriceValue != nil {
			out.PriceValue = m.PriceValue
			if out.PriceType == "" {
				out.PriceType = m.PriceType
			}
		}
		if out.PriceType == "" && m.PriceType != "" {
			out.PriceType = m.PriceType
		}
	}
	return out
}

func uuidsLess(a, b []uuid.UUID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i].String() < b[i].String()
		}
	}
	return len(a) < len(b)
}
