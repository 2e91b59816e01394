// Package parse turns lines of recovered page text into item candidates.
// The text and OCR adapters share it: both produce line-oriented text and
// recognize the same field shapes.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/catalogkit/extractor/constants"
	"github.com/catalogkit/extractor/internal/entity"
)

// Catalog part numbers come in a handful of shapes; keep the list tight so
// random alphanumeric noise does not qualify.
var partNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{2}-\d{3,4}[A-Z0-9]{0,6}(?:-\d+)?)\b`), // 41-3525, 28-9313PT, 36-9313PT-1
	regexp.MustCompile(`\b(\d{2}[A-Z]-?\d{4})\b`),                   // 43D7276, 36U-9332
	regexp.MustCompile(`\b([A-Z]{2,4}-\d{4,6}-?[A-Z0-9]{0,6})\b`),   // ABC-12345, SUM-715030
	regexp.MustCompile(`\b([A-Z]{3}\d{4,6})\b`),                     // SUM715030, EXG1181
}

var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)USD\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*\.\d{2})\s*(?:USD|\$)`),
}

var (
	brandPattern     = regexp.MustCompile(`\b([A-Z]{2,4})\b`)
	priceTypePattern = regexp.MustCompile(`(?i)\b(retail|sale|each|per\s*unit|list\s*price|your\s*price)\b`)
)

// Line extracts at most one candidate from a line of page text. base is the
// adapter's confidence floor for a bare match; finding both a part number
// and a price adds 15, a brand code another 5, capped at 100.
func Line(line string, page int, base float64) (*entity.Candidate, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}

	var partNumber string
	for _, p := range partNumberPatterns {
		if m := p.FindStringSubmatch(line); m != nil {
			partNumber = m[1]
			break
		}
	}

	priceValue := Price(line)
	if partNumber == "" && priceValue == nil {
		return nil, false
	}

	c := &entity.Candidate{
		Page:       page,
		PartNumber: partNumber,
		PriceValue: priceValue,
		Currency:   constants.DefaultCurrency,
		RawText:    line,
	}

	// Brand codes are 2-4 capitals, but only trust one that is not the
	// alphabetic prefix of the part number itself.
	if m := brandPattern.FindStringSubmatch(line); m != nil && !strings.HasPrefix(partNumber, m[1]) {
		c.BrandCode = m[1]
	}
	if m := priceTypePattern.FindStringSubmatch(line); m != nil {
		c.PriceType = strings.ToLower(strings.Join(strings.Fields(m[1]), " "))
	}

	conf := base
	if partNumber != "" && priceValue != nil {
		conf += 15
	}
	if c.BrandCode != "" {
		conf += 5
	}
	if conf > 100 {
		conf = 100
	}
	c.Confidence = conf

	return c, true
}

// Price returns the first plausible price in the line.
func Price(line string) *float64 {
	for _, p := range pricePatterns {
		m := p.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil || v <= 0 {
			continue
		}
		return &v
	}
	return nil
}

// Page splits page text into lines and parses each.
func Page(text string, page int, base float64) []entity.Candidate {
	var out []entity.Candidate
	for _, line := range strings.Split(text, "\n") {
		if c, ok := Line(line, page, base); ok {
			out = append(out, *c)
		}
	}
	return out
}
