package parse

import (
	"testing"
)

func TestLinePartNumberShapes(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"41-3525 Brake Pad $12.99", "41-3525"},
		{"28-9313PT gasket set", "28-9313PT"},
		{"36-9313PT-1 upper hose", "36-9313PT-1"},
		{"43D7276 alternator", "43D7276"},
		{"36U-9332 mount", "36U-9332"},
		{"SUM-715030 header kit", "SUM-715030"},
		{"SUM715030 header kit", "SUM715030"},
		{"EXG1181 exhaust tip", "EXG1181"},
	}
	for _, tc := range cases {
		c, ok := Line(tc.line, 1, 75)
		if !ok {
			t.Errorf("Line(%q) matched nothing", tc.line)
			continue
		}
		if c.PartNumber != tc.want {
			t.Errorf("Line(%q) part = %q, want %q", tc.line, c.PartNumber, tc.want)
		}
	}
}

func TestLineNoMatch(t *testing.T) {
	for _, line := range []string{
		"",
		"   ",
		"plain descriptive text with no part or price",
		"chapter 7",
	} {
		if c, ok := Line(line, 1, 75); ok {
			t.Errorf("Line(%q) = %+v, want no match", line, c)
		}
	}
}

func TestPrice(t *testing.T) {
	cases := []struct {
		line string
		want float64
	}{
		{"widget $1,234.56 each", 1234.56},
		{"widget $ 19.99", 19.99},
		{"widget USD 42", 42},
		{"widget usd 42.50", 42.50},
		{"widget 99.95 USD", 99.95},
		{"widget 99.95$", 99.95},
		{"bulk price $450", 450},
	}
	for _, tc := range cases {
		v := Price(tc.line)
		if v == nil {
			t.Errorf("Price(%q) = nil, want %v", tc.line, tc.want)
			continue
		}
		if *v != tc.want {
			t.Errorf("Price(%q) = %v, want %v", tc.line, *v, tc.want)
		}
	}

	for _, line := range []string{"no price here", "$0.00", "call for price"} {
		if v := Price(line); v != nil {
			t.Errorf("Price(%q) = %v, want nil", line, *v)
		}
	}
}

func TestLineBrandNotPartPrefix(t *testing.T) {
	// SUM is the alphabetic prefix of the part number, not a brand
	c, ok := Line("SUM-715030 header kit $89.99", 1, 75)
	if !ok {
		t.Fatal("no match")
	}
	if c.BrandCode == "SUM" {
		t.Errorf("brand = %q, part prefix must not count as brand", c.BrandCode)
	}

	// EXG precedes a numeric part, so it is a real brand here
	c, ok = Line("EXG 41-3525 muffler $55.00", 1, 75)
	if !ok {
		t.Fatal("no match")
	}
	if c.BrandCode != "EXG" {
		t.Errorf("brand = %q, want EXG", c.BrandCode)
	}
}

func TestLinePriceType(t *testing.T) {
	cases := map[string]string{
		"41-3525 Retail $12.99":     "retail",
		"41-3525 $12.99 per  unit":  "per unit",
		"41-3525 List Price $12.99": "list price",
		"41-3525 $12.99":            "",
	}
	for line, want := range cases {
		c, ok := Line(line, 1, 75)
		if !ok {
			t.Fatalf("Line(%q) matched nothing", line)
		}
		if c.PriceType != want {
			t.Errorf("Line(%q) price_type = %q, want %q", line, c.PriceType, want)
		}
	}
}

func TestLineConfidence(t *testing.T) {
	cases := []struct {
		name string
		line string
		base float64
		want float64
	}{
		{"part only", "41-3525 bracket", 75, 75},
		{"part and price", "41-3525 bracket $9.99", 75, 90},
		{"part, price and brand", "EXG 41-3525 bracket $9.99", 75, 95},
		{"capped at 100", "EXG 41-3525 bracket $9.99", 97, 100},
		{"ocr floor", "41-3525 bracket", 55, 55},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := Line(tc.line, 1, tc.base)
			if !ok {
				t.Fatal("no match")
			}
			if c.Confidence != tc.want {
				t.Errorf("confidence = %v, want %v", c.Confidence, tc.want)
			}
		})
	}
}

func TestLineCurrencyAndPage(t *testing.T) {
	c, ok := Line("41-3525 $9.99", 7, 75)
	if !ok {
		t.Fatal("no match")
	}
	if c.Currency != "USD" {
		t.Errorf("currency = %q, want USD", c.Currency)
	}
	if c.Page != 7 {
		t.Errorf("page = %d, want 7", c.Page)
	}
	if c.RawText != "41-3525 $9.99" {
		t.Errorf("raw_text = %q", c.RawText)
	}
}

func TestPage(t *testing.T) {
	text := "HEADER LINE\n41-3525 bracket $9.99\n\nnothing useful\nEXG1181 tip USD 55.00\n"
	out := Page(text, 3, 75)
	if len(out) != 2 {
		t.Fatalf("candidates = %d, want 2", len(out))
	}
	if out[0].PartNumber != "41-3525" || out[1].PartNumber != "EXG1181" {
		t.Errorf("parts = %q, %q", out[0].PartNumber, out[1].PartNumber)
	}
	for _, c := range out {
		if c.Page != 3 {
			t.Errorf("page = %d, want 3", c.Page)
		}
	}
}
