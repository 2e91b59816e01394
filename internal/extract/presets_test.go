package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/catalogkit/extractor/internal/entity"
)

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	content := `{
		"ocr_table":      {"dpi": 350, "min_confidence": 40, "force_ocr": true},
		"ocr_aggressive": {"dpi": 450}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p["ocr_table"].DPI != 350 || !p["ocr_table"].ForceOCR {
		t.Fatalf("ocr_table preset = %+v", p["ocr_table"])
	}
}

func TestLoadPresetsEmptyPath(t *testing.T) {
	p, err := LoadPresets("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(p) != 0 {
		t.Fatalf("presets = %v, want empty", p)
	}
}

func TestLoadPresetsRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown method": `{"made_up": {"dpi": 300}}`,
		"dpi too low":    `{"ocr_table": {"dpi": 10}}`,
		"not an object":  `[1, 2, 3]`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "presets.json")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadPresets(path); err == nil {
				t.Fatal("invalid presets accepted")
			}
		})
	}
}

func TestPresetsApply(t *testing.T) {
	p := Presets{"ocr_table": {DPI: 350, MinConfidence: 40, ForceOCR: true}}

	got := p.Apply("ocr_table", entity.PassConfig{})
	if got.DPI != 350 || got.MinConfidence != 40 || !got.ForceOCR {
		t.Fatalf("applied = %+v", got)
	}

	// explicit fields win over the preset
	got = p.Apply("ocr_table", entity.PassConfig{DPI: 200, MinConfidence: 80})
	if got.DPI != 200 || got.MinConfidence != 80 {
		t.Fatalf("explicit config overridden: %+v", got)
	}

	// unknown method passes through untouched
	got = p.Apply("text_direct", entity.PassConfig{DPI: 72})
	if got.DPI != 72 {
		t.Fatalf("pass-through = %+v", got)
	}
}
