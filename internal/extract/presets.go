package extract

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/catalogkit/extractor/internal/entity"
)

//go:embed presets_schema.json
var presetsSchema string

// Presets maps a method name to the default configuration applied when a
// caller omits a field. Loaded from an operator-provided JSON file.
type Presets map[string]entity.PassConfig

// LoadPresets reads and validates a presets file. A missing path yields an
// empty preset set.
func LoadPresets(path string) (Presets, error) {
	if path == "" {
		return Presets{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}

	sch, err := jsonschema.CompileString("presets_schema.json", presetsSchema)
	if err != nil {
		return nil, fmt.Errorf("compile presets schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate presets: %w", err)
	}

	var p Presets
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	return p, nil
}

// Apply fills zero-valued fields of cfg from the preset for method, if any.
func (p Presets) Apply(method string, cfg entity.PassConfig) entity.PassConfig {
	def, ok := p[method]
	if !ok {
		return cfg
	}
	if cfg.DPI == 0 {
		cfg.DPI = def.DPI
	}
	if cfg.MinConfidence == 0 {
		cfg.MinConfidence = def.MinConfidence
	}
	if cfg.EndPage == 0 {
		cfg.EndPage = def.EndPage
	}
	if !cfg.ForceOCR {
		cfg.ForceOCR = def.ForceOCR
	}
	return cfg
}
