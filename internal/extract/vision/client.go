// Package vision implements the claude_vision extraction method: each page
// is rasterized and sent to the Anthropic Messages API, which reads the
// catalog table directly from the image. It is the adapter of last resort
// for pages where layout-aware OCR keeps failing.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/catalogkit/extractor/constants"
	"github.com/catalogkit/extractor/internal/entity"
)

// Config for the vision client.
type Config struct {
	APIKey  string        // if empty, falls back to env ANTHROPIC_API_KEY
	BaseURL string        // default https://api.anthropic.com
	Model   string        // e.g. "claude-3-5-sonnet-latest"
	Timeout time.Duration // http client timeout
	MaxTok  int
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-3-5-sonnet-latest"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxTok <= 0 {
		cfg.MaxTok = 4096
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

const itemsSchema = `{
  "type": "object",
  "required": ["items"],
  "properties": {
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["raw_text", "confidence"],
        "properties": {
          "brand_code":  {"type": "string"},
          "part_number": {"type": "string"},
          "price_type":  {"type": "string"},
          "price_value": {"type": "number", "exclusiveMinimum": 0},
          "confidence":  {"type": "number", "minimum": 0, "maximum": 100},
          "raw_text":    {"type": "string"}
        }
      }
    }
  }
}`

var compiledItemsSchema = jsonschema.MustCompileString("items_schema.json", itemsSchema)

const systemPrompt = "You read scanned parts-catalog pages. Extract every row that " +
	"carries a part number or a price. Return ONLY JSON matching the provided " +
	"schema: an object with an \"items\" array. Copy part numbers exactly as " +
	"printed. price_value is the numeric amount without currency symbols. " +
	"confidence is 0-100, your own certainty per row. Never output null; omit " +
	"absent fields."

type pageItem struct {
	BrandCode  string   `json:"brand_code"`
	PartNumber string   `json:"part_number"`
	PriceType  string   `json:"price_type"`
	PriceValue *float64 `json:"price_value"`
	Confidence float64  `json:"confidence"`
	RawText    string   `json:"raw_text"`
}

// ExtractPage sends one rasterized page and returns the candidates the model
// read off it.
func (c *Client) ExtractPage(ctx context.Context, png []byte, page int) ([]entity.Candidate, error) {
	start := time.Now()

	body := map[string]any{
		"model":      c.cfg.Model,
		"max_tokens": c.cfg.MaxTok,
		"system":     systemPrompt + "\n\nJSON Schema:\n" + itemsSchema,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{
						"type": "image",
						"source": map[string]any{
							"type":       "base64",
							"media_type": "image/png",
							"data":       base64.StdEncoding.EncodeToString(png),
						},
					},
					{"type": "text", "text": "Extract the catalog rows from this page."},
				},
			},
		},
	}

	raw, err := c.post(ctx, strings.TrimRight(c.cfg.BaseURL, "/")+"/v1/messages", body)
	if err != nil {
		c.logger.Error("vision.extract.http_error", "page", page, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	var resp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	text = stripFences(text)
	if text == "" {
		return nil, fmt.Errorf("empty model response")
	}

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("parse model JSON: %w", err)
	}
	if err := compiledItemsSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var payload struct {
		Items []pageItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}

	out := make([]entity.Candidate, 0, len(payload.Items))
	for _, it := range payload.Items {
		out = append(out, entity.Candidate{
			Page:       page,
			BrandCode:  it.BrandCode,
			PartNumber: it.PartNumber,
			PriceType:  strings.ToLower(it.PriceType),
			PriceValue: it.PriceValue,
			Currency:   constants.DefaultCurrency,
			Confidence: it.Confidence,
			RawText:    it.RawText,
		})
	}

	c.logger.Info("vision.extract.ok", "page", page, "items", len(out),
		"elapsed_ms", time.Since(start).Milliseconds())
	return out, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision http error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("vision status %d: %s", resp.StatusCode, raw)
	}
	return raw, nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}
