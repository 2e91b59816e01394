package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func messagesResponse(text string) string {
	b, _ := json.Marshal(map[string]any{
		"content": []map[string]any{{"type": "text", "text": text}},
	})
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
}

func TestExtractPage(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")

		var req struct {
			Messages []struct {
				Content []struct {
					Type   string `json:"type"`
					Source struct {
						MediaType string `json:"media_type"`
						Data      string `json:"data"`
					} `json:"source"`
				} `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Messages[0].Content[0].Source.MediaType != "image/png" {
			t.Errorf("media_type = %q", req.Messages[0].Content[0].Source.MediaType)
		}
		if req.Messages[0].Content[0].Source.Data == "" {
			t.Error("image data missing")
		}

		_, _ = w.Write([]byte(messagesResponse(`{"items":[
			{"brand_code":"EXG","part_number":"41-3525","price_type":"Retail","price_value":12.99,"confidence":92,"raw_text":"EXG 41-3525 Retail $12.99"},
			{"part_number":"CD-456","confidence":60,"raw_text":"CD-456"}
		]}`)))
	})

	items, err := c.ExtractPage(context.Background(), []byte("png-bytes"), 5)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if gotPath != "/v1/messages" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" || gotVersion != "2023-06-01" {
		t.Errorf("headers = %q / %q", gotKey, gotVersion)
	}

	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	first := items[0]
	if first.Page != 5 || first.PartNumber != "41-3525" || first.BrandCode != "EXG" {
		t.Errorf("first = %+v", first)
	}
	if first.PriceType != "retail" {
		t.Errorf("price_type = %q, want lowercased", first.PriceType)
	}
	if first.PriceValue == nil || *first.PriceValue != 12.99 {
		t.Errorf("price_value = %v", first.PriceValue)
	}
	if first.Currency != "USD" {
		t.Errorf("currency = %q", first.Currency)
	}
	if items[1].PriceValue != nil {
		t.Errorf("absent price must stay nil, got %v", *items[1].PriceValue)
	}
}

func TestExtractPageStripsCodeFences(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(messagesResponse("```json\n{\"items\":[{\"raw_text\":\"x\",\"confidence\":50}]}\n```")))
	})
	items, err := c.ExtractPage(context.Background(), []byte("png"), 1)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
}

func TestExtractPageRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing required field": `{"items":[{"brand_code":"EXG"}]}`,
		"confidence above 100":   `{"items":[{"raw_text":"x","confidence":150}]}`,
		"zero price":             `{"items":[{"raw_text":"x","confidence":50,"price_value":0}]}`,
		"items not an array":     `{"items":"nope"}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(messagesResponse(payload)))
			})
			if _, err := c.ExtractPage(context.Background(), []byte("png"), 1); err == nil {
				t.Fatal("schema violation accepted")
			}
		})
	}
}

func TestExtractPageHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, http.StatusServiceUnavailable)
	})
	_, err := c.ExtractPage(context.Background(), []byte("png"), 1)
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Fatalf("err = %v, want status 503 surfaced", err)
	}
}

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                    `{"a":1}`,
		"```json\n{\"a\":1}\n```":      `{"a":1}`,
		"```\n{\"a\":1}\n```":          `{"a":1}`,
		"  \n```json\n{\"a\":1}\n``` ": `{"a":1}`,
	}
	for in, want := range cases {
		if got := stripFences(in); got != want {
			t.Errorf("stripFences(%q) = %q, want %q", in, got, want)
		}
	}
}
