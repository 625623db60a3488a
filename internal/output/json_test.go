package output

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewJSONFormatter(t *testing.T) {
	if formatter := NewJSONFormatter(nil); formatter == nil || formatter.options == nil {
		t.Fatal("NewJSONFormatter(nil) did not default options")
	}
}

func TestJSONFormatter_FormatReport(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(nil)

	if err := formatter.FormatReport(&buf, sampleReport()); err != nil {
		t.Fatalf("FormatReport failed: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if got := doc["article_count"]; got != float64(2) {
		t.Errorf("article_count = %v, want 2", got)
	}
	if got := doc["total_seconds"]; got != 1.5 {
		t.Errorf("total_seconds = %v, want 1.5", got)
	}
	if got := doc["total_duration"]; got != "1.5s" {
		t.Errorf("total_duration = %v, want %q", got, "1.5s")
	}

	results, ok := doc["results"].([]interface{})
	if !ok || len(results) != 2 {
		t.Fatalf("results = %v, want 2 entries", doc["results"])
	}
	first, ok := results[0].(map[string]interface{})
	if !ok {
		t.Fatalf("results[0] is not an object: %v", results[0])
	}
	if got := first["url"]; got != "http://example.com/ai_breakthrough_1" {
		t.Errorf("results[0].url = %v", got)
	}
	if got := first["category"]; got != "Technology" {
		t.Errorf("results[0].category = %v, want Technology", got)
	}
	if got := first["process_duration"]; got != "200ms" {
		t.Errorf("results[0].process_duration = %v, want 200ms", got)
	}
}

func TestJSONFormatter_FormatComparison(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(nil)

	if err := formatter.FormatComparison(&buf, sampleComparison()); err != nil {
		t.Fatalf("FormatComparison failed: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if got := doc["speedup"]; got != "2.00x" {
		t.Errorf("speedup = %v, want %q", got, "2.00x")
	}
	for _, key := range []string{"hybrid", "sequential"} {
		run, ok := doc[key].(map[string]interface{})
		if !ok {
			t.Errorf("%s is not an object: %v", key, doc[key])
			continue
		}
		if got := run["article_count"]; got != float64(2) {
			t.Errorf("%s.article_count = %v, want 2", key, got)
		}
	}
}

func TestJSONFormatter_NilReport(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(nil)

	if err := formatter.FormatReport(&buf, nil); err != nil {
		t.Fatalf("FormatReport(nil) failed: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(doc) != 0 {
		t.Errorf("nil report produced non-empty document: %v", doc)
	}
}
