package output

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
	"github.com/abdullahfazal969-alt/News-agent/internal/analysis"
)

// sampleReport builds a deterministic two-article report for formatter tests.
func sampleReport() *agent.Report {
	return &agent.Report{
		ArticleCount:  2,
		TotalDuration: 1500 * time.Millisecond,
		Results: []analysis.ArticleAnalysis{
			{
				URL:             "http://example.com/ai_breakthrough_1",
				Category:        analysis.CategoryTechnology,
				Summary:         "Summary of http://example.com/ai_breakthrough_1: " + strings.Repeat("x", 60),
				Entities:        []string{"Gemini", "Kubernetes"},
				ProcessDuration: 200 * time.Millisecond,
			},
			{
				URL:             "http://example.com/quantum_computing_2",
				Category:        analysis.CategoryGeneral,
				Summary:         "short summary",
				Entities:        []string{"TensorFlow"},
				ProcessDuration: 300 * time.Millisecond,
			},
		},
	}
}

// sampleComparison builds a comparison where the hybrid run is exactly twice
// as fast as the sequential baseline.
func sampleComparison() Comparison {
	hybrid := sampleReport()
	sequential := sampleReport()
	sequential.TotalDuration = 2 * hybrid.TotalDuration
	return Comparison{Hybrid: hybrid, Sequential: sequential}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name         string
		format       Format
		opts         []Option
		expectedType string
	}{
		{
			name:         "table formatter default",
			format:       FormatTable,
			expectedType: "*output.TableFormatter",
		},
		{
			name:         "json formatter",
			format:       FormatJSON,
			expectedType: "*output.JSONFormatter",
		},
		{
			name:         "yaml formatter",
			format:       FormatYAML,
			expectedType: "*output.YAMLFormatter",
		},
		{
			name:         "empty format defaults to table",
			format:       "",
			expectedType: "*output.TableFormatter",
		},
		{
			name:         "unknown format defaults to table",
			format:       "unknown",
			expectedType: "*output.TableFormatter",
		},
		{
			name:         "table with options",
			format:       FormatTable,
			opts:         []Option{WithNoColor(true), WithNoHeaders(true), WithWide(true)},
			expectedType: "*output.TableFormatter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewFormatter(tt.format, tt.opts...)
			if formatter == nil {
				t.Fatal("NewFormatter returned nil")
			}
			if typeName := fmt.Sprintf("%T", formatter); typeName != tt.expectedType {
				t.Errorf("formatter type = %s, want %s", typeName, tt.expectedType)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	options := &Options{}
	for _, opt := range []Option{WithNoColor(true), WithNoHeaders(true), WithWide(true)} {
		opt(options)
	}

	if !options.NoColor {
		t.Error("WithNoColor(true) did not set NoColor")
	}
	if !options.NoHeaders {
		t.Error("WithNoHeaders(true) did not set NoHeaders")
	}
	if !options.Wide {
		t.Error("WithWide(true) did not set Wide")
	}
}

func TestComparisonSpeedup(t *testing.T) {
	tests := []struct {
		name       string
		comparison Comparison
		expected   float64
	}{
		{
			name:       "twice as fast",
			comparison: sampleComparison(),
			expected:   2.0,
		},
		{
			name:       "missing reports",
			comparison: Comparison{},
			expected:   0,
		},
		{
			name: "zero hybrid duration",
			comparison: Comparison{
				Hybrid:     &agent.Report{},
				Sequential: &agent.Report{TotalDuration: time.Second},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.comparison.Speedup(); got != tt.expected {
				t.Errorf("Speedup() = %v, want %v", got, tt.expected)
			}
		})
	}
}
