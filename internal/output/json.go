package output

import (
	"encoding/json"
	"io"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
	"github.com/abdullahfazal969-alt/News-agent/internal/format"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &JSONFormatter{
		options: opts,
	}
}

// FormatReport outputs a research report as indented JSON
func (f *JSONFormatter) FormatReport(w io.Writer, report *agent.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reportDocument(report))
}

// FormatComparison outputs a hybrid-versus-sequential comparison as JSON
func (f *JSONFormatter) FormatComparison(w io.Writer, comparison Comparison) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(comparisonDocument(comparison))
}

// reportDocument converts a report to a script-friendly structure with
// durations rendered both human-readably and as plain seconds.
func reportDocument(report *agent.Report) map[string]interface{} {
	if report == nil {
		return map[string]interface{}{}
	}

	results := make([]map[string]interface{}, len(report.Results))
	for i, result := range report.Results {
		results[i] = map[string]interface{}{
			"url":              result.URL,
			"category":         result.Category,
			"summary":          result.Summary,
			"entities":         result.Entities,
			"process_duration": result.ProcessDuration.String(),
		}
	}

	return map[string]interface{}{
		"article_count":  report.ArticleCount,
		"total_duration": report.TotalDuration.String(),
		"total_seconds":  report.TotalDuration.Seconds(),
		"results":        results,
	}
}

// comparisonDocument converts a comparison to a script-friendly structure.
func comparisonDocument(comparison Comparison) map[string]interface{} {
	hybrid, sequential := comparison.durations()
	return map[string]interface{}{
		"hybrid":     reportDocument(comparison.Hybrid),
		"sequential": reportDocument(comparison.Sequential),
		"speedup":    format.FormatSpeedup(sequential, hybrid),
	}
}
