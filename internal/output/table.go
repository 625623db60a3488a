package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
	"github.com/abdullahfazal969-alt/News-agent/internal/analysis"
	"github.com/abdullahfazal969-alt/News-agent/internal/format"
)

// TableFormatter formats output as a table (kubectl-style)
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// FormatReport outputs a research report as a table, one row per article,
// followed by a summary line.
func (f *TableFormatter) FormatReport(w io.Writer, report *agent.Report) error {
	if report == nil || len(report.Results) == 0 {
		fmt.Fprintln(w, "No articles processed")
		return nil
	}

	colors := NewColorScheme(w, f.options.NoColor)
	table := f.createTable(w)

	headers := []string{"URL", "CATEGORY", "SUMMARY", "ENTITIES"}
	if f.options.Wide {
		headers = append(headers, "ANALYSIS")
	}
	f.setHeaders(table, headers, colors)

	for _, result := range report.Results {
		table.Append(f.formatResultRow(result, colors))
	}
	table.Render()

	f.printSummary(w, report, colors)
	return nil
}

// FormatComparison outputs a hybrid-versus-sequential comparison as a
// two-row table followed by the speedup.
func (f *TableFormatter) FormatComparison(w io.Writer, comparison Comparison) error {
	colors := NewColorScheme(w, f.options.NoColor)
	table := f.createTable(w)

	f.setHeaders(table, []string{"MODE", "ARTICLES", "DURATION"}, colors)
	table.Append(f.formatModeRow("hybrid", comparison.Hybrid, colors))
	table.Append(f.formatModeRow("sequential", comparison.Sequential, colors))
	table.Render()

	hybrid, sequential := comparison.durations()
	speedupText := format.FormatSpeedup(sequential, hybrid)
	if !colors.Disabled {
		speedupText = colors.SpeedupColor(comparison.Speedup())(speedupText)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Speedup: %s\n", speedupText)
	return nil
}

// formatResultRow formats a single article analysis as a table row
func (f *TableFormatter) formatResultRow(result analysis.ArticleAnalysis, colors *ColorScheme) []string {
	url := result.URL
	if !colors.Disabled {
		url = colors.URL(url)
	}

	summary := result.Summary
	if !f.options.Wide {
		summary = format.TruncateSummary(summary, format.SummaryDisplayLimit)
	}

	row := []string{url, result.Category, summary, strings.Join(result.Entities, ", ")}

	if f.options.Wide {
		duration := format.FormatExecutionDuration(result.ProcessDuration)
		if !colors.Disabled {
			duration = colors.Duration(duration)
		}
		row = append(row, duration)
	}

	return row
}

// formatModeRow formats one comparison run as a table row
func (f *TableFormatter) formatModeRow(mode string, report *agent.Report, colors *ColorScheme) []string {
	articles, duration := 0, "n/a"
	if report != nil {
		articles = report.ArticleCount
		duration = format.FormatSeconds(report.TotalDuration)
	}
	if !colors.Disabled {
		duration = colors.Duration(duration)
	}
	return []string{mode, fmt.Sprintf("%d", articles), duration}
}

// setHeaders applies the header row unless headers are disabled
func (f *TableFormatter) setHeaders(table *tablewriter.Table, headers []string, colors *ColorScheme) {
	if f.options.NoHeaders {
		return
	}
	if colors.Disabled {
		table.SetHeader(headers)
		return
	}
	coloredHeaders := make([]string, len(headers))
	for i, h := range headers {
		coloredHeaders[i] = colors.Header(h)
	}
	table.SetHeader(coloredHeaders)
}

// createTable creates a new table with kubectl-style configuration
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	// kubectl-style configuration
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t") // Tab-separated like kubectl
	table.SetNoWhiteSpace(true)

	return table
}

// printSummary prints the one-line report summary
func (f *TableFormatter) printSummary(w io.Writer, report *agent.Report, colors *ColorScheme) {
	durationText := format.FormatSeconds(report.TotalDuration)
	if !colors.Disabled {
		durationText = colors.Duration(durationText)
	}

	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Processed %d articles in %s\n", report.ArticleCount, durationText)
}
