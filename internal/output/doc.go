// Package output provides formatters for displaying research reports.
//
// The package supports multiple output formats (table, JSON, YAML) behind a
// single Formatter interface, covering both a single research report and a
// hybrid-versus-sequential comparison.
//
// # Basic Usage
//
//	formatter := output.NewFormatter(output.FormatTable)
//	formatter.FormatReport(os.Stdout, report)
//
// # Options
//
// Formatters are configured with functional options:
//
//	formatter := output.NewFormatter(
//	    output.FormatTable,
//	    output.WithNoColor(true),
//	    output.WithWide(true),
//	)
//
// # Formats
//
// Table output is borderless and tab-separated in the kubectl style, with a
// summary line underneath; summaries are truncated unless wide mode is on.
// JSON and YAML output carry the full report in a stable, script-friendly
// shape with durations rendered both human-readably and as seconds.
//
// # Color
//
// Colors apply to table output only. They are enabled when the destination
// is a TTY and not suppressed with WithNoColor; pipes and redirects always
// get plain text.
package output
