package output

import (
	"io"
	"time"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
)

// Format represents the output format type
type Format string

const (
	// FormatTable outputs data in a table format (kubectl-style)
	FormatTable Format = "table"
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
)

// Comparison pairs a hybrid research run with its sequential baseline over
// the same URL list, for the compare command's output.
type Comparison struct {
	// Hybrid is the concurrent pipeline's report.
	Hybrid *agent.Report

	// Sequential is the serial baseline's report.
	Sequential *agent.Report
}

// Speedup returns the sequential/hybrid duration ratio, or 0 when the hybrid
// duration is not positive.
func (c Comparison) Speedup() float64 {
	if c.Hybrid == nil || c.Sequential == nil || c.Hybrid.TotalDuration <= 0 {
		return 0
	}
	return float64(c.Sequential.TotalDuration) / float64(c.Hybrid.TotalDuration)
}

// durations returns the two run durations, tolerating nil reports.
func (c Comparison) durations() (hybrid, sequential time.Duration) {
	if c.Hybrid != nil {
		hybrid = c.Hybrid.TotalDuration
	}
	if c.Sequential != nil {
		sequential = c.Sequential.TotalDuration
	}
	return hybrid, sequential
}

// Formatter defines the interface for output formatting
// All formatters must implement both report and comparison output methods
type Formatter interface {
	// FormatReport outputs a single research report to the writer
	FormatReport(w io.Writer, report *agent.Report) error

	// FormatComparison outputs a hybrid-versus-sequential comparison to the writer
	FormatComparison(w io.Writer, comparison Comparison) error
}

// Option is a functional option for configuring formatters
type Option func(*Options)

// Options holds configuration for formatters
type Options struct {
	// NoColor disables color output
	NoColor bool

	// NoHeaders disables table headers
	NoHeaders bool

	// Wide enables wide output with untruncated summaries and timing columns
	Wide bool
}

// WithNoColor disables color output
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithNoHeaders disables table headers
func WithNoHeaders(noHeaders bool) Option {
	return func(o *Options) {
		o.NoHeaders = noHeaders
	}
}

// WithWide enables wide output
func WithWide(wide bool) Option {
	return func(o *Options) {
		o.Wide = wide
	}
}

// NewFormatter creates a new formatter based on the specified format
func NewFormatter(format Format, opts ...Option) Formatter {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	switch format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		fallthrough
	default:
		return NewTableFormatter(options)
	}
}
