package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	options *Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(opts *Options) *YAMLFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &YAMLFormatter{
		options: opts,
	}
}

// FormatReport outputs a research report as YAML
func (f *YAMLFormatter) FormatReport(w io.Writer, report *agent.Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(reportDocument(report))
}

// FormatComparison outputs a hybrid-versus-sequential comparison as YAML
func (f *YAMLFormatter) FormatComparison(w io.Writer, comparison Comparison) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(comparisonDocument(comparison))
}
