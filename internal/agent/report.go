package agent

import (
	"time"

	"github.com/abdullahfazal969-alt/News-agent/internal/analysis"
)

// Report is the aggregated outcome of one research run.
//
// Results is index-aligned with the URL list the run was given: Results[i]
// belongs to urls[i] regardless of the order in which fetches or analyses
// completed. On success ArticleCount == len(Results) == len(urls).
type Report struct {
	// Results holds one analysis per input URL, in input order.
	Results []analysis.ArticleAnalysis `json:"results" yaml:"results"`

	// ArticleCount is the number of articles the run processed.
	ArticleCount int `json:"article_count" yaml:"article_count"`

	// TotalDuration is the wall-clock time of the whole run, both phases
	// included.
	TotalDuration time.Duration `json:"total_duration" yaml:"total_duration"`
}
