// Package analysis provides the CPU-bound side of the research pipeline:
// turning raw articles into structured analyses. The actual text analysis is
// mocked with a fixed-cost computation so pipeline timing stays reproducible;
// strategies wrap that work and route it through the worker pool.
package analysis

import (
	"strings"
	"time"

	"github.com/abdullahfazal969-alt/News-agent/internal/newswire"
)

// Article categories assigned by the mock analyzer.
const (
	CategoryTechnology = "Technology"
	CategoryGeneral    = "General"
)

// categoryMarker is the phrase whose presence in the content makes an
// article Technology.
const categoryMarker = "AI engineering"

// summaryTail is the fixed text every mock summary ends with.
const summaryTail = "AI engineering concepts applied to multi-agent systems."

// defaultEntities is the fixed entity list the mock analyzer extracts.
var defaultEntities = []string{"Gemini", "Kubernetes", "TensorFlow", "PyTorch"}

// ArticleAnalysis is the structured result of analyzing one article.
type ArticleAnalysis struct {
	// URL is the article the analysis belongs to.
	URL string `json:"url" yaml:"url"`

	// Summary is the one-line mock summary, always "Summary of <url>: ...".
	Summary string `json:"summary" yaml:"summary"`

	// Category is CategoryTechnology or CategoryGeneral.
	Category string `json:"category" yaml:"category"`

	// Entities is the non-empty list of extracted entity names.
	Entities []string `json:"entities" yaml:"entities"`

	// ProcessDuration is the wall-clock time the analysis took from the
	// caller's point of view, pool round-trip included.
	ProcessDuration time.Duration `json:"process_duration" yaml:"process_duration"`
}

// AnalyzeArticle is the mock CPU-bound work unit. It occupies the calling
// goroutine for analysisTime (a stand-in for real NLP work, which is why it
// is not cancellable mid-flight) and then derives the analysis from the
// article content alone: identical input always yields an identical Summary,
// Category and Entities.
//
// ProcessDuration is left zero; the strategy that owns the pool round-trip
// stamps it.
func AnalyzeArticle(article newswire.RawArticle, analysisTime time.Duration) ArticleAnalysis {
	if analysisTime > 0 {
		time.Sleep(analysisTime)
	}

	category := CategoryGeneral
	if strings.Contains(article.Content, categoryMarker) {
		category = CategoryTechnology
	}

	return ArticleAnalysis{
		URL:      article.URL,
		Summary:  "Summary of " + article.URL + ": " + summaryTail,
		Category: category,
		Entities: append([]string(nil), defaultEntities...),
	}
}
