//go:generate mockgen -source=strategy.go -destination=mocks/mock_strategy.go -package=mocks

package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/abdullahfazal969-alt/News-agent/internal/config"
	"github.com/abdullahfazal969-alt/News-agent/internal/logging"
	"github.com/abdullahfazal969-alt/News-agent/internal/newswire"
	"github.com/abdullahfazal969-alt/News-agent/internal/pool"
)

// Strategy analyzes one fetched article. Implementations submit their
// CPU-bound work to the supplied pool and suspend only the calling goroutine
// while waiting for it; sibling analyses proceed independently. New
// strategies are injected into the agent, never wired in by the coordinator.
type Strategy interface {
	// Name identifies the strategy in logs and reports.
	Name() string

	// Process analyzes article through workers. It returns ctx.Err() when
	// ctx expires before the pooled work resolves.
	Process(ctx context.Context, article newswire.RawArticle, workers *pool.Pool, cfg config.Config) (ArticleAnalysis, error)
}

// SummarizeCategorize is the default strategy: a fixed mock summary, a
// marker-based category and a fixed entity list, produced on the worker pool.
type SummarizeCategorize struct {
	log zerolog.Logger
}

// NewSummarizeCategorize creates the default analysis strategy.
func NewSummarizeCategorize() *SummarizeCategorize {
	return &SummarizeCategorize{log: logging.NewLogger("analysis")}
}

// Name returns the strategy's human-readable name.
func (s *SummarizeCategorize) Name() string {
	return "Summarize & Categorize (pooled, deterministic)"
}

// Process submits the mock analysis to the pool and waits for its future.
// ProcessDuration covers the full round-trip: queue wait, execution and
// wake-up, as observed by this caller.
func (s *SummarizeCategorize) Process(ctx context.Context, article newswire.RawArticle, workers *pool.Pool, cfg config.Config) (ArticleAnalysis, error) {
	start := time.Now()

	future, err := pool.Submit(workers, func() (ArticleAnalysis, error) {
		return AnalyzeArticle(article, cfg.ProcessingLatency), nil
	})
	if err != nil {
		return ArticleAnalysis{}, err
	}

	result, err := future.Wait(ctx)
	if err != nil {
		return ArticleAnalysis{}, err
	}
	result.ProcessDuration = time.Since(start)

	s.log.Debug().
		Str("url", article.URL).
		Str("category", result.Category).
		Dur("duration", result.ProcessDuration).
		Msg("article analyzed")

	return result, nil
}

// KeywordExtract is an alternative strategy kept deliberately simple: it
// shares the pooled execution path but reports headline keywords instead of
// a prose summary. It exists to exercise strategy injection end to end.
type KeywordExtract struct {
	log zerolog.Logger
}

// NewKeywordExtract creates the keyword strategy.
func NewKeywordExtract() *KeywordExtract {
	return &KeywordExtract{log: logging.NewLogger("analysis")}
}

// Name returns the strategy's human-readable name.
func (s *KeywordExtract) Name() string {
	return "Keyword Extraction (pooled, deterministic)"
}

// Process mirrors SummarizeCategorize's pool round-trip with a keyword
// summary.
func (s *KeywordExtract) Process(ctx context.Context, article newswire.RawArticle, workers *pool.Pool, cfg config.Config) (ArticleAnalysis, error) {
	start := time.Now()

	future, err := pool.Submit(workers, func() (ArticleAnalysis, error) {
		result := AnalyzeArticle(article, cfg.ProcessingLatency)
		result.Summary = "Keywords for " + article.URL + ": " +
			strings.Join([]string{"ai engineering", "hybrid workloads", "latency"}, ", ")
		return result, nil
	})
	if err != nil {
		return ArticleAnalysis{}, err
	}

	result, err := future.Wait(ctx)
	if err != nil {
		return ArticleAnalysis{}, err
	}
	result.ProcessDuration = time.Since(start)

	s.log.Debug().
		Str("url", article.URL).
		Str("category", result.Category).
		Dur("duration", result.ProcessDuration).
		Msg("keywords extracted")

	return result, nil
}
