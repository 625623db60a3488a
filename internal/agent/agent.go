package agent

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/abdullahfazal969-alt/News-agent/internal/analysis"
	"github.com/abdullahfazal969-alt/News-agent/internal/config"
	apperrors "github.com/abdullahfazal969-alt/News-agent/internal/errors"
	"github.com/abdullahfazal969-alt/News-agent/internal/logging"
	"github.com/abdullahfazal969-alt/News-agent/internal/newswire"
	"github.com/abdullahfazal969-alt/News-agent/internal/pool"
)

// tracerName identifies this package's spans to whatever tracer provider the
// host application installs.
const tracerName = "github.com/abdullahfazal969-alt/News-agent/internal/agent"

// Agent runs the hybrid research pipeline. It does not own the worker pool:
// the caller opens it, passes it in and closes it when done, so pool release
// runs on every exit path even when a run fails.
type Agent struct {
	cfg      config.Config
	workers  *pool.Pool
	fetcher  newswire.Fetcher
	strategy analysis.Strategy
	progress chan<- ProgressUpdate
	log      zerolog.Logger
	tracer   trace.Tracer
}

// Option configures an Agent during construction.
type Option func(*Agent)

// WithFetcher replaces the simulated news feed, primarily for tests.
func WithFetcher(f newswire.Fetcher) Option {
	return func(a *Agent) { a.fetcher = f }
}

// WithStrategy injects the analysis strategy to run per article.
func WithStrategy(s analysis.Strategy) Option {
	return func(a *Agent) { a.strategy = s }
}

// WithProgress attaches a progress channel. The agent only ever sends
// non-blockingly; the caller owns the channel and closes it after the run
// returns.
func WithProgress(ch chan<- ProgressUpdate) Option {
	return func(a *Agent) { a.progress = ch }
}

// New creates an agent around an open worker pool. Without options it uses
// the simulated feed and the summarize-and-categorize strategy.
func New(cfg config.Config, workers *pool.Pool, opts ...Option) *Agent {
	a := &Agent{
		cfg:     cfg,
		workers: workers,
		log:     logging.NewLogger("agent"),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.fetcher == nil {
		a.fetcher = newswire.NewSimulatedFeed()
	}
	if a.strategy == nil {
		a.strategy = analysis.NewSummarizeCategorize()
	}
	return a
}

// Research runs the two-phase pipeline over urls and returns the ordered
// report.
//
// Phase A fetches every article concurrently; phase B analyzes every fetched
// article through the worker pool. Within each phase all operations are
// launched before any is awaited, so phase A's concurrency is bounded only by
// the scheduler and phase B's by the pool width. The first failure in either
// phase aborts the whole run: sibling results are discarded and no partial
// report is returned. A positive CallTimeout bounds the entire call and
// cancels all outstanding work when it fires.
func (a *Agent) Research(ctx context.Context, urls []string) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := a.log.With().Str("run_id", runID).Logger()

	ctx, span := a.tracer.Start(ctx, "agent.research", trace.WithAttributes(
		attribute.String("agent.run_id", runID),
		attribute.Int("agent.articles", len(urls)),
		attribute.Int("agent.workers", a.cfg.MaxWorkers),
	))
	defer span.End()

	if a.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.CallTimeout)
		defer cancel()
	}

	log.Info().
		Int("articles", len(urls)).
		Int("workers", a.cfg.MaxWorkers).
		Str("strategy", a.strategy.Name()).
		Msg("research started")

	articles, err := a.fetchAll(ctx, urls)
	if err != nil {
		return nil, a.fail(span, log, start, err)
	}
	log.Info().
		Int("articles", len(articles)).
		Dur("elapsed", time.Since(start)).
		Msg("fetch phase complete")

	results, err := a.analyzeAll(ctx, articles)
	if err != nil {
		return nil, a.fail(span, log, start, err)
	}

	report := &Report{
		Results:       results,
		ArticleCount:  len(urls),
		TotalDuration: time.Since(start),
	}

	researchRuns.WithLabelValues("hybrid", "ok").Inc()
	researchDuration.WithLabelValues("hybrid").Observe(report.TotalDuration.Seconds())
	articlesProcessed.Add(float64(len(results)))
	span.SetAttributes(attribute.Float64("agent.duration_seconds", report.TotalDuration.Seconds()))

	log.Info().
		Int("articles", report.ArticleCount).
		Dur("duration", report.TotalDuration).
		Msg("research finished")

	return report, nil
}

// fail records a run failure once, in metrics, trace and log form.
func (a *Agent) fail(span trace.Span, log zerolog.Logger, start time.Time, err error) error {
	researchRuns.WithLabelValues("hybrid", "error").Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("research failed")
	return err
}

// fetchAll launches one fetch per URL and waits for all of them, preserving
// input order in the returned slice. The first fetch failure cancels the
// remaining fetches and is returned as an apperrors.FetchError.
func (a *Agent) fetchAll(ctx context.Context, urls []string) ([]newswire.RawArticle, error) {
	ctx, span := a.tracer.Start(ctx, "agent.fetch_all", trace.WithAttributes(
		attribute.Int("agent.articles", len(urls)),
	))
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	articles := make([]newswire.RawArticle, len(urls))

	for i, url := range urls {
		idx, u := i, url
		g.Go(func() error {
			article, err := a.fetcher.Fetch(ctx, u, a.cfg.FetchLatency)
			if err != nil {
				return apperrors.FetchError{URL: u, Cause: err}
			}
			articles[idx] = article
			a.emit(ProgressUpdate{Stage: StageFetch, Index: idx, URL: u, Duration: article.FetchDuration})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return articles, nil
}

// analyzeAll launches one strategy call per article and waits for all of
// them. Every call is submitted before any is awaited, so the pool width is
// the only bound on parallelism. The first failure cancels the phase and is
// returned as an apperrors.ProcessingError.
func (a *Agent) analyzeAll(ctx context.Context, articles []newswire.RawArticle) ([]analysis.ArticleAnalysis, error) {
	ctx, span := a.tracer.Start(ctx, "agent.analyze_all", trace.WithAttributes(
		attribute.Int("agent.articles", len(articles)),
	))
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	results := make([]analysis.ArticleAnalysis, len(articles))

	for i, article := range articles {
		idx, art := i, article
		g.Go(func() error {
			result, err := a.strategy.Process(ctx, art, a.workers, a.cfg)
			if err != nil {
				return apperrors.ProcessingError{URL: art.URL, Cause: err}
			}
			results[idx] = result
			a.emit(ProgressUpdate{Stage: StageAnalyze, Index: idx, URL: art.URL, Duration: result.ProcessDuration})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ResearchSequential runs the same fetch-then-analyze work strictly serially
// in the calling goroutine, without the worker pool. It exists as a baseline
// for the speedup comparison and is not part of the pipeline contract.
func (a *Agent) ResearchSequential(ctx context.Context, urls []string) (*Report, error) {
	start := time.Now()

	ctx, span := a.tracer.Start(ctx, "agent.research_sequential", trace.WithAttributes(
		attribute.Int("agent.articles", len(urls)),
	))
	defer span.End()

	if a.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.CallTimeout)
		defer cancel()
	}

	a.log.Info().Int("articles", len(urls)).Msg("sequential baseline started")

	results := make([]analysis.ArticleAnalysis, 0, len(urls))
	for _, url := range urls {
		article, err := a.fetcher.Fetch(ctx, url, a.cfg.FetchLatency)
		if err != nil {
			err = apperrors.FetchError{URL: url, Cause: err}
			researchRuns.WithLabelValues("sequential", "error").Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		analysisStart := time.Now()
		result := analysis.AnalyzeArticle(article, a.cfg.ProcessingLatency)
		result.ProcessDuration = time.Since(analysisStart)
		results = append(results, result)
	}

	report := &Report{
		Results:       results,
		ArticleCount:  len(urls),
		TotalDuration: time.Since(start),
	}

	researchRuns.WithLabelValues("sequential", "ok").Inc()
	researchDuration.WithLabelValues("sequential").Observe(report.TotalDuration.Seconds())

	a.log.Info().
		Int("articles", report.ArticleCount).
		Dur("duration", report.TotalDuration).
		Msg("sequential baseline finished")

	return report, nil
}
