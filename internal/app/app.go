// Package app wires the pipeline components into the runnable application
// modes: a one-shot research run and a hybrid-versus-sequential comparison.
// The CLI layer owns flags and rendering choices; this package owns pool
// lifecycle, progress plumbing and report verification.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
	"github.com/abdullahfazal969-alt/News-agent/internal/analysis"
	"github.com/abdullahfazal969-alt/News-agent/internal/config"
	apperrors "github.com/abdullahfazal969-alt/News-agent/internal/errors"
	"github.com/abdullahfazal969-alt/News-agent/internal/logging"
	"github.com/abdullahfazal969-alt/News-agent/internal/output"
	"github.com/abdullahfazal969-alt/News-agent/internal/pool"
)

// ProgressReporter consumes a run's progress stream until the channel
// closes. Implementations must call wg.Done exactly once, after the stream
// ends, so the application can wait for the display to settle before
// rendering the report.
type ProgressReporter interface {
	Display(wg *sync.WaitGroup, updates <-chan agent.ProgressUpdate, total int, out io.Writer)
}

// NullProgressReporter discards progress updates.
type NullProgressReporter struct{}

// Display drains the channel without rendering anything.
func (NullProgressReporter) Display(wg *sync.WaitGroup, updates <-chan agent.ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()
	for range updates {
	}
}

// Application runs research pipelines and renders their reports.
type Application struct {
	cfg         config.Config
	out         io.Writer
	progressOut io.Writer
	reporter    ProgressReporter
	formatter   output.Formatter
	agentOpts   []agent.Option
	log         zerolog.Logger
}

// Option configures an Application during construction.
type Option func(*Application)

// WithProgressReporter replaces the discarding default reporter. out is the
// writer the reporter draws on, conventionally stderr so reports on stdout
// stay clean.
func WithProgressReporter(r ProgressReporter, out io.Writer) Option {
	return func(a *Application) {
		a.reporter = r
		a.progressOut = out
	}
}

// WithFormatter replaces the formatter derived from the configuration.
func WithFormatter(f output.Formatter) Option {
	return func(a *Application) { a.formatter = f }
}

// WithAgentOptions forwards options to every agent the application builds,
// primarily for tests that inject fetchers or strategies.
func WithAgentOptions(opts ...agent.Option) Option {
	return func(a *Application) { a.agentOpts = opts }
}

// New creates an application writing reports to out.
func New(cfg config.Config, out io.Writer, opts ...Option) *Application {
	a := &Application{
		cfg:         cfg,
		out:         out,
		progressOut: io.Discard,
		reporter:    NullProgressReporter{},
		log:         logging.NewLogger("app"),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.formatter == nil {
		a.formatter = output.NewFormatter(output.Format(cfg.Output), output.WithNoColor(cfg.NoColor))
	}
	return a
}

// Research runs the hybrid pipeline over urls and renders the report.
func (a *Application) Research(ctx context.Context, urls []string) error {
	workers, err := pool.Open(a.cfg.MaxWorkers)
	if err != nil {
		return err
	}
	defer workers.Close()

	report, err := a.runHybrid(ctx, workers, urls)
	if err != nil {
		return err
	}
	return a.formatter.FormatReport(a.out, report)
}

// Compare runs the pipeline twice over urls, hybrid then sequential, and
// renders both timings with the speedup ratio. The two runs must agree on
// every article's analytical content; a disagreement is reported as an
// apperrors.MismatchError because it means the pipelines are not equivalent.
func (a *Application) Compare(ctx context.Context, urls []string) error {
	workers, err := pool.Open(a.cfg.MaxWorkers)
	if err != nil {
		return err
	}
	defer workers.Close()

	hybrid, err := a.runHybrid(ctx, workers, urls)
	if err != nil {
		return err
	}

	sequential, err := agent.New(a.cfg, workers, a.agentOpts...).ResearchSequential(ctx, urls)
	if err != nil {
		return err
	}

	if err := verifyReports(hybrid, sequential); err != nil {
		return err
	}

	a.log.Info().
		Dur("hybrid", hybrid.TotalDuration).
		Dur("sequential", sequential.TotalDuration).
		Msg("comparison complete")

	return a.formatter.FormatComparison(a.out, output.Comparison{
		Hybrid:     hybrid,
		Sequential: sequential,
	})
}

// runHybrid executes one hybrid research run with progress reporting wired
// through the configured reporter.
func (a *Application) runHybrid(ctx context.Context, workers *pool.Pool, urls []string) (*agent.Report, error) {
	progress := make(chan agent.ProgressUpdate, len(urls)*agent.ProgressBufferMultiplier)

	var wg sync.WaitGroup
	wg.Add(1)
	go a.reporter.Display(&wg, progress, len(urls), a.progressOut)

	opts := append([]agent.Option{agent.WithProgress(progress)}, a.agentOpts...)
	report, err := agent.New(a.cfg, workers, opts...).Research(ctx, urls)

	close(progress)
	wg.Wait()

	return report, err
}

// verifyReports checks that two runs produced the same analytical content
// for every article. Durations are expected to differ; URL, summary,
// category and entities are not.
func verifyReports(hybrid, sequential *agent.Report) error {
	if len(hybrid.Results) != len(sequential.Results) {
		return apperrors.MismatchError{URL: ""}
	}
	for i := range hybrid.Results {
		if !sameAnalysis(hybrid.Results[i], sequential.Results[i]) {
			return apperrors.MismatchError{URL: hybrid.Results[i].URL}
		}
	}
	return nil
}

func sameAnalysis(a, b analysis.ArticleAnalysis) bool {
	if a.URL != b.URL || a.Summary != b.Summary || a.Category != b.Category {
		return false
	}
	if len(a.Entities) != len(b.Entities) {
		return false
	}
	for i := range a.Entities {
		if a.Entities[i] != b.Entities[i] {
			return false
		}
	}
	return true
}
