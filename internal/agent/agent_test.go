package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/abdullahfazal969-alt/News-agent/internal/analysis"
	analysismocks "github.com/abdullahfazal969-alt/News-agent/internal/analysis/mocks"
	"github.com/abdullahfazal969-alt/News-agent/internal/config"
	apperrors "github.com/abdullahfazal969-alt/News-agent/internal/errors"
	"github.com/abdullahfazal969-alt/News-agent/internal/newswire"
	newswiremocks "github.com/abdullahfazal969-alt/News-agent/internal/newswire/mocks"
	"github.com/abdullahfazal969-alt/News-agent/internal/pool"
)

// testConfig returns a configuration with test-friendly latencies and no
// call timeout.
func testConfig(workers int, fetch, process time.Duration) config.Config {
	cfg := config.Default()
	cfg.MaxWorkers = workers
	cfg.FetchLatency = fetch
	cfg.ProcessingLatency = process
	cfg.CallTimeout = 0
	return cfg
}

// openPool opens a worker pool and registers its cleanup. Close is
// idempotent, so tests that close the pool themselves are fine too.
func openPool(t *testing.T, workers int) *pool.Pool {
	t.Helper()
	p, err := pool.Open(workers)
	if err != nil {
		t.Fatalf("pool.Open(%d) failed: %v", workers, err)
	}
	t.Cleanup(p.Close)
	return p
}

// testURLs returns n distinct article URLs.
func testURLs(n int) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = fmt.Sprintf("http://example.com/article_%d", i+1)
	}
	return urls
}

// strategyFunc adapts a function to analysis.Strategy for tests.
type strategyFunc struct {
	name string
	fn   func(ctx context.Context, article newswire.RawArticle, workers *pool.Pool, cfg config.Config) (analysis.ArticleAnalysis, error)
}

func (s strategyFunc) Name() string {
	if s.name == "" {
		return "test strategy"
	}
	return s.name
}

func (s strategyFunc) Process(ctx context.Context, article newswire.RawArticle, workers *pool.Pool, cfg config.Config) (analysis.ArticleAnalysis, error) {
	return s.fn(ctx, article, workers, cfg)
}

// TestResearchReportShape verifies that a successful run yields one result
// per URL, in input order, with the deterministic analysis fields filled in.
func TestResearchReportShape(t *testing.T) {
	t.Parallel()

	urls := testURLs(4)
	workers := openPool(t, 2)
	a := New(testConfig(2, time.Millisecond, time.Millisecond), workers)

	report, err := a.Research(context.Background(), urls)
	if err != nil {
		t.Fatalf("Research failed: %v", err)
	}

	if report.ArticleCount != len(urls) {
		t.Errorf("ArticleCount = %d, want %d", report.ArticleCount, len(urls))
	}
	if len(report.Results) != len(urls) {
		t.Fatalf("len(Results) = %d, want %d", len(report.Results), len(urls))
	}
	if report.TotalDuration <= 0 {
		t.Errorf("TotalDuration = %v, want > 0", report.TotalDuration)
	}

	for i, result := range report.Results {
		if result.URL != urls[i] {
			t.Errorf("Results[%d].URL = %q, want %q", i, result.URL, urls[i])
		}
		if result.Category != analysis.CategoryTechnology {
			t.Errorf("Results[%d].Category = %q, want %q", i, result.Category, analysis.CategoryTechnology)
		}
		if !strings.HasPrefix(result.Summary, "Summary of "+urls[i]) {
			t.Errorf("Results[%d].Summary = %q, want prefix %q", i, result.Summary, "Summary of "+urls[i])
		}
		if len(result.Entities) == 0 {
			t.Errorf("Results[%d].Entities is empty", i)
		}
		if result.ProcessDuration <= 0 {
			t.Errorf("Results[%d].ProcessDuration = %v, want > 0", i, result.ProcessDuration)
		}
	}
}

// TestResearchOrderPreserved makes fetches complete in reverse input order
// and verifies the report still lines up with the input URL list.
func TestResearchOrderPreserved(t *testing.T) {
	t.Parallel()

	urls := testURLs(6)
	indexOf := make(map[string]int, len(urls))
	for i, u := range urls {
		indexOf[u] = i
	}

	// The first URL is the slowest fetch, the last the fastest.
	fetcher := newswire.FetcherFunc(func(ctx context.Context, url string, latency time.Duration) (newswire.RawArticle, error) {
		delay := time.Duration(len(urls)-indexOf[url]) * 5 * time.Millisecond
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return newswire.RawArticle{}, ctx.Err()
		}
		return newswire.RawArticle{URL: url, Content: "AI engineering", FetchDuration: delay}, nil
	})

	workers := openPool(t, 2)
	a := New(testConfig(2, 0, 0), workers, WithFetcher(fetcher))

	report, err := a.Research(context.Background(), urls)
	if err != nil {
		t.Fatalf("Research failed: %v", err)
	}
	for i, result := range report.Results {
		if result.URL != urls[i] {
			t.Errorf("Results[%d].URL = %q, want %q", i, result.URL, urls[i])
		}
	}
}

// TestResearchEmptyURLList verifies that an empty batch produces an empty
// report rather than an error.
func TestResearchEmptyURLList(t *testing.T) {
	t.Parallel()

	workers := openPool(t, 2)
	a := New(testConfig(2, 0, 0), workers)

	report, err := a.Research(context.Background(), nil)
	if err != nil {
		t.Fatalf("Research failed: %v", err)
	}
	if report.ArticleCount != 0 || len(report.Results) != 0 {
		t.Errorf("empty run: ArticleCount = %d, len(Results) = %d, want 0, 0", report.ArticleCount, len(report.Results))
	}
}

// TestResearchFetchFailureAbortsRun verifies that one failed fetch fails the
// whole run with a FetchError, yields no partial report and leaves the pool
// closable.
func TestResearchFetchFailureAbortsRun(t *testing.T) {
	t.Parallel()

	urls := testURLs(4)
	failURL := urls[2]
	cause := errors.New("connection reset")

	fetcher := newswire.FetcherFunc(func(ctx context.Context, url string, latency time.Duration) (newswire.RawArticle, error) {
		if url == failURL {
			return newswire.RawArticle{}, cause
		}
		return newswire.RawArticle{URL: url, Content: "AI engineering"}, nil
	})

	workers := openPool(t, 2)
	a := New(testConfig(2, 0, 0), workers, WithFetcher(fetcher))

	report, err := a.Research(context.Background(), urls)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if report != nil {
		t.Errorf("expected nil report on failure, got %+v", report)
	}

	var fetchErr apperrors.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError in chain, got %v", err)
	}
	if fetchErr.URL != failURL {
		t.Errorf("FetchError.URL = %q, want %q", fetchErr.URL, failURL)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error chain does not contain the fetch cause: %v", err)
	}

	// A failed run must not wedge the pool.
	workers.Close()
	if _, err := pool.Submit(workers, func() (int, error) { return 0, nil }); !errors.Is(err, apperrors.ErrPoolClosed) {
		t.Errorf("Submit after Close: err = %v, want ErrPoolClosed", err)
	}
}

// TestResearchProcessingFailureAbortsRun verifies that one failed analysis
// fails the whole run with a ProcessingError carrying the article URL.
func TestResearchProcessingFailureAbortsRun(t *testing.T) {
	t.Parallel()

	urls := testURLs(3)
	cause := errors.New("model unavailable")

	strategy := strategyFunc{fn: func(ctx context.Context, article newswire.RawArticle, workers *pool.Pool, cfg config.Config) (analysis.ArticleAnalysis, error) {
		if article.URL == urls[1] {
			return analysis.ArticleAnalysis{}, cause
		}
		return analysis.AnalyzeArticle(article, 0), nil
	}}

	workers := openPool(t, 2)
	a := New(testConfig(2, 0, 0), workers, WithStrategy(strategy))

	report, err := a.Research(context.Background(), urls)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if report != nil {
		t.Errorf("expected nil report on failure, got %+v", report)
	}

	var procErr apperrors.ProcessingError
	if !errors.As(err, &procErr) {
		t.Fatalf("expected ProcessingError in chain, got %v", err)
	}
	if procErr.URL != urls[1] {
		t.Errorf("ProcessingError.URL = %q, want %q", procErr.URL, urls[1])
	}
	if !errors.Is(err, cause) {
		t.Errorf("error chain does not contain the processing cause: %v", err)
	}
}

// TestResearchPanicSurfacesAsWorkerError verifies that a panic inside pooled
// work reaches the caller as ProcessingError -> WorkerExecutionError.
func TestResearchPanicSurfacesAsWorkerError(t *testing.T) {
	t.Parallel()

	strategy := strategyFunc{fn: func(ctx context.Context, article newswire.RawArticle, workers *pool.Pool, cfg config.Config) (analysis.ArticleAnalysis, error) {
		future, err := pool.Submit(workers, func() (analysis.ArticleAnalysis, error) {
			panic("analysis blew up")
		})
		if err != nil {
			return analysis.ArticleAnalysis{}, err
		}
		return future.Wait(ctx)
	}}

	workers := openPool(t, 2)
	a := New(testConfig(2, 0, 0), workers, WithStrategy(strategy))

	_, err := a.Research(context.Background(), testURLs(1))
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var procErr apperrors.ProcessingError
	if !errors.As(err, &procErr) {
		t.Errorf("expected ProcessingError in chain, got %v", err)
	}
	var workerErr apperrors.WorkerExecutionError
	if !errors.As(err, &workerErr) {
		t.Errorf("expected WorkerExecutionError in chain, got %v", err)
	}
}

// TestResearchCallTimeout verifies that CallTimeout bounds the whole call and
// cancels in-flight fetches promptly.
func TestResearchCallTimeout(t *testing.T) {
	t.Parallel()

	cfg := testConfig(2, 10*time.Second, 0)
	cfg.CallTimeout = 50 * time.Millisecond

	workers := openPool(t, 2)
	a := New(cfg, workers)

	start := time.Now()
	report, err := a.Research(context.Background(), testURLs(2))
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected a timeout error, got nil")
	}
	if report != nil {
		t.Errorf("expected nil report on timeout, got %+v", report)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error chain does not contain DeadlineExceeded: %v", err)
	}
	if !apperrors.IsContextError(err) {
		t.Errorf("IsContextError(%v) = false, want true", err)
	}
	var fetchErr apperrors.FetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("expected FetchError wrapping the timeout, got %v", err)
	}
	if elapsed > 5*time.Second {
		t.Errorf("run did not abort promptly: took %v", elapsed)
	}
}

// TestResearchParentCancellation verifies that canceling the caller's context
// aborts the run with context.Canceled in the chain.
func TestResearchParentCancellation(t *testing.T) {
	t.Parallel()

	workers := openPool(t, 2)
	a := New(testConfig(2, 10*time.Second, 0), workers)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	report, err := a.Research(ctx, testURLs(3))
	if err == nil {
		t.Fatal("expected a cancellation error, got nil")
	}
	if report != nil {
		t.Errorf("expected nil report on cancellation, got %+v", report)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error chain does not contain context.Canceled: %v", err)
	}
}

// TestResearchProgressEvents verifies that a sufficiently buffered progress
// channel sees exactly one fetch and one analyze event per article, each
// carrying the article's input index and URL.
func TestResearchProgressEvents(t *testing.T) {
	t.Parallel()

	urls := testURLs(3)
	progress := make(chan ProgressUpdate, len(urls)*ProgressBufferMultiplier)

	workers := openPool(t, 2)
	a := New(testConfig(2, time.Millisecond, time.Millisecond), workers, WithProgress(progress))

	if _, err := a.Research(context.Background(), urls); err != nil {
		t.Fatalf("Research failed: %v", err)
	}
	close(progress)

	counts := map[Stage]map[int]int{StageFetch: {}, StageAnalyze: {}}
	for update := range progress {
		if update.Index < 0 || update.Index >= len(urls) {
			t.Fatalf("progress event with out-of-range index %d", update.Index)
		}
		if update.URL != urls[update.Index] {
			t.Errorf("event for index %d carries URL %q, want %q", update.Index, update.URL, urls[update.Index])
		}
		counts[update.Stage][update.Index]++
	}
	for _, stage := range []Stage{StageFetch, StageAnalyze} {
		for i := range urls {
			if counts[stage][i] != 1 {
				t.Errorf("stage %s, index %d: %d events, want 1", stage, i, counts[stage][i])
			}
		}
	}
}

// TestResearchCollaboratorWiring uses generated mocks to verify the agent
// passes the configured latency to the fetcher and the shared pool and
// config to the strategy.
func TestResearchCollaboratorWiring(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	urls := testURLs(2)
	cfg := testConfig(2, 7*time.Millisecond, 0)
	workers := openPool(t, 2)

	fetcher := newswiremocks.NewMockFetcher(ctrl)
	for _, url := range urls {
		fetcher.EXPECT().
			Fetch(gomock.Any(), url, cfg.FetchLatency).
			Return(newswire.RawArticle{URL: url, Content: "AI engineering"}, nil)
	}

	strategy := analysismocks.NewMockStrategy(ctrl)
	strategy.EXPECT().Name().Return("mock strategy").AnyTimes()
	strategy.EXPECT().
		Process(gomock.Any(), gomock.Any(), workers, cfg).
		DoAndReturn(func(ctx context.Context, article newswire.RawArticle, p *pool.Pool, c config.Config) (analysis.ArticleAnalysis, error) {
			return analysis.AnalyzeArticle(article, 0), nil
		}).
		Times(len(urls))

	a := New(cfg, workers, WithFetcher(fetcher), WithStrategy(strategy))
	report, err := a.Research(context.Background(), urls)
	if err != nil {
		t.Fatalf("Research failed: %v", err)
	}
	if len(report.Results) != len(urls) {
		t.Errorf("len(Results) = %d, want %d", len(report.Results), len(urls))
	}
}

// TestResearchSequential verifies the serial baseline: same report shape,
// same ordering, and a total duration no better than the serial floor.
func TestResearchSequential(t *testing.T) {
	t.Parallel()

	urls := testURLs(3)
	fetch, process := 5*time.Millisecond, 5*time.Millisecond

	workers := openPool(t, 2)
	a := New(testConfig(2, fetch, process), workers)

	report, err := a.ResearchSequential(context.Background(), urls)
	if err != nil {
		t.Fatalf("ResearchSequential failed: %v", err)
	}
	if report.ArticleCount != len(urls) {
		t.Errorf("ArticleCount = %d, want %d", report.ArticleCount, len(urls))
	}
	for i, result := range report.Results {
		if result.URL != urls[i] {
			t.Errorf("Results[%d].URL = %q, want %q", i, result.URL, urls[i])
		}
		if result.ProcessDuration <= 0 {
			t.Errorf("Results[%d].ProcessDuration = %v, want > 0", i, result.ProcessDuration)
		}
	}

	floor := time.Duration(len(urls)) * (fetch + process)
	if report.TotalDuration < floor {
		t.Errorf("sequential run took %v, below the serial floor %v", report.TotalDuration, floor)
	}
}

// TestResearchSequentialFetchFailure verifies the baseline reports fetch
// failures the same way the hybrid pipeline does.
func TestResearchSequentialFetchFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("feed offline")
	fetcher := newswire.FetcherFunc(func(ctx context.Context, url string, latency time.Duration) (newswire.RawArticle, error) {
		return newswire.RawArticle{}, cause
	})

	workers := openPool(t, 2)
	a := New(testConfig(2, 0, 0), workers, WithFetcher(fetcher))

	report, err := a.ResearchSequential(context.Background(), testURLs(2))
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if report != nil {
		t.Errorf("expected nil report on failure, got %+v", report)
	}
	var fetchErr apperrors.FetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("expected FetchError in chain, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error chain does not contain the fetch cause: %v", err)
	}
}
