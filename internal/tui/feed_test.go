package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
	"github.com/abdullahfazal969-alt/News-agent/internal/analysis"
)

func feedURLs() []string {
	return []string{
		"http://example.com/article_0",
		"http://example.com/article_1",
		"http://example.com/article_2",
	}
}

func TestFeedPendingRows(t *testing.T) {
	feed := NewFeedModel(feedURLs())
	feed.SetSize(80, 10)

	view := feed.View()
	for _, url := range feedURLs() {
		if !strings.Contains(view, url) {
			t.Errorf("expected view to list %q", url)
		}
	}
	if strings.Contains(view, "✓") {
		t.Error("expected no completed rows before any progress")
	}
}

func TestFeedAddProgress(t *testing.T) {
	feed := NewFeedModel(feedURLs())
	feed.SetSize(80, 10)

	feed.AddProgress(agent.ProgressUpdate{
		Stage:    agent.StageFetch,
		Index:    1,
		Duration: 100 * time.Millisecond,
	})
	view := feed.View()
	if !strings.Contains(view, "fetch") {
		t.Error("expected a fetched row after a fetch update")
	}

	feed.AddProgress(agent.ProgressUpdate{
		Stage:    agent.StageAnalyze,
		Index:    1,
		Duration: 200 * time.Millisecond,
	})
	view = feed.View()
	if !strings.Contains(view, "analyze") {
		t.Error("expected an analyzed row after an analyze update")
	}
	if !strings.Contains(view, "✓") {
		t.Error("expected a completion marker after an analyze update")
	}
}

func TestFeedAddProgressOutOfRange(t *testing.T) {
	feed := NewFeedModel(feedURLs())

	// Should not panic
	feed.AddProgress(agent.ProgressUpdate{Stage: agent.StageFetch, Index: -1})
	feed.AddProgress(agent.ProgressUpdate{Stage: agent.StageFetch, Index: len(feedURLs())})
}

func TestFeedAddReport(t *testing.T) {
	feed := NewFeedModel(feedURLs())
	feed.SetSize(80, 10)

	feed.AddReport(&agent.Report{
		Results: []analysis.ArticleAnalysis{
			{URL: feedURLs()[0], Category: "Technology", ProcessDuration: 200 * time.Millisecond},
			{URL: feedURLs()[1], Category: "General", ProcessDuration: 300 * time.Millisecond},
		},
		TotalDuration: 1500 * time.Millisecond,
	})

	view := feed.View()
	if !strings.Contains(view, "completed in") {
		t.Error("expected a completion line after the report")
	}
	if !strings.Contains(view, "1.50 seconds") {
		t.Errorf("expected the run total in the completion line, got:\n%s", view)
	}
	if !strings.Contains(view, "Technology") {
		t.Error("expected categories from the report in the view")
	}
}

func TestFeedAddReportNil(t *testing.T) {
	feed := NewFeedModel(feedURLs())
	feed.AddReport(nil)
	if feed.finished {
		t.Error("expected a nil report to leave the feed running")
	}
}

func TestFeedAddError(t *testing.T) {
	feed := NewFeedModel(feedURLs())
	feed.SetSize(80, 10)

	feed.AddError(errors.New("fetch failed for article_2"))

	view := feed.View()
	if !strings.Contains(view, "✗") {
		t.Error("expected an error marker after a failed run")
	}
	if !strings.Contains(view, "fetch failed for article_2") {
		t.Error("expected the error text in the view")
	}
}

func TestFeedReset(t *testing.T) {
	feed := NewFeedModel(feedURLs())
	feed.SetSize(80, 10)

	feed.AddProgress(agent.ProgressUpdate{Stage: agent.StageAnalyze, Index: 0})
	feed.AddError(errors.New("boom"))
	feed.ScrollDown(2)

	feed.Reset()

	if feed.finished {
		t.Error("expected Reset to clear the finished flag")
	}
	if feed.offset != 0 {
		t.Errorf("expected Reset to rewind the scroll offset, got %d", feed.offset)
	}
	view := feed.View()
	if strings.Contains(view, "✓") || strings.Contains(view, "✗") {
		t.Error("expected only pending rows after Reset")
	}
	for _, url := range feedURLs() {
		if !strings.Contains(view, url) {
			t.Errorf("expected %q to survive Reset", url)
		}
	}
}

func TestFeedScrollClamping(t *testing.T) {
	urls := make([]string, 10)
	for i := range urls {
		urls[i] = feedURLs()[0]
	}
	feed := NewFeedModel(urls)
	feed.SetSize(80, 5) // page size 3

	feed.ScrollDown(100)
	if want := len(urls) - feed.PageSize(); feed.offset != want {
		t.Errorf("expected offset clamped to %d, got %d", want, feed.offset)
	}

	feed.ScrollUp(100)
	if feed.offset != 0 {
		t.Errorf("expected offset clamped to 0, got %d", feed.offset)
	}
}

func TestFeedPageSize(t *testing.T) {
	feed := NewFeedModel(feedURLs())

	feed.SetSize(80, 6)
	if got := feed.PageSize(); got != 4 {
		t.Errorf("expected page size 4 for height 6, got %d", got)
	}

	feed.SetSize(80, 1)
	if got := feed.PageSize(); got != 1 {
		t.Errorf("expected minimum page size 1, got %d", got)
	}
}
