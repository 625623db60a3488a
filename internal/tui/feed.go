package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
	"github.com/abdullahfazal969-alt/News-agent/internal/format"
)

// articleRow tracks one article's march through the pipeline.
type articleRow struct {
	url        string
	fetched    bool
	fetchDur   time.Duration
	analyzed   bool
	analyzeDur time.Duration
	category   string
}

// FeedModel displays per-article pipeline progress: one row per input URL,
// advancing from pending through fetched to analyzed, plus a closing status
// line once the run finishes.
type FeedModel struct {
	rows     []articleRow
	offset   int
	width    int
	height   int
	finished bool
	total    time.Duration
	err      error
}

// NewFeedModel creates the feed for a run over urls.
func NewFeedModel(urls []string) FeedModel {
	rows := make([]articleRow, len(urls))
	for i, u := range urls {
		rows[i].url = u
	}
	return FeedModel{rows: rows}
}

// SetSize updates dimensions.
func (f *FeedModel) SetSize(w, h int) {
	f.width = w
	f.height = h
	f.clampOffset()
}

// AddProgress advances the row the update belongs to.
func (f *FeedModel) AddProgress(update agent.ProgressUpdate) {
	if update.Index < 0 || update.Index >= len(f.rows) {
		return
	}
	row := &f.rows[update.Index]
	switch update.Stage {
	case agent.StageFetch:
		row.fetched = true
		row.fetchDur = update.Duration
	case agent.StageAnalyze:
		row.analyzed = true
		row.analyzeDur = update.Duration
	}
}

// AddReport fills in the final per-article fields and the run total.
func (f *FeedModel) AddReport(report *agent.Report) {
	if report == nil {
		return
	}
	for i, result := range report.Results {
		if i >= len(f.rows) {
			break
		}
		f.rows[i].analyzed = true
		f.rows[i].analyzeDur = result.ProcessDuration
		f.rows[i].category = result.Category
	}
	f.finished = true
	f.total = report.TotalDuration
	f.err = nil
}

// AddError records a failed run.
func (f *FeedModel) AddError(err error) {
	f.finished = true
	f.err = err
}

// Reset returns the feed to its pending state for a fresh run.
func (f *FeedModel) Reset() {
	for i := range f.rows {
		url := f.rows[i].url
		f.rows[i] = articleRow{url: url}
	}
	f.offset = 0
	f.finished = false
	f.total = 0
	f.err = nil
}

// ScrollUp moves the window up by n lines.
func (f *FeedModel) ScrollUp(n int) {
	f.offset -= n
	f.clampOffset()
}

// ScrollDown moves the window down by n lines.
func (f *FeedModel) ScrollDown(n int) {
	f.offset += n
	f.clampOffset()
}

// PageSize returns the number of content lines one page holds.
func (f FeedModel) PageSize() int {
	h := f.height - 2 // panel borders
	if h < 1 {
		h = 1
	}
	return h
}

// lineCount returns the number of content lines, status line included.
func (f FeedModel) lineCount() int {
	n := len(f.rows)
	if f.finished {
		n++
	}
	return n
}

func (f *FeedModel) clampOffset() {
	maxOffset := f.lineCount() - f.PageSize()
	if f.offset > maxOffset {
		f.offset = maxOffset
	}
	if f.offset < 0 {
		f.offset = 0
	}
}

// View renders the feed panel.
func (f FeedModel) View() string {
	lines := make([]string, 0, f.lineCount())
	for i := range f.rows {
		lines = append(lines, f.renderRow(i))
	}
	if f.finished {
		if f.err != nil {
			lines = append(lines, feedErrorStyle.Render(fmt.Sprintf(" ✗ %v", f.err)))
		} else {
			lines = append(lines, feedDoneStyle.Render(fmt.Sprintf(" ✓ completed in %s", format.FormatSeconds(f.total))))
		}
	}

	start := f.offset
	if start > len(lines) {
		start = len(lines)
	}
	end := start + f.PageSize()
	if end > len(lines) {
		end = len(lines)
	}

	body := strings.Join(lines[start:end], "\n")
	return panelStyle.
		Width(f.width - 2).
		Height(f.height - 2).
		Render(body)
}

// renderRow renders one article line: marker, URL, latest stage timing.
func (f FeedModel) renderRow(i int) string {
	row := f.rows[i]

	urlWidth := f.width - 30
	if urlWidth < 12 {
		urlWidth = 12
	}
	url := format.TruncateSummary(row.url, urlWidth)

	switch {
	case row.analyzed:
		line := fmt.Sprintf(" %s %s %s",
			feedDoneStyle.Render("✓"),
			feedURLStyle.Render(url),
			feedStageStyle.Render("analyze "+format.FormatExecutionDuration(row.analyzeDur)))
		if row.category != "" {
			line += " " + feedDoneStyle.Render(row.category)
		}
		return line
	case row.fetched:
		return fmt.Sprintf(" %s %s %s",
			feedStageStyle.Render("↓"),
			feedURLStyle.Render(url),
			feedStageStyle.Render("fetch "+format.FormatExecutionDuration(row.fetchDur)))
	default:
		return feedPendingStyle.Render(" · " + url)
	}
}
