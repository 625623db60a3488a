//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
	"github.com/abdullahfazal969-alt/News-agent/internal/app"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner,
// decoupling the progress display from a specific spinner implementation so
// it can be tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerReporter implements app.ProgressReporter with a terminal spinner
// whose suffix tracks per-stage completion counts.
type SpinnerReporter struct{}

// Verify that SpinnerReporter implements app.ProgressReporter.
var _ app.ProgressReporter = SpinnerReporter{}

// Display animates a spinner until the progress stream closes, updating the
// suffix as articles move through the pipeline stages.
func (SpinnerReporter) Display(wg *sync.WaitGroup, updates <-chan agent.ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()

	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(progressSuffix(total, 0, 0))
	sp.Start()
	defer sp.Stop()

	fetched, analyzed := 0, 0
	for update := range updates {
		switch update.Stage {
		case agent.StageFetch:
			fetched++
		case agent.StageAnalyze:
			analyzed++
		}
		sp.UpdateSuffix(progressSuffix(total, fetched, analyzed))
	}
}

// progressSuffix renders the spinner's status text.
func progressSuffix(total, fetched, analyzed int) string {
	return fmt.Sprintf(" Researching %d articles... %d fetched, %d analyzed", total, fetched, analyzed)
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
