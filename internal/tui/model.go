package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
	"github.com/abdullahfazal969-alt/News-agent/internal/config"
	apperrors "github.com/abdullahfazal969-alt/News-agent/internal/errors"
	"github.com/abdullahfazal969-alt/News-agent/internal/metrics"
	"github.com/abdullahfazal969-alt/News-agent/internal/pool"
	"github.com/abdullahfazal969-alt/News-agent/internal/sysmon"
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	urls       []string
	generation uint64
	done       bool
	exitCode   int
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// bodyHeight returns the available height for the main body panels.
func (l LayoutManager) bodyHeight() int {
	h := l.height - headerHeight - footerHeight
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

// feedWidth returns the width allocated to the article feed panel.
func (l LayoutManager) feedWidth() int {
	return l.width * FeedPanelWidthPercent / 100
}

// statsWidth returns the width allocated to the stats panel.
func (l LayoutManager) statsWidth() int {
	return l.width - l.feedWidth()
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	header HeaderModel
	feed   FeedModel
	stats  StatsModel
	footer FooterModel

	keymap KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	config    config.Config
	workers   *pool.Pool
	ref       *programRef
	paused    bool
}

// NewModel creates a new TUI model around an already-open worker pool. The
// pool outlives restarts: pressing r cancels the run but reuses the workers.
func NewModel(parentCtx context.Context, cfg config.Config, urls []string, workers *pool.Pool, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	return Model{
		header: NewHeaderModel(version, len(urls)),
		feed:   NewFeedModel(urls),
		stats:  NewStatsModel(len(urls)),
		footer: NewFooterModel(),
		keymap: DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			urls:     urls,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		workers:   workers,
		ref:       &programRef{},
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startResearchCmd(m.ref, m.ctx, m.config, m.urls, m.workers, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case ProgressMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		if !m.paused {
			m.feed.AddProgress(msg.Update)
			m.stats.CountStep(msg.Update.Stage)
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case RunCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.done = true
		m.exitCode = msg.ExitCode
		if msg.Err != nil {
			m.feed.AddError(msg.Err)
		} else {
			m.feed.AddReport(msg.Report)
		}
		m.header.SetDone()
		m.footer.SetDone(msg.Err != nil)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.done = true
		m.header.SetDone()
		m.footer.SetDone(false)
		return m, tea.Quit

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			return m, tea.Batch(
				samplePoolStatsCmd(m.workers),
				sampleRuntimeStatsCmd(),
				sampleSysStatsCmd(),
				tickCmd(),
			)
		}
		return m, tickCmd()

	case PoolStatsMsg:
		m.stats.UpdatePoolStats(pool.Stats(msg))
		return m, nil

	case RuntimeStatsMsg:
		m.stats.UpdateRuntimeStats(metrics.RuntimeSnapshot(msg))
		return m, nil

	case SysStatsMsg:
		m.stats.UpdateSysStats(msg.CPUPercent, msg.MemPercent)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		// Cancel the current run
		if m.cancel != nil {
			m.cancel()
		}

		// Create a new context for the restarted run
		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel

		// Reset all UI components; the worker pool stays open
		m.header.Reset()
		m.feed.Reset()
		m.stats.Reset()
		m.footer.Reset()
		m.done = false
		m.paused = false
		m.exitCode = apperrors.ExitSuccess

		// Restart the research run and watchers
		return m, tea.Batch(
			tickCmd(),
			startResearchCmd(m.ref, m.ctx, m.config, m.urls, m.workers, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)

	case key.Matches(msg, m.keymap.Up):
		m.feed.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		m.feed.ScrollDown(1)
		return m, nil

	case key.Matches(msg, m.keymap.PageUp):
		m.feed.ScrollUp(m.feed.PageSize())
		return m, nil

	case key.Matches(msg, m.keymap.PageDown):
		m.feed.ScrollDown(m.feed.PageSize())
		return m, nil
	}

	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View()
	footer := m.footer.View()

	// Main body: article feed on the left, stats on the right
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.feed.View(), m.stats.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Layout constants for the TUI dashboard.
const (
	headerHeight          = 1
	footerHeight          = 1
	minBodyHeight         = 4
	FeedPanelWidthPercent = 62
)

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.feed.SetSize(m.feedWidth(), m.bodyHeight())
	m.stats.SetSize(m.statsWidth(), m.bodyHeight())
}

// Run is the public entry point for the TUI mode. It opens the worker pool,
// runs the bubbletea program, and returns the process exit code.
func Run(ctx context.Context, cfg config.Config, urls []string, version string) int {
	workers, err := pool.Open(cfg.MaxWorkers)
	if err != nil {
		return apperrors.ExitCode(err)
	}
	defer workers.Close()

	model := NewModel(ctx, cfg, urls, workers, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startResearchCmd returns a tea.Cmd that launches a research run. The
// progress channel is sized so no event is ever dropped; a bridge goroutine
// republishes updates into the program until the run closes the channel.
func startResearchCmd(ref *programRef, ctx context.Context, cfg config.Config, urls []string, workers *pool.Pool, gen uint64) tea.Cmd {
	return func() tea.Msg {
		progress := make(chan agent.ProgressUpdate, len(urls)*agent.ProgressBufferMultiplier)
		go forwardProgress(ref, progress, gen)

		a := agent.New(cfg, workers, agent.WithProgress(progress))
		report, err := a.Research(ctx, urls)
		close(progress)

		return RunCompleteMsg{
			Report:     report,
			Err:        err,
			ExitCode:   apperrors.ExitCode(err),
			Generation: gen,
		}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// samplePoolStatsCmd reads a worker pool snapshot and returns a PoolStatsMsg.
func samplePoolStatsCmd(workers *pool.Pool) tea.Cmd {
	return func() tea.Msg {
		return PoolStatsMsg(workers.Stats())
	}
}

// sampleRuntimeStatsCmd reads process runtime stats and returns a RuntimeStatsMsg.
func sampleRuntimeStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return RuntimeStatsMsg(metrics.NewRuntimeCollector().Snapshot())
	}
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
