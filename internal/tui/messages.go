package tui

import (
	"time"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
	"github.com/abdullahfazal969-alt/News-agent/internal/metrics"
	"github.com/abdullahfazal969-alt/News-agent/internal/pool"
)

// Messages carry a Generation where they originate from a specific research
// run, so updates from a run that was cancelled by a restart are discarded
// instead of corrupting the next run's view.

// ProgressMsg reports the completion of one per-article pipeline step.
type ProgressMsg struct {
	Update     agent.ProgressUpdate
	Generation uint64
}

// ProgressDoneMsg signals that a run's progress stream ended.
type ProgressDoneMsg struct {
	Generation uint64
}

// RunCompleteMsg carries a finished run's outcome, successful or not.
type RunCompleteMsg struct {
	Report     *agent.Report
	Err        error
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg reports that a run's context ended.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}

// TickMsg drives the elapsed clock and periodic resource sampling.
type TickMsg time.Time

// RuntimeStatsMsg carries a process runtime snapshot.
type RuntimeStatsMsg metrics.RuntimeSnapshot

// SysStatsMsg carries a system-wide resource snapshot.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// PoolStatsMsg carries a worker pool snapshot.
type PoolStatsMsg pool.Stats
