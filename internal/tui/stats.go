package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abdullahfazal969-alt/News-agent/internal/agent"
	"github.com/abdullahfazal969-alt/News-agent/internal/metrics"
	"github.com/abdullahfazal969-alt/News-agent/internal/pool"
	"github.com/abdullahfazal969-alt/News-agent/internal/sysmon"
)

// sparklineCapacity is the default number of host readings kept per series.
// SetSize widens or narrows the window with the panel.
const sparklineCapacity = 30

// StatsModel displays worker pool activity, process runtime readings and
// host resource usage for the current run.
type StatsModel struct {
	articles int
	fetched  int
	analyzed int

	pool pool.Stats
	rt   metrics.RuntimeSnapshot

	cpuHist *RingBuffer
	memHist *RingBuffer
	cores   int

	// speed is an exponentially smoothed analyses-per-second reading.
	speed      float64
	lastCount  int
	lastUpdate time.Time

	width  int
	height int
}

// NewStatsModel creates the stats panel for a run over articles items.
func NewStatsModel(articles int) StatsModel {
	return StatsModel{
		articles:   articles,
		cpuHist:    NewRingBuffer(sparklineCapacity),
		memHist:    NewRingBuffer(sparklineCapacity),
		cores:      sysmon.CPUCount(),
		lastUpdate: time.Now(),
	}
}

// SetSize updates dimensions. The sparkline windows track the panel width so
// the series fills the available space without wrapping.
func (s *StatsModel) SetSize(w, h int) {
	s.width = w
	s.height = h

	window := w - 14
	if window < 10 {
		window = 10
	}
	if window > 60 {
		window = 60
	}
	s.cpuHist.Resize(window)
	s.memHist.Resize(window)
}

// CountStep tallies a completed pipeline step.
func (s *StatsModel) CountStep(stage agent.Stage) {
	switch stage {
	case agent.StageFetch:
		s.fetched++
	case agent.StageAnalyze:
		s.analyzed++
		s.updateSpeed()
	}
}

// updateSpeed smooths the analyses-per-second reading with an exponential
// moving average. Sub-50ms deltas are folded into the next reading so a
// burst of completions does not spike the figure.
func (s *StatsModel) updateSpeed() {
	now := time.Now()
	dt := now.Sub(s.lastUpdate).Seconds()
	if dt < 0.05 {
		return
	}
	if dc := s.analyzed - s.lastCount; dc > 0 {
		instant := float64(dc) / dt
		if s.speed > 0 {
			s.speed = 0.7*s.speed + 0.3*instant
		} else {
			s.speed = instant
		}
	}
	s.lastCount = s.analyzed
	s.lastUpdate = now
}

// UpdatePoolStats stores the latest worker pool snapshot.
func (s *StatsModel) UpdatePoolStats(st pool.Stats) {
	s.pool = st
}

// UpdateRuntimeStats stores the latest process runtime snapshot.
func (s *StatsModel) UpdateRuntimeStats(snap metrics.RuntimeSnapshot) {
	s.rt = snap
}

// UpdateSysStats appends a host reading to the sparkline series.
func (s *StatsModel) UpdateSysStats(cpuPercent, memPercent float64) {
	s.cpuHist.Push(cpuPercent)
	s.memHist.Push(memPercent)
}

// Reset clears the per-run counters. Resource history carries across runs so
// the sparklines keep their context.
func (s *StatsModel) Reset() {
	s.fetched = 0
	s.analyzed = 0
	s.speed = 0
	s.lastCount = 0
	s.lastUpdate = time.Now()
}

// View renders the stats panel.
func (s StatsModel) View() string {
	var b strings.Builder

	writeStat(&b, "Pool", fmt.Sprintf("%d workers · %d active · %d queued · %d done",
		s.pool.Workers, s.pool.Active, s.pool.Queued, s.pool.Completed))
	writeStat(&b, "Fetched", fmt.Sprintf("%d / %d", s.fetched, s.articles))
	writeStat(&b, "Analyzed", fmt.Sprintf("%d / %d", s.analyzed, s.articles))
	if s.speed > 0 {
		writeStat(&b, "Speed", fmt.Sprintf("%.1f articles/s", s.speed))
	} else {
		writeStat(&b, "Speed", "—")
	}
	b.WriteByte('\n')

	writeStat(&b, "Heap", fmt.Sprintf("%s / %s", formatBytes(s.rt.HeapAlloc), formatBytes(s.rt.HeapSys)))
	writeStat(&b, "GC", fmt.Sprintf("%d cycles · %s paused",
		s.rt.NumGC, time.Duration(s.rt.PauseTotalNs).Round(time.Microsecond)))
	writeStat(&b, "Routines", fmt.Sprintf("%d", s.rt.Goroutines))
	if s.cores > 0 {
		writeStat(&b, "Cores", fmt.Sprintf("%d", s.cores))
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, " %s %5.1f%% %s\n",
		statLabelStyle.Render("CPU"), s.cpuHist.Last(),
		cpuSparklineStyle.Render(RenderSparkline(s.cpuHist.Slice())))
	fmt.Fprintf(&b, " %s %5.1f%% %s",
		statLabelStyle.Render("Mem"), s.memHist.Last(),
		memSparklineStyle.Render(RenderSparkline(s.memHist.Slice())))

	return panelStyle.
		Width(s.width - 2).
		Height(s.height - 2).
		Render(b.String())
}

func writeStat(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, " %s %s\n",
		statLabelStyle.Render(fmt.Sprintf("%-8s", label)),
		statValueStyle.Render(value))
}

// formatBytes renders a byte count in the nearest binary unit.
func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
