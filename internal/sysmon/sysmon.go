// Package sysmon provides system-wide CPU and memory usage sampling for the
// dashboard's host panel. Readings are best-effort: sampling errors degrade
// to zero values rather than failing a render.
package sysmon

import (
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

var (
	cpuCountOnce sync.Once
	cpuCount     int
)

// CPUCount returns the number of logical CPUs, so the dashboard can relate
// the worker pool width to the cores available. The count is read once and
// cached; 0 means the read failed.
func CPUCount() int {
	cpuCountOnce.Do(func() {
		if n, err := cpu.Counts(true); err == nil {
			cpuCount = n
		}
	})
	return cpuCount
}
