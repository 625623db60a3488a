// Package metrics reads process-level runtime statistics for the dashboard:
// heap occupancy, GC activity and goroutine counts. System-wide readings
// live in the sysmon package.
package metrics

import "runtime"

// RuntimeSnapshot holds a point-in-time reading of the Go runtime.
type RuntimeSnapshot struct {
	HeapAlloc    uint64 // bytes in use by the application
	HeapSys      uint64 // bytes obtained from the OS for the heap
	Sys          uint64 // total bytes obtained from the OS
	NumGC        uint32 // completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // live heap objects
	Goroutines   int    // current goroutine count
}

// RuntimeCollector reads runtime statistics.
type RuntimeCollector struct{}

// NewRuntimeCollector creates a new runtime collector.
func NewRuntimeCollector() *RuntimeCollector {
	return &RuntimeCollector{}
}

// Snapshot reads the current runtime statistics. The goroutine count is read
// alongside the memory stats so one snapshot describes one moment.
func (rc *RuntimeCollector) Snapshot() RuntimeSnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return RuntimeSnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
		Goroutines:   runtime.NumGoroutine(),
	}
}
