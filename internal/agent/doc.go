// Package agent coordinates the two-phase research pipeline: fetch every
// article concurrently on the Go scheduler, then analyze every article on a
// bounded worker pool, and assemble the results into an ordered report. It
// decouples pipeline logic from presentation via caller-supplied progress
// channels.
package agent
