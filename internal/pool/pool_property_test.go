package pool

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestPoolCompleteness_PropertyBased verifies that for arbitrary worker
// counts and workloads, every accepted submission resolves exactly once with
// the value its task produced, and the futures line up with their
// submissions. This is the contract the research pipeline's ordered report
// rests on.
func TestPoolCompleteness_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("every submission resolves with its own result", prop.ForAll(
		func(workers int, numTasks int) bool {
			p, err := Open(workers)
			if err != nil {
				t.Logf("Open(%d) failed: %v", workers, err)
				return false
			}
			defer p.Close()

			futures := make([]*Future[int], numTasks)
			for i := 0; i < numTasks; i++ {
				x := i
				f, err := Submit(p, func() (int, error) { return x * x, nil })
				if err != nil {
					t.Logf("Submit %d failed: %v", i, err)
					return false
				}
				futures[i] = f
			}

			for i, f := range futures {
				got, err := f.Wait(context.Background())
				if err != nil {
					t.Logf("Wait %d failed: %v", i, err)
					return false
				}
				if got != i*i {
					t.Logf("future %d resolved to %d, want %d", i, got, i*i)
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 8),
		gen.IntRange(0, 50),
	))

	properties.Property("stats account for every completed task", prop.ForAll(
		func(workers int, numTasks int) bool {
			p, err := Open(workers)
			if err != nil {
				return false
			}

			for i := 0; i < numTasks; i++ {
				if _, err := Submit(p, func() (struct{}, error) { return struct{}{}, nil }); err != nil {
					p.Close()
					return false
				}
			}
			p.Close()

			stats := p.Stats()
			return stats.Completed == numTasks && stats.Active == 0 && stats.Queued == 0
		},
		gen.IntRange(1, 8),
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}
