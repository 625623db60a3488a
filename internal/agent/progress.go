package agent

import "time"

// Stage identifies which pipeline phase a progress event belongs to.
type Stage string

// Pipeline stages reported through progress events.
const (
	StageFetch   Stage = "fetch"
	StageAnalyze Stage = "analyze"
)

// ProgressBufferMultiplier is the recommended progress channel buffer size
// per article: each article produces one fetch event and one analyze event.
// Callers that size their channel as len(urls)*ProgressBufferMultiplier can
// never lose events to a slow consumer.
const ProgressBufferMultiplier = 2

// ProgressUpdate describes the completion of one per-article pipeline step.
// Consumers receive them on the channel supplied via WithProgress; the agent
// sends non-blockingly, so a full channel drops events rather than stalling
// the pipeline.
type ProgressUpdate struct {
	// Stage is the phase the article just finished.
	Stage Stage

	// Index is the article's position in the run's input URL list.
	Index int

	// URL is the article location.
	URL string

	// Duration is the wall-clock time the step took.
	Duration time.Duration
}

// emit delivers a progress event without ever blocking the pipeline. A nil
// channel means no consumer is attached and the event is discarded silently.
func (a *Agent) emit(update ProgressUpdate) {
	if a.progress == nil {
		return
	}
	select {
	case a.progress <- update:
	default:
		a.log.Warn().
			Str("stage", string(update.Stage)).
			Str("url", update.URL).
			Msg("progress event dropped: slow consumer")
	}
}
