package metrics

import "time"

// ResultLabel enumerates per-site result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFailed   ResultLabel = "failed"
	ResultCanceled ResultLabel = "canceled"
)

// LinkResult labels the outcome of resolving one cross-site link.
type LinkResult string

const (
	LinkResolved   LinkResult = "resolved"
	LinkUnresolved LinkResult = "unresolved"
)

// Recorder defines observability hooks for generation metrics.
type Recorder interface {
	ObserveSiteDuration(site string, d time.Duration)
	ObserveGenerationDuration(d time.Duration)
	IncSiteResult(site string, result ResultLabel)
	IncGenerationOutcome(outcome string) // success|partial|failed|canceled
	IncLinkResolution(result LinkResult)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveSiteDuration(string, time.Duration) {}
func (NoopRecorder) ObserveGenerationDuration(time.Duration)   {}
func (NoopRecorder) IncSiteResult(string, ResultLabel)         {}
func (NoopRecorder) IncGenerationOutcome(string)               {}
func (NoopRecorder) IncLinkResolution(LinkResult)              {}
