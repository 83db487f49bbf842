package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testRecorder struct {
	siteDurations map[string]int
	siteResults   map[string]map[ResultLabel]int
	generations   int
	outcomes      map[string]int
	links         map[LinkResult]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		siteDurations: map[string]int{},
		siteResults:   map[string]map[ResultLabel]int{},
		outcomes:      map[string]int{},
		links:         map[LinkResult]int{},
	}
}

func (t *testRecorder) ObserveSiteDuration(site string, _ time.Duration) { t.siteDurations[site]++ }
func (t *testRecorder) ObserveGenerationDuration(time.Duration) { t.generations++ }
func (t *testRecorder) IncSiteResult(site string, result ResultLabel) {
	m, ok := t.siteResults[site]
	if !ok {
		m = map[ResultLabel]int{}
		t.siteResults[site] = m
	}
	m[result]++
}
func (t *testRecorder) IncGenerationOutcome(outcome string) { t.outcomes[outcome]++ }
func (t *testRecorder) IncLinkResolution(result LinkResult) { t.links[result]++ }

func TestRecorderInterfaceCompliance(t *testing.T) {
	var _ Recorder = NoopRecorder{}
	var _ Recorder = (*PrometheusRecorder)(nil)

	r := newTestRecorder()
	var rec Recorder = r
	rec.ObserveSiteDuration("LRM", time.Millisecond)
	rec.IncSiteResult("LRM", ResultSuccess)
	rec.IncSiteResult("LRM", ResultSuccess)
	rec.IncLinkResolution(LinkUnresolved)
	rec.IncGenerationOutcome("success")
	rec.ObserveGenerationDuration(time.Second)

	assert.Equal(t, 1, r.siteDurations["LRM"])
	assert.Equal(t, 2, r.siteResults["LRM"][ResultSuccess])
	assert.Equal(t, 1, r.links[LinkUnresolved])
	assert.Equal(t, 1, r.outcomes["success"])
	assert.Equal(t, 1, r.generations)
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var p *PrometheusRecorder
	assert.NotPanics(t, func() {
		p.ObserveSiteDuration("x", time.Second)
		p.IncSiteResult("x", ResultFailed)
		p.IncLinkResolution(LinkResolved)
	})
}
