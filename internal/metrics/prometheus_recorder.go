package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
)

const namespace = "stdsites"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	gatherer           prom.Gatherer
	siteDuration       *prom.HistogramVec
	generationDuration prom.Histogram
	siteResults        *prom.CounterVec
	outcomes           *prom.CounterVec
	links              *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the generation metrics on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		gatherer: reg,
		siteDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "site_generation_duration_seconds",
			Help:      "Duration of generating one site's configuration",
			Buckets:   prom.DefBuckets,
		}, []string{"site"}),
		generationDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Total generation duration across all sites",
			Buckets:   prom.DefBuckets,
		}),
		siteResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "site_results_total",
			Help:      "Site generation results by outcome",
		}, []string{"site", "result"}),
		outcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "generation_outcomes_total",
			Help:      "Generation runs by final status",
		}, []string{"outcome"}),
		links: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "link_resolutions_total",
			Help:      "Cross-site link resolutions by result",
		}, []string{"result"}),
	}
	reg.MustRegister(pr.siteDuration, pr.generationDuration, pr.siteResults, pr.outcomes, pr.links)
	return pr
}

func (p *PrometheusRecorder) ObserveSiteDuration(site string, d time.Duration) {
	if p == nil {
		return
	}
	p.siteDuration.WithLabelValues(site).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveGenerationDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.generationDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncSiteResult(site string, result ResultLabel) {
	if p == nil {
		return
	}
	p.siteResults.WithLabelValues(site, string(result)).Inc()
}

func (p *PrometheusRecorder) IncGenerationOutcome(outcome string) {
	if p == nil {
		return
	}
	p.outcomes.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) IncLinkResolution(result LinkResult) {
	if p == nil {
		return
	}
	p.links.WithLabelValues(string(result)).Inc()
}

// WriteTextfile writes the recorder's registry in the node_exporter textfile
// collector format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.gatherer); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write metrics textfile").
			WithContext("path", path).
			Build()
	}
	return nil
}
