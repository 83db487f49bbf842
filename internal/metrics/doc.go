// Package metrics records site generation metrics.
//
// Components receive a Recorder and default to NoopRecorder, so metrics are
// collected only when a PrometheusRecorder is injected:
//
//	rec := metrics.NewPrometheusRecorder(prometheus.NewRegistry())
//	gen.SetRecorder(rec)
//	...
//	_ = rec.WriteTextfile("stdsites.prom")
//
// There is no HTTP endpoint; generation is a one-shot command, so the
// registry is written as a node_exporter textfile instead.
package metrics
