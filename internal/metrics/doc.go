// Package metrics provides build metrics for getapi-site.
//
// The site builder reports through the Recorder interface. NoopRecorder is the
// default, so callers never need nil checks. PrometheusRecorder keeps the
// numbers in a private registry which the CLI can dump in Prometheus text
// format (for a node_exporter textfile collector, or a CI artifact):
//
//	reg := prom.NewRegistry()
//	recorder := metrics.NewPrometheusRecorder(reg)
//	builder := site.NewBuilder(opts).WithRecorder(recorder)
//	...
//	err := recorder.WriteTextfile("build.prom")
package metrics
