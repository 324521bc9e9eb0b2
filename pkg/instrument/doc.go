// Package instrument reports vrec runtime activity to Prometheus and
// OpenTelemetry.
//
// Both Metrics and Tracer implement vrec.Observer:
//
//	metrics := instrument.NewMetrics(instrument.WithNamespace("myapp"))
//	tracer := instrument.NewTracer()
//	mem := surface.NewMemory()
//	root := vrec.Render(app, mem.NewContainer("body"), metrics.Surface(mem),
//	    vrec.WithObserver(metrics),
//	    vrec.WithObserver(tracer),
//	)
//
// Metrics collected (namespace "vrec" by default):
//   - vrec_renders_total: component invocations by kind and component
//   - vrec_commits_total: reconcile passes by reason and status
//   - vrec_commit_duration_seconds: reconcile pass duration by reason
//   - vrec_faults_total: aborted passes by fault code
//   - vrec_surface_ops_total: surface mutations by operation
//   - vrec_batch_flushes_total: closed batch windows that flushed updates
//   - vrec_batch_updates: distinct components updated per flush
package instrument
