// Package metrics exposes MST engine runs as Prometheus metrics.
//
// A Recorder owns a private registry, so several recorders (one per test,
// one per process) never collide with each other or with the global default
// registry. It implements mst.Observer; pass it with mst.WithObserver.
//
// Metrics:
//
//	primst_runs_total{frontier}                 counter
//	primst_run_errors_total{stage}              counter
//	primst_vertices_reached_total               counter
//	primst_vertices_unreached_total             counter
//	primst_relaxations_total                    counter
//	primst_last_tree_weight                     gauge
//	primst_last_graph_vertices                  gauge
//	primst_last_graph_edges                     gauge
//	primst_run_duration_seconds{frontier}       histogram
//
// Batch jobs have no scrape endpoint; WriteTextfile writes the registry in
// the text exposition format for the node_exporter textfile collector.
package metrics
