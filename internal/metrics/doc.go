// Package metrics collects run statistics: node lifecycle counters and step
// durations exported through Prometheus, and runtime memory snapshots for the
// details summary.
package metrics
