// Package metrics exposes an analytics.Report as Prometheus gauges.
//
// Exporter registers one gauge per statistic on a private registry, sets them
// from the report, gathers the metric families and writes them in the text
// exposition format. The output is meant for a node_exporter textfile
// collector or any scraper that reads a static file.
//
// Statistics that are not available are left unset and therefore omitted.
package metrics
