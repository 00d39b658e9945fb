// Package render writes an analytics.Report for people and scripts.
//
// Text prints the five numbered statistic lines, styled with Lip Gloss when
// the destination is a colour terminal. JSON prints the report as indented
// JSON. The Prometheus exposition lives in package metrics.
package render
