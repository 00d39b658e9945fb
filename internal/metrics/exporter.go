package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/reignstats/reignstats/internal/analytics"
)

const namespace = "reignstats"

// Exporter renders reports in Prometheus text exposition format.
type Exporter struct {
	reg *prometheus.Registry

	monarchs     prometheus.Gauge
	longestReign *prometheus.GaugeVec
	longestHouse *prometheus.GaugeVec
	firstName    *prometheus.GaugeVec
	currentHouse *prometheus.GaugeVec
	generatedAt  prometheus.Gauge
}

// NewExporter creates an Exporter with its gauges registered.
func NewExporter() *Exporter {
	e := &Exporter{
		reg: prometheus.NewRegistry(),
		monarchs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "monarchs",
			Help:      "Number of monarchs in the dataset.",
		}),
		longestReign: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "longest_reign_years",
			Help:      "Length of the longest single reign, by monarch.",
		}, []string{"name"}),
		longestHouse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "longest_house_years",
			Help:      "Total years reigned by the longest-ruling house.",
		}, []string{"house"}),
		firstName: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "common_first_name_occurrences",
			Help:      "Occurrences of the most common first name.",
		}, []string{"name"}),
		currentHouse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_house_years",
			Help:      "Total years reigned by the current monarch's house.",
		}, []string{"house"}),
		generatedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "report_generated_timestamp_seconds",
			Help:      "Unix time the report was computed.",
		}),
	}
	e.reg.MustRegister(e.monarchs, e.longestReign, e.longestHouse, e.firstName, e.currentHouse, e.generatedAt)
	return e
}

// Render sets the gauges from rep and writes the exposition to w.
// Labelled gauges are reset first so a re-render never carries stale labels.
func (e *Exporter) Render(w io.Writer, rep *analytics.Report) error {
	e.longestReign.Reset()
	e.longestHouse.Reset()
	e.firstName.Reset()
	e.currentHouse.Reset()

	e.monarchs.Set(float64(rep.Count))
	if r := rep.LongestReign; r.Available {
		e.longestReign.WithLabelValues(r.Name).Set(float64(r.Years))
	}
	if h := rep.LongestHouse; h.Available {
		e.longestHouse.WithLabelValues(h.House).Set(float64(h.Years))
	}
	if n := rep.CommonFirstName; n.Available {
		e.firstName.WithLabelValues(n.Name).Set(float64(n.Count))
	}
	if h := rep.CurrentHouse; h.Available {
		e.currentHouse.WithLabelValues(h.House).Set(float64(h.Years))
	}
	if !rep.GeneratedAt.IsZero() {
		e.generatedAt.Set(float64(rep.GeneratedAt.Unix()))
	}

	mfs, err := e.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	return writeFamilies(w, mfs)
}

// writeFamilies encodes metric families in the text exposition format.
func writeFamilies(w io.Writer, mfs []*dto.MetricFamily) error {
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
