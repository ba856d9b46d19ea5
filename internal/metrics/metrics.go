// seehuhn.de/go/auditreport - render audit and eligibility reports as PDF
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package metrics exposes Prometheus metrics about rendered reports.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors of the report service.
type Metrics struct {
	rendered *prometheus.CounterVec
	failed   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	pages    *prometheus.HistogramVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		rendered: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auditreport_reports_rendered_total",
				Help: "Total number of reports rendered successfully",
			},
			[]string{"kind"},
		),
		failed: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auditreport_reports_failed_total",
				Help: "Total number of reports which could not be rendered",
			},
			[]string{"kind"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auditreport_render_duration_seconds",
				Help:    "Time spent rendering a report",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"kind"},
		),
		pages: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auditreport_report_pages",
				Help:    "Number of pages per rendered report",
				Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 16, 24},
			},
			[]string{"kind"},
		),
	}
}

// Observe records the outcome of one render.  The page count is only
// recorded for successful renders.
func (m *Metrics) Observe(kind string, pages int, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(kind).Observe(d.Seconds())
	if err != nil {
		m.failed.WithLabelValues(kind).Inc()
		return
	}
	m.rendered.WithLabelValues(kind).Inc()
	m.pages.WithLabelValues(kind).Observe(float64(pages))
}
