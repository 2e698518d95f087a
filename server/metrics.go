package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry        *prometheus.Registry
	leads           *prometheus.CounterVec
	nowPlaying      *prometheus.CounterVec
	contentProblems prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		leads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "leads_total",
			Help:      "Lead submissions by result.",
		}, []string{"result"}),
		nowPlaying: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "now_playing_requests_total",
			Help:      "Now playing lookups by whether something was playing.",
		}, []string{"playing"}),
		contentProblems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "folio",
			Name:      "content_problems",
			Help:      "Project files left out of the listing at the last audit.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.leads,
		m.nowPlaying,
		m.contentProblems,
	)

	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
