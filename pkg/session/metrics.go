package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricSessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "browserd",
		Name:      "sessions_active",
		Help:      "Number of open browser sessions (0 or 1).",
	})
	metricSessionsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "browserd",
		Name:      "sessions_opened_total",
		Help:      "Browser sessions opened since process start.",
	})
	metricSessionsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "browserd",
		Name:      "sessions_closed_total",
		Help:      "Browser sessions closed since process start.",
	})
)
