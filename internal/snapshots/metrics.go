package snapshots

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	captured  prometheus.Counter
	unchanged prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	m := &metrics{
		captured: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gitscope",
			Subsystem: "snapshots",
			Name:      "captured_total",
			Help:      "Number of status snapshots stored.",
		}),
		unchanged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gitscope",
			Subsystem: "snapshots",
			Name:      "unchanged_total",
			Help:      "Number of captures skipped because the status had not changed.",
		}),
	}

	registerer.MustRegister(m.captured, m.unchanged)

	return m
}
