package workflow

import (
	"github.com/prometheus/client_golang/prometheus"
)

var transitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "krishisathi",
	Name:      "status_transitions_total",
	Help:      "Applied submission status transitions.",
}, []string{"variant", "from", "to"})

// TransitionsCollector exposes the transition counter for registration.
func TransitionsCollector() prometheus.Collector { return transitionsTotal }

// RecordTransition counts an applied status change.
func (l *Lifecycle[S]) RecordTransition(from, to S) {
	transitionsTotal.WithLabelValues(l.name, string(from), string(to)).Inc()
}
