package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "labdash_monitor_polls_total",
		Help: "Monitor polls by outcome.",
	}, []string{"monitor", "result"})

	newRecordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "labdash_monitor_new_records_total",
		Help: "Records reported as new by a monitor.",
	}, []string{"monitor"})
)

// Prometheus reports monitor activity to the default registry.
type Prometheus struct{}

func (Prometheus) Poll(monitor string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	pollsTotal.WithLabelValues(monitor, result).Inc()
}

func (Prometheus) NewRecords(monitor string, n int) {
	if n > 0 {
		newRecordsTotal.WithLabelValues(monitor).Add(float64(n))
	}
}
