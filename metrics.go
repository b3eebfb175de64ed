package htmlsaver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Flush trigger labels used by the flushes_total counter.
const (
	triggerSize     = "size"
	triggerInterval = "interval"
	triggerShutdown = "shutdown"
)

// Metrics holds the Prometheus instrumentation for a worker. It is
// optional: pass one to Builder.Metrics to enable it, otherwise the worker
// records nothing.
type Metrics struct {
	SavedTotal    prometheus.Counter
	DroppedTotal  prometheus.Counter
	FlushesTotal  *prometheus.CounterVec
	WriteErrors   prometheus.Counter
	BatchSize     prometheus.Histogram
	FlushDuration prometheus.Histogram
}

// NewMetrics creates and registers the metric collection against the given
// registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	return &Metrics{
		SavedTotal: promauto.With(registerer).NewCounter(prometheus.CounterOpts{
			Name: "htmlsaver_saved_total",
			Help: "Total number of items accepted by Save",
		}),
		DroppedTotal: promauto.With(registerer).NewCounter(prometheus.CounterOpts{
			Name: "htmlsaver_dropped_total",
			Help: "Total number of items rejected by Save (channel full or closed)",
		}),
		FlushesTotal: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Name: "htmlsaver_flushes_total",
			Help: "Total number of batch flushes",
		}, []string{"trigger"}),
		WriteErrors: promauto.With(registerer).NewCounter(prometheus.CounterOpts{
			Name: "htmlsaver_write_errors_total",
			Help: "Total number of failed storage writes",
		}),
		BatchSize: promauto.With(registerer).NewHistogram(prometheus.HistogramOpts{
			Name:    "htmlsaver_batch_size",
			Help:    "Number of items per flushed batch",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		FlushDuration: promauto.With(registerer).NewHistogram(prometheus.HistogramOpts{
			Name:    "htmlsaver_flush_duration_seconds",
			Help:    "Wall time of each flush, including all storage writes",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) recordSave(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.DroppedTotal.Inc()
		return
	}
	m.SavedTotal.Inc()
}

func (m *Metrics) recordFlush(trigger string, size int, elapsed time.Duration, errors int) {
	if m == nil {
		return
	}
	m.FlushesTotal.WithLabelValues(trigger).Inc()
	m.BatchSize.Observe(float64(size))
	m.FlushDuration.Observe(elapsed.Seconds())
	if errors > 0 {
		m.WriteErrors.Add(float64(errors))
	}
}
