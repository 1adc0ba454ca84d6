package qsim

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records batch sampling activity. A nil *Metrics records nothing.
type Metrics struct {
	Shots       prometheus.Counter
	Jobs        *prometheus.CounterVec
	RunDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg when non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Shots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "qsim",
			Name:      "shots_total",
			Help:      "Number of measurement outcomes sampled.",
		}),
		Jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "qsim",
			Name:      "jobs_total",
			Help:      "Number of sampling jobs completed, by status.",
		}, []string{"status"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "qsim",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a batch sampling run.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Shots, m.Jobs, m.RunDuration)
	}
	return m
}

func (m *Metrics) recordJob(shots int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Jobs.WithLabelValues("error").Inc()
		return
	}
	m.Jobs.WithLabelValues("ok").Inc()
	m.Shots.Add(float64(shots))
}

func (m *Metrics) recordRun(startTime time.Time) {
	if m == nil {
		return
	}
	m.RunDuration.Observe(time.Since(startTime).Seconds())
}
