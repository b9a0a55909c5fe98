package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the gallery counters. A nil *Metrics records nothing.
type Metrics struct {
	presignFailures prometheus.Counter
	listedObjects   prometheus.Counter
}

// NewMetrics creates the gallery counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		presignFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gallery_presign_failures_total",
			Help: "Number of object keys that could not be presigned.",
		}),
		listedObjects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gallery_listed_objects_total",
			Help: "Number of image objects returned by gallery listings.",
		}),
	}
	for _, c := range []prometheus.Collector{m.presignFailures, m.listedObjects} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) presignFailed() {
	if m != nil {
		m.presignFailures.Inc()
	}
}

func (m *Metrics) listed(n int) {
	if m != nil {
		m.listedObjects.Add(float64(n))
	}
}
