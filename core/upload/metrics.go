package upload

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts upload outcomes. A nil *Metrics records nothing.
type Metrics struct {
	uploads *prometheus.CounterVec
	size    prometheus.Histogram
}

// NewMetrics creates the upload collectors and registers them on reg.
// Collectors already registered on reg are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	uploads := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uploads_total",
			Help: "Upload requests by result code.",
		},
		[]string{"result"},
	)
	size := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "upload_size_bytes",
		Help:    "Size of stored uploads in bytes.",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
	})

	var err error
	if uploads, err = register(reg, uploads); err != nil {
		return nil, err
	}
	if size, err = register(reg, size); err != nil {
		return nil, err
	}

	return &Metrics{uploads: uploads, size: size}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *Metrics) observe(result string, size int, stored bool) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(result).Inc()
	if stored {
		m.size.Observe(float64(size))
	}
}
