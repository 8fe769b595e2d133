package report

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jmgilman/go/safecall"
)

// Counter is a Reporter that counts unexpected failures in a Prometheus counter,
// labeled by the failure's status code. Failures without a status code are
// counted under the label value "none".
type Counter struct {
	failures *prometheus.CounterVec
}

// Compile-time guarantee that *Counter implements safecall.Reporter.
var _ safecall.Reporter = (*Counter)(nil)

// NewCounter creates a counting sink and registers its metric with the given
// registerer. Pass prometheus.DefaultRegisterer to expose it on the default
// /metrics endpoint.
//
// The metric is:
//
//	safecall_unexpected_failures_total{status="..."}
func NewCounter(reg prometheus.Registerer) *Counter {
	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safecall_unexpected_failures_total",
			Help: "Total number of unexpected failures reported by safe calls",
		},
		[]string{"status"},
	)
	reg.MustRegister(failures)

	return &Counter{failures: failures}
}

// Report increments the counter for the failure's status code.
func (c *Counter) Report(_ context.Context, err error) {
	status := "none"
	if code, ok := safecall.StatusFromError(err); ok {
		status = strconv.Itoa(code)
	}

	c.failures.WithLabelValues(status).Inc()
}
