// Package metrics registers the application's Prometheus collectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	metricCreatedTotal = "products_created_total"
	metricDeletedTotal = "products_deleted_total"
)

// NewProductCounters creates and registers the product lifecycle counters.
// It panics if called twice on the same registry.
func NewProductCounters(reg prometheus.Registerer) (created, deleted prometheus.Counter) {
	created = prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricCreatedTotal,
		Help: "Total number of products created",
	})
	deleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricDeletedTotal,
		Help: "Total number of products deleted",
	})
	reg.MustRegister(created, deleted)
	return created, deleted
}
