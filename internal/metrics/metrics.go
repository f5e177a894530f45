// Package metrics holds the Prometheus collectors of the catalog
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	ItemsExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "itemcatalog_items_extracted_total",
		Help: "The total number of records turned into derived items",
	})
	ItemsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "itemcatalog_items_skipped_total",
		Help: "The total number of malformed records skipped during extraction",
	})
	ItemsRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "itemcatalog_items_registered_total",
		Help: "The total number of items registered with a filter registry",
	})
	ItemsExcluded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "itemcatalog_items_excluded_total",
		Help: "The total number of items excluded from filter registration",
	})
	SourceLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "itemcatalog_source_loads_total",
		Help: "The total number of catalog source loads by source and result",
	}, []string{"source", "result"})
	LoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "itemcatalog_source_load_seconds",
		Help:    "Time spent loading a catalog source",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})
	BrowseRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "itemcatalog_browse_requests_total",
		Help: "The total number of browse requests by surface",
	}, []string{"surface"})
)

// ObserveLoad records the outcome and duration of one source load
func ObserveLoad(source string, seconds float64, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	SourceLoads.WithLabelValues(source, result).Inc()
	LoadDuration.WithLabelValues(source).Observe(seconds)
}
