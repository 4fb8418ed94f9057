// Package metrics exposes Prometheus instrumentation for the item lifecycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// registry holds all shelf collectors plus the standard Go/process ones.
var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Registry returns the registry all shelf collectors are registered on.
func Registry() *prometheus.Registry {
	return registry
}

// Item lifecycle counters.
var (
	// ItemCreates counts successfully created items.
	ItemCreates = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "shelf_item_creates_total",
		Help: "Total number of items created",
	})

	// ItemDeletes counts successfully deleted items.
	ItemDeletes = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "shelf_item_deletes_total",
		Help: "Total number of items deleted",
	})

	// ItemDeletesRetained counts delete attempts refused by the retention hold.
	ItemDeletesRetained = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Name: "shelf_item_deletes_retained_total",
		Help: "Total number of delete attempts refused because the item was still under retention hold",
	})
)
