// Package metrics exposes Prometheus instrumentation for planner runs.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the planning engine.
type Metrics struct {
	PlansTotal    *prometheus.CounterVec
	PlanDuration  *prometheus.HistogramVec
	PlanCost      *prometheus.HistogramVec
	NodesExpanded *prometheus.CounterVec
	Fallbacks     *prometheus.CounterVec
}

var (
	metricsOnce   sync.Once
	sharedMetrics *Metrics
)

// New creates and registers the shared metrics set. Safe to call from every
// planner; registration happens once.
func New() *Metrics {
	metricsOnce.Do(func() {
		sharedMetrics = &Metrics{
			PlansTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "colonyplan_plans_total",
					Help: "Total number of planning calls",
				},
				[]string{"planner", "outcome"},
			),
			PlanDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "colonyplan_plan_duration_seconds",
					Help:    "Wall-clock duration of planning calls",
					Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs to ~26s
				},
				[]string{"planner"},
			),
			PlanCost: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "colonyplan_plan_cost",
					Help:    "Total cost of returned plans",
					Buckets: prometheus.ExponentialBuckets(1, 2, 12),
				},
				[]string{"planner"},
			),
			NodesExpanded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "colonyplan_nodes_expanded_total",
					Help: "Search nodes expanded, by algorithm",
				},
				[]string{"algorithm"},
			),
			Fallbacks: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "colonyplan_fallbacks_total",
					Help: "Planning calls that substituted the greedy fallback",
				},
				[]string{"planner"},
			),
		}
	})
	return sharedMetrics
}
