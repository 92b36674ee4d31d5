package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PathQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "citynav_path_queries_total",
		Help: "Total number of shortest-path queries, labelled by algorithm and outcome.",
	}, []string{"algorithm", "outcome"})

	GraphMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "citynav_graph_mutations_total",
		Help: "Total number of graph mutations, labelled by operation.",
	}, []string{"op"})

	Traversals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "citynav_traversals_total",
		Help: "Total number of graph traversals, labelled by algorithm.",
	}, []string{"algorithm"})

	QueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "citynav_path_query_duration_ms",
		Help:    "Shortest-path query latency in milliseconds.",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 25, 50, 100, 250},
	})

	Cities = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "citynav_cities",
		Help: "Current number of cities in the graph.",
	})

	Roads = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "citynav_roads",
		Help: "Current number of roads in the graph.",
	})
)
