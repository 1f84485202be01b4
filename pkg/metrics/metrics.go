package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Saves = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "saves_total", Help: "Number of Save calls by backend and result (created|duplicate|error)."},
		[]string{"backend", "result"},
	)
	Lookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "lookups_total", Help: "Number of FindByID calls by backend and result (found|missing|error)."},
		[]string{"backend", "result"},
	)
	Searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "docstore", Name: "searches_total", Help: "Number of Search calls by backend."},
		[]string{"backend"},
	)
	SearchMatches = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docstore",
			Name:      "search_matches",
			Help:      "Number of documents returned per Search call.",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		},
		[]string{"backend"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(Saves)
	reg.MustRegister(Lookups)
	reg.MustRegister(Searches)
	reg.MustRegister(SearchMatches)
}
