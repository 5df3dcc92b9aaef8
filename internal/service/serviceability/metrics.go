package serviceability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LazyDefaultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serviceability_lazy_defaults_total",
			Help: "Total number of serviceability facts materialized with defaults",
		},
		[]string{"outcome"},
	)

	CheckPartnerFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serviceability_check_partner_failures_total",
			Help: "Total number of partners dropped from aggregated serviceability checks",
		},
		[]string{"partner"},
	)
)
