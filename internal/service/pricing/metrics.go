package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuotePartnerFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_quote_partner_failures_total",
			Help: "Total number of partners dropped from aggregated quotes",
		},
		[]string{"partner"},
	)

	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_quotes_total",
			Help: "Total number of computed quotes by pricing source",
		},
		[]string{"partner", "source"},
	)
)
