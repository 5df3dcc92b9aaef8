package tracking_event_received

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tracking_events_total",
		Help: "Total number of carrier tracking events by processing outcome",
	},
	[]string{"outcome"},
)
