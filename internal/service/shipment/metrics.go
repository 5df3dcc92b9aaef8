package shipment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipments_created_total",
			Help: "Total number of created shipments",
		},
		[]string{"shipment_type", "pricing"},
	)

	StatusUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_status_updates_total",
			Help: "Total number of shipment status updates",
		},
		[]string{"status"},
	)

	TrackingNumberCollisionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shipment_tracking_number_collisions_total",
			Help: "Total number of minted tracking numbers rejected as already taken",
		},
	)
)
