package entities

import "time"

const InitialTrackingDescription = "Shipment order has been created"

type TrackingHistory struct {
	ID          int64
	ShipmentID  int64
	Status      ShipmentStatus
	Location    *string
	Description *string
	UpdatedBy   *string
	Timestamp   time.Time
}

type TrackingUpdate struct {
	Status      ShipmentStatus
	Location    *string
	Description *string
	UpdatedBy   *string
}
