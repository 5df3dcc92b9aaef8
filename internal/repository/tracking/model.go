package tracking

import "time"

type TrackingHistoryDB struct {
	ID          int64
	ShipmentID  int64
	Status      string
	Location    *string
	Description *string
	UpdatedBy   *string
	Timestamp   time.Time
}
