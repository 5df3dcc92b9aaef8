package serviceability

import "time"

type ServiceabilityDB struct {
	ID                     int64
	PartnerID              int64
	Pincode                string
	City                   *string
	State                  *string
	Country                string
	Status                 string
	EstimatedDays          *int32
	CodAvailable           bool
	ReversePickupAvailable bool
	LastChecked            time.Time
}
