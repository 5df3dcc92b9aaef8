package entities

import "time"

const DefaultCountry = "India"

type Serviceability struct {
	ID                     int64
	PartnerID              int64
	Pincode                string
	City                   *string
	State                  *string
	Country                string
	Status                 ServiceStatus
	EstimatedDays          *int
	CodAvailable           bool
	ReversePickupAvailable bool
	LastChecked            time.Time
}

func (s *Serviceability) IsServiceable() bool {
	return s.Status == Serviceable
}

// PartnerServiceability строка ответа проверки по всем партнерам.
type PartnerServiceability struct {
	PartnerID     int64
	PartnerName   string
	PartnerCode   string
	Serviceable   bool
	CodAvailable  bool
	EstimatedDays *int
}

type PairCheck struct {
	PickupServiceable    bool
	DeliveryServiceable  bool
	Serviceable          bool
	PickupCodAvailable   bool
	DeliveryCodAvailable bool
	EstimatedDays        int
}
