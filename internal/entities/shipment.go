package entities

import "time"

const TrackingNumberPrefix = "LOG"

type Address struct {
	Name    string
	Phone   string
	Email   *string
	Address string
	City    string
	State   string
	Country string
	Pincode string
}

type Shipment struct {
	ID                          int64
	TrackingNumber              string
	BookingID                   *string
	AWBNumber                   *string
	Sender                      Address
	Receiver                    Address
	PackageDescription          *string
	PackageType                 *PackageType
	DeliveryType                *DeliveryType
	ShipmentType                ShipmentType
	Priority                    Priority
	Weight                      float64
	Length                      *float64
	Width                       *float64
	Height                      *float64
	VolumetricWeight            *float64
	NumberOfPackages            int
	DeclaredValue               *float64
	InsuranceRequired           bool
	SpecialHandlingInstructions *string
	Status                      ShipmentStatus
	BasePrice                   float64
	Tax                         float64
	TotalPrice                  float64
	CodEnabled                  bool
	CodAmount                   *float64
	CourierPartnerID            *int64
	Distance                    *float64
	EstimatedDelivery           *time.Time
	ActualDelivery              *time.Time
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

// ShipmentPricing цена, рассчитанная партнером. Если при создании
// не передана, применяется собственный тариф.
type ShipmentPricing struct {
	BasePrice  float64
	Tax        float64
	TotalPrice float64
}

type ShipmentDraft struct {
	BookingID                   *string
	Sender                      Address
	Receiver                    Address
	PackageDescription          *string
	PackageType                 *PackageType
	DeliveryType                *DeliveryType
	ShipmentType                *ShipmentType
	Priority                    *Priority
	Weight                      *float64
	Length                      *float64
	Width                       *float64
	Height                      *float64
	NumberOfPackages            *int
	DeclaredValue               *float64
	InsuranceRequired           bool
	SpecialHandlingInstructions *string
	CodEnabled                  bool
	CodAmount                   *float64
	CourierPartnerID            *int64
	Distance                    *float64
	EstimatedDelivery           *time.Time
	Pricing                     *ShipmentPricing
}

type StatusChange struct {
	Status         ShipmentStatus
	UpdatedAt      time.Time
	ActualDelivery *time.Time
}
