package entities

type BookingRequest struct {
	PartnerID                   int64
	Sender                      Address
	Receiver                    Address
	PackageDescription          *string
	PackageType                 PackageType
	DeliveryType                DeliveryType
	Weight                      float64
	Length                      *float64
	Width                       *float64
	Height                      *float64
	NumberOfPackages            *int
	DeclaredValue               *float64
	InsuranceRequired           bool
	SpecialHandlingInstructions *string
	CodEnabled                  bool
	CodAmount                   *float64
}

type Booking struct {
	BookingID      string
	TrackingNumber string
	AWBNumber      string
	ShipmentID     int64
	TotalPrice     float64
	EstimatedDays  int
}
