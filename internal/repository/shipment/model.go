package shipment

import "time"

type ShipmentDB struct {
	ID             int64
	TrackingNumber string
	BookingID      *string
	AWBNumber      *string

	SenderName    string
	SenderPhone   string
	SenderEmail   *string
	SenderAddress string
	SenderCity    string
	SenderState   string
	SenderCountry string
	SenderPincode string

	ReceiverName    string
	ReceiverPhone   string
	ReceiverEmail   *string
	ReceiverAddress string
	ReceiverCity    string
	ReceiverState   string
	ReceiverCountry string
	ReceiverPincode string

	PackageDescription          *string
	PackageType                 *string
	DeliveryType                *string
	ShipmentType                string
	Priority                    string
	Weight                      float64
	Length                      *float64
	Width                       *float64
	Height                      *float64
	VolumetricWeight            *float64
	NumberOfPackages            int32
	DeclaredValue               *float64
	InsuranceRequired           bool
	SpecialHandlingInstructions *string

	Status            string
	BasePrice         float64
	Tax               float64
	TotalPrice        float64
	CodEnabled        bool
	CodAmount         *float64
	CourierPartnerID  *int64
	Distance          *float64
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
