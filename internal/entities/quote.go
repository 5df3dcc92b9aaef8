package entities

// QuoteRequest параметры посылки для расчета стоимости.
// Все числовые поля опциональны, отсутствие трактуется как 0.
type QuoteRequest struct {
	Weight            *float64
	Length            *float64
	Width             *float64
	Height            *float64
	DeliveryType      *DeliveryType
	PackageType       *PackageType
	CodEnabled        bool
	CodAmount         *float64
	InsuranceRequired bool
	DeclaredValue     *float64
	Distance          *float64
}

type PriceBreakdown struct {
	PartnerID        int64
	PartnerName      string
	PartnerCode      string
	RuleID           *int64
	ChargeableWeight float64
	VolumetricWeight float64
	BasePrice        float64
	CodCharge        float64
	FragileCharge    float64
	InsuranceCharge  float64
	FuelSurcharge    float64
	ServiceTax       float64
	Subtotal         float64
	TotalPrice       float64
	EstimatedDays    int
}
