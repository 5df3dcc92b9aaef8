package entities

type PricingRule struct {
	ID                 int64
	PartnerID          int64
	DeliveryType       DeliveryType
	PackageType        PackageType
	MinWeight          float64
	MaxWeight          float64
	RatePerKg          *float64
	FixedCharge        *float64
	DistanceMultiplier *float64
	CodCharge          *float64
	FragileCharge      *float64
	InsuranceChargePct *float64
	FuelSurchargePct   *float64
	ServiceTaxPct      *float64
	Active             bool
}

// RuleLookup ключ поиска тарифного правила.
type RuleLookup struct {
	PartnerID    int64
	DeliveryType DeliveryType
	PackageType  PackageType
	Weight       float64
}
