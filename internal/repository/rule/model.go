package rule

type RuleDB struct {
	ID                 int64
	PartnerID          int64
	DeliveryType       string
	PackageType        string
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
