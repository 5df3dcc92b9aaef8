package entities

import "time"

// CourierPartner числовые настройки опциональны, nil значит "не задано".
type CourierPartner struct {
	ID               int64
	Name             string
	Code             string
	BaseRate         *float64
	FuelSurchargePct *float64
	ServiceTaxPct    *float64
	MinCharge        *float64
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
