package shipment

import (
	"math"

	"logistics/internal/entities"
)

const (
	fallbackBaseCharge = 10.0
	fallbackRatePerKg  = 2.5
	fallbackTaxRate    = 0.18
)

// FallbackPrice собственный тариф для заказов без партнерской цены.
func FallbackPrice(weight float64, shipmentType entities.ShipmentType, priority entities.Priority) entities.ShipmentPricing {
	base := fallbackBaseCharge + weight*fallbackRatePerKg

	switch shipmentType {
	case entities.ShipmentInternational:
		base *= 3
	case entities.ShipmentExpress:
		base *= 2
	}

	switch priority {
	case entities.PriorityOvernight:
		base *= 2.5
	case entities.PriorityExpress:
		base *= 1.5
	}

	// налог и итог считаются от неокругленной базы
	tax := base * fallbackTaxRate

	return roundPricing(entities.ShipmentPricing{
		BasePrice:  base,
		Tax:        tax,
		TotalPrice: base + tax,
	})
}

func roundPricing(p entities.ShipmentPricing) entities.ShipmentPricing {
	return entities.ShipmentPricing{
		BasePrice:  round2(p.BasePrice),
		Tax:        round2(p.Tax),
		TotalPrice: round2(p.TotalPrice),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
