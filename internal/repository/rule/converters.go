package rule

import (
	"logistics/internal/entities"
)

func ToDomain(r *RuleDB) *entities.PricingRule {
	if r == nil {
		return nil
	}

	return &entities.PricingRule{
		ID:                 r.ID,
		PartnerID:          r.PartnerID,
		DeliveryType:       entities.DeliveryType(r.DeliveryType),
		PackageType:        entities.PackageType(r.PackageType),
		MinWeight:          r.MinWeight,
		MaxWeight:          r.MaxWeight,
		RatePerKg:          r.RatePerKg,
		FixedCharge:        r.FixedCharge,
		DistanceMultiplier: r.DistanceMultiplier,
		CodCharge:          r.CodCharge,
		FragileCharge:      r.FragileCharge,
		InsuranceChargePct: r.InsuranceChargePct,
		FuelSurchargePct:   r.FuelSurchargePct,
		ServiceTaxPct:      r.ServiceTaxPct,
		Active:             r.Active,
	}
}

func ToDomainList(rulesDB []RuleDB) []entities.PricingRule {
	if len(rulesDB) == 0 {
		return []entities.PricingRule{}
	}

	result := make([]entities.PricingRule, len(rulesDB))
	for i, ruleDB := range rulesDB {
		result[i] = *ToDomain(&ruleDB)
	}
	return result
}
