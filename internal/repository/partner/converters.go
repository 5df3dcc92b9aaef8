package partner

import (
	"logistics/internal/entities"
)

func ToDomain(p *PartnerDB) *entities.CourierPartner {
	if p == nil {
		return nil
	}

	return &entities.CourierPartner{
		ID:               p.ID,
		Name:             p.Name,
		Code:             p.Code,
		BaseRate:         p.BaseRate,
		FuelSurchargePct: p.FuelSurchargePct,
		ServiceTaxPct:    p.ServiceTaxPct,
		MinCharge:        p.MinCharge,
		Active:           p.Active,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToDomainList(partnersDB []PartnerDB) []entities.CourierPartner {
	if len(partnersDB) == 0 {
		return []entities.CourierPartner{}
	}

	result := make([]entities.CourierPartner, len(partnersDB))
	for i, partnerDB := range partnersDB {
		result[i] = *ToDomain(&partnerDB)
	}
	return result
}
