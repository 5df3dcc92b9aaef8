package serviceability

import (
	"logistics/internal/entities"
)

func ToDomain(s *ServiceabilityDB) *entities.Serviceability {
	if s == nil {
		return nil
	}

	var estimatedDays *int
	if s.EstimatedDays != nil {
		days := int(*s.EstimatedDays)
		estimatedDays = &days
	}

	return &entities.Serviceability{
		ID:                     s.ID,
		PartnerID:              s.PartnerID,
		Pincode:                s.Pincode,
		City:                   s.City,
		State:                  s.State,
		Country:                s.Country,
		Status:                 entities.ServiceStatus(s.Status),
		EstimatedDays:          estimatedDays,
		CodAvailable:           s.CodAvailable,
		ReversePickupAvailable: s.ReversePickupAvailable,
		LastChecked:            s.LastChecked,
	}
}

func FromDomain(s *entities.Serviceability) *ServiceabilityDB {
	if s == nil {
		return nil
	}

	var estimatedDays *int32
	if s.EstimatedDays != nil {
		days := int32(*s.EstimatedDays)
		estimatedDays = &days
	}

	country := s.Country
	if country == "" {
		country = entities.DefaultCountry
	}

	return &ServiceabilityDB{
		ID:                     s.ID,
		PartnerID:              s.PartnerID,
		Pincode:                s.Pincode,
		City:                   s.City,
		State:                  s.State,
		Country:                country,
		Status:                 s.Status.String(),
		EstimatedDays:          estimatedDays,
		CodAvailable:           s.CodAvailable,
		ReversePickupAvailable: s.ReversePickupAvailable,
		LastChecked:            s.LastChecked,
	}
}
