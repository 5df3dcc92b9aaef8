package shipment

import (
	"logistics/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	shipment := &entities.Shipment{
		ID:             s.ID,
		TrackingNumber: s.TrackingNumber,
		BookingID:      s.BookingID,
		AWBNumber:      s.AWBNumber,
		Sender: entities.Address{
			Name:    s.SenderName,
			Phone:   s.SenderPhone,
			Email:   s.SenderEmail,
			Address: s.SenderAddress,
			City:    s.SenderCity,
			State:   s.SenderState,
			Country: s.SenderCountry,
			Pincode: s.SenderPincode,
		},
		Receiver: entities.Address{
			Name:    s.ReceiverName,
			Phone:   s.ReceiverPhone,
			Email:   s.ReceiverEmail,
			Address: s.ReceiverAddress,
			City:    s.ReceiverCity,
			State:   s.ReceiverState,
			Country: s.ReceiverCountry,
			Pincode: s.ReceiverPincode,
		},
		PackageDescription:          s.PackageDescription,
		ShipmentType:                entities.ShipmentType(s.ShipmentType),
		Priority:                    entities.Priority(s.Priority),
		Weight:                      s.Weight,
		Length:                      s.Length,
		Width:                       s.Width,
		Height:                      s.Height,
		VolumetricWeight:            s.VolumetricWeight,
		NumberOfPackages:            int(s.NumberOfPackages),
		DeclaredValue:               s.DeclaredValue,
		InsuranceRequired:           s.InsuranceRequired,
		SpecialHandlingInstructions: s.SpecialHandlingInstructions,
		Status:                      entities.ShipmentStatus(s.Status),
		BasePrice:                   s.BasePrice,
		Tax:                         s.Tax,
		TotalPrice:                  s.TotalPrice,
		CodEnabled:                  s.CodEnabled,
		CodAmount:                   s.CodAmount,
		CourierPartnerID:            s.CourierPartnerID,
		Distance:                    s.Distance,
		EstimatedDelivery:           s.EstimatedDelivery,
		ActualDelivery:              s.ActualDelivery,
		CreatedAt:                   s.CreatedAt,
		UpdatedAt:                   s.UpdatedAt,
	}

	if s.PackageType != nil {
		packageType := entities.PackageType(*s.PackageType)
		shipment.PackageType = &packageType
	}
	if s.DeliveryType != nil {
		deliveryType := entities.DeliveryType(*s.DeliveryType)
		shipment.DeliveryType = &deliveryType
	}

	return shipment
}

func FromDomain(s *entities.Shipment) *ShipmentDB {
	if s == nil {
		return nil
	}

	model := &ShipmentDB{
		ID:                          s.ID,
		TrackingNumber:              s.TrackingNumber,
		BookingID:                   s.BookingID,
		AWBNumber:                   s.AWBNumber,
		SenderName:                  s.Sender.Name,
		SenderPhone:                 s.Sender.Phone,
		SenderEmail:                 s.Sender.Email,
		SenderAddress:               s.Sender.Address,
		SenderCity:                  s.Sender.City,
		SenderState:                 s.Sender.State,
		SenderCountry:               s.Sender.Country,
		SenderPincode:               s.Sender.Pincode,
		ReceiverName:                s.Receiver.Name,
		ReceiverPhone:               s.Receiver.Phone,
		ReceiverEmail:               s.Receiver.Email,
		ReceiverAddress:             s.Receiver.Address,
		ReceiverCity:                s.Receiver.City,
		ReceiverState:               s.Receiver.State,
		ReceiverCountry:             s.Receiver.Country,
		ReceiverPincode:             s.Receiver.Pincode,
		PackageDescription:          s.PackageDescription,
		ShipmentType:                s.ShipmentType.String(),
		Priority:                    s.Priority.String(),
		Weight:                      s.Weight,
		Length:                      s.Length,
		Width:                       s.Width,
		Height:                      s.Height,
		VolumetricWeight:            s.VolumetricWeight,
		NumberOfPackages:            int32(s.NumberOfPackages),
		DeclaredValue:               s.DeclaredValue,
		InsuranceRequired:           s.InsuranceRequired,
		SpecialHandlingInstructions: s.SpecialHandlingInstructions,
		Status:                      s.Status.String(),
		BasePrice:                   s.BasePrice,
		Tax:                         s.Tax,
		TotalPrice:                  s.TotalPrice,
		CodEnabled:                  s.CodEnabled,
		CodAmount:                   s.CodAmount,
		CourierPartnerID:            s.CourierPartnerID,
		Distance:                    s.Distance,
		EstimatedDelivery:           s.EstimatedDelivery,
		ActualDelivery:              s.ActualDelivery,
		CreatedAt:                   s.CreatedAt,
		UpdatedAt:                   s.UpdatedAt,
	}

	if s.PackageType != nil {
		packageType := s.PackageType.String()
		model.PackageType = &packageType
	}
	if s.DeliveryType != nil {
		deliveryType := s.DeliveryType.String()
		model.DeliveryType = &deliveryType
	}

	return model
}
