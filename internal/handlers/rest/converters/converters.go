package converters

import (
	"fmt"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
)

func AddressFromDTO(a dto.Address) entities.Address {
	address := entities.Address{
		Name:    a.Name,
		Phone:   a.Phone,
		Email:   a.Email,
		Address: a.Address,
		City:    a.City,
		State:   a.State,
		Pincode: a.Pincode,
	}
	if a.Country != nil {
		address.Country = *a.Country
	}
	return address
}

func AddressToDTO(a entities.Address) dto.Address {
	country := a.Country
	return dto.Address{
		Name:    a.Name,
		Phone:   a.Phone,
		Email:   a.Email,
		Address: a.Address,
		City:    a.City,
		State:   a.State,
		Country: &country,
		Pincode: a.Pincode,
	}
}

// ShipmentDraftFromDTO разбирает перечисления строго: неизвестное
// значение возвращает entities.ErrUnknownValue.
func ShipmentDraftFromDTO(req dto.ShipmentCreate) (entities.ShipmentDraft, error) {
	draft := entities.ShipmentDraft{
		Sender:                      AddressFromDTO(req.Sender),
		Receiver:                    AddressFromDTO(req.Receiver),
		PackageDescription:          req.PackageDescription,
		Weight:                      req.Weight,
		Length:                      req.Length,
		Width:                       req.Width,
		Height:                      req.Height,
		NumberOfPackages:            req.NumberOfPackages,
		DeclaredValue:               req.DeclaredValue,
		InsuranceRequired:           boolOf(req.InsuranceRequired),
		SpecialHandlingInstructions: req.SpecialHandlingInstructions,
		CodEnabled:                  boolOf(req.CodEnabled),
		CodAmount:                   req.CodAmount,
		CourierPartnerID:            req.CourierPartnerId,
	}

	if req.PackageType != nil {
		t, err := entities.ParsePackageType(*req.PackageType)
		if err != nil {
			return entities.ShipmentDraft{}, err
		}
		draft.PackageType = &t
	}
	if req.DeliveryType != nil {
		t, err := entities.ParseDeliveryType(*req.DeliveryType)
		if err != nil {
			return entities.ShipmentDraft{}, err
		}
		draft.DeliveryType = &t
	}
	if req.ShipmentType != nil {
		t, err := entities.ParseShipmentType(*req.ShipmentType)
		if err != nil {
			return entities.ShipmentDraft{}, err
		}
		draft.ShipmentType = &t
	}
	if req.Priority != nil {
		p, err := entities.ParsePriority(*req.Priority)
		if err != nil {
			return entities.ShipmentDraft{}, err
		}
		draft.Priority = &p
	}

	return draft, nil
}

func ShipmentToDTO(s *entities.Shipment) dto.Shipment {
	return dto.Shipment{
		Id:                          s.ID,
		TrackingNumber:              s.TrackingNumber,
		BookingId:                   s.BookingID,
		AwbNumber:                   s.AWBNumber,
		Sender:                      AddressToDTO(s.Sender),
		Receiver:                    AddressToDTO(s.Receiver),
		PackageDescription:          s.PackageDescription,
		PackageType:                 enumString(s.PackageType),
		DeliveryType:                enumString(s.DeliveryType),
		ShipmentType:                s.ShipmentType.String(),
		Priority:                    s.Priority.String(),
		Weight:                      s.Weight,
		Length:                      s.Length,
		Width:                       s.Width,
		Height:                      s.Height,
		VolumetricWeight:            s.VolumetricWeight,
		NumberOfPackages:            s.NumberOfPackages,
		DeclaredValue:               s.DeclaredValue,
		InsuranceRequired:           s.InsuranceRequired,
		SpecialHandlingInstructions: s.SpecialHandlingInstructions,
		Status:                      s.Status.String(),
		BasePrice:                   s.BasePrice,
		Tax:                         s.Tax,
		TotalPrice:                  s.TotalPrice,
		CodEnabled:                  s.CodEnabled,
		CodAmount:                   s.CodAmount,
		CourierPartnerId:            s.CourierPartnerID,
		Distance:                    s.Distance,
		EstimatedDelivery:           s.EstimatedDelivery,
		ActualDelivery:              s.ActualDelivery,
		CreatedAt:                   s.CreatedAt,
		UpdatedAt:                   s.UpdatedAt,
	}
}

func TrackingHistoryListToDTO(shipmentID int64, history []entities.TrackingHistory) dto.TrackingHistoryList {
	list := dto.TrackingHistoryList{
		ShipmentId: shipmentID,
		History:    make([]dto.TrackingHistory, 0, len(history)),
	}
	for _, h := range history {
		list.History = append(list.History, dto.TrackingHistory{
			Id:          h.ID,
			ShipmentId:  h.ShipmentID,
			Status:      h.Status.String(),
			Location:    h.Location,
			Description: h.Description,
			UpdatedBy:   h.UpdatedBy,
			Timestamp:   h.Timestamp,
		})
	}
	return list
}

// QuoteRequestFromDTO не отклоняет неизвестный тип доставки,
// он считается STANDARD.
func QuoteRequestFromDTO(req dto.QuoteRequest) (entities.QuoteRequest, error) {
	quote := entities.QuoteRequest{
		Weight:            req.Weight,
		Length:            req.Length,
		Width:             req.Width,
		Height:            req.Height,
		CodEnabled:        boolOf(req.CodEnabled),
		CodAmount:         req.CodAmount,
		InsuranceRequired: boolOf(req.InsuranceRequired),
		DeclaredValue:     req.DeclaredValue,
		Distance:          req.Distance,
	}

	if req.DeliveryType != nil {
		t := entities.DeliveryTypeOrStandard(*req.DeliveryType)
		quote.DeliveryType = &t
	}
	if req.PackageType != nil {
		t, err := entities.ParsePackageType(*req.PackageType)
		if err != nil {
			return entities.QuoteRequest{}, err
		}
		quote.PackageType = &t
	}

	return quote, nil
}

func PriceBreakdownToDTO(b *entities.PriceBreakdown) dto.PriceBreakdown {
	return dto.PriceBreakdown{
		PartnerId:        b.PartnerID,
		PartnerName:      b.PartnerName,
		PartnerCode:      b.PartnerCode,
		RuleId:           b.RuleID,
		ChargeableWeight: b.ChargeableWeight,
		VolumetricWeight: b.VolumetricWeight,
		BasePrice:        b.BasePrice,
		CodCharge:        b.CodCharge,
		FragileCharge:    b.FragileCharge,
		InsuranceCharge:  b.InsuranceCharge,
		FuelSurcharge:    b.FuelSurcharge,
		ServiceTax:       b.ServiceTax,
		Subtotal:         b.Subtotal,
		TotalPrice:       b.TotalPrice,
		EstimatedDays:    b.EstimatedDays,
	}
}

func BookingRequestFromDTO(req dto.BookingRequest) (entities.BookingRequest, error) {
	packageType, err := entities.ParsePackageType(req.PackageType)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	deliveryType, err := entities.ParseDeliveryType(req.DeliveryType)
	if err != nil {
		return entities.BookingRequest{}, err
	}

	return entities.BookingRequest{
		PartnerID:                   req.CourierPartnerId,
		Sender:                      AddressFromDTO(req.Sender),
		Receiver:                    AddressFromDTO(req.Receiver),
		PackageDescription:          req.PackageDescription,
		PackageType:                 packageType,
		DeliveryType:                deliveryType,
		Weight:                      req.Weight,
		Length:                      req.Length,
		Width:                       req.Width,
		Height:                      req.Height,
		NumberOfPackages:            req.NumberOfPackages,
		DeclaredValue:               req.DeclaredValue,
		InsuranceRequired:           boolOf(req.InsuranceRequired),
		SpecialHandlingInstructions: req.SpecialHandlingInstructions,
		CodEnabled:                  boolOf(req.CodEnabled),
		CodAmount:                   req.CodAmount,
	}, nil
}

func TrackingUpdateFromDTO(req dto.ShipmentStatusUpdate) (entities.TrackingUpdate, error) {
	status, err := entities.ParseShipmentStatus(req.Status)
	if err != nil {
		return entities.TrackingUpdate{}, fmt.Errorf("status: %w", err)
	}

	return entities.TrackingUpdate{
		Status:      status,
		Location:    req.Location,
		Description: req.Description,
		UpdatedBy:   req.UpdatedBy,
	}, nil
}

func boolOf(b *bool) bool {
	return b != nil && *b
}

func enumString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
