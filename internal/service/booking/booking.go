package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"logistics/internal/entities"
)

const bookingIDPrefix = "BK-"

type Service struct {
	serviceability ServiceabilityService
	pricing        PricingService
	shipments      ShipmentService
	distance       DistanceProvider
	timeFactory    DeliveryTimeFactory
	txManager      TxManager
	clock          Clock
}

func New(
	serviceability ServiceabilityService,
	pricing PricingService,
	shipments ShipmentService,
	distance DistanceProvider,
	timeFactory DeliveryTimeFactory,
	txManager TxManager,
	clock Clock,
) *Service {
	return &Service{
		serviceability: serviceability,
		pricing:        pricing,
		shipments:      shipments,
		distance:       distance,
		timeFactory:    timeFactory,
		txManager:      txManager,
		clock:          clock,
	}
}

// Book проверяет маршрут у партнера, считает его цену и оформляет заказ
// по этой цене. Номер накладной пока выдается заглушкой.
func (s *Service) Book(ctx context.Context, req entities.BookingRequest) (*entities.Booking, error) {
	result, err := s.book(ctx, req)
	switch {
	case err == nil:
		BookingsTotal.WithLabelValues("booked").Inc()
	case errors.Is(err, ErrRouteNotServiceable):
		BookingsTotal.WithLabelValues("not_serviceable").Inc()
	default:
		BookingsTotal.WithLabelValues("failed").Inc()
	}
	return result, err
}

func (s *Service) book(ctx context.Context, req entities.BookingRequest) (*entities.Booking, error) {
	if req.PartnerID <= 0 {
		return nil, ErrInvalidPartnerID
	}
	if !isValidAddress(req.Sender) || !isValidAddress(req.Receiver) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidWeight(req.Weight) {
		return nil, ErrInvalidWeight
	}

	distance := s.distance.Distance(req.Sender.Pincode, req.Receiver.Pincode)

	route, err := s.serviceability.ValidatePair(ctx, req.Sender.Pincode, req.Receiver.Pincode, req.PartnerID)
	if err != nil {
		return nil, fmt.Errorf("validate route: %w", err)
	}
	if !route.Serviceable {
		return nil, ErrRouteNotServiceable
	}

	quote, err := s.pricing.Quote(ctx, entities.QuoteRequest{
		Weight:            &req.Weight,
		Length:            req.Length,
		Width:             req.Width,
		Height:            req.Height,
		DeliveryType:      &req.DeliveryType,
		PackageType:       &req.PackageType,
		CodEnabled:        req.CodEnabled,
		CodAmount:         req.CodAmount,
		InsuranceRequired: req.InsuranceRequired,
		DeclaredValue:     req.DeclaredValue,
		Distance:          &distance,
	}, req.PartnerID)
	if err != nil {
		return nil, fmt.Errorf("quote partner: %w", err)
	}

	now := s.clock.Now()
	estimatedDelivery := s.timeFactory.CalculateDeadline(quote.EstimatedDays, now)
	bookingID := bookingIDPrefix + uuid.NewString()

	draft := entities.ShipmentDraft{
		BookingID:                   &bookingID,
		Sender:                      req.Sender,
		Receiver:                    req.Receiver,
		PackageDescription:          req.PackageDescription,
		PackageType:                 &req.PackageType,
		DeliveryType:                &req.DeliveryType,
		Weight:                      &req.Weight,
		Length:                      req.Length,
		Width:                       req.Width,
		Height:                      req.Height,
		NumberOfPackages:            req.NumberOfPackages,
		DeclaredValue:               req.DeclaredValue,
		InsuranceRequired:           req.InsuranceRequired,
		SpecialHandlingInstructions: req.SpecialHandlingInstructions,
		CodEnabled:                  req.CodEnabled,
		CodAmount:                   req.CodAmount,
		CourierPartnerID:            &req.PartnerID,
		Distance:                    &distance,
		EstimatedDelivery:           &estimatedDelivery,
		Pricing: &entities.ShipmentPricing{
			BasePrice:  quote.BasePrice,
			Tax:        quote.ServiceTax,
			TotalPrice: quote.TotalPrice,
		},
	}

	// заказ без накладной не должен остаться в базе
	var (
		created   *entities.Shipment
		awbNumber string
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.shipments.Create(ctx, draft)
		if err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}
		created = shipment

		// заглушка вместо номера накладной от перевозчика
		awbNumber = fmt.Sprintf("AWB%d%d", now.UnixMilli(), created.ID)
		if _, err := s.shipments.AttachAWB(ctx, created.ID, awbNumber); err != nil {
			return fmt.Errorf("attach awb: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entities.Booking{
		BookingID:      bookingID,
		TrackingNumber: created.TrackingNumber,
		AWBNumber:      awbNumber,
		ShipmentID:     created.ID,
		TotalPrice:     created.TotalPrice,
		EstimatedDays:  quote.EstimatedDays,
	}, nil
}
