package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"logistics/internal/entities"
	"logistics/internal/service/pricing"
)

type Service struct {
	repository Repository
	history    HistoryRepository
	numbers    TrackingNumberFactory
	retrier    Retrier
	txManager  TxManager
	clock      Clock
}

func New(
	repository Repository,
	history HistoryRepository,
	numbers TrackingNumberFactory,
	retrier Retrier,
	txManager TxManager,
	clock Clock,
) *Service {
	return &Service{
		repository: repository,
		history:    history,
		numbers:    numbers,
		retrier:    retrier,
		txManager:  txManager,
		clock:      clock,
	}
}

// Create сохраняет заказ вместе с первой записью истории.
// Номер отслеживания генерируется заново на каждой попытке: сначала
// проверяется занятость, затем уникальный индекс ловит гонку при вставке.
func (s *Service) Create(ctx context.Context, draft entities.ShipmentDraft) (*entities.Shipment, error) {
	if !isValidAddress(draft.Sender) || !isValidAddress(draft.Receiver) {
		return nil, ErrMissingRequiredFields
	}

	shipment := s.newShipment(draft)

	var created *entities.Shipment
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		trackingNumber := s.numbers.Next()

		taken, err := s.repository.ExistsByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			return fmt.Errorf("check tracking number: %w", err)
		}
		if taken {
			TrackingNumberCollisionsTotal.Inc()
			return ErrTrackingNumberTaken
		}

		shipment.TrackingNumber = trackingNumber
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			created, err = s.repository.Create(ctx, shipment)
			if err != nil {
				if errors.Is(err, ErrTrackingNumberTaken) {
					TrackingNumberCollisionsTotal.Inc()
				}
				return fmt.Errorf("create shipment: %w", err)
			}

			description := entities.InitialTrackingDescription
			_, err = s.history.Append(ctx, entities.TrackingHistory{
				ShipmentID:  created.ID,
				Status:      entities.StatusPending,
				Description: &description,
				Timestamp:   shipment.CreatedAt,
			})
			if err != nil {
				return fmt.Errorf("append tracking history: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	pricingSource := "fallback"
	if draft.Pricing != nil {
		pricingSource = "partner"
	}
	ShipmentsCreatedTotal.WithLabelValues(created.ShipmentType.String(), pricingSource).Inc()

	return created, nil
}

// UpdateStatus меняет статус без проверки допустимости перехода и
// всегда добавляет ровно одну запись в историю, даже для того же статуса.
func (s *Service) UpdateStatus(ctx context.Context, id int64, update entities.TrackingUpdate) (*entities.Shipment, error) {
	if id <= 0 {
		return nil, ErrInvalidShipmentID
	}

	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		now := s.clock.Now()
		change := entities.StatusChange{
			Status:    update.Status,
			UpdatedAt: now,
		}
		if update.Status == entities.StatusDelivered {
			change.ActualDelivery = &now
		}

		var err error
		updated, err = s.repository.UpdateStatus(ctx, id, change)
		if err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}

		_, err = s.history.Append(ctx, entities.TrackingHistory{
			ShipmentID:  id,
			Status:      update.Status,
			Location:    update.Location,
			Description: update.Description,
			UpdatedBy:   update.UpdatedBy,
			Timestamp:   now,
		})
		if err != nil {
			return fmt.Errorf("append tracking history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	StatusUpdatesTotal.WithLabelValues(update.Status.String()).Inc()
	return updated, nil
}

func (s *Service) UpdateStatusByTrackingNumber(ctx context.Context, trackingNumber string, update entities.TrackingUpdate) (*entities.Shipment, error) {
	shipment, err := s.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	return s.UpdateStatus(ctx, shipment.ID, update)
}

// TrackingHistory история от новых записей к старым.
func (s *Service) TrackingHistory(ctx context.Context, id int64) ([]entities.TrackingHistory, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	history, err := s.history.ListByShipmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list tracking history: %w", err)
	}
	return history, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	if id <= 0 {
		return nil, ErrInvalidShipmentID
	}

	shipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipment, nil
}

func (s *Service) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}

	shipment, err := s.repository.GetByTrackingNumber(ctx, strings.TrimSpace(trackingNumber))
	if err != nil {
		return nil, fmt.Errorf("get shipment by tracking number: %w", err)
	}
	return shipment, nil
}

// AttachAWB сохраняет номер накладной перевозчика.
func (s *Service) AttachAWB(ctx context.Context, id int64, awbNumber string) (*entities.Shipment, error) {
	if id <= 0 {
		return nil, ErrInvalidShipmentID
	}
	if strings.TrimSpace(awbNumber) == "" {
		return nil, ErrInvalidAWBNumber
	}

	shipment, err := s.repository.AttachAWB(ctx, id, awbNumber, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("attach awb: %w", err)
	}
	return shipment, nil
}

func (s *Service) newShipment(draft entities.ShipmentDraft) entities.Shipment {
	now := s.clock.Now()

	shipmentType := entities.DefaultShipmentType
	if draft.ShipmentType != nil {
		shipmentType = *draft.ShipmentType
	}
	priority := entities.DefaultPriority
	if draft.Priority != nil {
		priority = *draft.Priority
	}

	// отрицательный вес считаем нулевым
	weight := 0.0
	if draft.Weight != nil && *draft.Weight > 0 {
		weight = *draft.Weight
	}

	packages := 1
	if draft.NumberOfPackages != nil && *draft.NumberOfPackages > 0 {
		packages = *draft.NumberOfPackages
	}

	price := FallbackPrice(weight, shipmentType, priority)
	if draft.Pricing != nil {
		price = roundPricing(*draft.Pricing)
	}

	var volumetric *float64
	if draft.Length != nil && draft.Width != nil && draft.Height != nil {
		v := pricing.VolumetricWeight(draft.Length, draft.Width, draft.Height)
		volumetric = &v
	}

	return entities.Shipment{
		BookingID:                   draft.BookingID,
		Sender:                      withDefaultCountry(draft.Sender),
		Receiver:                    withDefaultCountry(draft.Receiver),
		PackageDescription:          draft.PackageDescription,
		PackageType:                 draft.PackageType,
		DeliveryType:                draft.DeliveryType,
		ShipmentType:                shipmentType,
		Priority:                    priority,
		Weight:                      weight,
		Length:                      draft.Length,
		Width:                       draft.Width,
		Height:                      draft.Height,
		VolumetricWeight:            volumetric,
		NumberOfPackages:            packages,
		DeclaredValue:               draft.DeclaredValue,
		InsuranceRequired:           draft.InsuranceRequired,
		SpecialHandlingInstructions: draft.SpecialHandlingInstructions,
		Status:                      entities.StatusPending,
		BasePrice:                   price.BasePrice,
		Tax:                         price.Tax,
		TotalPrice:                  price.TotalPrice,
		CodEnabled:                  draft.CodEnabled,
		CodAmount:                   draft.CodAmount,
		CourierPartnerID:            draft.CourierPartnerID,
		Distance:                    draft.Distance,
		EstimatedDelivery:           draft.EstimatedDelivery,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}
}

func withDefaultCountry(a entities.Address) entities.Address {
	if strings.TrimSpace(a.Country) == "" {
		a.Country = entities.DefaultCountry
	}
	return a
}
