package serviceability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

const (
	defaultEstimatedDays = 3
	defaultConcurrency   = 4
)

type Service struct {
	log         handlerLogger
	repository  Repository
	partners    PartnerRepository
	clock       Clock
	concurrency int
}

func New(log handlerLogger, repository Repository, partners PartnerRepository, clock Clock, concurrency int) *Service {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &Service{
		log:         log.With(logger.NewField("service", "serviceability")),
		repository:  repository,
		partners:    partners,
		clock:       clock,
		concurrency: concurrency,
	}
}

// Check читает сохраненный факт обслуживания, а если его нет, сохраняет
// значение по умолчанию. При гонке двух вставок уникальный ключ
// (partner_id, pincode) отклоняет вторую, и мы просто перечитываем.
func (s *Service) Check(ctx context.Context, partnerID int64, pincode string) (*entities.Serviceability, error) {
	if partnerID <= 0 {
		return nil, ErrInvalidPartnerID
	}
	if !isValidPincode(pincode) {
		return nil, ErrInvalidPincode
	}
	pincode = strings.TrimSpace(pincode)

	existing, err := s.repository.GetByPartnerAndPincode(ctx, partnerID, pincode)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrServiceabilityNotFound) {
		return nil, fmt.Errorf("get serviceability: %w", err)
	}

	// партнер должен существовать, иначе факт создавать не для кого
	_, err = s.partners.GetByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("get courier partner: %w", err)
	}

	created, err := s.repository.Create(ctx, defaultServiceability(partnerID, pincode, s.clock.Now()))
	if err == nil {
		LazyDefaultsTotal.WithLabelValues("created").Inc()
		return created, nil
	}
	if !errors.Is(err, ErrConflict) {
		return nil, fmt.Errorf("create default serviceability: %w", err)
	}

	LazyDefaultsTotal.WithLabelValues("conflict").Inc()
	existing, err = s.repository.GetByPartnerAndPincode(ctx, partnerID, pincode)
	if err != nil {
		return nil, fmt.Errorf("reread serviceability after conflict: %w", err)
	}
	return existing, nil
}

// CheckAll проверяет пинкод у всех активных партнеров, ошибки отдельных
// партнеров в ответ не попадают.
func (s *Service) CheckAll(ctx context.Context, pincode string) ([]entities.PartnerServiceability, error) {
	if !isValidPincode(pincode) {
		return nil, ErrInvalidPincode
	}

	partners, err := s.partners.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active partners: %w", err)
	}

	slots := make([]*entities.PartnerServiceability, len(partners))

	var group errgroup.Group
	group.SetLimit(s.concurrency)
	for i := range partners {
		partner := &partners[i]
		group.Go(func() error {
			fact, err := s.Check(ctx, partner.ID, pincode)
			if err != nil {
				s.log.With(
					logger.NewField("partner_id", partner.ID),
					logger.NewField("pincode", pincode),
					logger.NewField("error", err),
				).Warn("partner dropped from aggregated serviceability check")
				CheckPartnerFailuresTotal.WithLabelValues(partner.Code).Inc()
				return nil
			}

			slots[i] = &entities.PartnerServiceability{
				PartnerID:     partner.ID,
				PartnerName:   partner.Name,
				PartnerCode:   partner.Code,
				Serviceable:   fact.IsServiceable(),
				CodAvailable:  fact.CodAvailable,
				EstimatedDays: fact.EstimatedDays,
			}
			return nil
		})
	}
	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("check all partners: %w", err)
	}

	result := make([]entities.PartnerServiceability, 0, len(slots))
	for _, slot := range slots {
		if slot != nil {
			result = append(result, *slot)
		}
	}
	return result, nil
}

func (s *Service) ValidatePair(ctx context.Context, pickupPincode, deliveryPincode string, partnerID int64) (*entities.PairCheck, error) {
	pickup, err := s.Check(ctx, partnerID, pickupPincode)
	if err != nil {
		return nil, fmt.Errorf("check pickup pincode: %w", err)
	}

	delivery, err := s.Check(ctx, partnerID, deliveryPincode)
	if err != nil {
		return nil, fmt.Errorf("check delivery pincode: %w", err)
	}

	return &entities.PairCheck{
		PickupServiceable:    pickup.IsServiceable(),
		DeliveryServiceable:  delivery.IsServiceable(),
		Serviceable:          pickup.IsServiceable() && delivery.IsServiceable(),
		PickupCodAvailable:   pickup.CodAvailable,
		DeliveryCodAvailable: delivery.CodAvailable,
		EstimatedDays:        max(daysOf(pickup), daysOf(delivery)),
	}, nil
}

// ExpireStale удаляет факты старше ttl, следующий Check создаст их заново.
func (s *Service) ExpireStale(ctx context.Context, ttl time.Duration) (int64, error) {
	removed, err := s.repository.DeleteCheckedBefore(ctx, s.clock.Now().Add(-ttl))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("expire serviceability timed out: %w", err)
		}
		return 0, fmt.Errorf("expire serviceability: %w", err)
	}
	return removed, nil
}

func defaultServiceability(partnerID int64, pincode string, now time.Time) entities.Serviceability {
	days := defaultEstimatedDays
	return entities.Serviceability{
		PartnerID:              partnerID,
		Pincode:                pincode,
		Country:                entities.DefaultCountry,
		Status:                 entities.Serviceable,
		EstimatedDays:          &days,
		CodAvailable:           true,
		ReversePickupAvailable: false,
		LastChecked:            now,
	}
}

func daysOf(s *entities.Serviceability) int {
	if s.EstimatedDays == nil {
		return 0
	}
	return *s.EstimatedDays
}
