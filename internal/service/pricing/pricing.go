package pricing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

const defaultConcurrency = 4

type Service struct {
	log         handlerLogger
	partners    PartnerRepository
	rules       RuleRepository
	concurrency int
}

func New(log handlerLogger, partners PartnerRepository, rules RuleRepository, concurrency int) *Service {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &Service{
		log:         log.With(logger.NewField("service", "pricing")),
		partners:    partners,
		rules:       rules,
		concurrency: concurrency,
	}
}

func (s *Service) Quote(ctx context.Context, req entities.QuoteRequest, partnerID int64) (*entities.PriceBreakdown, error) {
	if partnerID <= 0 {
		return nil, ErrInvalidPartnerID
	}

	partner, err := s.partners.GetByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("get courier partner: %w", err)
	}

	return s.quote(ctx, &req, partner)
}

// QuoteAll считает цену у всех активных партнеров параллельно.
// Партнер, на котором расчет упал, просто не попадает в результат.
func (s *Service) QuoteAll(ctx context.Context, req entities.QuoteRequest) ([]entities.PriceBreakdown, error) {
	partners, err := s.partners.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active partners: %w", err)
	}

	slots := make([]*entities.PriceBreakdown, len(partners))

	var group errgroup.Group
	group.SetLimit(s.concurrency)
	for i := range partners {
		partner := &partners[i]
		group.Go(func() error {
			breakdown, err := s.quote(ctx, &req, partner)
			if err != nil {
				s.log.With(
					logger.NewField("partner_id", partner.ID),
					logger.NewField("partner", partner.Code),
					logger.NewField("error", err),
				).Warn("partner dropped from aggregated quote")
				QuotePartnerFailuresTotal.WithLabelValues(partner.Code).Inc()
				return nil
			}
			slots[i] = breakdown
			return nil
		})
	}
	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("quote all partners: %w", err)
	}

	result := make([]entities.PriceBreakdown, 0, len(slots))
	for _, breakdown := range slots {
		if breakdown != nil {
			result = append(result, *breakdown)
		}
	}
	return result, nil
}

func (s *Service) quote(ctx context.Context, req *entities.QuoteRequest, partner *entities.CourierPartner) (*entities.PriceBreakdown, error) {
	volumetric := VolumetricWeight(req.Length, req.Width, req.Height)
	chargeable := ChargeableWeight(weightOf(req), volumetric)

	lookup := entities.RuleLookup{
		PartnerID:    partner.ID,
		DeliveryType: lookupDeliveryType(req.DeliveryType),
		PackageType:  lookupPackageType(req.PackageType),
		Weight:       chargeable,
	}

	rules, err := s.rules.FindApplicable(ctx, lookup)
	if err != nil {
		return nil, fmt.Errorf("find pricing rules: %w", err)
	}

	breakdown := &entities.PriceBreakdown{
		PartnerID:        partner.ID,
		PartnerName:      partner.Name,
		PartnerCode:      partner.Code,
		ChargeableWeight: chargeable,
		VolumetricWeight: volumetric,
		EstimatedDays:    EstimateDays(req.DeliveryType, req.Distance),
	}

	rule := firstRule(rules)
	if rule == nil {
		applyDefaultPricing(breakdown, partner)
		QuotesTotal.WithLabelValues(partner.Code, "default").Inc()
		return breakdown, nil
	}

	applyRule(breakdown, rule, partner, req, lookup.PackageType)
	QuotesTotal.WithLabelValues(partner.Code, "rule").Inc()
	return breakdown, nil
}

// firstRule из пересекающихся диапазонов выигрывает правило с меньшим id.
func firstRule(rules []entities.PricingRule) *entities.PricingRule {
	var first *entities.PricingRule
	for i := range rules {
		if first == nil || rules[i].ID < first.ID {
			first = &rules[i]
		}
	}
	return first
}

func weightOf(req *entities.QuoteRequest) float64 {
	if req.Weight == nil || *req.Weight < 0 {
		return 0
	}
	return *req.Weight
}

func lookupDeliveryType(t *entities.DeliveryType) entities.DeliveryType {
	if t == nil {
		return entities.DeliveryStandard
	}
	return *t
}

func lookupPackageType(t *entities.PackageType) entities.PackageType {
	if t == nil {
		return entities.PackageParcel
	}
	return *t
}
