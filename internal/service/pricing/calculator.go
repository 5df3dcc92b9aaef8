package pricing

import (
	"math"

	"github.com/AlekSi/pointer"
	"logistics/internal/entities"
)

// делитель объемного веса: см³ -> кг
const volumetricDivisor = 5000.0

// VolumetricWeight возвращает 0 если хотя бы одно измерение не задано.
func VolumetricWeight(length, width, height *float64) float64 {
	if length == nil || width == nil || height == nil {
		return 0
	}
	return (*length * *width * *height) / volumetricDivisor
}

func ChargeableWeight(actual, volumetric float64) float64 {
	return math.Max(actual, volumetric)
}

// EstimateDays срок доставки в днях. Для STANDARD зависит от расстояния,
// без расстояния и без типа доставки берется максимальный срок.
func EstimateDays(deliveryType *entities.DeliveryType, distance *float64) int {
	const fallbackDays = 5

	if deliveryType == nil {
		return fallbackDays
	}

	switch *deliveryType {
	case entities.DeliverySameDay, entities.DeliveryOvernight:
		return 1
	case entities.DeliveryExpress:
		return 2
	default:
		if distance == nil {
			return fallbackDays
		}
		switch d := *distance; {
		case d < 100:
			return 2
		case d < 500:
			return 3
		case d < 1000:
			return 4
		default:
			return fallbackDays
		}
	}
}

// percentOf применяет процент правила, а если он не задан то процент партнера.
func percentOf(base float64, rulePct, partnerPct *float64) float64 {
	switch {
	case rulePct != nil:
		return base * (*rulePct / 100.0)
	case partnerPct != nil:
		return base * (*partnerPct / 100.0)
	default:
		return 0
	}
}

func codCharge(rule *entities.PricingRule, req *entities.QuoteRequest) float64 {
	if !req.CodEnabled || rule.CodCharge == nil {
		return 0
	}
	// меньше единицы это доля от суммы наложенного платежа, иначе фиксированная сумма
	if *rule.CodCharge < 1.0 {
		return pointer.Get(req.CodAmount) * *rule.CodCharge
	}
	return *rule.CodCharge
}

func insuranceCharge(rule *entities.PricingRule, req *entities.QuoteRequest) float64 {
	if !req.InsuranceRequired || req.DeclaredValue == nil || rule.InsuranceChargePct == nil {
		return 0
	}
	return *req.DeclaredValue * (*rule.InsuranceChargePct / 100.0)
}

func applyRule(
	b *entities.PriceBreakdown,
	rule *entities.PricingRule,
	partner *entities.CourierPartner,
	req *entities.QuoteRequest,
	packageType entities.PackageType,
) {
	basePrice := pointer.Get(rule.FixedCharge)
	if rule.RatePerKg != nil && b.ChargeableWeight > 0 {
		basePrice += b.ChargeableWeight * *rule.RatePerKg
	}
	if req.Distance != nil && rule.DistanceMultiplier != nil {
		basePrice += *req.Distance * *rule.DistanceMultiplier
	}

	b.RuleID = pointer.To(rule.ID)
	b.BasePrice = basePrice
	b.CodCharge = codCharge(rule, req)
	if packageType == entities.PackageFragile {
		b.FragileCharge = pointer.Get(rule.FragileCharge)
	}
	b.InsuranceCharge = insuranceCharge(rule, req)
	b.FuelSurcharge = percentOf(basePrice, rule.FuelSurchargePct, partner.FuelSurchargePct)
	b.ServiceTax = percentOf(basePrice, rule.ServiceTaxPct, partner.ServiceTaxPct)

	b.Subtotal = b.BasePrice + b.CodCharge + b.FragileCharge + b.InsuranceCharge + b.FuelSurcharge
	b.TotalPrice = b.Subtotal + b.ServiceTax

	// минималка поднимает только итог, разбивку не пересчитываем
	if partner.MinCharge != nil && b.TotalPrice < *partner.MinCharge {
		b.TotalPrice = *partner.MinCharge
	}
}

func applyDefaultPricing(b *entities.PriceBreakdown, partner *entities.CourierPartner) {
	basePrice := 0.0
	if partner.BaseRate != nil {
		basePrice = b.ChargeableWeight * *partner.BaseRate
	}
	if partner.MinCharge != nil && basePrice < *partner.MinCharge {
		basePrice = *partner.MinCharge
	}

	b.BasePrice = basePrice
	b.FuelSurcharge = percentOf(basePrice, nil, partner.FuelSurchargePct)
	b.ServiceTax = percentOf(basePrice, nil, partner.ServiceTaxPct)
	b.Subtotal = b.BasePrice + b.FuelSurcharge
	b.TotalPrice = b.Subtotal + b.ServiceTax
}
