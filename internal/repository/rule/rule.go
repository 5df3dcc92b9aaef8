package rule

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"logistics/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// FindApplicable активные правила партнера, чей диапазон веса включает
// вес посылки (границы включительно). Порядок по id задает, какое
// правило побеждает при пересечении диапазонов.
func (r *Repository) FindApplicable(ctx context.Context, lookup entities.RuleLookup) ([]entities.PricingRule, error) {
	query, args, err := qb.
		Select(
			"id", "partner_id", "delivery_type", "package_type", "min_weight", "max_weight",
			"rate_per_kg", "fixed_charge", "distance_multiplier", "cod_charge", "fragile_charge",
			"insurance_charge_pct", "fuel_surcharge_pct", "service_tax_pct", "active",
		).
		From("pricing_rules").
		Where(sq.Eq{
			"partner_id":    lookup.PartnerID,
			"delivery_type": lookup.DeliveryType.String(),
			"package_type":  lookup.PackageType.String(),
			"active":        true,
		}).
		Where(sq.LtOrEq{"min_weight": lookup.Weight}).
		Where(sq.GtOrEq{"max_weight": lookup.Weight}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rule repository findapplicable error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rule repository findapplicable error: %w", err)
	}
	defer rows.Close()

	ruleModels := make([]RuleDB, 0, 2)
	for rows.Next() {
		var ruleModel RuleDB
		err := rows.Scan(
			&ruleModel.ID,
			&ruleModel.PartnerID,
			&ruleModel.DeliveryType,
			&ruleModel.PackageType,
			&ruleModel.MinWeight,
			&ruleModel.MaxWeight,
			&ruleModel.RatePerKg,
			&ruleModel.FixedCharge,
			&ruleModel.DistanceMultiplier,
			&ruleModel.CodCharge,
			&ruleModel.FragileCharge,
			&ruleModel.InsuranceChargePct,
			&ruleModel.FuelSurchargePct,
			&ruleModel.ServiceTaxPct,
			&ruleModel.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected rule repository findapplicable error: %w", err)
		}
		ruleModels = append(ruleModels, ruleModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected rule repository findapplicable error: %w", err)
	}

	return ToDomainList(ruleModels), nil
}
