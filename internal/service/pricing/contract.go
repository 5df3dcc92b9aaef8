//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pricing_test
package pricing

import (
	"context"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type PartnerRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.CourierPartner, error)
	GetActive(ctx context.Context) ([]entities.CourierPartner, error)
}

type RuleRepository interface {
	FindApplicable(ctx context.Context, lookup entities.RuleLookup) ([]entities.PricingRule, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
