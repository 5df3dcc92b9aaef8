//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=serviceability_validate_post_test
package serviceability_validate_post

import (
	"context"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type requestValidator interface {
	Struct(s any) error
}

type Service interface {
	ValidatePair(ctx context.Context, pickupPincode, deliveryPincode string, partnerID int64) (*entities.PairCheck, error)
}
