//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=serviceability_test
package serviceability

import (
	"context"
	"time"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type Repository interface {
	GetByPartnerAndPincode(ctx context.Context, partnerID int64, pincode string) (*entities.Serviceability, error)
	Create(ctx context.Context, serviceability entities.Serviceability) (*entities.Serviceability, error)
	DeleteCheckedBefore(ctx context.Context, before time.Time) (int64, error)
}

type PartnerRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.CourierPartner, error)
	GetActive(ctx context.Context) ([]entities.CourierPartner, error)
}

type Clock interface {
	Now() time.Time
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
