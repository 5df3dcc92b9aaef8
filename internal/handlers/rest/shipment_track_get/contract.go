//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_track_get_test
package shipment_track_get

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

type Service interface {
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error)
}
