//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_event_received_test
package tracking_event_received

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
	UpdateStatusByTrackingNumber(ctx context.Context, trackingNumber string, update entities.TrackingUpdate) (*entities.Shipment, error)
}

type Deduplicator interface {
	IsProcessed(ctx context.Context, eventID string) (bool, error)
	MarkProcessed(ctx context.Context, eventID string) error
}
