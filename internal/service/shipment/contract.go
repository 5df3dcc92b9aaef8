//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipment entities.Shipment) (*entities.Shipment, error)
	ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error)
	UpdateStatus(ctx context.Context, id int64, change entities.StatusChange) (*entities.Shipment, error)
	AttachAWB(ctx context.Context, id int64, awbNumber string, updatedAt time.Time) (*entities.Shipment, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, record entities.TrackingHistory) (*entities.TrackingHistory, error)
	ListByShipmentID(ctx context.Context, shipmentID int64) ([]entities.TrackingHistory, error)
}

type TrackingNumberFactory interface {
	Next() string
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}
