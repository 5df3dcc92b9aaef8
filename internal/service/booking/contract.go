//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=booking_test
package booking

import (
	"context"
	"time"

	"logistics/internal/entities"
)

type ServiceabilityService interface {
	ValidatePair(ctx context.Context, pickupPincode, deliveryPincode string, partnerID int64) (*entities.PairCheck, error)
}

type PricingService interface {
	Quote(ctx context.Context, req entities.QuoteRequest, partnerID int64) (*entities.PriceBreakdown, error)
}

type ShipmentService interface {
	Create(ctx context.Context, draft entities.ShipmentDraft) (*entities.Shipment, error)
	AttachAWB(ctx context.Context, id int64, awbNumber string) (*entities.Shipment, error)
}

type DistanceProvider interface {
	Distance(originPincode, destinationPincode string) float64
}

type DeliveryTimeFactory interface {
	CalculateDeadline(estimatedDays int, baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}
