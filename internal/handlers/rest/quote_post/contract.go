//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_post_test
package quote_post

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
	Quote(ctx context.Context, req entities.QuoteRequest, partnerID int64) (*entities.PriceBreakdown, error)
	QuoteAll(ctx context.Context, req entities.QuoteRequest) ([]entities.PriceBreakdown, error)
}

type DistanceProvider interface {
	Distance(originPincode, destinationPincode string) float64
}
