package serviceability_expiry

import (
	"context"
	"time"

	"logistics/pkg/logger"
)

type Service interface {
	ExpireStale(ctx context.Context, ttl time.Duration) (int64, error)
}

// ServiceabilityExpiry удаляет устаревшие факты обслуживания,
// следующая проверка пинкода создаст их заново.
type ServiceabilityExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	ttl      time.Duration
}

func NewServiceabilityExpiry(log logger.Logger, service Service, interval, ttl time.Duration) *ServiceabilityExpiry {
	return &ServiceabilityExpiry{
		log:      log,
		service:  service,
		interval: interval,
		ttl:      ttl,
	}
}

func (e *ServiceabilityExpiry) TTL() time.Duration {
	return e.interval
}

func (e *ServiceabilityExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.interval)
	defer cancel()

	removed, err := e.service.ExpireStale(ctxWithTimeout, e.ttl)

	if removed > 0 {
		e.log.With(
			logger.NewField("expired_serviceability", removed),
		).Info("serviceability expiry")
	}

	return err
}

func (e *ServiceabilityExpiry) Info() string {
	return "serviceability expiry"
}
