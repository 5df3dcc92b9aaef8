//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"errors"
	"time"

	booking_post "logistics/internal/handlers/rest/booking_post"
	quote_post "logistics/internal/handlers/rest/quote_post"
	serviceabilities_get "logistics/internal/handlers/rest/serviceabilities_get"
	serviceability_get "logistics/internal/handlers/rest/serviceability_get"
	serviceability_validate_post "logistics/internal/handlers/rest/serviceability_validate_post"
	shipment_get "logistics/internal/handlers/rest/shipment_get"
	shipment_history_get "logistics/internal/handlers/rest/shipment_history_get"
	shipment_post "logistics/internal/handlers/rest/shipment_post"
	shipment_status_put "logistics/internal/handlers/rest/shipment_status_put"
	shipment_track_get "logistics/internal/handlers/rest/shipment_track_get"
	"logistics/internal/handlers/tasks/serviceability_expiry"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/distance"
	"logistics/internal/pkg/factory/delivery_deadline"
	"logistics/internal/pkg/factory/tracking_number"

	partnerRepo "logistics/internal/repository/partner"
	ruleRepo "logistics/internal/repository/rule"
	serviceabilityRepo "logistics/internal/repository/serviceability"
	shipmentRepo "logistics/internal/repository/shipment"
	trackingRepo "logistics/internal/repository/tracking"
	bookingService "logistics/internal/service/booking"
	pricingService "logistics/internal/service/pricing"
	serviceabilityService "logistics/internal/service/serviceability"
	shipmentService "logistics/internal/service/shipment"

	"logistics/pkg/background"
	"logistics/pkg/clock"
	"logistics/pkg/logger"
	"logistics/pkg/querier"
	"logistics/pkg/retrier"
	"logistics/pkg/retrier/backoff_adapter"
	"logistics/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServicePricing        ServicePricing
	ServiceServiceability ServiceServiceability
	ServiceShipment       ServiceShipment
	ServiceBooking        ServiceBooking
	BackgroundWorkers     *background.Worker
}

type ServicePricing interface {
	quote_post.Service
}

type ServiceServiceability interface {
	serviceability_get.Service
	serviceabilities_get.Service
	serviceability_validate_post.Service
}

type ServiceShipment interface {
	shipment_post.Service
	shipment_get.Service
	shipment_track_get.Service
	shipment_status_put.Service
	shipment_history_get.Service
}

type ServiceBooking interface {
	booking_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,
		provideMintRetrier,

		providePartnerRepository,
		provideRuleRepository,
		provideServiceabilityRepository,
		provideShipmentRepository,
		provideTrackingRepository,

		provideServicePricing,
		provideServiceServiceability,
		provideServiceShipment,
		provideServiceBooking,
		tracking_number.New,
		delivery_deadline.New,
		distance.New,

		provideServiceabilityExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServicePricing), new(*pricingService.Service)),
		wire.Bind(new(ServiceServiceability), new(*serviceabilityService.Service)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Service)),
		wire.Bind(new(ServiceBooking), new(*bookingService.Service)),

		wire.Bind(new(serviceability_expiry.Service), new(*serviceabilityService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ShipmentService *shipmentService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-tracking-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,
		provideMintRetrier,

		provideShipmentRepository,
		provideTrackingRepository,

		provideServiceShipment,
		tracking_number.New,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClock() *clock.UTC {
	return clock.New()
}

// provideMintRetrier повторяет выпуск трек-номера только при коллизии.
func provideMintRetrier(cfg *config.Config) *backoff_adapter.Retrier {
	return backoff_adapter.New(retrier.Config{
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     200 * time.Millisecond,
		MaxElapsedTime:  cfg.Shipment.TrackingNumberMintTimeout,
		Randomization:   0.5,
		Multiplier:      2,
		ShouldRetry: func(err error) bool {
			return errors.Is(err, shipmentService.ErrTrackingNumberTaken)
		},
	})
}

func providePartnerRepository(querier *querier.Querier) *partnerRepo.Repository {
	return partnerRepo.New(querier)
}

func provideRuleRepository(querier *querier.Querier) *ruleRepo.Repository {
	return ruleRepo.New(querier)
}

func provideServiceabilityRepository(querier *querier.Querier) *serviceabilityRepo.Repository {
	return serviceabilityRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideServicePricing(
	log logger.Logger,
	partners *partnerRepo.Repository,
	rules *ruleRepo.Repository,
	cfg *config.Config,
) *pricingService.Service {
	return pricingService.New(log, partners, rules, cfg.Pricing.QuoteConcurrency)
}

func provideServiceServiceability(
	log logger.Logger,
	repository *serviceabilityRepo.Repository,
	partners *partnerRepo.Repository,
	clock *clock.UTC,
	cfg *config.Config,
) *serviceabilityService.Service {
	return serviceabilityService.New(log, repository, partners, clock, cfg.Serviceability.CheckConcurrency)
}

func provideServiceShipment(
	repository *shipmentRepo.Repository,
	history *trackingRepo.Repository,
	numbers *tracking_number.Factory,
	retrier *backoff_adapter.Retrier,
	txManager *tx.Manager,
	clock *clock.UTC,
) *shipmentService.Service {
	return shipmentService.New(repository, history, numbers, retrier, txManager, clock)
}

func provideServiceBooking(
	serviceability *serviceabilityService.Service,
	pricing *pricingService.Service,
	shipments *shipmentService.Service,
	distance *distance.PincodeProvider,
	timeFactory *delivery_deadline.DeliveryTimeFactory,
	txManager *tx.Manager,
	clock *clock.UTC,
) *bookingService.Service {
	return bookingService.New(serviceability, pricing, shipments, distance, timeFactory, txManager, clock)
}

func provideServiceabilityExpiryTask(
	log logger.Logger,
	service serviceability_expiry.Service,
	cfg *config.Config,
) *serviceability_expiry.ServiceabilityExpiry {
	return serviceability_expiry.NewServiceabilityExpiry(
		log,
		service,
		cfg.Tasks.ServiceabilityExpiryInterval,
		cfg.Tasks.ServiceabilityTTL,
	)
}

func provideTaskList(
	serviceabilityExpiryTask *serviceability_expiry.ServiceabilityExpiry,
) []background.Task {
	return []background.Task{
		serviceabilityExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
