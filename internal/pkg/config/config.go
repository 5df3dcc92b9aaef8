package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Log struct {
		Level string
	}

	Tasks struct {
		ServiceabilityExpiryInterval time.Duration
		ServiceabilityTTL            time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter refill per second
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int
		MinConns int
	}

	Redis struct {
		Addr    string
		DB      int
		Timeout time.Duration
	}

	Shipment struct {
		TrackingNumberMintTimeout time.Duration
	}

	Pricing struct {
		QuoteConcurrency int
	}

	Serviceability struct {
		CheckConcurrency int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		TrackingEvent TrackingEvent
	}

	TrackingEvent struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Log            Log
		Tasks          Tasks
		Server         HTTPServer
		Database       Database
		Redis          Redis
		Shipment       Shipment
		Pricing        Pricing
		Serviceability Serviceability
		Kafka          Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase читает только параметры Postgres, этого достаточно для миграций.
func LoadDatabase() (*Database, error) {
	cfg, err := loadDatabaseFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}
	if err := validateDatabase(&cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &cfg, nil
}

func loadDatabaseFromEnv() (Database, error) {
	maxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return Database{}, err
	}
	minConns, err := osGetInt("POSTGRES_MIN_CONNS")
	if err != nil {
		return Database{}, err
	}

	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		MaxConns: maxConns,
		MinConns: minConns,
	}, nil
}

func loadFromEnv() (*Config, error) {
	database, err := loadDatabaseFromEnv()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	expiryInterval, err := osGetEnvDuration("BACKGROUND_SERVICEABILITY_EXPIRY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	serviceabilityTTL, err := osGetEnvDuration("SERVICEABILITY_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	trackingEventTimeout, err := osGetEnvDuration("KAFKA_HANDLER_TRACKING_EVENT_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisTimeout, err := osGetEnvDuration("REDIS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	mintTimeout, err := osGetEnvDuration("SHIPMENT_TRACKING_NUMBER_MINT_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	quoteConcurrency, err := osGetInt("PRICING_QUOTE_CONCURRENCY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	checkConcurrency, err := osGetInt("SERVICEABILITY_CHECK_CONCURRENCY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
		},
		Tasks: Tasks{
			ServiceabilityExpiryInterval: expiryInterval,
			ServiceabilityTTL:            serviceabilityTTL,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: database,
		Redis: Redis{
			Addr:    os.Getenv("REDIS_ADDR"),
			DB:      redisDB,
			Timeout: redisTimeout,
		},
		Shipment: Shipment{
			TrackingNumberMintTimeout: mintTimeout,
		},
		Pricing: Pricing{
			QuoteConcurrency: quoteConcurrency,
		},
		Serviceability: Serviceability{
			CheckConcurrency: checkConcurrency,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				TrackingEvent: TrackingEvent{
					ProcessTimeout: trackingEventTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Tasks.ServiceabilityExpiryInterval == time.Duration(0) {
		return errors.New("BACKGROUND_SERVICEABILITY_EXPIRY_INTERVAL is required")
	}
	if cfg.Tasks.ServiceabilityTTL == time.Duration(0) {
		return errors.New("SERVICEABILITY_TTL is required")
	}

	if cfg.Shipment.TrackingNumberMintTimeout == time.Duration(0) {
		return errors.New("SHIPMENT_TRACKING_NUMBER_MINT_TIMEOUT is required")
	}

	if cfg.Pricing.QuoteConcurrency < 0 {
		return errors.New("PRICING_QUOTE_CONCURRENCY must not be negative")
	}

	if cfg.Serviceability.CheckConcurrency < 0 {
		return errors.New("SERVICEABILITY_CHECK_CONCURRENCY must not be negative")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.TrackingEvent.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_TRACKING_EVENT_PROCESS_TIMEOUT is required")
	}

	return nil
}

func validateDatabase(cfg *Database) error {
	if cfg.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
