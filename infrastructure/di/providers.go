package di

import (
	"context"
	"fmt"

	cmdhandlers "migration-schedules/application/commands/handlers"
	"migration-schedules/application/ports"
	queryhandlers "migration-schedules/application/queries/handlers"
	"migration-schedules/domain/events"
	"migration-schedules/infrastructure/cache"
	"migration-schedules/infrastructure/config"
	"migration-schedules/infrastructure/messaging/eventbridge"
	"migration-schedules/infrastructure/persistence/dynamodb"
	"migration-schedules/infrastructure/persistence/memory"
	"migration-schedules/interfaces/gateway"
	"migration-schedules/interfaces/http/rest"
	"migration-schedules/pkg/auth"
	"migration-schedules/pkg/observability"
	"migration-schedules/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"go.uber.org/zap"
)

// Repositories groups the storage ports for the configured backend
type Repositories struct {
	Schedules    ports.ScheduleRepository
	Applications ports.ApplicationRepository
	Waves        ports.WaveRepository
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	zapCfg.Level = level

	return zapCfg.Build(zap.Fields(zap.String("service", events.Source)))
}

// ProvideAWSConfig creates AWS configuration. With tracing enabled every SDK
// call is recorded as an X-Ray subsegment.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if cfg.EnableTracing {
		awsv2.AWSV2Instrumentor(&awsCfg.APIOptions)
	}
	return awsCfg, nil
}

// ProvideDynamoDBAPI creates the DynamoDB client, optionally behind a circuit breaker
func ProvideDynamoDBAPI(awsCfg aws.Config, cfg *config.Config, logger *zap.Logger) dynamodb.API {
	client := awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})

	if cfg.EnableCircuitBreaker {
		return dynamodb.NewBreakerClient(client, dynamodb.DefaultBreakerConfig(), logger)
	}
	return client
}

// ProvideRepositories builds the repositories for the configured storage backend
func ProvideRepositories(cfg *config.Config, api dynamodb.API, logger *zap.Logger) (Repositories, error) {
	if cfg.StorageBackend == config.StorageMemory {
		refs := memory.NewReferenceStore()
		if cfg.SeedFile != "" {
			if err := refs.LoadSeed(cfg.SeedFile); err != nil {
				return Repositories{}, err
			}
		}
		logger.Info("Using in-memory storage", zap.String("seedFile", cfg.SeedFile))
		return Repositories{
			Schedules:    memory.NewScheduleStore(),
			Applications: refs.Applications(),
			Waves:        refs.Waves(),
		}, nil
	}

	return Repositories{
		Schedules:    dynamodb.NewScheduleRepository(api, cfg.SchedulesTable, logger),
		Applications: dynamodb.NewApplicationRepository(api, cfg.AppsTable, logger),
		Waves:        dynamodb.NewWaveRepository(api, cfg.WavesTable, logger),
	}, nil
}

// ProvideEventPublisher creates the EventBridge publisher, or a no-op one
// when no event bus is configured
func ProvideEventPublisher(awsCfg aws.Config, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return eventbridge.NoopPublisher{}
	}
	return eventbridge.NewPublisher(awseventbridge.NewFromConfig(awsCfg), cfg.EventBusName, logger)
}

// ProvideMetrics creates CloudWatch metrics; disabled metrics record nothing
func ProvideMetrics(awsCfg aws.Config, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	if !cfg.EnableMetrics {
		return nil
	}
	return observability.NewMetrics(cfg.MetricsNamespace, awscloudwatch.NewFromConfig(awsCfg), logger)
}

// ProvideTracer creates the X-Ray tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(events.Source, cfg.EnableTracing)
}

// ProvideClock returns the wall clock
func ProvideClock() utils.Clock {
	return utils.SystemClock
}

// ProvideEnricher creates the read-path enricher. Name lookups go through a
// TTL cache when one is configured; write-time existence checks never do.
func ProvideEnricher(repos Repositories, cfg *config.Config, logger *zap.Logger) *queryhandlers.Enricher {
	apps, waves := repos.Applications, repos.Waves
	if cfg.ReferenceCacheTTL > 0 {
		c := cache.NewTTLCache(cfg.ReferenceCacheTTL)
		apps = cache.NewApplications(apps, c)
		waves = cache.NewWaves(waves, c)
	}
	return queryhandlers.NewEnricher(apps, waves, cfg.EnrichmentConcurrency, logger)
}

// ProvideHandlers creates the operation handlers
func ProvideHandlers(
	repos Repositories,
	enricher *queryhandlers.Enricher,
	publisher ports.EventPublisher,
	clock utils.Clock,
	logger *zap.Logger,
) gateway.Handlers {
	return gateway.Handlers{
		Create: cmdhandlers.NewCreateScheduleHandler(repos.Schedules, repos.Applications, repos.Waves, publisher, clock, logger),
		Update: cmdhandlers.NewUpdateScheduleHandler(repos.Schedules, repos.Applications, repos.Waves, publisher, clock, logger),
		Delete: cmdhandlers.NewDeleteScheduleHandler(repos.Schedules, publisher, clock, logger),
		Get:    queryhandlers.NewGetScheduleHandler(repos.Schedules, enricher, logger),
		List:   queryhandlers.NewListSchedulesHandler(repos.Schedules, enricher, logger),
	}
}

// ProvideScheduleRequestHandler creates the request handler
func ProvideScheduleRequestHandler(
	handlers gateway.Handlers,
	cfg *config.Config,
	tracer *observability.Tracer,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *gateway.ScheduleRequestHandler {
	return gateway.NewScheduleRequestHandler(handlers, cfg.CORSAllowedOrigin, tracer, metrics, logger)
}

// ProvideJWTValidator creates the bearer token validator used outside API
// Gateway; nil when no secret is configured
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	if cfg.JWTSecret == "" {
		return nil, nil
	}
	return auth.NewJWTValidator(cfg.JWTSecret, cfg.JWTIssuer)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	handler *gateway.ScheduleRequestHandler,
	validator *auth.JWTValidator,
	cfg *config.Config,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(handler, validator, cfg.CORSAllowedOrigin, logger)
}
