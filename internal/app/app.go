package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"freightqa/internal/config"
	"freightqa/internal/entity"
	"freightqa/internal/repository"
	"freightqa/internal/service"
	"freightqa/internal/shacl"
	httpt "freightqa/internal/transport/http"
	kafkat "freightqa/internal/transport/kafka"
	"freightqa/migrations"
	"freightqa/pkg/cache"
	pkgkafka "freightqa/pkg/kafka"
	"freightqa/pkg/kafka/dlq"
	"freightqa/pkg/logger"
	"freightqa/pkg/metric"
	"freightqa/pkg/storage/postgres"
	"freightqa/pkg/storage/postgres/transaction"

	"github.com/google/uuid"
	"github.com/heptiolabs/healthcheck"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

const (
	_goroutineThreshold = 10000
	_readinessTimeout   = 2 * time.Second
)

var isolationLevels = map[string]pgx.TxIsoLevel{
	"read_committed":  pgx.ReadCommitted,
	"repeatable_read": pgx.RepeatableRead,
	"serializable":    pgx.Serializable,
}

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	// abort stops the goroutines already started before setup fails.
	abort := func(err error) error {
		cancel()
		_ = eg.Wait()
		return err
	}

	metrics := initMetrics(ctx, eg, &cfg.Metrics, log)

	db, dbErr := initDatabase(ctx, &cfg.Postgres, log)
	if dbErr != nil {
		return abort(dbErr)
	}
	defer closeDB(db)

	txManager, txErr := initTransactionManager(&cfg.Postgres, db, log, metrics)
	if txErr != nil {
		return abort(txErr)
	}

	reportCache, cacheErr := initCache(&cfg.Cache, log, metrics)
	if cacheErr != nil {
		return abort(cacheErr)
	}
	defer stopCache(reportCache)

	validationService := initValidationService(cfg, db, txManager, reportCache, log, metrics)

	if err := validationService.RestoreCache(ctx, cfg.Validation.RestoreLimit); err != nil {
		log.Error("failed to restore cache from database", "error", err)
	}

	lang, langErr := shacl.ParseLanguage(cfg.Validation.DefaultLanguage)
	if langErr != nil {
		return abort(fmt.Errorf("app.Run: default language: %w", langErr))
	}

	initHTTPServer(ctx, eg, cfg, validationService, initHealth(db), lang, log, metrics)

	if cfg.Kafka.Enabled {
		if kafkaErr := initKafkaComponents(ctx, eg, cfg, validationService, lang, log, metrics); kafkaErr != nil {
			return abort(kafkaErr)
		}
	} else {
		log.Info("kafka consumer disabled")
	}

	return waitForShutdown(eg)
}

func initMetrics(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory(cfg.Namespace)

	metricsServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Info("starting metrics server", "addr", cfg.Addr())
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.WriteTimeout)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	return metrics
}

func initDatabase(ctx context.Context, cfg *config.Postgres, log logger.Logger) (*postgres.Postgres, error) {
	db, err := postgres.NewPostgres(
		ctx,
		cfg.URL(),
		log.With("component", "database"),
		postgres.MaxPoolSize(cfg.PoolMax),
		postgres.MinPoolSize(cfg.PoolMin),
		postgres.ConnectTimeout(cfg.ConnectTimeout),
		postgres.MaxConnAttempts(cfg.ConnAttempts),
		postgres.RetryDelays(cfg.BaseRetryDelay, cfg.MaxRetryDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initDatabase: %w", err)
	}

	if cfg.Migrate {
		if err := db.Migrate(ctx, migrations.FS, migrations.Dir, log.With("component", "migrations")); err != nil {
			db.Close()
			return nil, fmt.Errorf("app.initDatabase: %w", err)
		}
	}
	return db, nil
}

func closeDB(db *postgres.Postgres) {
	if db != nil {
		db.Close()
	}
}

func initTransactionManager(
	cfg *config.Postgres,
	db *postgres.Postgres,
	log logger.Logger,
	metrics metric.Factory,
) (transaction.Manager, error) {
	txManager, err := transaction.NewManager(
		db,
		log.With("component", "transaction manager"),
		metrics.Transaction(),
		transaction.MaxAttempts(cfg.TxAttempts),
		transaction.Isolation(isolationLevels[cfg.TxIsolation]),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initTransactionManager: %w", err)
	}
	return txManager, nil
}

func initCache(
	cfg *config.Cache,
	log logger.Logger,
	metrics metric.Factory,
) (cache.Cache[uuid.UUID, *entity.Report], error) {
	reportCache, err := cache.NewLRUCache[uuid.UUID, *entity.Report](
		cfg.Capacity,
		log.With("component", "cache"),
		metrics.Cache(),
		cache.WithName("reports"),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initCache: %w", err)
	}
	reportCache.StartCleanup(cfg.CleanupInterval)
	return reportCache, nil
}

func stopCache(reportCache cache.Cache[uuid.UUID, *entity.Report]) {
	if reportCache != nil {
		reportCache.StopCleanup()
	}
}

func initValidationService(
	cfg *config.Config,
	db *postgres.Postgres,
	txManager transaction.Manager,
	reportCache cache.Cache[uuid.UUID, *entity.Report],
	log logger.Logger,
	metrics metric.Factory,
) *service.ValidationService {
	return service.NewValidationService(
		repository.NewReportRepository(db),
		repository.NewViolationRepository(db),
		txManager,
		log.With("component", "validation service"),
		metrics.Validation(),
		reportCache,
		cfg.Cache.TTL,
	)
}

func initHealth(db *postgres.Postgres) healthcheck.Handler {
	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(_goroutineThreshold))
	health.AddReadinessCheck("database", healthcheck.Timeout(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), _readinessTimeout)
		defer cancel()
		return db.Healthcheck(ctx)
	}, _readinessTimeout))
	return health
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Config,
	validationService *service.ValidationService,
	health healthcheck.Handler,
	lang language.Tag,
	log logger.Logger,
	metrics metric.Factory,
) {
	handler := httpt.NewHandler(
		validationService,
		health,
		log.With("component", "http handler"),
		metrics.HTTP(),
		httpt.DefaultLanguage(lang),
		httpt.RequestTimeout(cfg.HTTP.RequestTimeout),
		httpt.MaxBodyBytes(cfg.HTTP.MaxBodyBytes),
	)

	httpServer := httpt.NewHTTPServer(handler.Engine(), &cfg.HTTP, log.With("component", "http server"))

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
}

func initKafkaComponents(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Config,
	validationService *service.ValidationService,
	lang language.Tag,
	log logger.Logger,
	metrics metric.Factory,
) error {
	reader, err := pkgkafka.NewReader(ctx, cfg.Kafka.Reader(), log.With("component", "kafka reader"))
	if err != nil {
		return fmt.Errorf("app.initKafkaComponents: kafka reader creation: %w", err)
	}

	deadLetterQueue, err := dlq.NewDLQ(
		cfg.Writer(cfg.DLQ.Topic),
		log.With("component", "dlq"),
		metrics.DLQ(),
		dlq.MaxAttemptsCount(cfg.DLQ.MaxAttempts),
		dlq.RetryDelays(cfg.DLQ.BaseRetryDelay, cfg.DLQ.MaxRetryDelay),
	)
	if err != nil {
		_ = reader.Close()
		return fmt.Errorf("app.initKafkaComponents: dead letter queue creation: %w", err)
	}

	var rejected kafkat.Publisher
	if cfg.Validation.RejectedTopic != "" {
		rejected = pkgkafka.NewWriter(cfg.Writer(cfg.Validation.RejectedTopic), log.With("component", "rejected writer"))
	}

	consumer := kafkat.NewRecordConsumer(
		reader,
		deadLetterQueue,
		validationService,
		rejected,
		cfg.Validation.RejectedTopic,
		lang,
		metrics.Kafka(),
		log.With("component", "record consumer"),
	)
	eg.Go(func() error {
		return consumer.Start(ctx)
	})

	eg.Go(func() error {
		<-ctx.Done()
		var errs []error
		if w, ok := rejected.(interface{ Close() error }); ok {
			errs = append(errs, w.Close())
		}
		errs = append(errs, deadLetterQueue.Close())
		return errors.Join(errs...)
	})

	dlqReader, err := pkgkafka.NewReader(ctx, cfg.DLQReader(), log.With("component", "dlq reader"))
	if err != nil {
		return fmt.Errorf("app.initKafkaComponents: dlq reader creation: %w", err)
	}

	dlqProcessor := kafkat.NewDLQProcessor(
		dlqReader,
		deadLetterQueue,
		consumer,
		cfg.DLQ.MaxRetryCount,
		log,
	)
	eg.Go(func() error {
		return dlqProcessor.Start(ctx)
	})

	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}
