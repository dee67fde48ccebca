package setup

import (
	"fmt"

	"github.com/prabindersinghh/leorit-order-service/internal/config"
	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	publisher "github.com/prabindersinghh/leorit-order-service/internal/infrastructure/kafka"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/memory"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/metrics"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/migrate"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/postgres"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/postgres/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.OrderConfig
	Log          *zap.Logger
	DB           *gorm.DB
	Publisher    domain.EventPublisher
	Registry     *prometheus.Registry
	Metrics      *metrics.OrderMetrics
	Repositories *Repositories

	closers []func() error
}

type Repositories struct {
	OrderRepo domain.OrderRepository
	QCRepo    domain.QCRepository
	EventRepo domain.OrderEventRepository
}

func InitializeDependencies(cfg *config.OrderConfig, log *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:   cfg,
		Log:      log,
		Registry: prometheus.NewRegistry(),
	}
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Metrics = metrics.NewOrderMetrics(deps.Registry)

	repos, err := deps.initRepositories()
	if err != nil {
		return nil, fmt.Errorf("repositories: %w", err)
	}
	deps.Repositories = repos
	deps.Publisher = deps.initPublisher()

	return deps, nil
}

func (d *Dependencies) initRepositories() (*Repositories, error) {
	if d.Config.OrderDB.Dsn == "" {
		d.Log.Warn("ORDER_DB_DSN is empty, orders are kept in memory")
		store := memory.NewStore()
		return &Repositories{OrderRepo: store, QCRepo: store, EventRepo: store}, nil
	}

	db := postgres.MustInitDB(d.Config)
	d.DB = db
	d.closers = append(d.closers, func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	if path := d.Config.OrderDB.MigrationsPath; path != "" {
		if err := migrate.RunMigrations(db, path, d.Log); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	return &Repositories{
		OrderRepo: repository.NewDefaultOrderRepository(db),
		QCRepo:    repository.NewDefaultQCRepository(db),
		EventRepo: repository.NewDefaultOrderEventRepository(db),
	}, nil
}

func (d *Dependencies) initPublisher() domain.EventPublisher {
	kafkaCfg := d.Config.KafkaService
	if !kafkaCfg.Enabled {
		d.Log.Info("kafka disabled, order events are written to the log")
		return publisher.NewLogPublisher(d.Log)
	}
	pub := publisher.NewKafkaPublisher(kafkaCfg.Brokers(), kafkaCfg.Topic)
	d.closers = append(d.closers, pub.Close)
	d.Log.Info("kafka publisher ready",
		zap.Strings("brokers", kafkaCfg.Brokers()),
		zap.String("topic", kafkaCfg.Topic),
	)
	return pub
}

// Close releases the database pool and the kafka writer.
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			d.Log.Warn("failed to close dependency", zap.Error(err))
		}
	}
}
