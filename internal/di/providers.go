package di

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/repository"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/handler/api"
	internalrepo "github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/repository"
	svcmetrics "github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/service/metrics"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/service/yahoo"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/usecase"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/cache"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/config"
	pkgkafka "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/kafka"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/logger"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/metrics"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/postgres"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvidePostgresClient creates a PostgreSQL client and ensures the schema.
func ProvidePostgresClient(cfg *config.Config) (*postgres.Client, error) {
	client, err := postgres.NewClient(
		postgres.WithHost(cfg.Postgres.Host),
		postgres.WithPort(cfg.Postgres.Port),
		postgres.WithDatabase(cfg.Postgres.Database),
		postgres.WithCredentials(cfg.Postgres.User, cfg.Postgres.Password),
		postgres.WithSSLMode(cfg.Postgres.SSLMode),
		postgres.WithPoolSize(cfg.Postgres.MaxConns, cfg.Postgres.MinConns),
		postgres.WithConnLifetime(cfg.Postgres.ConnLifetime),
		postgres.WithDialTimeout(cfg.Postgres.DialTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.InitSchema(ctx, internalrepo.Schema()); err != nil {
		client.Close()
		return nil, fmt.Errorf("postgres schema: %w", err)
	}

	return client, nil
}

// ProvidePool exposes the pgx pool for the repositories.
func ProvidePool(client *postgres.Client) *pgxpool.Pool {
	return client.Pool()
}

// ProvideCache creates the quote cache: layered memory+Redis when Redis is
// configured, memory-only otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	redisCache, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(redisCache), nil
}

// ProvideMetrics creates the Prometheus metrics recorder and registers the
// analytics collectors.
func ProvideMetrics() repository.Metrics {
	svcmetrics.Register()
	return metrics.New()
}

// ProvideEvents creates the ledger event publisher: Kafka when enabled,
// no-op otherwise.
func ProvideEvents(cfg *config.Config, m repository.Metrics) (repository.Events, error) {
	if !cfg.Events.Enabled {
		return internalrepo.NewNoopEventPublisher(), nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Events.Brokers),
		pkgkafka.WithCompression(cfg.Events.Compression),
		pkgkafka.WithRequiredAcks(cfg.Events.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Events.MaxAttempts),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaEventPublisher(producer, cfg.Events.Topic, m), nil
}

// ProvidePriceSource creates the market data vendor client.
func ProvidePriceSource(cfg *config.Config) repository.PriceSource {
	return yahoo.New(cfg.Market.BaseURL, cfg.Market.LookupTimeout)
}

// ProvidePriceFetcher creates the bounded batch price fetcher.
func ProvidePriceFetcher(
	source repository.PriceSource,
	c cache.Service,
	m repository.Metrics,
	log *logger.Logger,
	cfg *config.Config,
) *usecase.PriceFetcher {
	return usecase.NewPriceFetcher(source, log,
		usecase.WithQuoteCache(c, cfg.Market.QuoteTTL),
		usecase.WithPriceMetrics(m),
		usecase.WithConcurrency(cfg.Market.MaxConcurrency),
		usecase.WithLookupTimeout(cfg.Market.LookupTimeout),
	)
}

func ProvideAccountStore(pool *pgxpool.Pool) repository.AccountStore {
	return internalrepo.NewAccountRepository(pool)
}

func ProvideTransactionStore(pool *pgxpool.Pool) repository.TransactionStore {
	return internalrepo.NewTransactionRepository(pool)
}

func ProvideBudgetStore(pool *pgxpool.Pool) repository.BudgetStore {
	return internalrepo.NewBudgetRepository(pool)
}

func ProvideInvestmentStore(pool *pgxpool.Pool) repository.InvestmentStore {
	return internalrepo.NewInvestmentRepository(pool)
}

func ProvideAccountUseCase(accounts repository.AccountStore, log *logger.Logger) *usecase.AccountUseCase {
	return usecase.NewAccountUseCase(accounts, log)
}

func ProvideTransactionUseCase(transactions repository.TransactionStore, events repository.Events, log *logger.Logger) *usecase.TransactionUseCase {
	return usecase.NewTransactionUseCase(transactions, events, log)
}

func ProvideBudgetUseCase(budgets repository.BudgetStore, transactions repository.TransactionStore, log *logger.Logger) *usecase.BudgetUseCase {
	return usecase.NewBudgetUseCase(budgets, transactions, log)
}

func ProvidePortfolioUseCase(
	investments repository.InvestmentStore,
	accounts repository.AccountStore,
	prices *usecase.PriceFetcher,
	m repository.Metrics,
	log *logger.Logger,
) *usecase.PortfolioUseCase {
	return usecase.NewPortfolioUseCase(investments, accounts, prices, m, log)
}

func ProvideAnalyticsUseCase(
	accounts repository.AccountStore,
	transactions repository.TransactionStore,
	investments repository.InvestmentStore,
	prices *usecase.PriceFetcher,
	log *logger.Logger,
) *usecase.AnalyticsUseCase {
	return usecase.NewAnalyticsUseCase(accounts, transactions, investments, prices, log)
}

func ProvideImportUseCase(
	accounts repository.AccountStore,
	transactions repository.TransactionStore,
	investments repository.InvestmentStore,
	events repository.Events,
	m repository.Metrics,
	log *logger.Logger,
) *usecase.ImportUseCase {
	return usecase.NewImportUseCase(accounts, transactions, investments, events, m, log)
}

// ProvideHandler creates the HTTP handler with all endpoint groups.
func ProvideHandler(
	log *logger.Logger,
	accounts *usecase.AccountUseCase,
	transactions *usecase.TransactionUseCase,
	budgets *usecase.BudgetUseCase,
	portfolio *usecase.PortfolioUseCase,
	analytics *usecase.AnalyticsUseCase,
	imports *usecase.ImportUseCase,
	pg *postgres.Client,
) *api.Handler {
	return api.NewHandler(log, accounts, transactions, budgets, portfolio, analytics, imports, pg)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	handler *api.Handler,
	pg *postgres.Client,
	events repository.Events,
) *server.App {
	return server.New(cfg, log, handler, pg, events)
}
