//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/config"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/server"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvidePostgresClient,
		ProvidePool,
		ProvideCache,
		ProvideEvents,
		ProvidePriceSource,

		// Repositories
		ProvideAccountStore,
		ProvideTransactionStore,
		ProvideBudgetStore,
		ProvideInvestmentStore,

		// Use cases
		ProvidePriceFetcher,
		ProvideAccountUseCase,
		ProvideTransactionUseCase,
		ProvideBudgetUseCase,
		ProvidePortfolioUseCase,
		ProvideAnalyticsUseCase,
		ProvideImportUseCase,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
