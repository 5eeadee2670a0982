package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/service/ratelimit"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/usecase"
	xhttp "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/http"
	xlogger "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/logger"
)

// HealthChecker reports backing-store liveness for the health endpoint.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handler exposes the ledger, budget, portfolio, and analytics endpoints.
type Handler struct {
	logger       *xlogger.Logger
	accounts     *usecase.AccountUseCase
	transactions *usecase.TransactionUseCase
	budgets      *usecase.BudgetUseCase
	portfolio    *usecase.PortfolioUseCase
	analytics    *usecase.AnalyticsUseCase
	imports      *usecase.ImportUseCase
	health       HealthChecker
	limiter      *ratelimit.Limiter
}

func NewHandler(
	logger *xlogger.Logger,
	accounts *usecase.AccountUseCase,
	transactions *usecase.TransactionUseCase,
	budgets *usecase.BudgetUseCase,
	portfolio *usecase.PortfolioUseCase,
	analytics *usecase.AnalyticsUseCase,
	imports *usecase.ImportUseCase,
	health HealthChecker,
) *Handler {
	return &Handler{
		logger:       logger,
		accounts:     accounts,
		transactions: transactions,
		budgets:      budgets,
		portfolio:    portfolio,
		analytics:    analytics,
		imports:      imports,
		health:       health,
		limiter:      ratelimit.New(),
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	g := e.Group("/api")

	g.POST("/accounts", h.CreateAccount)
	g.GET("/accounts", h.ListAccounts)
	g.GET("/accounts/:id", h.GetAccount)
	g.PUT("/accounts/:id", h.UpdateAccount)
	g.DELETE("/accounts/:id", h.DeleteAccount)

	g.POST("/transactions", h.CreateTransaction)
	g.GET("/transactions", h.ListTransactions)
	g.GET("/transactions/categories/list", h.ListCategories)
	g.GET("/transactions/:id", h.GetTransaction)
	g.PUT("/transactions/:id", h.UpdateTransaction)
	g.DELETE("/transactions/:id", h.DeleteTransaction)

	g.POST("/budgets", h.CreateBudget)
	g.GET("/budgets", h.ListBudgets)
	g.GET("/budgets/:id", h.GetBudget)
	g.PUT("/budgets/:id", h.UpdateBudget)
	g.DELETE("/budgets/:id", h.DeleteBudget)

	g.POST("/investments", h.CreateInvestment)
	g.GET("/investments", h.ListInvestments)
	g.GET("/investments/portfolio/summary", h.PortfolioSummary)
	g.GET("/investments/search/:query", h.SearchTicker)
	g.GET("/investments/:id", h.GetInvestment)
	g.PUT("/investments/:id", h.UpdateInvestment)
	g.DELETE("/investments/:id", h.DeleteInvestment)
	g.POST("/investments/:id/refresh-price", h.RefreshInvestmentPrice)

	g.GET("/analytics/net-worth", h.NetWorth)
	g.GET("/analytics/cash-flow", h.CashFlow)
	g.GET("/analytics/spending-by-category", h.SpendingByCategory)
	g.GET("/analytics/income-vs-expenses-trend", h.MonthlyTrend)
	g.GET("/analytics/account-balances", h.AccountBalances)
	g.GET("/analytics/dashboard-summary", h.DashboardSummary)

	g.POST("/import/transactions/csv", h.ImportTransactions)
	g.POST("/import/accounts/csv", h.ImportAccounts)
	g.POST("/import/investments/csv", h.ImportInvestments)
	g.GET("/import/templates/transactions", h.TransactionTemplate)
	g.GET("/import/templates/accounts", h.AccountTemplate)
	g.GET("/import/templates/investments", h.InvestmentTemplate)
}

// Healthz reports liveness, checking the ledger store when one is attached.
func (h *Handler) Healthz(c echo.Context) error {
	if h.health != nil {
		if err := h.health.Health(c.Request().Context()); err != nil {
			h.logger.Warn("health check failed", xlogger.Error(err))
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, xhttp.BadRequestErrorf("invalid id %q", c.Param("id"))
	}
	return id, nil
}

// fail maps domain errors onto API errors. Unknown errors become opaque 500s.
func (h *Handler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrAccountNotFound),
		errors.Is(err, models.ErrTransactionNotFound),
		errors.Is(err, models.ErrBudgetNotFound),
		errors.Is(err, models.ErrInvestmentNotFound):
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError(err.Error()).WithError(err))
	case errors.Is(err, models.ErrDuplicateCategory):
		return xhttp.AppErrorResponse(c, xhttp.DuplicateError("category", err.Error()).WithError(err))
	default:
		h.logger.Error("request failed",
			xlogger.String("path", c.Path()),
			xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
}

// allow enforces a per-client token bucket on market-facing endpoints.
func (h *Handler) allow(c echo.Context, route string, capacity, refillPerSec float64) bool {
	return h.limiter.Allow(route+":"+c.RealIP(), capacity, refillPerSec)
}
