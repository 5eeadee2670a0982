package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	svcmetrics "github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/service/metrics"
	xhttp "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/http"
)

// observe wraps an analytics call with latency and error metrics per endpoint.
func observe(endpoint string, fn func() error) error {
	start := time.Now()
	err := fn()
	svcmetrics.AnalyticsLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		svcmetrics.AnalyticsErrors.WithLabelValues(endpoint).Inc()
	}
	return err
}

func (h *Handler) NetWorth(c echo.Context) error {
	return observe("net_worth", func() error {
		nw, err := h.analytics.NetWorth(c.Request().Context())
		if err != nil {
			return h.fail(c, err)
		}
		return xhttp.SuccessResponse(c, nw)
	})
}

func (h *Handler) CashFlow(c echo.Context) error {
	return observe("cash_flow", func() error {
		req := &models.CashFlowRequest{}
		if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
			return xhttp.BadRequestResponse(c, verr)
		}

		cf, err := h.analytics.CashFlow(c.Request().Context(), *req)
		if err != nil {
			return h.fail(c, err)
		}
		return xhttp.SuccessResponse(c, cf)
	})
}

func (h *Handler) SpendingByCategory(c echo.Context) error {
	return observe("spending_by_category", func() error {
		req := &models.CashFlowRequest{}
		if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
			return xhttp.BadRequestResponse(c, verr)
		}

		breakdown, err := h.analytics.SpendingByCategory(c.Request().Context(), *req)
		if err != nil {
			return h.fail(c, err)
		}
		return xhttp.SuccessResponse(c, breakdown)
	})
}

func (h *Handler) MonthlyTrend(c echo.Context) error {
	return observe("monthly_trend", func() error {
		req := &models.TrendRequest{}
		if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
			return xhttp.BadRequestResponse(c, verr)
		}

		trend, err := h.analytics.Trend(c.Request().Context(), req.Months)
		if err != nil {
			return h.fail(c, err)
		}
		return xhttp.SuccessResponse(c, trend)
	})
}

func (h *Handler) AccountBalances(c echo.Context) error {
	return observe("account_balances", func() error {
		balances, err := h.analytics.AccountBalances(c.Request().Context())
		if err != nil {
			return h.fail(c, err)
		}
		return xhttp.SuccessResponse(c, balances)
	})
}

func (h *Handler) DashboardSummary(c echo.Context) error {
	return observe("dashboard_summary", func() error {
		s, err := h.analytics.DashboardSummary(c.Request().Context())
		if err != nil {
			return h.fail(c, err)
		}
		return xhttp.SuccessResponse(c, s)
	})
}
