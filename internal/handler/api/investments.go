package api

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	xhttp "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/http"
)

func (h *Handler) CreateInvestment(c echo.Context) error {
	req := &models.InvestmentCreateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	req.Symbol = strings.ToUpper(strings.TrimSpace(req.Symbol))
	req.Exchange = strings.ToUpper(strings.TrimSpace(req.Exchange))

	v, err := h.portfolio.Create(c.Request().Context(), *req)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.CreatedResponse(c, v)
}

func (h *Handler) ListInvestments(c echo.Context) error {
	accountID := int64(xhttp.ParseIntDefault(c.QueryParam("account_id"), 0))

	views, err := h.portfolio.List(c.Request().Context(), accountID)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.ListResponse(c, views, int64(len(views)))
}

func (h *Handler) GetInvestment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	v, err := h.portfolio.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.SuccessResponse(c, v)
}

func (h *Handler) UpdateInvestment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	req := &models.InvestmentUpdateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	v, err := h.portfolio.Update(c.Request().Context(), id, *req)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.SuccessResponse(c, v)
}

func (h *Handler) DeleteInvestment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	if err := h.portfolio.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return xhttp.NoContentResponse(c)
}

// RefreshInvestmentPrice forces a vendor lookup, so it is rate limited per
// client.
func (h *Handler) RefreshInvestmentPrice(c echo.Context) error {
	if !h.allow(c, "refresh-price", 10, 0.5) {
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("too many refresh requests"))
	}

	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	v, err := h.portfolio.RefreshPrice(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.SuccessResponse(c, v)
}

func (h *Handler) PortfolioSummary(c echo.Context) error {
	s, err := h.portfolio.Summary(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.SuccessResponse(c, s)
}

// SearchTicker proxies a vendor search, so it is rate limited per client. A
// vendor failure yields an empty result list, not an error.
func (h *Handler) SearchTicker(c echo.Context) error {
	if !h.allow(c, "search", 20, 1) {
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("too many search requests"))
	}

	query := strings.TrimSpace(c.Param("query"))
	if query == "" {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("query must not be empty"))
	}

	results := h.portfolio.Search(c.Request().Context(), query)
	return xhttp.ListResponse(c, results, int64(len(results)))
}
