package api

import (
	"github.com/labstack/echo/v4"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	xhttp "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/http"
)

func (h *Handler) CreateBudget(c echo.Context) error {
	req := &models.BudgetCreateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	b, err := h.budgets.Create(c.Request().Context(), *req)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.CreatedResponse(c, b)
}

func (h *Handler) ListBudgets(c echo.Context) error {
	budgets, err := h.budgets.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.ListResponse(c, budgets, int64(len(budgets)))
}

func (h *Handler) GetBudget(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	b, err := h.budgets.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.SuccessResponse(c, b)
}

func (h *Handler) UpdateBudget(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	req := &models.BudgetUpdateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	b, err := h.budgets.Update(c.Request().Context(), id, *req)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.SuccessResponse(c, b)
}

func (h *Handler) DeleteBudget(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	if err := h.budgets.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return xhttp.NoContentResponse(c)
}
