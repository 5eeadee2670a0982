package api

import (
	"github.com/labstack/echo/v4"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	xhttp "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/http"
)

func (h *Handler) CreateTransaction(c echo.Context) error {
	req := &models.TransactionCreateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	t, err := h.transactions.Create(c.Request().Context(), *req)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.CreatedResponse(c, t)
}

func (h *Handler) ListTransactions(c echo.Context) error {
	req := &models.TransactionListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rows, err := h.transactions.List(c.Request().Context(), *req)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.ListResponse(c, rows, int64(len(rows)))
}

func (h *Handler) GetTransaction(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	t, err := h.transactions.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.SuccessResponse(c, t)
}

func (h *Handler) UpdateTransaction(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	req := &models.TransactionUpdateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	t, err := h.transactions.Update(c.Request().Context(), id, *req)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.SuccessResponse(c, t)
}

func (h *Handler) DeleteTransaction(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	if err := h.transactions.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return xhttp.NoContentResponse(c)
}

func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.transactions.Categories(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.SuccessResponse(c, categories)
}
