package api

import (
	"github.com/labstack/echo/v4"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	xhttp "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/http"
)

func (h *Handler) CreateAccount(c echo.Context) error {
	req := &models.AccountCreateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	a, err := h.accounts.Create(c.Request().Context(), *req)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.CreatedResponse(c, a)
}

func (h *Handler) ListAccounts(c echo.Context) error {
	accounts, err := h.accounts.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.ListResponse(c, accounts, int64(len(accounts)))
}

func (h *Handler) GetAccount(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	a, err := h.accounts.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.SuccessResponse(c, a)
}

func (h *Handler) UpdateAccount(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	req := &models.AccountUpdateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	a, err := h.accounts.Update(c.Request().Context(), id, *req)
	if err != nil {
		return h.fail(c, err)
	}
	return xhttp.SuccessResponse(c, a)
}

func (h *Handler) DeleteAccount(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	if err := h.accounts.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	return xhttp.NoContentResponse(c)
}
