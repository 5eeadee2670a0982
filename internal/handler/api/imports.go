package api

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/domain/models"
	"github.com/KanaparthySaiSreekar/Personal-Finance-App/internal/usecase"
	xhttp "github.com/KanaparthySaiSreekar/Personal-Finance-App/pkg/http"
)

// importFile opens the uploaded "file" part of a multipart form.
func importFile(c echo.Context) (io.ReadCloser, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, xhttp.BadRequestError("missing csv file upload")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, xhttp.BadRequestError("unreadable csv file upload")
	}
	return f, nil
}

func (h *Handler) runImport(c echo.Context, do func(ctx context.Context, src io.Reader) (*models.ImportResult, error)) error {
	src, err := importFile(c)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	defer src.Close()

	res, err := do(c.Request().Context(), src)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *Handler) ImportTransactions(c echo.Context) error {
	return h.runImport(c, h.imports.ImportTransactions)
}

func (h *Handler) ImportAccounts(c echo.Context) error {
	return h.runImport(c, h.imports.ImportAccounts)
}

func (h *Handler) ImportInvestments(c echo.Context) error {
	return h.runImport(c, h.imports.ImportInvestments)
}

func csvTemplate(c echo.Context, name, body string) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(body))
}

func (h *Handler) TransactionTemplate(c echo.Context) error {
	return csvTemplate(c, "transactions_template.csv", usecase.TransactionTemplate())
}

func (h *Handler) AccountTemplate(c echo.Context) error {
	return csvTemplate(c, "accounts_template.csv", usecase.AccountTemplate())
}

func (h *Handler) InvestmentTemplate(c echo.Context) error {
	return csvTemplate(c, "investments_template.csv", usecase.InvestmentTemplate())
}
