package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gatehouse/gatehouse/internal/api/middleware"
	"github.com/gatehouse/gatehouse/internal/core/domain"
)

// ctxAccount extracts the account injected by the session middleware.
// Its presence proves the middleware ran; a protected handler reached
// without it is a wiring bug, rejected with 401 rather than a panic.
func ctxAccount(c echo.Context) (*domain.Account, error) {
	account, _ := c.Get(middleware.AccountKey).(*domain.Account)
	if account == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated account")
	}
	return account, nil
}
