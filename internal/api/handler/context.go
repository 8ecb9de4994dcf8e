package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finbrief/member-portal/internal/api/middleware"
	"github.com/finbrief/member-portal/internal/core/domain"
)

// principalFrom extracts the principal injected by the Authorize middleware.
// Its presence proves the middleware ran; a gated handler reached without it
// is a wiring bug, rejected with 401 rather than a panic.
func principalFrom(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.PrincipalKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
