package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/finbrief/member-portal/internal/api/metrics"
	"github.com/finbrief/member-portal/internal/core/domain"
	"github.com/finbrief/member-portal/internal/core/ports"
)

// PrincipalKey is the echo context key under which Authorize stores the
// resolved principal.
const PrincipalKey = "principal"

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	return parts[1], nil
}

// Authorize gates a route behind the given requirement. The token is
// resolved against the store on every request, so a principal deleted after
// issuance is rejected immediately. Denials map to 401 for anything
// unauthenticated and 403 for a role mismatch.
func Authorize(auth ports.AuthService, gate domain.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := BearerToken(c)
			if err != nil {
				metrics.AuthzDenialsTotal.WithLabelValues("unauthenticated").Inc()
				return err
			}

			user, err := auth.Authorize(c.Request().Context(), token, gate)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrForbidden):
					metrics.AuthzDenialsTotal.WithLabelValues("forbidden").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "unauthorized access")
				case errors.Is(err, domain.ErrUserNotFound):
					metrics.AuthzDenialsTotal.WithLabelValues("principal_not_found").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
				case errors.Is(err, domain.ErrTokenInvalid):
					metrics.AuthzDenialsTotal.WithLabelValues("unauthenticated").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
				}
				return err
			}

			c.Set(PrincipalKey, user)
			return next(c)
		}
	}
}
