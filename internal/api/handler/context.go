package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mociber/booking-api/internal/api/middleware"
	"github.com/mociber/booking-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. A missing or incomplete identity means
// the middleware did not run or the session payload is unusable.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, _ := c.Get(middleware.IdentityKey).(domain.Identity)
	if identity.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return identity, nil
}
