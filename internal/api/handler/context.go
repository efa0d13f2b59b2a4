package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdeck/admin-dashboard/internal/api/middleware"
	"github.com/opsdeck/admin-dashboard/internal/core/domain"
	"github.com/opsdeck/admin-dashboard/internal/core/policy"
)

// actorFromContext extracts the authenticated actor injected by the
// Auth middleware. Presence of a valid role proves the middleware ran;
// a missing claim means the route was wired without it and must be rejected.
func actorFromContext(c echo.Context) (policy.Actor, error) {
	role, _ := c.Get(middleware.ContextRole).(domain.Role)
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if !role.Valid() || userID == "" {
		return policy.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return policy.Actor{ID: userID, Role: role}, nil
}
