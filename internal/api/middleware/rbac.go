package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdeck/admin-dashboard/internal/api/metrics"
	"github.com/opsdeck/admin-dashboard/internal/core/domain"
)

// RBAC rejects requests whose authenticated role is outside the
// allow-list. Ownership checks stay in the services; this is only the
// coarse role gate in front of them.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				metrics.AuthzDenialsTotal.WithLabelValues(c.Request().Method, c.Path()).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
