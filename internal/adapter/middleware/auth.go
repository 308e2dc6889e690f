package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"seismic-catalog/internal/auth"
)

type TokenVerifier interface {
	Verify(raw string) (auth.Principal, error)
}

// Authenticate requires "Authorization: Bearer <token>" and stores the
// verified principal in the request context.
func Authenticate(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			header := strings.TrimSpace(req.Header.Get(echo.HeaderAuthorization))
			if !strings.HasPrefix(header, "Bearer ") {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer realm="seismic-catalog"`)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			p, err := v.Verify(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
			if err != nil {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer realm="seismic-catalog", error="invalid_token"`)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			c.SetRequest(req.WithContext(auth.WithPrincipal(req.Context(), p)))
			return next(c)
		}
	}
}
