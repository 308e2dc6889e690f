package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	domain "seismic-catalog/internal/domain/requisition"
)

// Routes wires the handlers. Authenticate guards every /requisitions route;
// Idempotency (mutating requisition routes) and LoginLimit are optional.
type Routes struct {
	Health       *Handler
	Requisitions *RequisitionHandler
	Users        *UserHandler
	Authenticate echo.MiddlewareFunc
	Idempotency  echo.MiddlewareFunc
	LoginLimit   echo.MiddlewareFunc
	MetricsPath  string
}

func (r Routes) Register(e *echo.Echo) {
	e.GET("/health", r.Health.Health)
	if r.MetricsPath != "" {
		e.GET(r.MetricsPath, echo.WrapHandler(promhttp.Handler()))
	}

	users := e.Group("/users")
	users.POST("/signup", r.Users.Signup)
	users.POST("/login", r.Users.Login, optional(r.LoginLimit)...)

	mutating := optional(r.Idempotency)
	reqs := e.Group("/requisitions", optional(r.Authenticate)...)
	reqs.GET("", r.Requisitions.List)
	reqs.GET("/:id", r.Requisitions.Get)
	reqs.POST("", r.Requisitions.Create, mutating...)
	for _, a := range domain.Actions() {
		reqs.PATCH("/:id/"+string(a), r.Requisitions.Decide(a), mutating...)
	}
}

func optional(m echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if m == nil {
		return nil
	}
	return []echo.MiddlewareFunc{m}
}
