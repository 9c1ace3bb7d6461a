package board

import (
	"sitelabour/internal/middleware"

	"github.com/labstack/echo/v4"
)

func (h *handler) Route(v *echo.Group) {
	v.GET("/daily", h.Daily, middleware.Authentication)
	v.GET("/rollup", h.Rollup, middleware.Authentication)
	v.GET("/export", h.Export, middleware.Authentication)
}
