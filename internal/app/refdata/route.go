package refdata

import (
	"sitelabour/internal/middleware"

	"github.com/labstack/echo/v4"
)

func (h *handler) Route(v *echo.Group) {
	v.GET("", h.Get, middleware.Authentication)
	v.POST("/refresh", h.Refresh, middleware.Authentication)
	v.POST("/retry", h.Retry, middleware.Authentication)
}
