package attendance

import (
	"sitelabour/internal/middleware"

	"github.com/labstack/echo/v4"
)

func (h *handler) Route(v *echo.Group) {
	v.GET("", h.Get, middleware.Authentication)
	v.POST("", h.Save, middleware.Authentication)
}
