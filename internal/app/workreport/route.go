package workreport

import (
	"sitelabour/internal/middleware"

	"github.com/labstack/echo/v4"
)

func (h *handler) Route(v *echo.Group) {
	v.POST("", h.Create, middleware.Authentication)
	v.GET("", h.Find, middleware.Authentication)
	v.GET("/export", h.Export, middleware.Authentication)
	v.GET("/:id", h.FindById, middleware.Authentication)
	v.POST("/remaining", h.Remaining, middleware.Authentication)
}
