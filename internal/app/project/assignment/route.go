package assignment

import (
	"sitelabour/internal/middleware"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Route(v *echo.Group) {
	v.POST("", h.Create, middleware.Authentication)
	v.GET("", h.Find, middleware.Authentication)
	v.DELETE("/:id", h.Delete, middleware.Authentication)
}
