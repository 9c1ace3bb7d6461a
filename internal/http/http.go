package http

import (
	"fmt"
	"net/http"

	"sitelabour/internal/app/attendance"
	"sitelabour/internal/app/auth"
	"sitelabour/internal/app/board"
	"sitelabour/internal/app/project"
	"sitelabour/internal/app/refdata"
	"sitelabour/internal/app/role"
	"sitelabour/internal/app/team"
	"sitelabour/internal/app/user"
	"sitelabour/internal/app/workreport"
	"sitelabour/internal/config"
	"sitelabour/internal/factory"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func Init(e *echo.Echo, f *factory.Factory) {

	e.GET("/", func(c echo.Context) error {
		message := fmt.Sprintf("Hello there, welcome to app %s version %s.", config.Get().App.App, config.Get().App.Version)
		return c.String(http.StatusOK, message)
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	auth.NewHandler(f).Route(e.Group("/auth"))
	role.NewHandler(f).Route(e.Group("/role"))
	user.NewHandler(f).Route(e.Group("/user"))
	project.NewHandler(f).Route(e.Group("/project"))
	team.NewHandler(f).Route(e.Group("/team"))
	refdata.NewHandler(f).Route(e.Group("/refdata"))
	attendance.NewHandler(f).Route(e.Group("/attendance"))
	workreport.NewHandler(f).Route(e.Group("/work-report"))
	board.NewHandler(f).Route(e.Group("/board"))
}
