package routes

import (
	"smart-gmao/internal/controllers"
	"smart-gmao/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(api *echo.Group, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
	}
}
