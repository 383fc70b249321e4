package routes

import (
	"github.com/gin-gonic/gin"

	"society_connect/internal/controllers"
)

func AuthRoutes(api *gin.RouterGroup, deps Deps) {
	ac := controllers.NewAuthController(deps.DB, deps.Auth)

	auth := api.Group("/auth")
	auth.Use(deps.Limiter.Limit())
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.POST("/bootstrap", ac.Bootstrap)
		auth.POST("/logout", deps.Auth.RequireAuth(), ac.Logout)
		auth.GET("/me", deps.Auth.RequireAuth(), ac.Me)
	}
}
