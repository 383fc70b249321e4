package routes

import (
	"github.com/gin-gonic/gin"

	"society_connect/internal/authz"
	"society_connect/internal/controllers"
	"society_connect/internal/middleware"
)

func UserRoutes(api *gin.RouterGroup, deps Deps) {
	uc := controllers.NewUserController(deps.DB)

	users := api.Group("/users")
	users.Use(deps.Auth.RequireAuth())
	{
		users.GET("", uc.List)
		users.PUT("/profile", uc.UpdateProfile)

		manage := users.Group("")
		manage.Use(middleware.RequireRoles(authz.AllowedRoles(authz.ResourceUser, authz.ActionManage)...))
		{
			manage.GET("/:id", uc.Get)
			manage.PUT("/:id", uc.Update)
			manage.DELETE("/:id", uc.Delete)
		}
	}
}
