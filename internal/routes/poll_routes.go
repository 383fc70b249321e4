package routes

import (
	"github.com/gin-gonic/gin"

	"society_connect/internal/authz"
	"society_connect/internal/controllers"
	"society_connect/internal/middleware"
)

func PollRoutes(api *gin.RouterGroup, deps Deps) {
	pc := controllers.NewPollController(deps.DB)

	polls := api.Group("/polls")
	polls.Use(deps.Auth.RequireAuth())
	{
		polls.GET("", pc.List)
		polls.POST("/:id/vote", pc.Vote)

		manage := middleware.RequireRoles(authz.AllowedRoles(authz.ResourcePoll, authz.ActionManage)...)
		polls.POST("", manage, pc.Create)
		polls.POST("/:id/close", manage, pc.Close)
		polls.DELETE("/:id", manage, pc.Delete)
	}
}
