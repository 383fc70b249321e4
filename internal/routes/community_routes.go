package routes

import (
	"github.com/gin-gonic/gin"

	"society_connect/internal/controllers"
)

func CommunityRoutes(api *gin.RouterGroup, deps Deps) {
	cc := controllers.NewCommunityController(deps.DB)

	community := api.Group("/community")
	community.Use(deps.Auth.RequireAuth())
	{
		community.GET("", cc.List)
		community.POST("", cc.Create)
		community.PUT("/:id", cc.Update)
		community.DELETE("/:id", cc.Delete)
		community.POST("/:id/like", cc.ToggleLike)
		community.POST("/:id/comments", cc.AddComment)
		community.DELETE("/:id/comments/:commentId", cc.DeleteComment)
	}
}
