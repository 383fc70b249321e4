package routes

import (
	"github.com/gin-gonic/gin"

	"society_connect/internal/controllers"
)

func ComplaintRoutes(api *gin.RouterGroup, deps Deps) {
	cc := controllers.NewComplaintController(deps.DB)

	complaints := api.Group("/complaints")
	complaints.Use(deps.Auth.RequireAuth())
	{
		complaints.GET("", cc.List)
		complaints.POST("", cc.Create)
		complaints.PUT("/:id", cc.Update)
		complaints.DELETE("/:id", cc.Delete)
	}
}
