package routes

import (
	"github.com/gin-gonic/gin"

	"society_connect/internal/controllers"
)

// VisitorRoutes exposes the visitor workflow. Every authenticated role
// may hit these; the role-dependent rules live in the workflow engine.
func VisitorRoutes(api *gin.RouterGroup, deps Deps) {
	vc := controllers.NewVisitorController(deps.DB)

	visitors := api.Group("/visitors")
	visitors.Use(deps.Auth.RequireAuth())
	{
		visitors.GET("", vc.List)
		visitors.POST("", vc.Create)
		visitors.PUT("/:id", vc.Update)
		visitors.DELETE("/:id", vc.Delete)
	}
}
