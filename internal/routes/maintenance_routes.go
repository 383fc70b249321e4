package routes

import (
	"github.com/gin-gonic/gin"

	"society_connect/internal/authz"
	"society_connect/internal/controllers"
	"society_connect/internal/middleware"
)

func MaintenanceRoutes(api *gin.RouterGroup, deps Deps) {
	mc := controllers.NewMaintenanceController(deps.DB)

	bills := api.Group("/maintenance")
	bills.Use(deps.Auth.RequireAuth())
	{
		bills.GET("", mc.List)
		bills.GET("/:id", mc.Get)

		manage := middleware.RequireRoles(authz.AllowedRoles(authz.ResourceBill, authz.ActionCreate)...)
		bills.POST("", manage, mc.Create)
		bills.PUT("/:id", manage, mc.Update)
		bills.DELETE("/:id", manage, mc.Delete)
	}
}
