package routes

import (
	"github.com/gin-gonic/gin"

	"society_connect/internal/controllers"
)

func DashboardRoutes(api *gin.RouterGroup, deps Deps) {
	dc := controllers.NewDashboardController(deps.DB)

	api.GET("/dashboard", deps.Auth.RequireAuth(), dc.Get)
}
