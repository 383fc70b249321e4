package routes

import (
	"github.com/gin-gonic/gin"

	"society_connect/internal/authz"
	"society_connect/internal/controllers"
	"society_connect/internal/middleware"
)

func NoticeRoutes(api *gin.RouterGroup, deps Deps) {
	nc := controllers.NewNoticeController(deps.DB, deps.Mailer)

	notices := api.Group("/notices")
	notices.Use(deps.Auth.RequireAuth())
	{
		notices.GET("", nc.List)

		publish := middleware.RequireRoles(authz.AllowedRoles(authz.ResourceNotice, authz.ActionCreate)...)
		notices.POST("", publish, nc.Create)
		notices.PUT("/:id", publish, nc.Update)
		notices.DELETE("/:id", publish, nc.Delete)
	}
}
