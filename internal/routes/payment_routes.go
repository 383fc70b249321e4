package routes

import (
	"github.com/gin-gonic/gin"

	"society_connect/internal/authz"
	"society_connect/internal/controllers"
	"society_connect/internal/middleware"
)

func PaymentRoutes(api *gin.RouterGroup, deps Deps) {
	pc := controllers.NewPaymentController(deps.DB)

	payments := api.Group("/payments")
	payments.Use(deps.Auth.RequireAuth())
	{
		payments.GET("", pc.List)
		payments.POST("", pc.Initiate)
		payments.PATCH("/:id",
			middleware.RequireRoles(authz.AllowedRoles(authz.ResourcePayment, authz.ActionManage)...),
			pc.UpdateStatus)
	}
}
