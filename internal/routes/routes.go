package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"society_connect/internal/mailer"
	"society_connect/internal/metrics"
	"society_connect/internal/middleware"
)

// Deps carries the process-scoped handles the routes need.
type Deps struct {
	DB      *gorm.DB
	Auth    *middleware.Auth
	Mailer  *mailer.Mailer
	Limiter *middleware.TokenBucket
}

// SetupRouter builds the engine with middleware and all resource routes
// under /api.
func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())
	r.Use(middleware.EnableCORS())
	r.Use(metrics.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")

	AuthRoutes(api, deps)
	UserRoutes(api, deps)
	VisitorRoutes(api, deps)
	NoticeRoutes(api, deps)
	MaintenanceRoutes(api, deps)
	PaymentRoutes(api, deps)
	ComplaintRoutes(api, deps)
	PollRoutes(api, deps)
	CommunityRoutes(api, deps)
	DashboardRoutes(api, deps)

	return r
}
