package main

import (
	"log"
	"net/http"

	"society_connect/internal/config"
	"society_connect/internal/logger"
	"society_connect/internal/mailer"
	"society_connect/internal/middleware"
	"society_connect/internal/routes"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile)

	// Connect to the database
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	rdb := config.NewRedis(cfg)
	defer rdb.Close()

	deps := routes.Deps{
		DB:      db,
		Auth:    middleware.NewAuth(cfg.JWTSecret, cfg.JWTTTL, db, rdb),
		Mailer:  mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom),
		Limiter: middleware.NewTokenBucket(cfg.RateLimitPerMin),
	}

	r := routes.SetupRouter(deps)

	log.Printf("🚀 Server running at %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
