package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"society_connect/internal/models"
)

// ConnectDB opens the Postgres connection and migrates the schema. The
// returned handle is created once at boot and passed to the components
// that need it.
func ConnectDB(cfg App) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBTimezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.VisitorLog{},
		&models.Notice{},
		&models.NoticeAttachment{},
		&models.MaintenanceBill{},
		&models.Payment{},
		&models.Complaint{},
		&models.Poll{},
		&models.PollOption{},
		&models.PollResponse{},
		&models.CommunityPost{},
		&models.PostImage{},
		&models.PostLike{},
		&models.PostComment{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}

	return db, nil
}
