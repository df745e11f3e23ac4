package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"reqtrack/internal/config"
	"reqtrack/internal/request"
	"reqtrack/internal/user"
)

var DB *gorm.DB

func Init(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Database.Path)
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&user.User{}, &request.Request{}); err != nil {
		return err
	}

	DB = db
	log.Printf("Database connected and migrated (%s)", cfg.Database.Driver)

	return seedAdmin(db, cfg)
}

// seedAdmin creates the configured bootstrap admin, but only when no
// admin row exists yet. Signup itself never grants the admin role.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil
	}
	var count int64
	if err := db.Model(&user.User{}).Where("role = ?", user.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := user.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}
	username := cfg.Admin.Username
	if username == "" {
		username = "admin"
	}
	admin := user.User{
		Username:     username,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         user.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Seeded bootstrap admin %q", admin.Email)
	return nil
}
