package config

import (
	"os"

	"printhub-api/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "printhub_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the embedded user database and migrates the account table.
// Only identity lives here; orders, inventory and notifications are owned by
// the in-memory stores for the life of the process.
func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("PRINTHUB_DB", "printhub.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	if err := DB.AutoMigrate(&models.User{}); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	seedDemoUsers()
	logrus.Info("database connected and migrated")
}

// seedDemoUsers provisions the three demo accounts the dashboard ships with.
// Idempotent: existing emails are left alone.
func seedDemoUsers() {
	demo := []struct {
		name     string
		email    string
		password string
		role     models.UserRole
	}{
		{"Admin User", "admin@printhub.com", "admin123", models.RoleAdmin},
		{"Shop Employee", "employee@printhub.com", "employee123", models.RoleCoAdmin},
		{"John Student", "student@printhub.com", "student123", models.RoleStudent},
	}

	for _, d := range demo {
		var existing models.User
		if err := DB.Where("email = ?", d.email).First(&existing).Error; err == nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Fatal("failed to hash demo password")
		}
		user := models.User{
			Name:         d.name,
			Email:        d.email,
			PasswordHash: string(hash),
			Role:         d.role,
			Active:       true,
		}
		if err := DB.Create(&user).Error; err != nil {
			logrus.WithError(err).WithField("email", d.email).Error("failed to seed demo user")
		}
	}
}
