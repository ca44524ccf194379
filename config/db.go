package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"concierge-backend/models"
	"concierge-backend/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// SeedDatabase ensures a usable login exists on a fresh database.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := utils.HashPassword("admin123")
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
			return
		}
		admin := models.User{
			Name:     "Admin User",
			Email:    "admin@concierge.local",
			Role:     models.RoleAdmin,
			Password: hash,
		}
		if err := DB.Create(&admin).Error; err != nil {
			log.Printf("warning: failed to create default admin: %v", err)
		} else {
			log.Println("Default admin seeded")
		}
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "concierge_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Hotel{},
		&models.User{},
		&models.HotelSetting{},
		&models.Room{},
		&models.Device{},
		&models.Service{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.MenuModifier{},
		&models.ModifierOption{},
		&models.Order{},
		&models.OrderItem{},
		&models.Ad{},
		&models.Facility{},
		&models.POI{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
