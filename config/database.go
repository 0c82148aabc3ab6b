package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB connects to MySQL and prepares the shared handle. Workbook imports
// fan sub-batches out over several connections at once, so the pool is sized
// above the driver defaults.
func InitDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		envOr("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		envOr("DB_HOST", "127.0.0.1"),
		envOr("DB_PORT", "3306"),
		envOr("DB_NAME", "vendor_management"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Database handle unavailable: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = db
	log.Println("Database connected")
}

// newGormLogger routes SQL logs through the shared LogWriter. Statements are
// printed outside production; DEBUG_SQL=true re-enables them there. Slow
// import queries surface at 200ms regardless of level.
func newGormLogger() logger.Interface {
	level := logger.Info
	if strings.ToLower(os.Getenv("ENVIRONMENT")) == "production" &&
		strings.ToLower(os.Getenv("DEBUG_SQL")) != "true" {
		level = logger.Warn
	}

	return logger.New(
		log.New(LogWriter, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel:                  level,
			SlowThreshold:             200 * time.Millisecond,
			IgnoreRecordNotFoundError: true,
		},
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
