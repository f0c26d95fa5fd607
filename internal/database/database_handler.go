package database

import (
	"fmt"

	"subplan/internal/domain"
	"subplan/internal/support"

	"github.com/charmbracelet/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	DB *gorm.DB
)

// SetupDB opens the configured database and migrates the calculation
// tables. Connection details come from the environment, matching the
// downstream import consumer's deployment.
func SetupDB() (*gorm.DB, error) {
	dsn := buildDSN()

	silent := logger.New(
		log.Default(),
		logger.Config{
			LogLevel: logger.Silent,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: silent})
	if err != nil {
		return nil, fmt.Errorf("database: open connection: %w", err)
	}
	DB = db

	if err := db.AutoMigrate(&domain.HostCalculation{}, &domain.CountCalculation{}); err != nil {
		return nil, fmt.Errorf("database: auto migrate: %w", err)
	}

	log.Info("Database migration completed.")
	return db, nil
}

func buildDSN() string {
	dbHost := support.GetEnv("DB_HOST", "localhost")
	dbPort := support.GetEnv("DB_PORT", "5432")
	dbName := support.GetEnv("DB_NAME", "subplan")
	dbUser := support.GetEnv("DB_USERNAME", "admin")
	dbPassword := support.GetEnv("DB_PASSWORD", "admin")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName,
	)
}
