package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fundbridge-backend/internal/domain/audit"
	"fundbridge-backend/internal/domain/campaign"
	"fundbridge-backend/internal/domain/donation"
	"fundbridge-backend/internal/domain/ledger"
	"fundbridge-backend/internal/domain/loan"
	"fundbridge-backend/internal/domain/user"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector lets tests swap in a mocked dialector.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates/updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&campaign.Campaign{},
		&donation.Donation{},
		&loan.Loan{},
		&loan.Funding{},
		&loan.Repayment{},
		&ledger.Transaction{},
		&audit.Log{},
	)
}
