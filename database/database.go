package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cuentas/config"
	"cuentas/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the configured database, migrates the schema and seeds defaults
func Init(cfg *config.Config) error {
	db, err := Open(cfg.Database)
	if err != nil {
		return err
	}

	if err := AutoMigrate(db); err != nil {
		return err
	}

	if err := SeedExpenseTypes(db); err != nil {
		return err
	}

	DB = db
	log.Println("database initialized")
	return nil
}

// Open connects to mysql or sqlite according to cfg.Driver
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.Path)
	case "mysql", "":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
		)
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Driver == "sqlite" {
		// one writer at a time; sqlite has no row locks
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
		return db, nil
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	return db, nil
}

// AutoMigrate creates or updates every ledger table
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Balance{},
		&models.ExpenseType{},
		&models.Deposit{},
		&models.Expense{},
		&models.TransferRecord{},
		&models.MonthlyBudget{},
		&models.SeasonSetting{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SeedExpenseTypes inserts the shared default expense types when none exist
func SeedExpenseTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ExpenseType{}).Where("is_default = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var types []models.ExpenseType
	for _, name := range models.DefaultExpenseTypes() {
		types = append(types, models.ExpenseType{Nombre: name, IsDefault: true})
	}
	if err := db.Create(&types).Error; err != nil {
		return fmt.Errorf("seed expense types: %w", err)
	}
	log.Printf("seeded %d default expense types", len(types))
	return nil
}

// GetDB returns the shared connection
func GetDB() *gorm.DB {
	return DB
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
