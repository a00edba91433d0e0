package connection

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Gajendran57/GoalGrid/pkg/config"
)

type Database struct {
	*gorm.DB
	driver string
	dsn    string
}

func openDialector(driver, dsn string) gorm.Dialector {
	if driver == config.DriverSQLite {
		return sqlite.Open(dsn)
	}
	return postgres.Open(dsn)
}

// Reconnect attempts to reconnect to the database if the connection is lost
func (db *Database) Reconnect() error {
	newDB, err := gorm.Open(openDialector(db.driver, db.dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("failed to reconnect to database: %w", err)
	}

	db.DB = newDB

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying *sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

func NewDatabase(cfg *config.Config) (*Database, error) {
	dsn := cfg.Database.DSN()

	// For postgres, verify connectivity with a plain SQL connection first
	// so driver errors surface with their diagnostic detail.
	if !cfg.Database.IsSQLite() {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to create sql.DB: %w", err)
		}
		defer sqlDB.Close()

		sqlDB.SetConnMaxLifetime(10 * time.Second)
		if err := sqlDB.Ping(); err != nil {
			if sqlErr, ok := err.(*pq.Error); ok {
				return nil, fmt.Errorf("postgres error: code=%s, message=%s, detail=%s", sqlErr.Code, sqlErr.Message, sqlErr.Detail)
			}
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Info),
		PrepareStmt: true, // Enables prepared statement caching
		NowFunc: func() time.Time {
			return time.Now().UTC() // Standardize time
		},
	}

	db, err := gorm.Open(openDialector(cfg.Database.Driver, dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database with GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying *sql.DB: %w", err)
	}

	maxIdleConns := 10
	maxOpenConns := 100

	if cfg.Database.MaxIdleConns > 0 {
		maxIdleConns = cfg.Database.MaxIdleConns
	}

	if cfg.Database.MaxOpenConns > 0 {
		maxOpenConns = cfg.Database.MaxOpenConns
	}

	// SQLite runs single-writer, keep the pool small there
	if cfg.Database.IsSQLite() {
		maxOpenConns = 1
		maxIdleConns = 1
	}

	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping connection pool: %w", err)
	}

	return &Database{
		DB:     db,
		driver: cfg.Database.Driver,
		dsn:    dsn,
	}, nil
}
