package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"warrantly/internal/shared/config"
	"warrantly/internal/shared/logger"
)

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

// Init opens the MySQL connection and configures the pool. All timestamp
// columns are stored as millisecond integers, so the session timezone never
// affects stored data; parseTime stays on only for schema introspection.
func Init(cfg *config.DatabaseConfig) error {
	gormLogger := gormlogger.New(
		&slogWriter{log: logger.NewLogger().With("component", "gorm")},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	conn, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       cfg.GetDSN(),
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	dbMu.Lock()
	db = conn
	dbMu.Unlock()

	logger.Info("database connection established",
		"host", cfg.Host,
		"database", cfg.Database)
	return nil
}

// Get returns the shared connection. Nil before Init succeeds.
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

func Close() error {
	dbMu.RLock()
	conn := db
	dbMu.RUnlock()

	if conn == nil {
		return nil
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	logger.Info("database connection closed")
	return nil
}

// slogWriter routes gorm's logger through the structured logger, dropping
// the driver's startup introspection noise.
type slogWriter struct {
	log logger.Interface
}

func (w *slogWriter) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	lowered := strings.ToLower(msg)

	if strings.Contains(lowered, "information_schema.schemata") ||
		strings.Contains(lowered, "select version()") {
		return
	}

	switch {
	case strings.Contains(lowered, "error"):
		w.log.Errorw("database error", "details", msg)
	case strings.Contains(lowered, "slow sql"):
		w.log.Warnw("slow query", "details", msg)
	default:
		w.log.Debugw("database query", "details", msg)
	}
}
