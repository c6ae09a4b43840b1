package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormOptions tunes the ORM session opened over an existing pool.
type GormOptions struct {
	Logger zerolog.Logger
	// LogSQL logs every statement at info level instead of only slow or failed ones.
	LogSQL bool
}

// NewGormConfig returns the gorm settings shared by production and tests.
// Writes are wrapped explicitly through WithTx, and driver errors are
// translated so constraint failures surface as gorm sentinels.
func NewGormConfig(opts GormOptions) *gorm.Config {
	return &gorm.Config{
		Logger:                 newGormLogger(opts),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}
}

func newGormLogger(opts GormOptions) gormlogger.Interface {
	l := opts.Logger.With().Str("component", "gorm").Logger()
	level := gormlogger.Warn
	if opts.LogSQL {
		level = gormlogger.Info
	}
	return gormlogger.New(&l, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// WithTx executes fn inside a transaction, rolling back on error/panic.
// The transaction is committed exactly once when fn succeeds.
func WithTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
