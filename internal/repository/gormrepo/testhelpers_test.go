package gormrepo

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storeapi/internal/database"
	"storeapi/internal/database/migration"
)

func ptr[T any](v T) *T { return &v }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), database.NewGormConfig(database.GormOptions{Logger: zerolog.Nop()}))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.EnsureMigrated(context.Background(), db, zerolog.Nop()))
	return db
}
