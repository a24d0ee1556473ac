package storage

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"prorab-finance/internal/models"
)

// newTestDB поднимает свежую sqlite-базу на каждый тест. Файл во временной
// директории, а не :memory:, чтобы пул соединений gorm видел одну и ту же базу.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.AdditionalWork{},
		&models.ClientPayment{},
		&models.Expense{},
		&models.Category{},
		&models.PaymentMethod{},
		&models.AuditLog{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}
